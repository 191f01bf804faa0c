package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Python", "Python"},
		{"surrounding whitespace", "  Go  ", "Go"},
		{"internal whitespace collapsed", "Machine   Learning", "Machine Learning"},
		{"bullet prefix", "• Python", "Python"},
		{"dash prefix", "- Docker", "Docker"},
		{"replacement char prefix", "�Kubernetes", "Kubernetes"},
		{"tabs and newlines", "Data\t\nAnalysis", "Data Analysis"},
		{"multi-word preserved", "Node.js", "Node.js"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"bullet only", "• ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkill(tt.in))
		})
	}
}

func TestNormalizeSkillIdempotent(t *testing.T) {
	inputs := []string{"  Machine   Learning ", "• Python", "- Go", "�Docker", "SQL", ""}
	for _, in := range inputs {
		once := NormalizeSkill(in)
		assert.Equal(t, once, NormalizeSkill(once), "normalizing %q twice changed the result", in)
	}
}

func TestDedupeSkills(t *testing.T) {
	got := DedupeSkills([]string{"Python", "python", "PYTHON", "Go", "go", "SQL"})
	assert.Equal(t, []string{"Python", "Go", "SQL"}, got, "first occurrence's casing and order must win")
}

func TestDedupeSkillsEmpty(t *testing.T) {
	got := DedupeSkills(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
