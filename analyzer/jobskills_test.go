package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJobSkillsBullets(t *testing.T) {
	jd := "Requirements:\n• Python\n• Docker\n• Kubernetes\n\nWe offer great benefits."
	got := ExtractJobSkills(jd)
	assert.Equal(t, []string{"Python", "Docker", "Kubernetes"}, got)
}

func TestExtractJobSkillsCommaFallback(t *testing.T) {
	jd := "Qualifications: Python, Terraform, Ansible\n\nApply now."
	got := ExtractJobSkills(jd)
	assert.Equal(t, []string{"Python", "Terraform", "Ansible"}, got)
}

func TestExtractJobSkillsPhrases(t *testing.T) {
	jd := "Experience with Django. Knowledge of PostgreSQL. Familiarity with Redis preferred."
	got := ExtractJobSkills(jd)
	assert.Equal(t, []string{"Django", "PostgreSQL", "Redis"}, got)
}

func TestExtractJobSkillsSuffixStripped(t *testing.T) {
	jd := "Skills:\n• Kubernetes required\n• Terraform a plus\n\nEnd"
	got := ExtractJobSkills(jd)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, got)
}

func TestExtractJobSkillsFiltersAndDedupes(t *testing.T) {
	jd := "Requirements: Go, Python, Python\n\nEnd"
	got := ExtractJobSkills(jd)
	assert.Equal(t, []string{"Python"}, got, "tokens of two characters or fewer are dropped, duplicates removed")
}

func TestExtractJobSkillsEmpty(t *testing.T) {
	got := ExtractJobSkills("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
