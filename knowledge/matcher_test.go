package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAllDirect(t *testing.T) {
	g := NewGraph()

	result := g.Match([]string{"Python", "SQL"}, []string{"Python", "SQL"})
	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Equal(t, []string{"python", "sql"}, result.DirectMatches)
	assert.Empty(t, result.RelatedMatches)
	assert.Empty(t, result.MissingSkills)
}

func TestMatchRelatedCredit(t *testing.T) {
	g := NewGraph()

	result := g.Match([]string{"Deep Learning"}, []string{"Machine Learning"})
	require.Len(t, result.RelatedMatches, 1)
	assert.Equal(t, "machine learning", result.RelatedMatches[0].JobSkill)
	assert.Contains(t, result.RelatedMatches[0].MatchedVia, "deep learning")
	assert.Equal(t, 75.0, result.MatchPercentage, "a related match earns 75% of a direct match")
}

func TestMatchMixedBuckets(t *testing.T) {
	g := NewGraph()

	jobSkills := []string{"Python", "Machine Learning", "Kubernetes"}
	result := g.Match([]string{"Python", "Deep Learning"}, jobSkills)

	assert.Equal(t, []string{"python"}, result.DirectMatches)
	require.Len(t, result.RelatedMatches, 1)
	assert.Equal(t, "machine learning", result.RelatedMatches[0].JobSkill)
	assert.Equal(t, []string{"kubernetes"}, result.MissingSkills)

	// (1 direct + 1 related * 0.75) / 3 jobs = 58.333..%
	assert.Equal(t, 58.3, result.MatchPercentage)
}

// Every job skill must land in exactly one bucket.
func TestMatchBucketInvariant(t *testing.T) {
	g := NewGraph()

	jobSkills := []string{"Python", "TensorFlow", "Kubernetes", "underwater basket weaving", "SQL"}
	result := g.Match([]string{"python", "PyTorch"}, jobSkills)

	total := len(result.DirectMatches) + len(result.RelatedMatches) + len(result.MissingSkills)
	assert.Equal(t, len(jobSkills), total)

	seen := make(map[string]int)
	for _, s := range result.DirectMatches {
		seen[s]++
	}
	for _, m := range result.RelatedMatches {
		seen[m.JobSkill]++
	}
	for _, s := range result.MissingSkills {
		seen[s]++
	}
	for _, job := range jobSkills {
		assert.Equal(t, 1, seen[strings.ToLower(job)], "job skill %q must appear in exactly one bucket", job)
	}
}

func TestMatchEmptyJobSkills(t *testing.T) {
	g := NewGraph()

	result := g.Match([]string{"Python"}, nil)
	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.NotNil(t, result.DirectMatches)
	assert.NotNil(t, result.RelatedMatches)
	assert.NotNil(t, result.MissingSkills)
}

func TestMatchEmptyResumeSkills(t *testing.T) {
	g := NewGraph()

	result := g.Match(nil, []string{"Python", "SQL"})
	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.Equal(t, []string{"python", "sql"}, result.MissingSkills)
}

func TestMatchStrict(t *testing.T) {
	result := MatchStrict([]string{"Python", "Go"}, []string{"python", "Rust"})
	assert.Equal(t, []string{"python"}, result.MatchedSkills, "matched skills keep the job list's casing")
	assert.Equal(t, 50.0, result.MatchPercentage)
	assert.Equal(t, []string{"Python", "Go"}, result.ResumeSkills)
	assert.Equal(t, []string{"python", "Rust"}, result.JobDescriptionSkills)
}

func TestMatchStrictNoRelatedCredit(t *testing.T) {
	// Deep Learning is related to Machine Learning, but strict mode ignores that
	result := MatchStrict([]string{"Deep Learning"}, []string{"Machine Learning"})
	assert.Empty(t, result.MatchedSkills)
	assert.Equal(t, 0.0, result.MatchPercentage)
}

func TestMatchStrictRounding(t *testing.T) {
	result := MatchStrict([]string{"Python"}, []string{"Python", "Go", "Rust"})
	assert.Equal(t, 33.3, result.MatchPercentage)

	result = MatchStrict([]string{"Python", "Go"}, []string{"Python", "Go", "Rust"})
	assert.Equal(t, 66.7, result.MatchPercentage)
}

func TestMatchStrictEmptyJobSkills(t *testing.T) {
	result := MatchStrict([]string{"Python"}, nil)
	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.NotNil(t, result.MatchedSkills)
}
