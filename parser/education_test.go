package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducationStructured(t *testing.T) {
	text := "Education:\nBachelor of Science in Computer Science, MIT, 09/2015 - 06/2019"

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
	assert.Equal(t, "MIT", entries[0].Institution)
	assert.Equal(t, "09/2015 - 06/2019", entries[0].Dates)
}

func TestExtractEducationLineScan(t *testing.T) {
	text := "Education:\nMaster of Science in AI\nStanford University\n2019 - 2021"

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science in AI", entries[0].Degree)
	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, "2019 - 2021", entries[0].Dates)
}

func TestExtractEducationLineScanMultiple(t *testing.T) {
	text := "Education:\nPh.D. in Physics\nCaltech\n2021\nBachelor of Arts\nOberlin College\n2015"

	entries := ExtractEducation(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ph.D. in Physics", entries[0].Degree)
	assert.Equal(t, "Caltech", entries[0].Institution)
	assert.Equal(t, "2021", entries[0].Dates)
	assert.Equal(t, "Bachelor of Arts", entries[1].Degree)
	assert.Equal(t, "Oberlin College", entries[1].Institution)
}

func TestExtractEducationNoSection(t *testing.T) {
	entries := ExtractEducation("Skills: Python\n\nWork Experience:\nAcme")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractEducationEmpty(t *testing.T) {
	entries := ExtractEducation("")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
