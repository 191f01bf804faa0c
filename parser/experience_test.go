package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperienceStructured(t *testing.T) {
	text := "Work Experience:\nAcme Corp, Software Engineer, 01/2019 - 06/2023\nBuilt the billing platform.\n\nEducation:\nMIT"

	entries := ExtractExperience(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Software Engineer", entries[0].Title)
	assert.Equal(t, "01/2019 - 06/2023", entries[0].Dates)
	assert.Equal(t, "Built the billing platform.", entries[0].Description)
}

func TestExtractExperienceStructuredMultiple(t *testing.T) {
	text := "Experience:\nAcme Corp, Software Engineer, 01/2019 - 06/2023\nGlobex Inc, Senior Engineer, 07/2023 - present"

	entries := ExtractExperience(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Globex Inc", entries[1].Company)
	assert.Equal(t, "Senior Engineer", entries[1].Title)
	assert.Equal(t, "07/2023 - present", entries[1].Dates)
}

func TestExtractExperienceLineScan(t *testing.T) {
	text := "Work Experience:\n2019 - 2023\nSoftware Engineer\nAcme Corp\nLed the backend team\n2023 - Present\nSenior Engineer\nGlobex"

	entries := ExtractExperience(text)
	require.Len(t, entries, 2)

	assert.Equal(t, "2019 - 2023", entries[0].Dates)
	assert.Equal(t, "Software Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Led the backend team", entries[0].Description)

	assert.Equal(t, "2023 - Present", entries[1].Dates)
	assert.Equal(t, "Senior Engineer", entries[1].Title)
	assert.Equal(t, "Globex", entries[1].Company)
}

func TestExtractExperienceLineScanDropsUntitledEntries(t *testing.T) {
	// a trailing date line with nothing after it yields no entry
	text := "Experience:\n2019 - 2023\nEngineer\n2021 - 2022"
	entries := ExtractExperience(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Engineer", entries[0].Title)
}

func TestExtractExperienceNoSection(t *testing.T) {
	entries := ExtractExperience("Skills: Python\n\nEducation:\nMIT")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractExperienceEmpty(t *testing.T) {
	entries := ExtractExperience("")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
