package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromBytesTxt(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractTextFromBytes([]byte("Skills: Python, Go"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Skills: Python, Go", text)
}

func TestExtractTextFromBytesUnknownExtension(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractTextFromBytes([]byte("plain content"), "resume.md")
	require.NoError(t, err)
	assert.Equal(t, "plain content", text)
}

func TestExtractTextFromBytesDoc(t *testing.T) {
	e := NewDocumentExtractor()

	// binary junk around readable text
	content := append([]byte{0x00, 0x01, 0x02}, []byte("Python developer")...)
	content = append(content, 0x00, 0x03)

	text, err := e.ExtractTextFromBytes(content, "resume.doc")
	require.NoError(t, err)
	assert.Contains(t, text, "Python developer")
}

func TestExtractTextFromBytesBadPDF(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractTextFromBytes([]byte("not a pdf"), "resume.pdf")
	assert.Error(t, err)
}

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()

	assert.True(t, e.IsSupportedFormat("resume.pdf"))
	assert.True(t, e.IsSupportedFormat("resume.DOCX"))
	assert.True(t, e.IsSupportedFormat("resume.txt"))
	assert.True(t, e.IsSupportedFormat("resume.doc"))
	assert.False(t, e.IsSupportedFormat("resume.png"))
	assert.False(t, e.IsSupportedFormat("resume"))
}
