package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_CollapsesInternalWhitespace(t *testing.T) {
	result := CleanText("Line    with    multiple    spaces")

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_PreservesBulletLines(t *testing.T) {
	result := CleanText("• Built a thing\n- Shipped a thing")

	assert.Contains(t, result, "• Built a thing")
	assert.Contains(t, result, "- Shipped a thing")
}

func TestCleanText_PreservesIndentation(t *testing.T) {
	result := CleanText("First line\n  indented   line")

	assert.Equal(t, "First line\n  indented line", result)
}

func TestCleanText_RemovesExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_TrimsDocumentEdges(t *testing.T) {
	result := CleanText("\n\n  content  \n\n")

	assert.Equal(t, "content", result)
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n\t\n   "))
}
