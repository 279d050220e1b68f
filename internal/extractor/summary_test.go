package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSummary(t *testing.T) {
	text := strings.Join([]string{
		"Summary",
		"Backend engineer focused on distributed systems.",
		"Enjoys mentoring and code review.",
	}, "\n")

	summary := ExtractSummary(text, DetectSections(text))
	require.NotNil(t, summary)
	assert.Equal(t, "Backend engineer focused on distributed systems. Enjoys mentoring and code review.", *summary)
}

func TestExtractSummary_LineCap(t *testing.T) {
	lines := []string{"Summary"}
	for i := 0; i < 8; i++ {
		lines = append(lines, "This content sentence is long enough to keep around.")
	}
	text := strings.Join(lines, "\n")

	summary := ExtractSummary(text, DetectSections(text))
	require.NotNil(t, summary)
	assert.Equal(t, maxSummaryLines, strings.Count(*summary, "This content sentence"), "最多拼接5个内容行")
}

func TestExtractSummary_TooShort(t *testing.T) {
	assert.Nil(t, ExtractSummary("Summary\nHi.", DetectSections("Summary\nHi.")))
}

func TestExtractSummary_NoSectionMarker(t *testing.T) {
	assert.Nil(t, ExtractSummary("A long paragraph about a candidate without any headers", nil))
}
