package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCertifications(t *testing.T) {
	text := strings.Join([]string{
		"Certifications",
		"• AWS Certified Solutions Architect, 2021",
		"- Certified Kubernetes Administrator",
		"ok",
	}, "\n")

	certifications := ExtractCertifications(text, DetectSections(text))
	require.Len(t, certifications, 2, "过短的行视为噪声")

	assert.Equal(t, "AWS Certified Solutions Architect, 2021", certifications[0].Name)
	require.NotNil(t, certifications[0].Date)
	assert.Equal(t, 2021, *certifications[0].Date)

	assert.Equal(t, "Certified Kubernetes Administrator", certifications[1].Name)
	assert.Nil(t, certifications[1].Date, "无年份时Date为nil")
}

func TestExtractCertifications_NoSectionMarker(t *testing.T) {
	certifications := ExtractCertifications("AWS Certified Developer, 2020", nil)
	require.NotNil(t, certifications)
	assert.Empty(t, certifications, "无certifications标记时不做全局扫描")
}
