package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation_SingleEntry(t *testing.T) {
	text := strings.Join([]string{
		"Education",
		"Bachelor of Science in Computer Science, GPA: 3.8, 2018",
		"Stanford University",
	}, "\n")

	education := ExtractEducation(text, DetectSections(text))
	require.Len(t, education, 1)

	entry := education[0]
	assert.Equal(t, "Bachelor's Degree", entry.Degree)
	assert.Equal(t, "Stanford University", entry.Institution)
	require.NotNil(t, entry.GraduationYear)
	assert.Equal(t, 2018, *entry.GraduationYear)
	require.NotNil(t, entry.GPA)
	assert.Equal(t, 3.8, *entry.GPA)
}

func TestExtractEducation_MultipleEntries(t *testing.T) {
	text := strings.Join([]string{
		"Education",
		"MS in Computer Science, 2020",
		"Stanford University",
		"Bachelor of Arts, 2016",
		"Reed College",
	}, "\n")

	education := ExtractEducation(text, DetectSections(text))
	require.Len(t, education, 2)

	assert.Equal(t, "Master of Science", education[0].Degree)
	assert.Equal(t, "Stanford University", education[0].Institution)
	require.NotNil(t, education[0].GraduationYear)
	assert.Equal(t, 2020, *education[0].GraduationYear)

	assert.Equal(t, "Bachelor's Degree", education[1].Degree)
	assert.Equal(t, "Reed College", education[1].Institution)
	require.NotNil(t, education[1].GraduationYear)
	assert.Equal(t, 2016, *education[1].GraduationYear)
}

func TestExtractEducation_UnmappedDegreeFallsBackToCommaPrefix(t *testing.T) {
	text := strings.Join([]string{
		"Education",
		"Doctorate in Linguistics, 2012",
	}, "\n")

	education := ExtractEducation(text, DetectSections(text))
	require.Len(t, education, 1)
	assert.Equal(t, "Doctorate", education[0].Degree)
	assert.Equal(t, "", education[0].Institution, "院校行缺失时保持为空")
}

func TestExtractEducation_NoSectionMarker(t *testing.T) {
	education := ExtractEducation("Bachelor of Science, 2018", nil)
	require.NotNil(t, education)
	assert.Empty(t, education, "无education标记时不做全局扫描")
}
