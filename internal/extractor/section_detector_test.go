package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-nlp-go/internal/types"
)

func TestDetectSections_BasicHeaders(t *testing.T) {
	text := strings.Join([]string{
		"Summary",
		"A seasoned backend developer.",
		"",
		"Work Experience",
		"Software Engineer at Acme",
		"",
		"Education",
		"Stanford University",
	}, "\n")

	markers := DetectSections(text)
	require.Len(t, markers, 3, "应检测到3个章节标题")

	assert.Equal(t, types.SectionSummary, markers[0].Type)
	assert.Equal(t, "Summary", markers[0].Header)
	assert.Equal(t, 0, markers[0].LineNumber)

	assert.Equal(t, types.SectionExperience, markers[1].Type)
	assert.Equal(t, "Work Experience", markers[1].Header)
	assert.Equal(t, 3, markers[1].LineNumber)

	assert.Equal(t, types.SectionEducation, markers[2].Type)
	assert.Equal(t, 6, markers[2].LineNumber)

	for i := 1; i < len(markers); i++ {
		assert.Less(t, markers[i-1].Position, markers[i].Position, "标记必须按位置升序排列")
	}
}

func TestDetectSections_LongLineIsNotHeader(t *testing.T) {
	text := "This line mentions skills and is way longer than fifty characters in total\nSkills\nGo"

	markers := DetectSections(text)
	require.Len(t, markers, 1, "超长行不应被当作章节标题")
	assert.Equal(t, types.SectionSkills, markers[0].Type)
	assert.Equal(t, "Skills", markers[0].Header)
}

func TestDetectSections_DuplicateTypesKept(t *testing.T) {
	text := "Experience\nAcme Corp\n\nWork History\nInitech"

	markers := DetectSections(text)
	require.Len(t, markers, 2, "同类型的多个标题不做去重")
	assert.Equal(t, types.SectionExperience, markers[0].Type)
	assert.Equal(t, types.SectionExperience, markers[1].Type)
}

// 标题行文本在更早位置重复出现时，Position取首次出现的偏移。
// 该行为与上游解析服务一致，区间切分依赖它，不可改变。
func TestDetectSections_PositionIsFirstOccurrence(t *testing.T) {
	text := strings.Join([]string{
		"I have experience in Go.",
		"This filler sentence is deliberately longer than fifty characters in total.",
		"Experience",
		"Acme Corp",
	}, "\n")

	markers := DetectSections(text)
	require.Len(t, markers, 2)

	// 第一行本身含"experience"且短于50字符，也会被标记
	assert.Equal(t, 0, markers[0].LineNumber)
	assert.Equal(t, 0, markers[0].Position)

	// 第三行的标题文本"experience"首次出现在第一行内部
	assert.Equal(t, 2, markers[1].LineNumber)
	assert.Equal(t, strings.Index(strings.ToLower(text), "experience"), markers[1].Position)
	assert.Less(t, markers[1].Position, strings.Index(text, "Experience"), "偏移指向更早的重复出现处")
}

func TestDetectSections_NoHeaders(t *testing.T) {
	markers := DetectSections("just a paragraph of text without any headers at all")
	assert.Empty(t, markers)
}
