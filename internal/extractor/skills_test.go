package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-nlp-go/internal/types"
)

func TestExtractSkills_FullTextFallback(t *testing.T) {
	skills := ExtractSkills("I used Python and ReactJS daily", nil)

	assert.True(t, skills.Contains(types.CategoryProgrammingLanguages, "Python"))
	assert.True(t, skills.Contains(types.CategoryFrameworks, "React"), "别名reactjs应命中规范名React")
	assert.Empty(t, skills.Databases)
}

func TestExtractSkills_SectionSpanOnly(t *testing.T) {
	text := strings.Join([]string{
		"Summary",
		"I wrote Python services for years.",
		"",
		"Skills",
		"Go, Docker, PostgreSQL",
	}, "\n")

	skills := ExtractSkills(text, DetectSections(text))

	assert.True(t, skills.Contains(types.CategoryProgrammingLanguages, "Go"))
	assert.True(t, skills.Contains(types.CategoryTools, "Docker"))
	assert.True(t, skills.Contains(types.CategoryDatabases, "PostgreSQL"))
	assert.False(t, skills.Contains(types.CategoryProgrammingLanguages, "Python"), "skills章节存在时不扫描章节外文本")
}

func TestExtractSkills_WordBoundary(t *testing.T) {
	skills := ExtractSkills("I am going to Jakarta", nil)

	assert.False(t, skills.Contains(types.CategoryProgrammingLanguages, "Go"), "going不应命中go")
	assert.False(t, skills.Contains(types.CategoryProgrammingLanguages, "Java"), "Jakarta不应命中java")
}

func TestExtractSkills_CPlusPlusAlias(t *testing.T) {
	skills := ExtractSkills("Wrote cpp drivers", nil)
	assert.True(t, skills.Contains(types.CategoryProgrammingLanguages, "C++"))

	// "+"与空格之间不构成词边界，裸"C++"不会命中，只能依赖cpp别名
	skills = ExtractSkills("Wrote C++ drivers", nil)
	assert.False(t, skills.Contains(types.CategoryProgrammingLanguages, "C++"))
}

func TestExtractSkills_EmptyBucketsNotNil(t *testing.T) {
	skills := ExtractSkills("nothing relevant", nil)

	assert.NotNil(t, skills.ProgrammingLanguages)
	assert.NotNil(t, skills.Frameworks)
	assert.NotNil(t, skills.Other)
	assert.Empty(t, skills.ProgrammingLanguages)
}
