package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"resume-nlp-go/internal/types"
)

// degreeKeywords 学位条目标记关键字。
// 使用无锚定子串匹配，与上游行为保持一致；ma/bs/ba这类短token会在无关单词
// 内误命中，属于已知代价。
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "mba", "bs", "ms", "ba", "ma",
	"b.s.", "m.s.", "b.a.", "m.a.", "ph.d.",
}

// degreeMappingEntry 关键字到学位标签的映射项
type degreeMappingEntry struct {
	keyword string
	label   string
}

// degreeMapping 学位解析表，表序即优先级，首个命中关键字生效
var degreeMapping = []degreeMappingEntry{
	{"bachelor", "Bachelor's Degree"},
	{"master", "Master's Degree"},
	{"phd", "Ph.D."},
	{"doctorate", "Doctorate"},
	{"mba", "MBA"},
	{"bs", "Bachelor of Science"},
	{"ms", "Master of Science"},
	{"ba", "Bachelor of Arts"},
	{"ma", "Master of Arts"},
}

// 教育章节中跳过的标题词
var genericEducationHeaders = map[string]bool{
	"education": true,
	"academic":  true,
}

var gpaRe = regexp.MustCompile(`gpa[:\s]+(\d+\.?\d*)`)

// ExtractEducation 提取教育经历。仅使用education章节区间，无标记返回空列表。
func ExtractEducation(text string, sections []types.SectionMarker) []types.EducationEntry {
	education := []types.EducationEntry{}

	spanText, ok := sectionText(text, sections, types.SectionEducation)
	if !ok {
		return education
	}

	var current *types.EducationEntry
	for _, rawLine := range strings.Split(spanText, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || genericEducationHeaders[strings.ToLower(line)] {
			continue
		}

		lineLower := strings.ToLower(line)
		if containsDegreeKeyword(lineLower) {
			if current != nil {
				education = append(education, *current)
			}
			current = &types.EducationEntry{
				Degree: resolveDegree(line),
			}
			if years := bareYearRe.FindAllString(line, -1); len(years) > 0 {
				if year, err := strconv.Atoi(years[len(years)-1]); err == nil {
					current.GraduationYear = &year
				}
			}
			if m := gpaRe.FindStringSubmatch(lineLower); m != nil {
				if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
					current.GPA = &gpa
				}
			}
		} else if current != nil && current.Institution == "" {
			// 标记行后的首个普通行视为院校名称，单行为限
			current.Institution = line
		}
	}

	if current != nil {
		education = append(education, *current)
	}
	return education
}

func containsDegreeKeyword(lineLower string) bool {
	for _, keyword := range degreeKeywords {
		if strings.Contains(lineLower, keyword) {
			return true
		}
	}
	return false
}

// resolveDegree 按表序解析学位标签；全部未命中时取首个逗号前的文本
func resolveDegree(line string) string {
	lineLower := strings.ToLower(line)
	for _, entry := range degreeMapping {
		if strings.Contains(lineLower, entry.keyword) {
			return entry.label
		}
	}
	return strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
}
