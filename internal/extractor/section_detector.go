package extractor

import (
	"sort"
	"strings"

	"resume-nlp-go/internal/types"
)

// 标题行长度上限，超过视为正文句子而不是章节标题
const maxHeaderLineLength = 50

// sectionHeaderEntry 某一章节类型的标题短语变体（按优先级排列）
type sectionHeaderEntry struct {
	Type    types.SectionType
	Phrases []string
}

// sectionHeaderTable 各章节类型的常见标题短语表
// 使用有序切片而不是map，保证扫描顺序确定
var sectionHeaderTable = []sectionHeaderEntry{
	{types.SectionContact, []string{"contact", "contact information", "personal information", "personal details"}},
	{types.SectionSummary, []string{"summary", "profile", "objective", "about me", "professional summary"}},
	{types.SectionExperience, []string{"experience", "work experience", "employment", "work history", "professional experience"}},
	{types.SectionEducation, []string{"education", "academic", "qualifications"}},
	{types.SectionSkills, []string{"skills", "technical skills", "competencies", "expertise", "core competencies"}},
	{types.SectionCertifications, []string{"certifications", "certificates", "licenses", "professional certifications"}},
	{types.SectionProjects, []string{"projects", "key projects", "notable projects"}},
	{types.SectionAwards, []string{"awards", "honors", "achievements", "recognition"}},
	{types.SectionPublications, []string{"publications", "papers", "research"}},
	{types.SectionLanguages, []string{"languages", "language skills"}},
}

// DetectSections 扫描全文的每一行，识别章节标题行并输出按位置升序排列的章节标记。
// 同一类型的多个标记不做去重。
//
// Position 取"小写标题行文本在小写全文中首次出现的偏移"。标题文本若在更早的
// 位置重复出现，得到的偏移会偏前；上游解析服务即如此计算，下游区间切分依赖
// 该行为，保持不变。
func DetectSections(text string) []types.SectionMarker {
	textLower := strings.ToLower(text)
	lines := strings.Split(text, "\n")

	var markers []types.SectionMarker
	for _, entry := range sectionHeaderTable {
		for i, line := range lines {
			lineLower := strings.ToLower(strings.TrimSpace(line))
			for _, phrase := range entry.Phrases {
				if strings.Contains(lineLower, phrase) && len(lineLower) < maxHeaderLineLength {
					markers = append(markers, types.SectionMarker{
						Type:       entry.Type,
						Header:     strings.TrimSpace(line),
						LineNumber: i,
						Position:   strings.Index(textLower, lineLower),
					})
					break
				}
			}
		}
	}

	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Position < markers[j].Position
	})
	return markers
}
