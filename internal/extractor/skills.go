package extractor

import (
	"resume-nlp-go/internal/types"
)

// ExtractSkills 基于技能本体的技能提取。
// 有skills章节时只在该区间匹配，否则扫描全文。
// 命中即加入类别桶（二值判断，无置信度），桶内顺序为本体声明顺序。
func ExtractSkills(text string, sections []types.SectionMarker) types.SkillSet {
	skills := types.NewSkillSet()

	spanText, ok := sectionText(text, sections, types.SectionSkills)
	if !ok {
		spanText = text
	}

	for i, entry := range skillOntology {
		if skillAliasRegexps[i].MatchString(spanText) {
			skills.Add(entry.Category, entry.Canonical)
		}
	}
	return skills
}
