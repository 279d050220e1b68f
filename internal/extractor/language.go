package extractor

import (
	"strings"

	"resume-nlp-go/internal/types"
)

// commonLanguages 固定的常见语言列表，按此顺序输出
var commonLanguages = []string{
	"english", "spanish", "french", "german", "chinese", "japanese",
	"korean", "arabic", "hindi", "portuguese", "russian", "italian",
}

// ExtractLanguages 提取语言能力。仅使用languages章节区间，无标记返回空列表。
// 熟练程度在整个区间内扫描关键词推断，不局限于语言名附近。
func ExtractLanguages(text string, sections []types.SectionMarker) []types.LanguageProficiency {
	languages := []types.LanguageProficiency{}

	spanText, ok := sectionText(text, sections, types.SectionLanguages)
	if !ok {
		return languages
	}
	spanLower := strings.ToLower(spanText)

	for _, language := range commonLanguages {
		if !strings.Contains(spanLower, language) {
			continue
		}
		languages = append(languages, types.LanguageProficiency{
			Language:    strings.ToUpper(language[:1]) + language[1:],
			Proficiency: inferProficiency(spanLower),
		})
	}
	return languages
}

// inferProficiency 按优先级在区间内匹配熟练程度关键词
func inferProficiency(spanLower string) string {
	switch {
	case strings.Contains(spanLower, "native") || strings.Contains(spanLower, "fluent"):
		return "Native/Fluent"
	case strings.Contains(spanLower, "professional"):
		return "Professional"
	case strings.Contains(spanLower, "basic") || strings.Contains(spanLower, "elementary"):
		return "Basic"
	default:
		return "Unknown"
	}
}
