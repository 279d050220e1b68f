package extractor

import (
	"strings"

	"resume-nlp-go/internal/types"
)

// 摘要最多取标题后的前5个内容行
const maxSummaryLines = 5

// 摘要最短长度，过短视为无有效摘要
const minSummaryLength = 20

// ExtractSummary 提取个人总结：summary章节标题行之后的内容行以空格拼接。
// 无标记或拼接结果过短时返回nil。
func ExtractSummary(text string, sections []types.SectionMarker) *string {
	spanText, ok := sectionText(text, sections, types.SectionSummary)
	if !ok {
		return nil
	}

	lines := strings.Split(spanText, "\n")
	if len(lines) <= 1 {
		return nil
	}

	var contentLines []string
	for _, rawLine := range lines[1:] {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		contentLines = append(contentLines, line)
		if len(contentLines) == maxSummaryLines {
			break
		}
	}

	summary := strings.Join(contentLines, " ")
	if len(summary) <= minSummaryLength {
		return nil
	}
	return &summary
}
