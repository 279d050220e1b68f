package extractor

import (
	"resume-nlp-go/internal/types"
)

// findMarker 返回切片顺序中第一个指定类型的标记
func findMarker(sections []types.SectionMarker, typ types.SectionType) (types.SectionMarker, bool) {
	for _, s := range sections {
		if s.Type == typ {
			return s, true
		}
	}
	return types.SectionMarker{}, false
}

// spanEnd 返回从start开始的章节区间终点：所有标记中大于start的最小位置；
// 没有则取文档末尾
func spanEnd(text string, sections []types.SectionMarker, start int) int {
	end := len(text)
	for _, s := range sections {
		if s.Position > start && s.Position < end {
			end = s.Position
		}
	}
	return end
}

// sectionText 返回指定类型章节的文本区间（含标题行）。
// 类型无标记时返回 ("", false)，由调用方执行各自的回退策略。
func sectionText(text string, sections []types.SectionMarker, typ types.SectionType) (string, bool) {
	marker, ok := findMarker(sections, typ)
	if !ok {
		return "", false
	}
	start := clamp(marker.Position, 0, len(text))
	end := clamp(spanEnd(text, sections, marker.Position), start, len(text))
	return text[start:end], true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
