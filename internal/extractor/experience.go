package extractor

import (
	"regexp"
	"strings"

	"resume-nlp-go/internal/types"
)

// 工作经历章节缺失时手工搜索的起始/终止关键字（按优先级）
var (
	experienceStartKeywords = []string{"work experience", "professional experience", "employment history", "experience", "employment"}
	experienceEndKeywords   = []string{"education", "skills", "projects", "certifications"}
)

// 工作经历区间内需要跳过的泛用标题词
var genericExperienceHeaders = map[string]bool{
	"experience":              true,
	"work experience":         true,
	"employment":              true,
	"professional experience": true,
}

// dateRangeMatcher 带名称的日期区间匹配器
type dateRangeMatcher struct {
	name string
	re   *regexp.Regexp
}

// dateRangeMatchers 条目标记行的日期区间模式，按此优先级逐个尝试，
// 首个命中即生效。顺序与输出语义绑定，不可调换。
var dateRangeMatchers = []dateRangeMatcher{
	{"month-year to month-year", regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\s*[-–]\s*(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`)},
	{"month-year to present", regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\s*[-–]\s*(Present|Current|Now)`)},
	{"year to year", regexp.MustCompile(`\b(19|20)\d{2}\s*[-–]\s*(19|20)\d{2}\b`)},
	{"year to present", regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–]\s*(Present|Current|Now)`)},
	{"parenthesized year range", regexp.MustCompile(`(?i)\(?(19|20)\d{2}\s*[-–]\s*((19|20)\d{2}|Present|Current)\)?`)},
}

var (
	// 删除行内日期部分：从首个月份名或年份起到行尾
	stripMonthDateRe = regexp.MustCompile(`(?i)\(?(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}.*`)
	stripYearDateRe  = regexp.MustCompile(`\(?(19|20)\d{2}.*`)
	// 职位/公司分隔符 " at "（忽略大小写）
	titleAtSplitRe = regexp.MustCompile(`(?i)\s+at\s+`)
	// 序号式描述前缀，如 "1." / "2)"
	ordinalPrefixRe = regexp.MustCompile(`^\d+[\.\)]`)
)

// 描述行的项目符号字符及序号前缀的剥离字符集
const bulletTrimCutset = "•-*○●0123456789.) \t"

// ExperienceExtractor 工作经历提取器：对章节区间做单遍有状态行分类
type ExperienceExtractor struct {
	duration *DurationCalculator
}

// NewExperienceExtractor 创建工作经历提取器
func NewExperienceExtractor(duration *DurationCalculator) *ExperienceExtractor {
	return &ExperienceExtractor{duration: duration}
}

// Extract 提取按出现顺序排列的工作经历条目。
// 有experience标记时使用其区间；没有时按关键字手工搜索区间；
// 两者都失败返回空列表。
func (e *ExperienceExtractor) Extract(text string, sections []types.SectionMarker) []types.ExperienceEntry {
	spanText, ok := sectionText(text, sections, types.SectionExperience)
	if !ok {
		spanText, ok = fallbackExperienceSpan(text)
		if !ok {
			return []types.ExperienceEntry{}
		}
	}

	entries := e.classifyLines(spanText)

	for i := range entries {
		start := ""
		if entries[i].StartDate != nil {
			start = *entries[i].StartDate
		}
		entries[i].DurationMonths = e.duration.Months(start, entries[i].EndDate)
	}
	return entries
}

// fallbackExperienceSpan 无章节标记时的回退：在小写全文中按关键字优先级
// 查找整行匹配的起始位置，再在其后查找终止关键字整行
func fallbackExperienceSpan(text string) (string, bool) {
	textLower := strings.ToLower(text)

	start := -1
	for _, keyword := range experienceStartKeywords {
		re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(keyword) + `\s*$`)
		if loc := re.FindStringIndex(textLower); loc != nil {
			start = loc[0]
			break
		}
	}
	if start == -1 {
		return "", false
	}

	end := len(text)
	for _, keyword := range experienceEndKeywords {
		re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(keyword) + `\s*$`)
		if loc := re.FindStringIndex(textLower[start:]); loc != nil {
			end = start + loc[0]
			break
		}
	}
	return text[start:end], true
}

// classifyLines 单遍扫描区间内的行，维护一个"当前条目"槽位。
// 日期区间行触发开新条目；其余行按四级优先级归入描述/职位/公司/续行。
func (e *ExperienceExtractor) classifyLines(spanText string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	var current *types.ExperienceEntry

	for _, rawLine := range strings.Split(spanText, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || genericExperienceHeaders[strings.ToLower(line)] {
			continue
		}

		if isEntryMarkerLine(line) {
			if current != nil {
				entries = append(entries, *current)
			}
			current = newEntryFromMarkerLine(line)
			continue
		}

		if current == nil {
			continue
		}

		switch {
		case hasBulletPrefix(line):
			clean := strings.TrimLeft(line, bulletTrimCutset)
			if clean != "" {
				current.Description = append(current.Description, clean)
			}
		case current.Company == "" && current.Title == "":
			current.Title = line
		case current.Company == "":
			current.Company = line
		default:
			// 续行拼接到最近一条描述
			if len(current.Description) > 0 {
				current.Description[len(current.Description)-1] += " " + line
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// isEntryMarkerLine 按固定优先级尝试各日期区间模式，任一命中即视为条目起始行
func isEntryMarkerLine(line string) bool {
	for _, matcher := range dateRangeMatchers {
		if matcher.re.MatchString(line) {
			return true
		}
	}
	return false
}

// newEntryFromMarkerLine 从条目起始行构造新条目：提取日期、剥离日期子串、
// 按分隔符优先级拆出职位与公司
func newEntryFromMarkerLine(line string) *types.ExperienceEntry {
	entry := &types.ExperienceEntry{
		EndDate:      datePresent,
		Description:  []string{},
		Technologies: []string{},
	}

	dates := ExtractDates(line)
	if len(dates) > 0 {
		start := dates[0]
		entry.StartDate = &start
	}
	if len(dates) > 1 {
		entry.EndDate = dates[1]
	}

	remainder := stripMonthDateRe.ReplaceAllString(line, "")
	remainder = stripYearDateRe.ReplaceAllString(remainder, "")
	remainder = strings.Trim(remainder, "|-()\t ")

	switch {
	case strings.Contains(strings.ToLower(remainder), " at "):
		parts := titleAtSplitRe.Split(remainder, 2)
		entry.Title = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			entry.Company = strings.TrimSpace(parts[1])
		}
	case strings.Contains(remainder, " - ") && !strings.Contains(remainder, "|"):
		parts := strings.SplitN(remainder, " - ", 2)
		entry.Title = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			entry.Company = strings.TrimSpace(parts[1])
		}
	case strings.Contains(remainder, "|"):
		parts := strings.SplitN(remainder, "|", 2)
		entry.Title = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			entry.Company = strings.TrimSpace(parts[1])
		}
	default:
		entry.Title = strings.TrimSpace(remainder)
	}
	return entry
}

// hasBulletPrefix 判断是否为项目符号或序号开头的描述行
func hasBulletPrefix(line string) bool {
	for _, glyph := range []string{"•", "-", "*", "○", "●"} {
		if strings.HasPrefix(line, glyph) {
			return true
		}
	}
	return ordinalPrefixRe.MatchString(line)
}
