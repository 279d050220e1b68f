package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// 占位日期值
const (
	dateUnknown = "Unknown"
	datePresent = "Present"
)

var (
	// 月份+年份，完整或3字母缩写
	monthYearRe = regexp.MustCompile(`(?i)\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+(\d{4})\b`)
	// 裸四位年份，仅接受19xx/20xx
	bareYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	// "至今"类词汇
	presentRe = regexp.MustCompile(`(?i)\b(present|current|now|ongoing)\b`)
)

// capitalizeMonth 月份首字母大写，其余小写，如 "JANUARY" -> "January"
func capitalizeMonth(month string) string {
	if month == "" {
		return month
	}
	return strings.ToUpper(month[:1]) + strings.ToLower(month[1:])
}

// ExtractDates 从单行文本中按优先级提取最多2个日期token。
// 优先收集"月份 年份"；一个都没有时回退到裸年份（取前两个）；
// 行内含present/current/now/ongoing时补"Present"；仍为空则返回["Unknown"]。
func ExtractDates(line string) []string {
	var dates []string

	for _, m := range monthYearRe.FindAllStringSubmatch(line, -1) {
		dates = append(dates, capitalizeMonth(m[1])+" "+m[2])
	}

	if len(dates) == 0 {
		years := bareYearRe.FindAllString(line, -1)
		if len(years) > 2 {
			years = years[:2]
		}
		dates = years
	}

	if presentRe.MatchString(line) {
		switch len(dates) {
		case 1:
			dates = append(dates, datePresent)
		case 0:
			dates = []string{dateUnknown, datePresent}
		}
	}

	if len(dates) == 0 {
		dates = []string{dateUnknown}
	}
	if len(dates) > 2 {
		dates = dates[:2]
	}
	return dates
}

// DurationCalculator 将(起始,结束)日期对换算为整月数。
// 时钟可注入以便测试"Present"语义。
type DurationCalculator struct {
	now func() time.Time
}

// NewDurationCalculator 创建使用系统时钟的时长计算器
func NewDurationCalculator() *DurationCalculator {
	return &DurationCalculator{now: time.Now}
}

// NewDurationCalculatorWithClock 创建使用指定时钟的时长计算器
func NewDurationCalculatorWithClock(now func() time.Time) *DurationCalculator {
	return &DurationCalculator{now: now}
}

// 提取器输出的已知日期格式，优先直接解析，自由格式再交给dateparse
var knownDateLayouts = []string{"Jan 2006", "January 2006", "2006"}

// parseDate 解析日期字符串，失败返回false
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range knownDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Months 计算起止日期间的整月数，下限为0。
// start_date缺失或不可解析返回nil；end_date缺失或为present/current取当前时间，
// 否则同样解析，失败返回nil。
func (d *DurationCalculator) Months(startDate, endDate string) *int {
	if startDate == "" {
		return nil
	}
	start, ok := parseDate(startDate)
	if !ok {
		return nil
	}

	var end time.Time
	endLower := strings.ToLower(strings.TrimSpace(endDate))
	if endDate == "" || endLower == "present" || endLower == "current" {
		end = d.now()
	} else {
		end, ok = parseDate(endDate)
		if !ok {
			return nil
		}
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		months = 0
	}
	return &months
}
