package extractor

import (
	"math"

	"resume-nlp-go/internal/types"
)

// 资历分级的年限边界（上界不含）
const (
	entryYearsUpperBound  = 2.0
	midYearsUpperBound    = 5.0
	seniorYearsUpperBound = 10.0
)

// AggregateMetadata 由工作经历列表推导元数据：
// 总年限为各条目月数之和除以12，保留1位小数；资历级别按年限分档；
// 职位列表按经历顺序收集非空title。
func AggregateMetadata(experience []types.ExperienceEntry) types.Metadata {
	totalMonths := 0
	for _, entry := range experience {
		if entry.DurationMonths != nil {
			totalMonths += *entry.DurationMonths
		}
	}
	years := math.Round(float64(totalMonths)/12.0*10) / 10

	jobTitles := []string{}
	for _, entry := range experience {
		if entry.Title != "" {
			jobTitles = append(jobTitles, entry.Title)
		}
	}

	return types.Metadata{
		TotalExperienceYears: years,
		SeniorityLevel:       seniorityFor(years),
		Industries:           []string{},
		JobTitles:            jobTitles,
	}
}

// seniorityFor 年限到资历级别的分档。边界值归入更高一档：
// 恰好2.0为Mid-Level，5.0为Senior，10.0为Lead/Principal。
func seniorityFor(years float64) types.SeniorityLevel {
	switch {
	case years < entryYearsUpperBound:
		return types.SeniorityEntry
	case years < midYearsUpperBound:
		return types.SeniorityMid
	case years < seniorYearsUpperBound:
		return types.SenioritySenior
	default:
		return types.SeniorityLead
	}
}
