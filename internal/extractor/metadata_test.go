package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-nlp-go/internal/types"
)

func intPtr(v int) *int { return &v }

func TestAggregateMetadata(t *testing.T) {
	experience := []types.ExperienceEntry{
		{Title: "Software Engineer", DurationMonths: intPtr(41)},
		{Title: "Backend Developer", DurationMonths: intPtr(23)},
		{Title: "", DurationMonths: nil},
	}

	metadata := AggregateMetadata(experience)

	assert.Equal(t, 5.3, metadata.TotalExperienceYears, "64个月换算为5.3年（1位小数）")
	assert.Equal(t, types.SenioritySenior, metadata.SeniorityLevel)
	assert.Equal(t, []string{"Software Engineer", "Backend Developer"}, metadata.JobTitles, "空title不收集")
	assert.Equal(t, []string{}, metadata.Industries)
}

func TestAggregateMetadata_SeniorityBands(t *testing.T) {
	tests := []struct {
		name   string
		months int
		years  float64
		level  types.SeniorityLevel
	}{
		{"不足2年为Entry", 23, 1.9, types.SeniorityEntry},
		{"恰好2年为Mid-Level", 24, 2.0, types.SeniorityMid},
		{"恰好5年为Senior", 60, 5.0, types.SenioritySenior},
		{"恰好10年为Lead", 120, 10.0, types.SeniorityLead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := AggregateMetadata([]types.ExperienceEntry{
				{Title: "Engineer", DurationMonths: intPtr(tt.months)},
			})
			assert.Equal(t, tt.years, metadata.TotalExperienceYears)
			assert.Equal(t, tt.level, metadata.SeniorityLevel)
		})
	}
}

func TestAggregateMetadata_Empty(t *testing.T) {
	metadata := AggregateMetadata(nil)

	assert.Equal(t, 0.0, metadata.TotalExperienceYears)
	assert.Equal(t, types.SeniorityEntry, metadata.SeniorityLevel)
	assert.Equal(t, []string{}, metadata.JobTitles)
	assert.Equal(t, []string{}, metadata.Industries)
}
