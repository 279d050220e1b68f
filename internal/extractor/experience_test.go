package extractor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试统一使用固定时钟，保证"Present"时长可断言
func fixedClockExtractor() *ExperienceExtractor {
	clock := func() time.Time {
		return time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return NewExperienceExtractor(NewDurationCalculatorWithClock(clock))
}

func TestExperienceExtractor_MarkerLineWithAtSeparator(t *testing.T) {
	text := strings.Join([]string{
		"Work Experience",
		"Software Engineer at Acme Corp | Jan 2020 - Present",
		"• Developed microservices in Go",
		"• Led migration to Kubernetes",
		"",
		"Education",
		"Stanford University",
	}, "\n")

	entries := fixedClockExtractor().Extract(text, DetectSections(text))
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Software Engineer", entry.Title)
	assert.Equal(t, "Acme Corp", entry.Company)
	require.NotNil(t, entry.StartDate)
	assert.Equal(t, "Jan 2020", *entry.StartDate)
	assert.Equal(t, "Present", entry.EndDate)
	require.NotNil(t, entry.DurationMonths)
	assert.Equal(t, 38, *entry.DurationMonths, "2020年1月到2023年3月为38个月")
	assert.Equal(t, []string{"Developed microservices in Go", "Led migration to Kubernetes"}, entry.Description)
}

func TestExperienceExtractor_MultipleEntries(t *testing.T) {
	text := strings.Join([]string{
		"Work Experience",
		"Senior Engineer - Globex | 2019 - 2021",
		"- Shipped the billing platform",
		"  and its reporting pipeline",
		"Backend Developer at Initech | Jan 2017 - Dec 2018",
		"1. Maintained the legacy API",
	}, "\n")

	entries := fixedClockExtractor().Extract(text, DetectSections(text))
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Senior Engineer", first.Title)
	assert.Equal(t, "Globex", first.Company)
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2019", *first.StartDate)
	assert.Equal(t, "2021", first.EndDate)
	require.Len(t, first.Description, 1)
	assert.Equal(t, "Shipped the billing platform and its reporting pipeline", first.Description[0], "非符号行拼接到最近一条描述")

	second := entries[1]
	assert.Equal(t, "Backend Developer", second.Title)
	assert.Equal(t, "Initech", second.Company)
	assert.Equal(t, "Dec 2018", second.EndDate)
	require.NotNil(t, second.DurationMonths)
	assert.Equal(t, 23, *second.DurationMonths)
	assert.Equal(t, []string{"Maintained the legacy API"}, second.Description, "序号前缀同样剥离")
}

func TestExperienceExtractor_TitleCompanyFromFollowingLines(t *testing.T) {
	// 标记行只有日期时，后续普通行依次补职位与公司
	text := strings.Join([]string{
		"Experience",
		"2018 - 2020",
		"Backend Developer",
		"Initech",
	}, "\n")

	entries := fixedClockExtractor().Extract(text, DetectSections(text))
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Backend Developer", entry.Title)
	assert.Equal(t, "Initech", entry.Company)
	require.NotNil(t, entry.DurationMonths)
	assert.Equal(t, 24, *entry.DurationMonths)
}

func TestExperienceExtractor_FallbackSpanWithoutMarkers(t *testing.T) {
	text := strings.Join([]string{
		"experience",
		"Platform Engineer at Hooli | 2016 - 2019",
		"• Ran the deployment tooling",
		"",
		"education",
		"Reed College",
	}, "\n")

	// 不提供章节标记，强制走关键字回退
	entries := fixedClockExtractor().Extract(text, nil)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Platform Engineer", entry.Title)
	assert.Equal(t, "Hooli", entry.Company)
	assert.Equal(t, []string{"Ran the deployment tooling"}, entry.Description, "回退区间止于education标题")
}

func TestExperienceExtractor_NoSpan(t *testing.T) {
	entries := fixedClockExtractor().Extract("just some unrelated text", nil)
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}
