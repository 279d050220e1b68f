package extractor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-nlp-go/internal/nlp"
	"resume-nlp-go/internal/types"
)

// sampleResumeText 覆盖全部章节类型的端到端输入
var sampleResumeText = strings.Join([]string{
	"John Doe",
	"john.doe@example.com",
	"(650) 253-0000",
	"linkedin.com/in/johndoe",
	"",
	"Summary",
	"Backend engineer focused on distributed systems and developer tooling.",
	"",
	"Work Experience",
	"Software Engineer at Acme Corp | Jan 2020 - Present",
	"• Built payment microservices in Go",
	"Backend Developer at Initech | Jan 2018 - Dec 2019",
	"• Maintained the billing API",
	"",
	"Education",
	"Bachelor of Science in Computer Science, 2017",
	"Stanford University",
	"",
	"Skills",
	"Go, Python, Docker, PostgreSQL",
	"",
	"Certifications",
	"• AWS Certified Developer, 2021",
	"",
	"Languages",
	"English - Native",
}, "\n")

func testBuilder() *ProfileBuilder {
	ner := &stubRecognizer{entities: []nlp.Entity{
		{Text: "John Doe", Label: nlp.LabelPerson},
		{Text: "Mountain View", Label: nlp.LabelGPE},
	}}
	clock := func() time.Time {
		return time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return NewProfileBuilder(ner, WithClock(clock))
}

func TestProfileBuilder_Build(t *testing.T) {
	doc := types.RawDocument{
		Text:     sampleResumeText,
		Sections: DetectSections(sampleResumeText),
	}

	profile, err := testBuilder().Build(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, profile)

	// 联系方式
	require.NotNil(t, profile.ContactInfo.Name)
	assert.Equal(t, "John Doe", *profile.ContactInfo.Name)
	require.NotNil(t, profile.ContactInfo.Email)
	assert.Equal(t, "john.doe@example.com", *profile.ContactInfo.Email)
	require.NotNil(t, profile.ContactInfo.Phone)
	assert.Equal(t, "+1 650-253-0000", *profile.ContactInfo.Phone)
	require.NotNil(t, profile.ContactInfo.Location)
	assert.Equal(t, "Mountain View", *profile.ContactInfo.Location)

	// 个人总结
	require.NotNil(t, profile.Summary)
	assert.Equal(t, "Backend engineer focused on distributed systems and developer tooling.", *profile.Summary)

	// 工作经历
	require.Len(t, profile.Experience, 2)
	assert.Equal(t, "Software Engineer", profile.Experience[0].Title)
	assert.Equal(t, "Acme Corp", profile.Experience[0].Company)
	require.NotNil(t, profile.Experience[0].DurationMonths)
	assert.Equal(t, 41, *profile.Experience[0].DurationMonths)
	assert.Equal(t, "Backend Developer", profile.Experience[1].Title)
	require.NotNil(t, profile.Experience[1].DurationMonths)
	assert.Equal(t, 23, *profile.Experience[1].DurationMonths)

	// 教育经历
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "Bachelor's Degree", profile.Education[0].Degree)
	assert.Equal(t, "Stanford University", profile.Education[0].Institution)

	// 技能（Python在本体中先于Go声明，桶内顺序随本体）
	assert.Equal(t, []string{"Python", "Go"}, profile.Skills.ProgrammingLanguages)
	assert.True(t, profile.Skills.Contains(types.CategoryTools, "Docker"))
	assert.True(t, profile.Skills.Contains(types.CategoryDatabases, "PostgreSQL"))

	// 证书与语言
	require.Len(t, profile.Certifications, 1)
	assert.Equal(t, "AWS Certified Developer, 2021", profile.Certifications[0].Name)
	require.Len(t, profile.Languages, 1)
	assert.Equal(t, "English", profile.Languages[0].Language)

	// 元数据：64个月=5.3年
	assert.Equal(t, 5.3, profile.Metadata.TotalExperienceYears)
	assert.Equal(t, types.SenioritySenior, profile.Metadata.SeniorityLevel)
	assert.Equal(t, []string{"Software Engineer", "Backend Developer"}, profile.Metadata.JobTitles)

	assert.Equal(t, "2023-06-01T12:00:00Z", profile.ExtractedAt)
	assert.Equal(t, DefaultModelVersion, profile.ModelVersion)
}

func TestProfileBuilder_Deterministic(t *testing.T) {
	builder := testBuilder()
	doc := types.RawDocument{
		Text:     sampleResumeText,
		Sections: DetectSections(sampleResumeText),
	}

	first, err := builder.Build(context.Background(), doc)
	require.NoError(t, err)
	second, err := builder.Build(context.Background(), doc)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "相同输入必须产生字节一致的输出")
}

func TestProfileBuilder_EmptyDocument(t *testing.T) {
	profile, err := testBuilder().Build(context.Background(), types.RawDocument{Text: "hello world"})
	require.NoError(t, err)

	assert.Nil(t, profile.Summary)
	assert.Empty(t, profile.Experience)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Certifications)
	assert.Empty(t, profile.Languages)
	assert.Equal(t, 0.0, profile.Metadata.TotalExperienceYears)
	assert.Equal(t, types.SeniorityEntry, profile.Metadata.SeniorityLevel)

	// 空集合序列化为[]而不是null
	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"experience":null`)
	assert.Contains(t, string(raw), `"experience":[]`)
	assert.Contains(t, string(raw), `"programming_languages":[]`)
}

func TestProfileBuilder_ModelVersionOption(t *testing.T) {
	builder := NewProfileBuilder(&stubRecognizer{}, WithModelVersion("nlp-v2.0.0"))
	profile, err := builder.Build(context.Background(), types.RawDocument{Text: ""})
	require.NoError(t, err)
	assert.Equal(t, "nlp-v2.0.0", profile.ModelVersion)
}
