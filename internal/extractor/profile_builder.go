package extractor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"resume-nlp-go/internal/constants"
	"resume-nlp-go/internal/nlp"
	"resume-nlp-go/internal/types"
)

// DefaultModelVersion 画像输出携带的模型版本标签
const DefaultModelVersion = constants.DefaultModelVersion

// ProfileBuilder 画像构建器：编排全部提取器，把原始文档变成候选人画像。
// 构建后为只读，可被并发调用。
type ProfileBuilder struct {
	ner          nlp.EntityRecognizer
	contact      *ContactExtractor
	experience   *ExperienceExtractor
	modelVersion string
	now          func() time.Time
	logger       zerolog.Logger
}

// BuilderOption 定义配置选项函数
type BuilderOption func(*ProfileBuilder)

// WithModelVersion 配置输出中的模型版本标签
func WithModelVersion(version string) BuilderOption {
	return func(b *ProfileBuilder) {
		b.modelVersion = version
	}
}

// WithClock 配置时钟，用于extracted_at时间戳和"Present"时长计算
func WithClock(now func() time.Time) BuilderOption {
	return func(b *ProfileBuilder) {
		b.now = now
	}
}

// WithBuilderLogger 配置日志记录器
func WithBuilderLogger(logger zerolog.Logger) BuilderOption {
	return func(b *ProfileBuilder) {
		b.logger = logger
	}
}

// NewProfileBuilder 创建画像构建器。ner为必需的注入能力，
// 必须在服务开始接收请求前完成初始化。
func NewProfileBuilder(ner nlp.EntityRecognizer, options ...BuilderOption) *ProfileBuilder {
	builder := &ProfileBuilder{
		ner:          ner,
		modelVersion: DefaultModelVersion,
		now:          time.Now,
		logger:       zerolog.Nop(),
	}
	for _, option := range options {
		option(builder)
	}
	builder.contact = NewContactExtractor(ner, builder.logger)
	builder.experience = NewExperienceExtractor(NewDurationCalculatorWithClock(builder.now))
	return builder
}

// sectionExtractorFn 章节级提取函数：读取文档与章节标记，把结果写入画像
type sectionExtractorFn func(b *ProfileBuilder, doc types.RawDocument, profile *types.CandidateProfile)

// sectionDispatchEntry 章节类型到提取函数的一条绑定
type sectionDispatchEntry struct {
	Type types.SectionType
	Fn   sectionExtractorFn
}

// sectionDispatch 章节类型到提取器的显式分发表。
// 按表序执行；各提取器自带区间回退策略，章节缺失时也会被调用。
var sectionDispatch = []sectionDispatchEntry{
	{types.SectionSummary, func(b *ProfileBuilder, doc types.RawDocument, p *types.CandidateProfile) {
		p.Summary = ExtractSummary(doc.Text, doc.Sections)
	}},
	{types.SectionExperience, func(b *ProfileBuilder, doc types.RawDocument, p *types.CandidateProfile) {
		p.Experience = b.experience.Extract(doc.Text, doc.Sections)
	}},
	{types.SectionEducation, func(b *ProfileBuilder, doc types.RawDocument, p *types.CandidateProfile) {
		p.Education = ExtractEducation(doc.Text, doc.Sections)
	}},
	{types.SectionSkills, func(b *ProfileBuilder, doc types.RawDocument, p *types.CandidateProfile) {
		p.Skills = ExtractSkills(doc.Text, doc.Sections)
	}},
	{types.SectionCertifications, func(b *ProfileBuilder, doc types.RawDocument, p *types.CandidateProfile) {
		p.Certifications = ExtractCertifications(doc.Text, doc.Sections)
	}},
	{types.SectionLanguages, func(b *ProfileBuilder, doc types.RawDocument, p *types.CandidateProfile) {
		p.Languages = ExtractLanguages(doc.Text, doc.Sections)
	}},
}

// Build 执行一次完整提取。联系方式等字段级失败在提取器内部消化；
// 这里返回的错误只代表不可恢复的意外失败。
func (b *ProfileBuilder) Build(ctx context.Context, doc types.RawDocument) (*types.CandidateProfile, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context不能为空")
	}

	b.logger.Info().
		Int("text_length", len(doc.Text)).
		Int("sections", len(doc.Sections)).
		Msg("开始提取候选人画像")

	profile := &types.CandidateProfile{
		Experience:     []types.ExperienceEntry{},
		Education:      []types.EducationEntry{},
		Skills:         types.NewSkillSet(),
		Certifications: []types.Certification{},
		Languages:      []types.LanguageProficiency{},
		ExtractedAt:    b.now().UTC().Format(time.RFC3339),
		ModelVersion:   b.modelVersion,
	}

	profile.ContactInfo = b.contact.Extract(ctx, doc.Text)

	for _, entry := range sectionDispatch {
		entry.Fn(b, doc, profile)
	}

	profile.Metadata = AggregateMetadata(profile.Experience)

	b.logger.Info().
		Int("experience_entries", len(profile.Experience)).
		Int("education_entries", len(profile.Education)).
		Float64("total_experience_years", profile.Metadata.TotalExperienceYears).
		Msg("候选人画像提取完成")

	return profile, nil
}
