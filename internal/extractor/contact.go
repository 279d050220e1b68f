package extractor

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
	"github.com/rs/zerolog"

	"resume-nlp-go/internal/nlp"
	"resume-nlp-go/internal/types"
)

// NER取材范围：姓名看文档开头500字节，地点看开头1000字节
const (
	nameScanLimit     = 500
	locationScanLimit = 1000
)

// 电话号码解析的默认区域提示
const defaultPhoneRegion = "US"

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinRe = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin\.com/pub/)([a-zA-Z0-9-]+)`)
	githubRe   = regexp.MustCompile(`(?i)(?:github\.com/)([a-zA-Z0-9-]+)`)
	// 电话号码候选片段：数字开头，允许分隔符，末位数字
	phoneCandidateRe = regexp.MustCompile(`\+?\(?\d[\d\-\(\)\.\s]{6,18}\d`)
)

// ContactExtractor 联系方式提取器。
// 姓名与地点依赖注入的NER能力；各字段相互独立，单个字段失败只记录日志。
type ContactExtractor struct {
	ner    nlp.EntityRecognizer
	logger zerolog.Logger
}

// NewContactExtractor 创建联系方式提取器
func NewContactExtractor(ner nlp.EntityRecognizer, logger zerolog.Logger) *ContactExtractor {
	return &ContactExtractor{ner: ner, logger: logger}
}

// Extract 从全文提取联系方式。任何字段无匹配均保持nil，不会中断提取。
func (e *ContactExtractor) Extract(ctx context.Context, text string) types.ContactInfo {
	contact := types.ContactInfo{}

	if m := emailRe.FindString(text); m != "" {
		contact.Email = &m
	}

	contact.Phone = e.extractPhone(text)

	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		url := fmt.Sprintf("https://linkedin.com/in/%s", m[1])
		contact.LinkedIn = &url
	}
	if m := githubRe.FindStringSubmatch(text); m != nil {
		url := fmt.Sprintf("https://github.com/%s", m[1])
		contact.GitHub = &url
	}

	contact.Name = e.firstEntity(ctx, headText(text, nameScanLimit), nlp.LabelPerson)
	contact.Location = e.firstEntity(ctx, headText(text, locationScanLimit), nlp.LabelGPE, nlp.LabelLoc)

	return contact
}

// extractPhone 在全文中寻找第一个可按US区域解析的有效号码，
// 按国际格式输出。解析失败不向上传播。
func (e *ContactExtractor) extractPhone(text string) *string {
	for _, candidate := range phoneCandidateRe.FindAllString(text, -1) {
		num, err := phonenumbers.Parse(candidate, defaultPhoneRegion)
		if err != nil {
			continue
		}
		if !phonenumbers.IsValidNumber(num) {
			continue
		}
		formatted := phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
		return &formatted
	}
	e.logger.Debug().Msg("未在文本中识别到有效电话号码")
	return nil
}

// firstEntity 对文本执行NER并返回第一个带指定标签的实体文本。
// NER调用失败只记录日志并返回nil。
func (e *ContactExtractor) firstEntity(ctx context.Context, text string, labels ...string) *string {
	entities, err := e.ner.Entities(ctx, text)
	if err != nil {
		e.logger.Warn().Err(err).Msg("NER调用失败，跳过相关字段")
		return nil
	}
	for _, entity := range entities {
		for _, label := range labels {
			if entity.Label == label {
				value := entity.Text
				return &value
			}
		}
	}
	return nil
}

// headText 取文本开头最多limit字节，并退避到rune边界避免截断多字节字符
func headText(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}
