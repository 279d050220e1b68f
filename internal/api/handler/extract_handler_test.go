package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-nlp-go/internal/api/handler"
	"resume-nlp-go/internal/api/router"
	"resume-nlp-go/internal/config"
	"resume-nlp-go/internal/extractor"
	"resume-nlp-go/internal/nlp"
	"resume-nlp-go/internal/types"
)

// stubRecognizer 返回固定实体列表的NER桩实现
type stubRecognizer struct {
	entities []nlp.Entity
}

func (s *stubRecognizer) Entities(ctx context.Context, text string) ([]nlp.Entity, error) {
	return s.entities, nil
}

// newTestEngine 构建不依赖外部存储的测试引擎
func newTestEngine(t *testing.T) *server.Hertz {
	t.Helper()

	ner := &stubRecognizer{entities: []nlp.Entity{
		{Text: "John Doe", Label: nlp.LabelPerson},
	}}
	builder := extractor.NewProfileBuilder(ner)
	extractHandler := handler.NewExtractHandler(&config.Config{}, nil, builder)

	h := server.Default()
	router.RegisterRoutes(h, extractHandler)
	return h
}

// extractResponse 提取接口响应体
type extractResponse struct {
	Success       bool                    `json:"success"`
	ProfileUUID   string                  `json:"profile_uuid"`
	FromCache     bool                    `json:"from_cache"`
	ExtractedData *types.CandidateProfile `json:"extracted_data"`
}

// 验证缺少parsed_data的请求被拒绝并返回约定的错误信息
func TestExtractEndpoint_NoParsedData(t *testing.T) {
	h := newTestEngine(t)

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/extract",
		&ut.Body{Body: strings.NewReader(`{}`), Len: 2},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	require.Equal(t, http.StatusBadRequest, resp.Code, "缺少parsed_data应返回400")
	assert.Contains(t, resp.Body.String(), "No parsed_data provided", "错误信息与预期不符")
}

// 验证完整请求走通提取流程并返回结构化画像
func TestExtractEndpoint_Success(t *testing.T) {
	h := newTestEngine(t)

	resumeText := strings.Join([]string{
		"John Doe",
		"john.doe@example.com",
		"",
		"Skills",
		"Python, Go, Docker",
	}, "\n")

	reqBody, err := json.Marshal(map[string]interface{}{
		"submission_uuid": "sub-0001",
		"parsed_data": map[string]interface{}{
			"text": resumeText,
		},
	})
	require.NoError(t, err)

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/extract",
		&ut.Body{Body: strings.NewReader(string(reqBody)), Len: len(reqBody)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	require.Equal(t, http.StatusOK, resp.Code, "合法请求应返回200")

	var out extractResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), "响应体应为合法JSON")
	assert.True(t, out.Success, "success标志应为true")
	assert.NotEmpty(t, out.ProfileUUID, "应生成画像UUID")
	assert.False(t, out.FromCache, "无缓存时from_cache应为false")

	require.NotNil(t, out.ExtractedData, "应返回提取的画像")
	require.NotNil(t, out.ExtractedData.ContactInfo.Email, "应提取到邮箱")
	assert.Equal(t, "john.doe@example.com", *out.ExtractedData.ContactInfo.Email, "邮箱与预期不符")
	require.NotNil(t, out.ExtractedData.ContactInfo.Name, "应提取到姓名")
	assert.Equal(t, "John Doe", *out.ExtractedData.ContactInfo.Name, "姓名与预期不符")
	assert.Contains(t, out.ExtractedData.Skills.ProgrammingLanguages, "Python", "应识别Python技能")
	assert.Contains(t, out.ExtractedData.Skills.ProgrammingLanguages, "Go", "应识别Go技能")
}

// 验证只携带纯文本的请求也能在服务端完成章节检测，章节级提取器不应空转
func TestExtractEndpoint_DetectsSectionsFromTextOnly(t *testing.T) {
	h := newTestEngine(t)

	resumeText := strings.Join([]string{
		"John Doe",
		"john.doe@example.com",
		"",
		"Education",
		"Bachelor of Science in Computer Science, 2018",
		"Stanford University",
	}, "\n")

	reqBody, err := json.Marshal(map[string]interface{}{
		"parsed_data": map[string]interface{}{
			"text": resumeText,
		},
	})
	require.NoError(t, err)

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/extract",
		&ut.Body{Body: strings.NewReader(string(reqBody)), Len: len(reqBody)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	require.Equal(t, http.StatusOK, resp.Code, "合法请求应返回200")

	var out extractResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), "响应体应为合法JSON")
	require.NotNil(t, out.ExtractedData, "应返回提取的画像")

	require.NotEmpty(t, out.ExtractedData.Education, "文本中明确存在教育章节时不应返回空列表")
	entry := out.ExtractedData.Education[0]
	assert.Equal(t, "Bachelor of Science", entry.Degree, "学位与预期不符")
	assert.Equal(t, "Stanford University", entry.Institution, "院校与预期不符")
	require.NotNil(t, entry.GraduationYear, "应提取到毕业年份")
	assert.Equal(t, 2018, *entry.GraduationYear, "毕业年份与预期不符")
}

// 验证健康检查接口
func TestHealthEndpoint(t *testing.T) {
	h := newTestEngine(t)

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, resp.Code, "健康检查应返回200")
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String(), "健康检查响应与预期不符")
}
