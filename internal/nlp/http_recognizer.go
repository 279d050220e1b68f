package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// HTTPRecognizer 通过HTTP调用NER边车服务（如spaCy服务）的实体识别器
type HTTPRecognizer struct {
	// NER服务地址，例如 http://localhost:5002
	ServerURL string
	// HTTP客户端，可配置超时等参数
	Client *http.Client
	// 日志记录
	logger *log.Logger
}

// RecognizerOption 定义配置选项函数
type RecognizerOption func(*HTTPRecognizer)

// WithNERTimeout 配置HTTP客户端超时时间
func WithNERTimeout(timeout time.Duration) RecognizerOption {
	return func(r *HTTPRecognizer) {
		r.Client.Timeout = timeout
	}
}

// WithNERLogger 配置自定义日志记录器
func WithNERLogger(logger *log.Logger) RecognizerOption {
	return func(r *HTTPRecognizer) {
		r.logger = logger
	}
}

// 确保HTTPRecognizer实现了EntityRecognizer接口
var _ EntityRecognizer = (*HTTPRecognizer)(nil)

// NewHTTPRecognizer 创建一个新的HTTP实体识别器
func NewHTTPRecognizer(serverURL string, options ...RecognizerOption) *HTTPRecognizer {
	recognizer := &HTTPRecognizer{
		ServerURL: serverURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.New(os.Stderr, "[NER] ", log.LstdFlags),
	}

	for _, option := range options {
		option(recognizer)
	}

	return recognizer
}

// entitiesRequest NER服务请求体
type entitiesRequest struct {
	Text string `json:"text"`
}

// entitiesResponse NER服务响应体
type entitiesResponse struct {
	Entities []Entity `json:"entities"`
}

// Entities 调用NER服务识别文本中的命名实体
func (r *HTTPRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(entitiesRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("序列化NER请求失败: %w", err)
	}

	url := fmt.Sprintf("%s/entities", r.ServerURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("创建NER请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用NER服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("NER服务返回错误状态码 %d: %s", resp.StatusCode, string(respBody))
	}

	var result entitiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("解析NER响应失败: %w", err)
	}

	r.logger.Printf("NER识别完成: %d 个实体 (用时 %.2f秒)", len(result.Entities), time.Since(startTime).Seconds())
	return result.Entities, nil
}

// Healthy 检查NER服务是否就绪，在接收请求前由启动流程调用一次
func (r *HTTPRecognizer) Healthy(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", r.ServerURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("创建健康检查请求失败: %w", err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("NER服务健康检查失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("NER服务未就绪，状态码: %d", resp.StatusCode)
	}
	return nil
}
