package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHTTPRecognizerEntities 验证对NER边车服务的请求和响应解析
func TestHTTPRecognizerEntities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/entities", r.URL.Path)

		var req entitiesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "John Doe lives in Seattle", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entitiesResponse{
			Entities: []Entity{
				{Text: "John Doe", Label: LabelPerson},
				{Text: "Seattle", Label: LabelGPE},
			},
		})
	}))
	defer server.Close()

	recognizer := NewHTTPRecognizer(server.URL)
	entities, err := recognizer.Entities(context.Background(), "John Doe lives in Seattle")

	require.NoError(t, err, "正常响应不应返回错误")
	require.Len(t, entities, 2)
	assert.Equal(t, "John Doe", entities[0].Text)
	assert.Equal(t, LabelPerson, entities[0].Label)
	assert.Equal(t, LabelGPE, entities[1].Label)
}

// TestHTTPRecognizerEntitiesServerError 验证非200响应被转换为错误
func TestHTTPRecognizerEntitiesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	recognizer := NewHTTPRecognizer(server.URL)
	entities, err := recognizer.Entities(context.Background(), "anything")

	require.Error(t, err)
	assert.Nil(t, entities)
	assert.Contains(t, err.Error(), "503")
}

// TestHTTPRecognizerHealthy 验证健康检查逻辑
func TestHTTPRecognizerHealthy(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer healthy.Close()

	recognizer := NewHTTPRecognizer(healthy.URL)
	assert.NoError(t, recognizer.Healthy(context.Background()))

	down := NewHTTPRecognizer("http://127.0.0.1:1")
	assert.Error(t, down.Healthy(context.Background()))
}
