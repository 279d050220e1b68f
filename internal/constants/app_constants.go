package constants

import "time"

const (
	// DefaultModelVersion 提取结果携带的模型版本标签
	DefaultModelVersion = "nlp-v1.0.0"

	// ProfileCacheDuration 画像缓存默认过期时间
	ProfileCacheDuration = 30 * 24 * time.Hour

	// RabbitMQ 事件拓扑
	ResumeEventsExchange = "resume.events.exchange"
	ParsedRoutingKey     = "resume.parsed"
	ExtractedRoutingKey  = "resume.extracted"
	ParsedResumeQueue    = "q.resume_parsed"

	// 提取任务状态
	StatusExtractionQueued     = "EXTRACTION_QUEUED"
	StatusExtractionProcessing = "EXTRACTION_PROCESSING"
	StatusExtractionCompleted  = "EXTRACTION_COMPLETED"
	StatusExtractionFailed     = "EXTRACTION_FAILED"
)
