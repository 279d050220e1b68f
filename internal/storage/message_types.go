package storage

import "time"

// ResumeParsedMessage 解析完成事件。上游解析服务在把纯文本写入MinIO后发布。
type ResumeParsedMessage struct {
	SubmissionUUID    string `json:"submission_uuid"`                // 提交UUID
	ParsedTextPathOSS string `json:"parsed_text_path_oss,omitempty"` // 解析文本在MinIO中的路径
	RawTextMD5        string `json:"raw_text_md5,omitempty"`         // 解析文本MD5

	// 文本内容 (当不想通过存储服务传递时使用)
	ParsedText string `json:"parsed_text,omitempty"`

	// 兼容性字段 (可选)
	ParsedTextObjectKey string `json:"parsed_text_object_key,omitempty"` // 与ParsedTextPathOSS同义
}

// ProfileExtractedMessage 画像提取完成事件，提取服务处理完成后发布
type ProfileExtractedMessage struct {
	SubmissionUUID string    `json:"submission_uuid"`
	ProfileUUID    string    `json:"profile_uuid"`
	RawTextMD5     string    `json:"raw_text_md5"`
	ModelVersion   string    `json:"model_version"`
	ExtractedAt    time.Time `json:"extracted_at"`
	Status         string    `json:"status"`          // 见 constants.StatusExtraction*
	Error          string    `json:"error,omitempty"` // 错误信息
}
