package nlp

import "context"

// 实体标签常量，与NER边车服务返回的标签对齐
const (
	LabelPerson = "PERSON"
	LabelGPE    = "GPE" // 地缘政治实体（国家、城市等）
	LabelLoc    = "LOC"
)

// Entity 命名实体识别结果中的一个实体
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer 命名实体识别能力接口
// 实现必须支持初始化完成后的并发只读调用
type EntityRecognizer interface {
	// Entities 对文本执行命名实体识别，按出现顺序返回实体列表
	Entities(ctx context.Context, text string) ([]Entity, error)
}
