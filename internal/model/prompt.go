package model

// Prompt 来源枚举
const (
	PromptSourceLocal = "local"
	PromptSourceLLM   = "llm"
)

// Prompt 每日一问，date ('YYYY-MM-DD') 唯一，每个自然日最多一行
type Prompt struct {
	Date   string `bson:"date" json:"date"`
	Text   string `bson:"text" json:"text"`
	Source string `bson:"source" json:"source"` // local / llm
}
