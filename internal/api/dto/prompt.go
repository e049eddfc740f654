package dto

// PromptDTO 每日一问视图，未播种时 text/source 为 null
type PromptDTO struct {
	Date   string  `json:"date"`
	Text   *string `json:"text"`
	Source *string `json:"source"`
}
