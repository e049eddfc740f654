package dto

// ErrorDTO 错误响应体
type ErrorDTO struct {
	Message string       `json:"message"`
	Issues  []FieldIssue `json:"issues,omitempty"`
}

// FieldIssue 字段级校验失败明细
type FieldIssue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}
