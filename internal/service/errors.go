package service

import (
	"Wellspring/internal/api/dto"
	"errors"
	"net/http"
)

var (
	ErrUsernameRequired = errors.New("username required")
	ErrInvalidUser      = errors.New("invalid user")
	ErrUnauthorized     = errors.New("unauthorized")
)

// ErrorMap 业务错误到 HTTP 状态码的映射，未命中的错误一律按 500 处理
var ErrorMap = map[error]int{
	ErrUsernameRequired: http.StatusBadRequest,
	ErrInvalidUser:      http.StatusBadRequest,
	ErrUnauthorized:     http.StatusUnauthorized,
}

// ValidationError 携带字段级明细的校验错误，边界校验失败时在任何写入前返回
type ValidationError struct {
	Issues []dto.FieldIssue
}

func (e *ValidationError) Error() string {
	return "invalid"
}

// NewValidationError 将校验明细包装为错误，明细为空时返回 nil
func NewValidationError(issues []dto.FieldIssue) error {
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
