package util

import (
	"Wellspring/internal/api/dto"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// 用 json tag 名作为字段名，保证 issues 里的 field 与请求体一致
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateDTO 校验 DTO，返回字段级失败明细，通过时返回 nil
func ValidateDTO(v any) []dto.FieldIssue {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []dto.FieldIssue{{Field: "", Rule: "struct", Message: err.Error()}}
	}

	issues := make([]dto.FieldIssue, 0, len(vErrs))
	for _, fe := range vErrs {
		issues = append(issues, dto.FieldIssue{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("field [%s] failed on rule [%s]", fe.Field(), fe.Tag()),
		})
	}
	return issues
}
