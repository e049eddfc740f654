package response

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorDTO{Message: message})
}

// Error 处理错误：校验错误带字段明细按 400，映射过的业务错误按映射状态码，其余按 500
func Error(c *gin.Context, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorDTO{Message: vErr.Error(), Issues: vErr.Issues})
		return
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, "invalid")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "invalid")
		return
	}

	for sentinel, status := range service.ErrorMap {
		if errors.Is(err, sentinel) {
			Fail(c, status, sentinel.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "Unhandled error", "err", err)
	Fail(c, http.StatusInternalServerError, "internal error")
}
