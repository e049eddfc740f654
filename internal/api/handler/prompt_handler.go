package handler

import (
	"Wellspring/internal/pkg/response"
	"Wellspring/internal/service"

	"github.com/gin-gonic/gin"
)

type PromptHandler struct {
	promptSvc service.PromptService
}

func NewPromptHandler(promptSvc service.PromptService) *PromptHandler {
	return &PromptHandler{
		promptSvc: promptSvc,
	}
}

// GetToday 获取当日题目，未播种时返回 text/source 为 null 的占位对象
func (s *PromptHandler) GetToday(c *gin.Context) {
	prompt, err := s.promptSvc.GetToday(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, prompt)
}
