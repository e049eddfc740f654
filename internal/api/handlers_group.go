package api

import "Wellspring/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler   *handler.AuthHandler
	PostHandler   *handler.PostHandler
	PromptHandler *handler.PromptHandler
}
