package handler

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/api/middleware"
	"Wellspring/internal/pkg/response"
	"Wellspring/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// Login 按用户名登录并写入会话 Cookie
func (s *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrUsernameRequired)
		return
	}

	user, token, err := s.authSvc.Login(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetSessionCookie(c, token)
	response.Success(c, dto.LoginResultDTO{
		OK: true,
		User: dto.SessionUserDTO{
			ID:          user.ID.Hex(),
			DisplayName: user.DisplayName,
		},
	})
}
