package middleware

import (
	"Wellspring/internal/model"
	"Wellspring/internal/pkg/response"
	"Wellspring/internal/pkg/security"
	"Wellspring/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey gin Context 中当前用户的 Key
const CurrentUserKey = "current_user"

// AuthMiddleware 从会话 Cookie 解析用户身份并注入 Context
func AuthMiddleware(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(security.SessionCookieName)
		if err != nil || token == "" {
			response.Fail(c, http.StatusUnauthorized, service.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser 取出 AuthMiddleware 注入的用户，仅在受保护路由内调用
func CurrentUser(c *gin.Context) *model.User {
	user, _ := c.MustGet(CurrentUserKey).(*model.User)
	return user
}

// SetSessionCookie 写入会话 Cookie：http-only、lax、7 天
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(security.SessionCookieName, token, security.SessionMaxAge, "/", "", false, true)
}
