package api

import (
	"Wellspring/internal/api/config"
	"Wellspring/internal/api/middleware"
	"Wellspring/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, group *HandlersGroup, authMW gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.ClientOrigin))
	logger.SetupGin(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", group.AuthHandler.Login)
	}

	postGroup := r.Group("/posts")
	{
		// 信息流公开可读
		postGroup.GET("", group.PostHandler.ListFeed)

		authed := postGroup.Group("")
		authed.Use(authMW)
		{
			authed.POST("", group.PostHandler.CreatePost)
			authed.POST("/:post_id/like", group.PostHandler.LikePost)
			authed.POST("/:post_id/comment", group.PostHandler.CommentPost)
		}
	}

	promptGroup := r.Group("/prompt")
	{
		promptGroup.GET("/today", group.PromptHandler.GetToday)
	}

	return r
}
