package wire

import (
	"Wellspring/internal/api"
	"Wellspring/internal/api/config"
	"Wellspring/internal/api/handler"
	"Wellspring/internal/api/middleware"
	"Wellspring/internal/job"
	"Wellspring/internal/pkg/cron"
	"Wellspring/internal/pkg/prompts"
	"Wellspring/internal/pkg/security"
	"Wellspring/internal/repository"
	"Wellspring/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *mongo.Database
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	promptRepo := repository.NewPromptRepo(db)

	hydrator := service.NewHydrator(userRepo, engagementRepo)

	authService := service.NewAuthService(userRepo, security.NewPlainTokenCodec())
	postService := service.NewPostService(postRepo, hydrator)
	feedService := service.NewFeedService(postRepo, hydrator)
	engagementService := service.NewEngagementService(engagementRepo, postRepo)
	promptService := service.NewPromptService(
		promptRepo,
		prompts.LoadPool(cfg.Prompt.PoolPath),
		prompts.NewRemoteSource(cfg.Prompt),
	)

	handlers := &api.HandlersGroup{
		AuthHandler:   handler.NewAuthHandler(authService),
		PostHandler:   handler.NewPostHandler(postService, feedService, engagementService),
		PromptHandler: handler.NewPromptHandler(promptService),
	}

	router := api.SetupRouter(cfg, handlers, middleware.AuthMiddleware(authService))

	cronMgr := cron.NewCronManager(job.NewPromptSeedJob(promptService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
