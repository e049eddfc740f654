package main

import (
	"Wellspring/internal/api/config"
	"Wellspring/internal/pkg/logger"
	"Wellspring/internal/pkg/mongo"
	"Wellspring/internal/pkg/prompts"
	"Wellspring/internal/repository"
	"Wellspring/internal/seed"
	"Wellspring/internal/service"
	"context"
	log "log/slog"
	"os"
	"time"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	cfg := config.Cfg

	logger.InitLogger()

	db, err := mongo.InitMongo(cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	promptSvc := service.NewPromptService(
		repository.NewPromptRepo(db),
		prompts.LoadPool(cfg.Prompt.PoolPath),
		prompts.NewRemoteSource(cfg.Prompt),
	)

	seeder := seed.NewSeeder(userRepo, postRepo, engagementRepo, promptSvc)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err = seeder.Run(ctx); err != nil {
		log.Error("Seed failed", "err", err)
		os.Exit(1)
	}
}
