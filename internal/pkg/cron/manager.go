package cron

import (
	"Wellspring/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	promptSeedJob *job.PromptSeedJob
}

func NewCronManager(promptSeedJob *job.PromptSeedJob) *Manager {
	return &Manager{
		engine:        cron.New(),
		promptSeedJob: promptSeedJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.promptSeedJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
