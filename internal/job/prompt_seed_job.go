package job

import (
	"Wellspring/internal/service"
	"context"
	log "log/slog"
	"time"
)

// PromptSeedJob 每日零点为新的一天播种题目
// 与请求路径的惰性播种互为补充，冲突由 date 唯一索引兜底
type PromptSeedJob struct {
	promptSvc service.PromptService
}

func NewPromptSeedJob(promptSvc service.PromptService) *PromptSeedJob {
	return &PromptSeedJob{
		promptSvc: promptSvc,
	}
}

func (s *PromptSeedJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prompt, err := s.promptSvc.EnsureToday(ctx)
	if err != nil {
		log.Error("Daily prompt seed failed", "err", err)
		return
	}
	log.Info("Daily prompt ensured", "date", prompt.Date)
}
