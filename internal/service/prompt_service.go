package service

import (
	"Wellspring/internal/api/dto"
	"Wellspring/internal/model"
	"Wellspring/internal/pkg/prompts"
	"Wellspring/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type PromptService interface {
	GetToday(ctx context.Context) (*dto.PromptDTO, error)
	EnsureToday(ctx context.Context) (*dto.PromptDTO, error)
}

type promptServiceImpl struct {
	promptRepo repository.PromptRepo
	pool       *prompts.Pool
	remote     *prompts.RemoteSource
	now        func() time.Time
}

func NewPromptService(promptRepo repository.PromptRepo, pool *prompts.Pool, remote *prompts.RemoteSource) PromptService {
	return &promptServiceImpl{
		promptRepo: promptRepo,
		pool:       pool,
		remote:     remote,
		now:        time.Now,
	}
}

// GetToday 纯读：当日未播种时返回占位对象而非错误
func (s *promptServiceImpl) GetToday(ctx context.Context) (*dto.PromptDTO, error) {
	date := s.today()
	prompt, err := s.promptRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &dto.PromptDTO{Date: date}, nil
		}
		return nil, err
	}
	return promptToDTO(prompt), nil
}

// EnsureToday 读取当日题目，缺失时选题插入
// 并发首播采用先插入、唯一键冲突时回读的方式，避免 check-then-insert 的窗口：
// 冲突意味着别人已播种，不是错误
func (s *promptServiceImpl) EnsureToday(ctx context.Context) (*dto.PromptDTO, error) {
	date := s.today()

	prompt, err := s.promptRepo.GetByDate(ctx, date)
	if err == nil {
		return promptToDTO(prompt), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	fresh := &model.Prompt{Date: date}
	fresh.Text, fresh.Source = s.pick(ctx, date)

	if err = s.promptRepo.Insert(ctx, fresh); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			prompt, err = s.promptRepo.GetByDate(ctx, date)
			if err != nil {
				return nil, err
			}
			return promptToDTO(prompt), nil
		}
		return nil, err
	}

	log.InfoContext(ctx, "Prompt seeded", "date", date, "source", fresh.Source)
	return promptToDTO(fresh), nil
}

// pick 选题：配置了远端生成则优先，失败回退本地题库均匀随机
func (s *promptServiceImpl) pick(ctx context.Context, date string) (string, string) {
	if s.remote != nil && s.remote.Enabled() {
		text, err := s.remote.Generate(ctx, date)
		if err == nil {
			return text, model.PromptSourceLLM
		}
		log.WarnContext(ctx, "Remote prompt generation failed, falling back to pool", "err", err)
	}
	return s.pool.Pick(), model.PromptSourceLocal
}

// today 当日 UTC 日期键 'YYYY-MM-DD'
func (s *promptServiceImpl) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func promptToDTO(p *model.Prompt) *dto.PromptDTO {
	return &dto.PromptDTO{
		Date:   p.Date,
		Text:   &p.Text,
		Source: &p.Source,
	}
}
