package repository

import (
	"Wellspring/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PromptRepo interface {
	GetByDate(ctx context.Context, date string) (*model.Prompt, error)
	Insert(ctx context.Context, prompt *model.Prompt) error
}

type promptRepoImpl struct {
	col *mongo.Collection
}

func NewPromptRepo(db *mongo.Database) PromptRepo {
	return &promptRepoImpl{
		col: db.Collection("prompts"),
	}
}

// GetByDate 按日期键查询，未命中返回 mongo.ErrNoDocuments
func (s *promptRepoImpl) GetByDate(ctx context.Context, date string) (*model.Prompt, error) {
	var prompt model.Prompt
	if err := s.col.FindOne(ctx, bson.M{"date": date}).Decode(&prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// Insert 插入当日题目，date 重复时返回唯一键冲突错误
// 并发首播时冲突是预期情况，由调用方回读处理
func (s *promptRepoImpl) Insert(ctx context.Context, prompt *model.Prompt) error {
	_, err := s.col.InsertOne(ctx, prompt)
	return err
}
