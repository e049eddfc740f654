package service

import (
	"Wellspring/internal/model"
	"Wellspring/internal/pkg/security"
	"Wellspring/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type AuthService interface {
	Login(ctx context.Context, username string) (*model.User, string, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepo
	codec    security.TokenCodec
}

func NewAuthService(userRepo repository.UserRepo, codec security.TokenCodec) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		codec:    codec,
	}
}

// Login 无密码登录：按用户名查找，签发不透明会话令牌
func (s *authServiceImpl) Login(ctx context.Context, username string) (*model.User, string, error) {
	if username == "" {
		return nil, "", ErrUsernameRequired
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidUser
		}
		return nil, "", err
	}

	return user, s.codec.Issue(user.Username), nil
}

// Authenticate 将会话令牌解析回用户，令牌缺失或指向未知用户均视为未授权
func (s *authServiceImpl) Authenticate(ctx context.Context, token string) (*model.User, error) {
	username, err := s.codec.Resolve(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
