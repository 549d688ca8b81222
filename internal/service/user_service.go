package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/egasa21/open-music-api-v2/internal/domain"
	"github.com/egasa21/open-music-api-v2/internal/repository"
)

// bcryptCost 密码散列强度
const bcryptCost = 10

// UserService 用户服务
type UserService struct {
	users repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register 注册用户，返回生成的ID。用户名必须唯一。
func (s *UserService) Register(ctx context.Context, username, password, fullname string) (string, error) {
	user := &domain.User{
		ID:       newID("user"),
		Username: username,
		Password: password,
		Fullname: fullname,
	}
	if err := user.Validate(); err != nil {
		return "", err
	}

	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	user.Password = string(hashed)

	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewInvariantError("failed to add user")
		}
		return "", err
	}
	return id, nil
}

// Get 根据ID获取用户
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// VerifyCredential 校验用户名密码，成功返回用户ID。
// 用户不存在与密码错误对外不做区分。
func (s *UserService) VerifyCredential(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredential
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredential
	}
	return user.ID, nil
}
