package service

import (
	"context"
	"time"

	"github.com/egasa21/open-music-api-v2/internal/domain"
	"github.com/egasa21/open-music-api-v2/internal/repository"
	"github.com/egasa21/open-music-api-v2/internal/token"
)

// TokenPair 登录返回的令牌对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService 认证服务：登录、刷新与注销
type AuthService struct {
	users  *UserService
	tokens repository.AuthenticationRepository
	jwt    *token.Manager
}

// NewAuthService 创建认证服务
func NewAuthService(users *UserService, tokens repository.AuthenticationRepository, jwt *token.Manager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		jwt:    jwt,
	}
}

// Login 校验凭证并签发令牌对，刷新令牌持久化保存
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	userID, err := s.users.VerifyCredential(ctx, username, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.GenerateAccess(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.GenerateRefresh(userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.AddToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh 用有效的刷新令牌换取新的访问令牌
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	exists, err := s.tokens.TokenExists(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrRefreshTokenInvalid
	}

	claims, err := s.jwt.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return "", domain.ErrRefreshTokenInvalid
	}

	return s.jwt.GenerateAccess(claims.UserID)
}

// Logout 注销刷新令牌
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	exists, err := s.tokens.TokenExists(ctx, refreshToken)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRefreshTokenInvalid
	}
	return s.tokens.DeleteToken(ctx, refreshToken)
}

// PurgeExpiredTokens 清理超过刷新有效期的令牌，返回删除的行数
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.jwt.RefreshExpiry())
	return s.tokens.DeleteExpired(ctx, cutoff)
}
