package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthenticationRepositoryImpl 刷新令牌仓储实现
type AuthenticationRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAuthenticationRepository 创建刷新令牌仓储
func NewAuthenticationRepository(db *pgxpool.Pool) AuthenticationRepository {
	return &AuthenticationRepositoryImpl{db: db}
}

// AddToken 保存刷新令牌
func (r *AuthenticationRepositoryImpl) AddToken(ctx context.Context, token string) error {
	query := `INSERT INTO authentications (token, created_at) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, token, time.Now())
	return err
}

// TokenExists 判断刷新令牌是否仍然有效（未被注销）
func (r *AuthenticationRepositoryImpl) TokenExists(ctx context.Context, token string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authentications WHERE token = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, token).Scan(&exists)
	return exists, err
}

// DeleteToken 注销刷新令牌
func (r *AuthenticationRepositoryImpl) DeleteToken(ctx context.Context, token string) error {
	query := `DELETE FROM authentications WHERE token = $1`
	_, err := r.db.Exec(ctx, query, token)
	return err
}

// DeleteExpired 清理过期的刷新令牌，返回删除的行数
func (r *AuthenticationRepositoryImpl) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `DELETE FROM authentications WHERE created_at < $1`
	tag, err := r.db.Exec(ctx, query, olderThan)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
