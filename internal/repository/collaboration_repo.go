package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/egasa21/open-music-api-v2/internal/domain"
)

// CollaborationRepositoryImpl 协作授权仓储实现
type CollaborationRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewCollaborationRepository 创建协作授权仓储
func NewCollaborationRepository(db *pgxpool.Pool) CollaborationRepository {
	return &CollaborationRepositoryImpl{db: db}
}

// Create 创建协作授权，返回生成的ID
func (r *CollaborationRepositoryImpl) Create(ctx context.Context, collab *domain.Collaboration) (string, error) {
	query := `
		INSERT INTO collaborations (id, playlist_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query, collab.ID, collab.PlaylistID, collab.UserID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Delete 删除协作授权
func (r *CollaborationRepositoryImpl) Delete(ctx context.Context, playlistID, userID string) error {
	query := `DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCollaborationNotFound
	}
	return nil
}

// Exists 判断用户是否为歌单协作者
func (r *CollaborationRepositoryImpl) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM collaborations WHERE playlist_id = $1 AND user_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, playlistID, userID).Scan(&exists)
	return exists, err
}
