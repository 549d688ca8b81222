package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/egasa21/open-music-api-v2/internal/domain"
	"github.com/egasa21/open-music-api-v2/internal/repository"
)

// CollaborationService 协作授权服务
type CollaborationService struct {
	collaborations repository.CollaborationRepository
	users          repository.UserRepository
}

// NewCollaborationService 创建协作授权服务
func NewCollaborationService(
	collaborations repository.CollaborationRepository,
	users repository.UserRepository,
) *CollaborationService {
	return &CollaborationService{
		collaborations: collaborations,
		users:          users,
	}
}

// Add 授权用户协作歌单，返回生成的ID。
// 所有权校验由调用方完成，目标用户必须存在。
func (s *CollaborationService) Add(ctx context.Context, playlistID, userID string) (string, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrUserNotFound
	}

	collab := &domain.Collaboration{
		ID:         newID("collab"),
		PlaylistID: playlistID,
		UserID:     userID,
	}
	id, err := s.collaborations.Create(ctx, collab)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewInvariantError("failed to add collaboration")
		}
		return "", err
	}
	return id, nil
}

// Delete 撤销协作授权
func (s *CollaborationService) Delete(ctx context.Context, playlistID, userID string) error {
	return s.collaborations.Delete(ctx, playlistID, userID)
}

// VerifyCollaborator 校验用户是否为歌单协作者
func (s *CollaborationService) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	exists, err := s.collaborations.Exists(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotCollaborator
	}
	return nil
}
