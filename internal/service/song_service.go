package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/egasa21/open-music-api-v2/internal/domain"
	"github.com/egasa21/open-music-api-v2/internal/repository"
)

// SongService 歌曲服务
type SongService struct {
	songs repository.SongRepository
}

// NewSongService 创建歌曲服务
func NewSongService(songs repository.SongRepository) *SongService {
	return &SongService{songs: songs}
}

// Add 创建歌曲，返回生成的ID
func (s *SongService) Add(ctx context.Context, song *domain.Song) (string, error) {
	if err := song.Validate(); err != nil {
		return "", err
	}
	song.ID = newID("song")

	id, err := s.songs.Create(ctx, song)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewInvariantError("failed to add song")
		}
		return "", err
	}
	return id, nil
}

// List 获取歌曲列表
func (s *SongService) List(ctx context.Context) ([]*domain.SongEntry, error) {
	return s.songs.List(ctx)
}

// Get 根据ID获取歌曲
func (s *SongService) Get(ctx context.Context, id string) (*domain.Song, error) {
	return s.songs.GetByID(ctx, id)
}

// Update 更新歌曲
func (s *SongService) Update(ctx context.Context, song *domain.Song) error {
	if err := song.Validate(); err != nil {
		return err
	}
	return s.songs.Update(ctx, song)
}

// Delete 删除歌曲
func (s *SongService) Delete(ctx context.Context, id string) error {
	return s.songs.Delete(ctx, id)
}

// VerifyExists 校验歌曲是否存在
func (s *SongService) VerifyExists(ctx context.Context, songID string) error {
	exists, err := s.songs.Exists(ctx, songID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrSongNotFound
	}
	return nil
}
