package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/egasa21/open-music-api-v2/internal/domain"
	"github.com/egasa21/open-music-api-v2/internal/repository"
)

// CollaboratorVerifier 协作授权校验接口。失败原因对调用方不可见，
// 任何错误都视为"不是协作者"。
type CollaboratorVerifier interface {
	VerifyCollaborator(ctx context.Context, playlistID, userID string) error
}

// SongVerifier 歌曲存在性校验接口
type SongVerifier interface {
	VerifyExists(ctx context.Context, songID string) error
}

// PlaylistService 歌单服务：访问控制、原子化歌曲增删与查询
type PlaylistService struct {
	playlists     repository.PlaylistRepository
	playlistSongs repository.PlaylistSongRepository
	activities    repository.ActivityRepository
	songs         SongVerifier
	collaborators CollaboratorVerifier
	tx            repository.Transaction
}

// NewPlaylistService 创建歌单服务
func NewPlaylistService(
	playlists repository.PlaylistRepository,
	playlistSongs repository.PlaylistSongRepository,
	activities repository.ActivityRepository,
	songs SongVerifier,
	collaborators CollaboratorVerifier,
	tx repository.Transaction,
) *PlaylistService {
	return &PlaylistService{
		playlists:     playlists,
		playlistSongs: playlistSongs,
		activities:    activities,
		songs:         songs,
		collaborators: collaborators,
		tx:            tx,
	}
}

// Create 创建歌单，返回生成的ID
func (s *PlaylistService) Create(ctx context.Context, name, ownerID string) (string, error) {
	playlist := &domain.Playlist{
		ID:      newID("playlist"),
		Name:    name,
		OwnerID: ownerID,
	}
	if err := playlist.Validate(); err != nil {
		return "", err
	}

	id, err := s.playlists.Create(ctx, playlist)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewInvariantError("failed to add playlist")
		}
		return "", err
	}
	return id, nil
}

// List 获取用户可访问的歌单列表
func (s *PlaylistService) List(ctx context.Context, userID string) ([]*domain.PlaylistInfo, error) {
	return s.playlists.ListForUser(ctx, userID)
}

// Get 获取歌单详情
func (s *PlaylistService) Get(ctx context.Context, id string) (*domain.PlaylistInfo, error) {
	return s.playlists.GetInfo(ctx, id)
}

// Delete 删除歌单
func (s *PlaylistService) Delete(ctx context.Context, id string) error {
	return s.playlists.Delete(ctx, id)
}

// VerifyOwner 校验歌单所有权。
// 歌单不存在返回 ErrPlaylistNotFound，非所有者返回 ErrPlaylistForbidden。
func (s *PlaylistService) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != userID {
		return domain.ErrPlaylistForbidden
	}
	return nil
}

// VerifyAccess 校验歌单访问权：先查所有权，再查协作授权。
//
// 歌单不存在时直接返回 ErrPlaylistNotFound，不再咨询协作授权。
// 非所有者且协作校验失败时，返回所有权校验的拒绝原因，
// 协作校验自身的失败原因被丢弃。
func (s *PlaylistService) VerifyAccess(ctx context.Context, playlistID, userID string) (domain.AccessLevel, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return domain.AccessNone, err
	}
	if playlist.OwnerID == userID {
		return domain.AccessOwner, nil
	}
	if err := s.collaborators.VerifyCollaborator(ctx, playlistID, userID); err != nil {
		return domain.AccessNone, domain.ErrPlaylistForbidden
	}
	return domain.AccessCollaborator, nil
}

// AddSong 向歌单添加歌曲，并在同一事务内追加活动记录。
//
// 调用方需先通过 VerifyAccess 完成授权。歌曲不存在返回 ErrSongNotFound。
// 重复添加同一首歌会产生新的关联行和活动记录。
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, songID, userID string) error {
	if err := s.songs.VerifyExists(ctx, songID); err != nil {
		return err
	}

	ps := &domain.PlaylistSong{
		ID:         newID("playlist-song"),
		PlaylistID: playlistID,
		SongID:     songID,
	}
	activity := &domain.Activity{
		ID:         newID("playlist-activity"),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     domain.ActivityAdd,
		Time:       time.Now(),
	}

	return s.tx.ExecTx(ctx, func(tx pgx.Tx) error {
		songRowID, err := s.playlistSongs.Insert(ctx, tx, ps)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewInvariantError("failed to add song to playlist")
			}
			return err
		}
		activityID, err := s.activities.Insert(ctx, tx, activity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewInvariantError("failed to add song to playlist")
			}
			return err
		}
		if songRowID == "" || activityID == "" {
			return domain.NewInvariantError("failed to add song to playlist")
		}
		return nil
	})
}

// RemoveSong 从歌单移除歌曲，并在同一事务内追加活动记录。
//
// 歌曲不在歌单中时整个事务回滚，活动记录不会单独提交。
func (s *PlaylistService) RemoveSong(ctx context.Context, playlistID, songID, userID string) error {
	activity := &domain.Activity{
		ID:         newID("playlist-activity"),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     domain.ActivityDelete,
		Time:       time.Now(),
	}

	return s.tx.ExecTx(ctx, func(tx pgx.Tx) error {
		deleted, err := s.playlistSongs.Delete(ctx, tx, playlistID, songID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return domain.ErrSongNotInPlaylist
		}
		activityID, err := s.activities.Insert(ctx, tx, activity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewInvariantError("failed to record playlist activity")
			}
			return err
		}
		if activityID == "" {
			return domain.NewInvariantError("failed to record playlist activity")
		}
		return nil
	})
}

// ListSongs 获取歌单当前的歌曲列表。空歌单返回空列表而非错误。
func (s *PlaylistService) ListSongs(ctx context.Context, playlistID string) ([]*domain.SongEntry, error) {
	return s.playlistSongs.ListByPlaylist(ctx, playlistID)
}

// ListActivities 按时间顺序获取歌单的活动日志。
// 歌单不存在返回 ErrPlaylistNotFound；存在但没有活动时返回空列表。
func (s *PlaylistService) ListActivities(ctx context.Context, playlistID string) ([]*domain.ActivityEntry, error) {
	if _, err := s.playlists.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}
	return s.activities.ListByPlaylist(ctx, playlistID)
}

// newID 生成带实体前缀的唯一ID
func newID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}
