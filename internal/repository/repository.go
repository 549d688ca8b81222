package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/egasa21/open-music-api-v2/internal/domain"
)

// Transaction 事务执行器接口
type Transaction interface {
	ExecTx(ctx context.Context, fn func(pgx.Tx) error) error
}

// PlaylistRepository 歌单仓储接口
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	GetInfo(ctx context.Context, id string) (*domain.PlaylistInfo, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.PlaylistInfo, error)
	Delete(ctx context.Context, id string) error
}

// PlaylistSongRepository 歌单歌曲仓储接口
//
// Insert and Delete run inside a caller-owned transaction so a membership
// change and its activity record commit or roll back together.
type PlaylistSongRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, ps *domain.PlaylistSong) (string, error)
	Delete(ctx context.Context, tx pgx.Tx, playlistID, songID string) (int64, error)
	ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.SongEntry, error)
}

// ActivityRepository 歌单活动仓储接口
type ActivityRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, activity *domain.Activity) (string, error)
	ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.ActivityEntry, error)
}

// CollaborationRepository 协作授权仓储接口
type CollaborationRepository interface {
	Create(ctx context.Context, collab *domain.Collaboration) (string, error)
	Delete(ctx context.Context, playlistID, userID string) error
	Exists(ctx context.Context, playlistID, userID string) (bool, error)
}

// SongRepository 歌曲仓储接口
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	List(ctx context.Context) ([]*domain.SongEntry, error)
	Update(ctx context.Context, song *domain.Song) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// UserRepository 用户仓储接口
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// AuthenticationRepository 刷新令牌仓储接口
type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	TokenExists(ctx context.Context, token string) (bool, error)
	DeleteToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
}
