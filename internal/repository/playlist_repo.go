package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/egasa21/open-music-api-v2/internal/domain"
)

// PlaylistRepositoryImpl 歌单仓储实现
type PlaylistRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository 创建歌单仓储
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &PlaylistRepositoryImpl{db: db}
}

// Create 创建歌单，返回生成的ID
func (r *PlaylistRepositoryImpl) Create(ctx context.Context, playlist *domain.Playlist) (string, error) {
	query := `
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query, playlist.ID, playlist.Name, playlist.OwnerID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByID 根据ID获取歌单
func (r *PlaylistRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	query := `SELECT id, name, owner FROM playlists WHERE id = $1`
	var playlist domain.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

// GetInfo 获取歌单详情，携带所有者用户名
func (r *PlaylistRepositoryImpl) GetInfo(ctx context.Context, id string) (*domain.PlaylistInfo, error) {
	query := `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		JOIN users ON users.id = playlists.owner
		WHERE playlists.id = $1
	`
	var info domain.PlaylistInfo
	err := r.db.QueryRow(ctx, query, id).Scan(&info.ID, &info.Name, &info.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &info, nil
}

// ListForUser 获取用户可访问的歌单：自己拥有的加上被授权协作的。
// 多条协作授权按歌单分组折叠成单行。
func (r *PlaylistRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]*domain.PlaylistInfo, error) {
	query := `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id
		JOIN users ON users.id = playlists.owner
		WHERE playlists.owner = $1 OR collaborations.user_id = $1
		GROUP BY playlists.id, users.username
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []*domain.PlaylistInfo
	for rows.Next() {
		var info domain.PlaylistInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, &info)
	}
	return playlists, rows.Err()
}

// Delete 删除歌单。歌曲、活动与协作记录由外键级联清理。
func (r *PlaylistRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM playlists WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}
