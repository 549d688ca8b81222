package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/egasa21/open-music-api-v2/internal/domain"
)

// PlaylistSongRepositoryImpl 歌单歌曲仓储实现
type PlaylistSongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistSongRepository 创建歌单歌曲仓储
func NewPlaylistSongRepository(db *pgxpool.Pool) PlaylistSongRepository {
	return &PlaylistSongRepositoryImpl{db: db}
}

// Insert 在事务内插入歌单歌曲关联，返回生成的ID
func (r *PlaylistSongRepositoryImpl) Insert(ctx context.Context, tx pgx.Tx, ps *domain.PlaylistSong) (string, error) {
	query := `
		INSERT INTO playlist_songs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id string
	err := tx.QueryRow(ctx, query, ps.ID, ps.PlaylistID, ps.SongID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Delete 在事务内删除歌单歌曲关联，返回删除的行数。
// 同一首歌被重复添加时会一并删除。
func (r *PlaylistSongRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, playlistID, songID string) (int64, error) {
	query := `DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`
	tag, err := tx.Exec(ctx, query, playlistID, songID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListByPlaylist 获取歌单当前的歌曲列表
func (r *PlaylistSongRepositoryImpl) ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.SongEntry, error) {
	query := `
		SELECT songs.id, songs.title, songs.performer
		FROM playlist_songs
		JOIN songs ON songs.id = playlist_songs.song_id
		WHERE playlist_songs.playlist_id = $1
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []*domain.SongEntry
	for rows.Next() {
		var entry domain.SongEntry
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, &entry)
	}
	return songs, rows.Err()
}
