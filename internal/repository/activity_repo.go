package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/egasa21/open-music-api-v2/internal/domain"
)

// ActivityRepositoryImpl 歌单活动仓储实现
type ActivityRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewActivityRepository 创建歌单活动仓储
func NewActivityRepository(db *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

// Insert 在事务内追加活动记录，返回生成的ID
func (r *ActivityRepositoryImpl) Insert(ctx context.Context, tx pgx.Tx, activity *domain.Activity) (string, error) {
	query := `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id string
	err := tx.QueryRow(ctx, query,
		activity.ID,
		activity.PlaylistID,
		activity.SongID,
		activity.UserID,
		activity.Action,
		activity.Time,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListByPlaylist 按时间顺序获取歌单的活动日志
func (r *ActivityRepositoryImpl) ListByPlaylist(ctx context.Context, playlistID string) ([]*domain.ActivityEntry, error) {
	query := `
		SELECT users.username, songs.title, playlist_song_activities.action, playlist_song_activities.time
		FROM playlist_song_activities
		JOIN songs ON songs.id = playlist_song_activities.song_id
		JOIN users ON users.id = playlist_song_activities.user_id
		WHERE playlist_song_activities.playlist_id = $1
		ORDER BY playlist_song_activities.time ASC
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.ActivityEntry
	for rows.Next() {
		var entry domain.ActivityEntry
		if err := rows.Scan(&entry.Username, &entry.Title, &entry.Action, &entry.Time); err != nil {
			return nil, err
		}
		activities = append(activities, &entry)
	}
	return activities, rows.Err()
}
