package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/egasa21/open-music-api-v2/internal/domain"
)

// SongRepositoryImpl 歌曲仓储实现
type SongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewSongRepository 创建歌曲仓储
func NewSongRepository(db *pgxpool.Pool) SongRepository {
	return &SongRepositoryImpl{db: db}
}

// Create 创建歌曲，返回生成的ID
func (r *SongRepositoryImpl) Create(ctx context.Context, song *domain.Song) (string, error) {
	query := `
		INSERT INTO songs (id, album_id, title, year, genre, performer, duration)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query,
		song.ID,
		song.AlbumID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByID 根据ID获取歌曲
func (r *SongRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	query := `
		SELECT id, COALESCE(album_id, ''), title, year, genre, performer, COALESCE(duration, 0)
		FROM songs
		WHERE id = $1
	`
	var song domain.Song
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID,
		&song.AlbumID,
		&song.Title,
		&song.Year,
		&song.Genre,
		&song.Performer,
		&song.Duration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, err
	}
	return &song, nil
}

// List 获取歌曲列表
func (r *SongRepositoryImpl) List(ctx context.Context) ([]*domain.SongEntry, error) {
	query := `SELECT id, title, performer FROM songs`
	rows, err := r.db.Query(ctx, query)
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

// Update 更新歌曲
func (r *SongRepositoryImpl) Update(ctx context.Context, song *domain.Song) error {
	query := `
		UPDATE songs
		SET album_id = NULLIF($2, ''), title = $3, year = $4, genre = $5, performer = $6, duration = $7
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		song.ID,
		song.AlbumID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// Delete 删除歌曲
func (r *SongRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM songs WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// Exists 判断歌曲是否存在
func (r *SongRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM songs WHERE id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}
