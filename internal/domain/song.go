package domain

import "time"

// Song 歌曲实体
type Song struct {
	ID        string `json:"id"`
	AlbumID   string `json:"album_id,omitempty"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	Performer string `json:"performer"`
	Duration  int    `json:"duration,omitempty"`
}

// Validate 验证歌曲数据
func (s *Song) Validate() error {
	if s.Title == "" {
		return ErrInvalidSongTitle
	}
	if s.Year < 1900 || s.Year > time.Now().Year()+1 {
		return ErrInvalidSongYear
	}
	return nil
}

// SongEntry 歌曲列表视图
type SongEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}
