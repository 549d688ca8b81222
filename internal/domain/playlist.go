package domain

import "time"

// Playlist 歌单实体
type Playlist struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner"`
}

// Validate 验证歌单数据
func (p *Playlist) Validate() error {
	if err := ValidatePlaylistName(p.Name); err != nil {
		return err
	}
	if p.OwnerID == "" {
		return ErrUserNotFound
	}
	return nil
}

// ValidatePlaylistName 验证歌单名称
func ValidatePlaylistName(name string) error {
	if name == "" {
		return ErrInvalidPlaylistName
	}
	if len(name) > 100 {
		return ErrPlaylistNameTooLong
	}
	return nil
}

// PlaylistInfo 歌单视图，携带所有者的用户名
type PlaylistInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// PlaylistSong 歌单-歌曲关联实体
type PlaylistSong struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlist_id"`
	SongID     string `json:"song_id"`
}

// ActivityAction 活动类型
type ActivityAction string

const (
	ActivityAdd    ActivityAction = "add"
	ActivityDelete ActivityAction = "delete"
)

// Activity 歌单活动记录，只增不改
type Activity struct {
	ID         string         `json:"id"`
	PlaylistID string         `json:"playlist_id"`
	SongID     string         `json:"song_id"`
	UserID     string         `json:"user_id"`
	Action     ActivityAction `json:"action"`
	Time       time.Time      `json:"time"`
}

// ActivityEntry 活动日志视图，按时间排序返回
type ActivityEntry struct {
	Username string         `json:"username"`
	Title    string         `json:"title"`
	Action   ActivityAction `json:"action"`
	Time     time.Time      `json:"time"`
}

// AccessLevel 歌单访问级别
type AccessLevel int

const (
	// AccessNone means the access check was denied.
	AccessNone AccessLevel = iota
	// AccessOwner means the user owns the playlist.
	AccessOwner
	// AccessCollaborator means access was granted through a collaboration.
	AccessCollaborator
)

// String returns the string representation of the access level.
func (l AccessLevel) String() string {
	switch l {
	case AccessOwner:
		return "owner"
	case AccessCollaborator:
		return "collaborator"
	default:
		return "none"
	}
}
