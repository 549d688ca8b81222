package domain

// User 用户实体
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Fullname string `json:"fullname"`
}

// Validate 验证用户数据
func (u *User) Validate() error {
	if u.Username == "" || len(u.Username) > 50 {
		return ErrInvalidUsername
	}
	if len(u.Password) < 8 {
		return ErrPasswordTooShort
	}
	return nil
}

// Collaboration 歌单协作授权
type Collaboration struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlist_id"`
	UserID     string `json:"user_id"`
}
