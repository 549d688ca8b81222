package domain

import "errors"

var (
	// Playlist errors
	ErrPlaylistNotFound  = errors.New("playlist not found")
	ErrPlaylistForbidden = errors.New("you have no access to this playlist")
	ErrSongNotInPlaylist = errors.New("song not found in playlist")

	// Song errors
	ErrSongNotFound = errors.New("song not found")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidCredential = errors.New("invalid credentials")

	// Collaboration errors
	ErrNotCollaborator       = errors.New("user is not a collaborator")
	ErrCollaborationNotFound = errors.New("collaboration not found")

	// Authentication errors
	ErrRefreshTokenInvalid = errors.New("invalid refresh token")

	// Validation errors
	ErrInvalidPlaylistName = errors.New("invalid playlist name")
	ErrPlaylistNameTooLong = errors.New("playlist name too long")
	ErrInvalidSongTitle    = errors.New("invalid song title")
	ErrInvalidSongYear     = errors.New("invalid song year")
	ErrInvalidUsername     = errors.New("invalid username")
	ErrPasswordTooShort    = errors.New("password too short")
)

// InvariantError signals a write that should have produced a row but
// produced none. It points at store-level corruption or a bug rather
// than a bad request.
type InvariantError struct {
	msg string
}

// NewInvariantError creates an InvariantError with the given message.
func NewInvariantError(msg string) *InvariantError {
	return &InvariantError{msg: msg}
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return e.msg
}
