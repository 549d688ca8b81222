package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egasa21/open-music-api-v2/internal/domain"
)

// handleError 统一处理domain错误并返回适当的HTTP状态码。
// 未识别的错误记录到请求日志并返回通用的500响应，内部原因不外泄。
func handleError(c *gin.Context, err error) {
	var invariantErr *domain.InvariantError

	switch {
	// 404 Not Found
	case errors.Is(err, domain.ErrPlaylistNotFound),
		errors.Is(err, domain.ErrSongNotFound),
		errors.Is(err, domain.ErrSongNotInPlaylist),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCollaborationNotFound):
		respondFail(c, http.StatusNotFound, err.Error())

	// 403 Forbidden
	case errors.Is(err, domain.ErrPlaylistForbidden),
		errors.Is(err, domain.ErrNotCollaborator):
		respondFail(c, http.StatusForbidden, err.Error())

	// 401 Unauthorized
	case errors.Is(err, domain.ErrInvalidCredential):
		respondFail(c, http.StatusUnauthorized, err.Error())

	// 400 Bad Request
	case errors.As(err, &invariantErr),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrRefreshTokenInvalid),
		errors.Is(err, domain.ErrInvalidPlaylistName),
		errors.Is(err, domain.ErrPlaylistNameTooLong),
		errors.Is(err, domain.ErrInvalidSongTitle),
		errors.Is(err, domain.ErrInvalidSongYear),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrPasswordTooShort):
		respondFail(c, http.StatusBadRequest, err.Error())

	// 500 Internal Server Error (默认)
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "internal server error",
		})
	}
}
