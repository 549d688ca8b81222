package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egasa21/open-music-api-v2/internal/middleware"
	"github.com/egasa21/open-music-api-v2/internal/service"
)

// PlaylistHandler 歌单处理器
type PlaylistHandler struct {
	service *service.PlaylistService
}

// NewPlaylistHandler 创建歌单处理器
func NewPlaylistHandler(service *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

// CreatePlaylist 创建歌单
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.Create(c.Request.Context(), req.Name, userID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"playlistId": id})
}

// ListPlaylists 获取用户可访问的歌单列表
func (h *PlaylistHandler) ListPlaylists(c *gin.Context) {
	userID := middleware.GetUserID(c)

	playlists, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"playlists": playlists})
}

// DeletePlaylist 删除歌单，仅所有者可操作
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	playlistID := c.Param("id")

	if err := h.service.VerifyOwner(c.Request.Context(), playlistID, userID); err != nil {
		handleError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), playlistID); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "playlist deleted")
}

// AddSong 向歌单添加歌曲，所有者或协作者可操作
func (h *PlaylistHandler) AddSong(c *gin.Context) {
	userID := middleware.GetUserID(c)
	playlistID := c.Param("id")

	var req struct {
		SongID string `json:"songId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.service.VerifyAccess(c.Request.Context(), playlistID, userID); err != nil {
		handleError(c, err)
		return
	}
	if err := h.service.AddSong(c.Request.Context(), playlistID, req.SongID, userID); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "song added to playlist")
}

// ListSongs 获取歌单详情及当前的歌曲列表
func (h *PlaylistHandler) ListSongs(c *gin.Context) {
	userID := middleware.GetUserID(c)
	playlistID := c.Param("id")

	if _, err := h.service.VerifyAccess(c.Request.Context(), playlistID, userID); err != nil {
		handleError(c, err)
		return
	}

	info, err := h.service.Get(c.Request.Context(), playlistID)
	if err != nil {
		handleError(c, err)
		return
	}
	songs, err := h.service.ListSongs(c.Request.Context(), playlistID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"playlist": gin.H{
			"id":       info.ID,
			"name":     info.Name,
			"username": info.Username,
			"songs":    songs,
		},
	})
}

// RemoveSong 从歌单移除歌曲，所有者或协作者可操作
func (h *PlaylistHandler) RemoveSong(c *gin.Context) {
	userID := middleware.GetUserID(c)
	playlistID := c.Param("id")

	var req struct {
		SongID string `json:"songId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.service.VerifyAccess(c.Request.Context(), playlistID, userID); err != nil {
		handleError(c, err)
		return
	}
	if err := h.service.RemoveSong(c.Request.Context(), playlistID, req.SongID, userID); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "song removed from playlist")
}

// ListActivities 获取歌单的活动日志
func (h *PlaylistHandler) ListActivities(c *gin.Context) {
	userID := middleware.GetUserID(c)
	playlistID := c.Param("id")

	if _, err := h.service.VerifyAccess(c.Request.Context(), playlistID, userID); err != nil {
		handleError(c, err)
		return
	}

	activities, err := h.service.ListActivities(c.Request.Context(), playlistID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"playlistId": playlistID,
		"activities": activities,
	})
}
