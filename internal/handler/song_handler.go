package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egasa21/open-music-api-v2/internal/domain"
	"github.com/egasa21/open-music-api-v2/internal/service"
)

// SongHandler 歌曲处理器
type SongHandler struct {
	service *service.SongService
}

// NewSongHandler 创建歌曲处理器
func NewSongHandler(service *service.SongService) *SongHandler {
	return &SongHandler{service: service}
}

// songRequest 歌曲请求体
type songRequest struct {
	AlbumID   string `json:"albumId"`
	Title     string `json:"title" binding:"required"`
	Year      int    `json:"year" binding:"required"`
	Genre     string `json:"genre" binding:"required"`
	Performer string `json:"performer" binding:"required"`
	Duration  int    `json:"duration"`
}

// AddSong 创建歌曲
func (h *SongHandler) AddSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.Add(c.Request.Context(), &domain.Song{
		AlbumID:   req.AlbumID,
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"songId": id})
}

// ListSongs 获取歌曲列表
func (h *SongHandler) ListSongs(c *gin.Context) {
	songs, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"songs": songs})
}

// GetSong 获取歌曲详情
func (h *SongHandler) GetSong(c *gin.Context) {
	song, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"song": song})
}

// UpdateSong 更新歌曲
func (h *SongHandler) UpdateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.Update(c.Request.Context(), &domain.Song{
		ID:        c.Param("id"),
		AlbumID:   req.AlbumID,
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "song updated")
}

// DeleteSong 删除歌曲
func (h *SongHandler) DeleteSong(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "song deleted")
}
