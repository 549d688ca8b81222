package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egasa21/open-music-api-v2/internal/middleware"
	"github.com/egasa21/open-music-api-v2/internal/service"
)

// CollaborationHandler 协作授权处理器
type CollaborationHandler struct {
	collaborations *service.CollaborationService
	playlists      *service.PlaylistService
}

// NewCollaborationHandler 创建协作授权处理器
func NewCollaborationHandler(
	collaborations *service.CollaborationService,
	playlists *service.PlaylistService,
) *CollaborationHandler {
	return &CollaborationHandler{
		collaborations: collaborations,
		playlists:      playlists,
	}
}

// collaborationRequest 协作授权请求体
type collaborationRequest struct {
	PlaylistID string `json:"playlistId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// AddCollaboration 授权协作，仅歌单所有者可操作
func (h *CollaborationHandler) AddCollaboration(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req collaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.playlists.VerifyOwner(c.Request.Context(), req.PlaylistID, userID); err != nil {
		handleError(c, err)
		return
	}

	id, err := h.collaborations.Add(c.Request.Context(), req.PlaylistID, req.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"collaborationId": id})
}

// DeleteCollaboration 撤销协作授权，仅歌单所有者可操作
func (h *CollaborationHandler) DeleteCollaboration(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req collaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.playlists.VerifyOwner(c.Request.Context(), req.PlaylistID, userID); err != nil {
		handleError(c, err)
		return
	}

	if err := h.collaborations.Delete(c.Request.Context(), req.PlaylistID, req.UserID); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "collaboration removed")
}
