package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egasa21/open-music-api-v2/internal/service"
)

// UserHandler 用户处理器
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler 创建用户处理器
func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register 注册用户
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Fullname string `json:"fullname" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.Register(c.Request.Context(), req.Username, req.Password, req.Fullname)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"userId": id})
}

// GetUser 获取用户信息
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"user": user})
}
