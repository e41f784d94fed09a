package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/blabla/internal/handlers/dto"
	"github.com/thereayou/blabla/internal/middleware"
	"github.com/thereayou/blabla/internal/services"
	"github.com/thereayou/blabla/internal/uploads"
)

type UserHandler struct {
	svc     *services.AuthService
	uploads *uploads.Store
}

func NewUserHandler(svc *services.AuthService, up *uploads.Store) *UserHandler {
	return &UserHandler{svc: svc, uploads: up}
}

// GetProfile возвращает публичный профиль владельца токена
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	profile, err := h.svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile меняет username и bio
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.UpdateProfile(c.Request.Context(), userID, req.Username, req.Bio); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!"})
}

// UploadProfilePicture принимает multipart файл, проверяет тип и кладёт
// его в хранилище; в базу записывается только имя файла
func (h *UserHandler) UploadProfilePicture(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	file, err := c.FormFile("profilePic")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded!"})
		return
	}

	filename, err := h.uploads.Filename(file.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := c.SaveUploadedFile(file, h.uploads.Path(filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	if _, err := h.svc.UpdateProfilePicture(c.Request.Context(), userID, filename); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Profile picture updated!",
		"profile_pic": "/uploads/" + filename,
	})
}
