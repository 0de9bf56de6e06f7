package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/ninjaCoderr/social-app-backend/internal/services"
	"github.com/ninjaCoderr/social-app-backend/internal/transport/httpdto"
	"github.com/ninjaCoderr/social-app-backend/internal/validation"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"
	"github.com/ninjaCoderr/social-app-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserHandler handles the authenticated profile endpoints.
type UserHandler struct {
	service *services.UserService
	logger  *logger.Logger
}

func NewUserHandler(service *services.UserService, l *logger.Logger) *UserHandler {
	return &UserHandler{service: service, logger: l}
}

// UpdateDetails applies an allow-listed partial update to the caller's
// profile document.
func (h *UserHandler) UpdateDetails(c *gin.Context) {
	handle, ok := services.HandleFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req httpdto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	details := validation.ReduceUserDetails(req.Bio, req.Website, req.Location)
	if err := h.service.UpdateDetails(c.Request.Context(), handle, details); err != nil {
		h.logger.Errorf("update details failed: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Details added successfully"})
}

// GetProfile returns the caller's user document and their like records.
// A missing document answers 404 instead of silently returning likes only.
func (h *UserHandler) GetProfile(c *gin.Context) {
	handle, ok := services.HandleFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), handle)
	if err != nil {
		if errors.Is(err, social_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Errorf("get profile failed: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpdto.ProfileResponse{
		Credentials: httpdto.FromUser(profile.Credentials),
		Likes:       httpdto.FromLikeSlice(profile.Likes),
	})
}

// UploadImage streams the first file field of a multipart body through the
// avatar pipeline. A wrong declared content type is rejected before any
// byte is written.
func (h *UserHandler) UploadImage(c *gin.Context) {
	handle, ok := services.HandleFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	reader, err := c.Request.MultipartReader()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	part, err := nextFilePart(reader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file submitted"})
		return
	}
	defer part.Close()

	err = h.service.SaveAvatar(c.Request.Context(), handle, services.AvatarUpload{
		FileName:    part.FileName(),
		ContentType: part.Header.Get("Content-Type"),
		Body:        part,
	})
	if err != nil {
		if errors.Is(err, social_errors.ErrWrongFileType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wrong file type submitted"})
			return
		}
		h.logger.Errorf("image upload failed: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded successfully"})
}

// nextFilePart advances to the first part that carries a file.
func nextFilePart(reader *multipart.Reader) (*multipart.Part, error) {
	for {
		part, err := reader.NextPart()
		if err != nil {
			return nil, err
		}
		if part.FileName() != "" {
			return part, nil
		}
		part.Close()
	}
}
