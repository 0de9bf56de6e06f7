// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/ninjaCoderr/social-app-backend/internal/services"
	"github.com/ninjaCoderr/social-app-backend/internal/transport/httpdto"
	"github.com/ninjaCoderr/social-app-backend/internal/validation"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"
	"github.com/ninjaCoderr/social-app-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: l}
}

// Signup handles user registration. Validation failures answer with a map
// of field name to message; conflicts answer with the fixed messages the
// clients key on.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	valid, fieldErrors := validation.ValidateSignupData(validation.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Handle:          req.Handle,
	})
	if !valid {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	token, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Handle:   req.Handle,
	})
	if err != nil {
		switch {
		case errors.Is(err, social_errors.ErrHandleTaken):
			c.JSON(http.StatusBadRequest, gin.H{"handle": "this handle is already taken"})
		case errors.Is(err, social_errors.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"email": "Email already in use"})
		default:
			h.logger.Errorf("signup failed: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, httpdto.TokenResponse{Token: token})
}

// Login handles user authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	valid, fieldErrors := validation.ValidateLoginData(validation.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if !valid {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	token, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, social_errors.ErrWrongCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"general": "wrong credentials, please try again"})
			return
		}
		h.logger.Errorf("login failed: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpdto.TokenResponse{Token: token})
}
