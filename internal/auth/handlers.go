package auth

import (
	"context"
	"net/http"
	"time"

	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Authenticator is the profile store behind sign-up and login
type Authenticator interface {
	Signup(ctx context.Context, displayName, email, password string) (*models.Profile, error)
	Authenticate(ctx context.Context, email, password string) (*models.Profile, error)
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=1,max=100" example:"Jane Mailer"`
	Email       string `json:"email" binding:"required,email,max=255" example:"jane@example.com"`
	Password    string `json:"password" binding:"required,min=8,max=72" example:"correct-horse-battery"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
}

// LoginResponse is returned on successful login; the token is also set as the session cookie
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType" example:"Bearer"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Profile     *models.Profile `json:"profile"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	users         Authenticator
	service       *AuthService
	secureCookies bool
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(users Authenticator, service *AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{users: users, service: service, secureCookies: secureCookies}
}

// Signup handles POST /api/v1/auth/signup
// @Summary Create an account
// @Description Create a profile awaiting admin approval
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account details"
// @Success 201 {object} models.Profile "Profile created with role pending_approval"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.users.Signup(c.Request.Context(), req.DisplayName, req.Email, req.Password)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.WithContext(c.Request.Context()).WithError(err).Error("signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Exchange email and password for a session token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Session token"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token, expiresAt, err := h.service.GenerateJWT(profile)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(h.service.TTL().Seconds()), "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Profile:     profile,
	})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Clear the session cookie. Bearer tokens expire on their own.
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
