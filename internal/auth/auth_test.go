package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-session-tests"

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(testSecret, time.Hour)
	require.NoError(t, err)
	return service
}

func testProfile() *models.Profile {
	return &models.Profile{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "mailer@example.com",
		Role:      models.RoleMailer,
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)

	assert.NotEqual(t, "correct-horse-battery", hash)
	assert.True(t, VerifyPassword(hash, "correct-horse-battery"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "correct-horse-battery"))
}

func TestNewAuthServiceValidation(t *testing.T) {
	_, err := NewAuthService("", time.Hour)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")

	_, err = NewAuthService(testSecret, 0)
	assert.Error(t, err)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service := newTestService(t)
	profile := testProfile()

	token, expiresAt, err := service.GenerateJWT(profile)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID.String(), claims.UserID)
	assert.Equal(t, profile.Email, claims.Email)
	assert.Equal(t, profile.ID.String(), claims.Subject)
}

func TestValidateJWTRejects(t *testing.T) {
	service := newTestService(t)
	token, _, err := service.GenerateJWT(testProfile())
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		other, err := NewAuthService("another-secret-entirely-0123456789", time.Hour)
		require.NoError(t, err)
		_, err = other.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := newTestService(t)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("non-uuid subject", func(t *testing.T) {
		claims := &AuthClaims{
			UserID: "12345",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = service.ValidateJWT(signed)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})
}

func TestContextUserID(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	got, ok := UserIDFromContext(ContextWithUserID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func newMiddlewareRouter(t *testing.T, service *AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(service).RequireAuth(), func(c *gin.Context) {
		fromGin, _ := GetUserID(c)
		fromCtx, _ := UserIDFromContext(c.Request.Context())
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"gin": fromGin, "ctx": fromCtx, "email": email})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	service := newTestService(t)
	router := newMiddlewareRouter(t, service)
	profile := testProfile()
	token, _, err := service.GenerateJWT(profile)
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, profile.ID.String(), body["gin"])
		assert.Equal(t, profile.ID.String(), body["ctx"])
		assert.Equal(t, profile.Email, body["email"])
	})

	t.Run("session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authentication required")
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired session")
	})
}

type stubAuthenticator struct {
	profile *models.Profile
	err     error
}

func (s *stubAuthenticator) Signup(_ context.Context, displayName, email, _ string) (*models.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Profile{DisplayName: displayName, Email: email, Role: models.RolePendingApproval}, nil
}

func (s *stubAuthenticator) Authenticate(context.Context, string, string) (*models.Profile, error) {
	return s.profile, s.err
}

func newHandlerRouter(users Authenticator, service *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(users, service, false)
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupHandler(t *testing.T) {
	service := newTestService(t)

	t.Run("created as pending", func(t *testing.T) {
		router := newHandlerRouter(&stubAuthenticator{}, service)
		w := postJSON(router, "/signup", `{"display_name":"Jane","email":"jane@example.com","password":"long-enough-pw"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"pending_approval"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("short password", func(t *testing.T) {
		router := newHandlerRouter(&stubAuthenticator{}, service)
		w := postJSON(router, "/signup", `{"display_name":"Jane","email":"jane@example.com","password":"short"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		router := newHandlerRouter(&stubAuthenticator{err: apperrors.ErrUserExists}, service)
		w := postJSON(router, "/signup", `{"display_name":"Jane","email":"jane@example.com","password":"long-enough-pw"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	service := newTestService(t)

	t.Run("sets session cookie", func(t *testing.T) {
		profile := testProfile()
		router := newHandlerRouter(&stubAuthenticator{profile: profile}, service)
		w := postJSON(router, "/login", `{"email":"mailer@example.com","password":"whatever"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Bearer", resp.TokenType)

		claims, err := service.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, profile.ID.String(), claims.UserID)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, SessionCookieName, cookies[0].Name)
		assert.Equal(t, resp.AccessToken, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("bad credentials", func(t *testing.T) {
		router := newHandlerRouter(&stubAuthenticator{err: apperrors.ErrInvalidCredentials}, service)
		w := postJSON(router, "/login", `{"email":"mailer@example.com","password":"whatever"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestLogoutHandlerClearsCookie(t *testing.T) {
	router := newHandlerRouter(&stubAuthenticator{}, newTestService(t))
	w := postJSON(router, "/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
