package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// ListResponse is a page of items with the total number of matches
type ListResponse struct {
	Items  interface{} `json:"items"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// respondError maps the service error taxonomy onto HTTP status codes.
// Persistence failures are logged here and answered with a generic message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsAlreadyExists(err), apperrors.IsInvalidState(err), apperrors.IsAlreadyProcessed(err):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrTeamHasMembers):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// resultStatus maps a lifecycle result code onto an HTTP status
func resultStatus(code service.ResultCode) int {
	switch code {
	case service.CodeOK:
		return http.StatusOK
	case service.CodeUnauthenticated:
		return http.StatusUnauthorized
	case service.CodeForbidden:
		return http.StatusForbidden
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeInvalidRequest:
		return http.StatusBadRequest
	case service.CodeInvalidState, service.CodeAlreadyProcessed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseKind(c *gin.Context) (models.ResourceKind, bool) {
	kind, err := models.ParseResourceKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidResourceKind.Error()})
		return "", false
	}
	return kind, true
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID reads a uuid query parameter; an empty value yields nil
func optionalUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return nil, false
	}
	return &id, true
}

// pagination reads limit and offset, falling back to defaults on bad input
func pagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
