package handlers

import (
	"context"
	"net/http"

	"mailops-backend/internal/database/models"
	"mailops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles the caller's profile and the admin user management endpoints
type UserHandler struct {
	users service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(users service.UserServiceInterface) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe handles GET /me
// @Summary Get the caller's profile
// @Description Available to pending users as well, so the client can show the approval state.
// @Tags users
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	profile, err := h.users.Me(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PATCH /me
// @Summary Update the caller's display name
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.UpdateMeRequest true "New display name"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req service.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.users.UpdateMe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListUsers handles GET /admin/users
// @Summary List users
// @Tags admin
// @Produce json
// @Param role query string false "Role filter" Enums(admin, team-leader, mailer, pending_approval)
// @Param team_id query string false "Team filter"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} ListResponse "Profiles"
// @Failure 403 {object} ErrorResponse "Admins only"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	teamID, ok := optionalUUID(c, "team_id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	profiles, total, err := h.users.ListUsers(c.Request.Context(), service.UserListQuery{
		Role:   c.Query("role"),
		TeamID: teamID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Items: profiles, Total: total, Limit: limit, Offset: offset})
}

// ApproveUser handles POST /admin/users/:id/approve
// @Summary Approve a pending user
// @Description Grants a role; team-leader and mailer also need a team.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param request body service.AssignRoleRequest true "Role and team"
// @Success 200 {object} models.Profile "Approved profile"
// @Failure 400 {object} ErrorResponse "Invalid role or team"
// @Failure 404 {object} ErrorResponse "User or team not found"
// @Security BearerAuth
// @Router /admin/users/{id}/approve [post]
func (h *UserHandler) ApproveUser(c *gin.Context) {
	h.assign(c, h.users.ApproveUser)
}

// UpdateUser handles PATCH /admin/users/:id
// @Summary Change a user's role or team
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param request body service.AssignRoleRequest true "Role and team"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} ErrorResponse "Invalid role or team"
// @Failure 404 {object} ErrorResponse "User or team not found"
// @Security BearerAuth
// @Router /admin/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	h.assign(c, h.users.UpdateUser)
}

// DeleteUser handles DELETE /admin/users/:id
// @Summary Delete a user
// @Tags admin
// @Param id path string true "Profile ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTeamMembers handles GET /teams/mine/members
// @Summary List the members of the caller's team
// @Tags teams
// @Produce json
// @Success 200 {array} models.Profile "Members"
// @Failure 403 {object} ErrorResponse "Team leaders only"
// @Security BearerAuth
// @Router /teams/mine/members [get]
func (h *UserHandler) ListTeamMembers(c *gin.Context) {
	members, err := h.users.ListTeamMembers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *UserHandler) assign(c *gin.Context, op func(context.Context, uuid.UUID, *service.AssignRoleRequest) (*models.Profile, error)) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := op(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
