package handlers

import (
	"net/http"

	"mailops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler handles HTTP requests for servers, proxies, RDPs and seed emails
type ResourceHandler struct {
	resources service.ResourceServiceInterface
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resources service.ResourceServiceInterface) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// CreateResource handles POST /resources/:kind
// @Summary Create a resource
// @Description Create a resource owned by the caller in the caller's team. The body holds the kind's payload columns.
// @Tags resources
// @Accept json
// @Produce json
// @Param kind path string true "Resource kind" Enums(servers, proxies, rdps, seed-emails)
// @Param resource body map[string]string true "Payload columns"
// @Success 201 {object} map[string]interface{} "Created resource"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "Duplicate in team"
// @Security BearerAuth
// @Router /resources/{kind} [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resource, err := h.resources.Create(c.Request.Context(), kind, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resource)
}

// GetResource handles GET /resources/:kind/:id
// @Summary Get a resource
// @Tags resources
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID (UUID)"
// @Success 200 {object} map[string]interface{} "Resource"
// @Failure 400 {object} ErrorResponse "Invalid kind or ID"
// @Failure 403 {object} ErrorResponse "Outside the caller's scope"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Security BearerAuth
// @Router /resources/{kind}/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resource, err := h.resources.Get(c.Request.Context(), kind, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resource)
}

// ListResources handles GET /resources/:kind
// @Summary List resources
// @Description Admins see every team (optionally one via team_id), team leaders their team, mailers their own resources.
// @Tags resources
// @Produce json
// @Param kind path string true "Resource kind"
// @Param status query string false "Status filter"
// @Param team_id query string false "Team filter (admin only)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} ListResponse "Resources"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /resources/{kind} [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	teamID, ok := optionalUUID(c, "team_id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	items, total, err := h.resources.List(c.Request.Context(), kind, service.ResourceListQuery{
		Status: c.Query("status"),
		TeamID: teamID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Items: items, Total: total, Limit: limit, Offset: offset})
}

// UpdateResource handles PATCH /resources/:kind/:id
// @Summary Update resource fields
// @Description Update payload columns only; status changes go through the lifecycle endpoints.
// @Tags resources
// @Accept json
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID (UUID)"
// @Param fields body map[string]string true "Columns to change"
// @Success 200 {object} map[string]interface{} "Updated resource"
// @Failure 400 {object} ErrorResponse "Invalid fields"
// @Failure 403 {object} ErrorResponse "Outside the caller's scope"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Failure 409 {object} ErrorResponse "Duplicate in team"
// @Security BearerAuth
// @Router /resources/{kind}/{id} [patch]
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resource, err := h.resources.Update(c.Request.Context(), kind, id, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resource)
}

// DeleteResource handles DELETE /resources/:kind/:id
// @Summary Delete a resource
// @Tags resources
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "Outside the caller's scope"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Security BearerAuth
// @Router /resources/{kind}/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.resources.Delete(c.Request.Context(), kind, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
