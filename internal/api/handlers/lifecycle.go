package handlers

import (
	"context"
	"net/http"

	"mailops-backend/internal/database/models"
	"mailops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetStatusRequest is the body of POST /resources/:kind/:id/status
type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"maintenance"`
}

// LifecycleHandler exposes the resource lifecycle engine
type LifecycleHandler struct {
	lifecycle service.LifecycleServiceInterface
}

// NewLifecycleHandler creates a new lifecycle handler
func NewLifecycleHandler(lifecycle service.LifecycleServiceInterface) *LifecycleHandler {
	return &LifecycleHandler{lifecycle: lifecycle}
}

// RequestReturn handles POST /resources/:kind/:id/return
// @Summary Request a resource return
// @Description Servers move to pending_return_approval; other kinds are returned immediately.
// @Tags lifecycle
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID (UUID)"
// @Success 200 {object} service.Result "Transition applied"
// @Failure 403 {object} service.Result "Forbidden"
// @Failure 404 {object} service.Result "Not found"
// @Failure 409 {object} service.Result "Invalid state or already processed"
// @Security BearerAuth
// @Router /resources/{kind}/{id}/return [post]
func (h *LifecycleHandler) RequestReturn(c *gin.Context) {
	h.transition(c, h.lifecycle.RequestReturn)
}

// ApproveReturn handles POST /resources/:kind/:id/approve-return
// @Summary Approve a pending return
// @Description Team leaders only. The resource must be pending_return_approval.
// @Tags lifecycle
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID (UUID)"
// @Success 200 {object} service.Result "Resource returned"
// @Failure 403 {object} service.Result "Forbidden"
// @Failure 409 {object} service.Result "Invalid state or already processed"
// @Security BearerAuth
// @Router /resources/{kind}/{id}/approve-return [post]
func (h *LifecycleHandler) ApproveReturn(c *gin.Context) {
	h.transition(c, h.lifecycle.ApproveReturn)
}

// RejectReturn handles POST /resources/:kind/:id/reject-return
// @Summary Reject a pending return
// @Description Team leaders only. The resource goes back to active.
// @Tags lifecycle
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID (UUID)"
// @Success 200 {object} service.Result "Resource active again"
// @Failure 403 {object} service.Result "Forbidden"
// @Failure 409 {object} service.Result "Invalid state or already processed"
// @Security BearerAuth
// @Router /resources/{kind}/{id}/reject-return [post]
func (h *LifecycleHandler) RejectReturn(c *gin.Context) {
	h.transition(c, h.lifecycle.RejectReturn)
}

// SetStatus handles POST /resources/:kind/:id/status
// @Summary Change the operational status
// @Description Moves between operational statuses only; returns go through the return endpoints.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param kind path string true "Resource kind"
// @Param id path string true "Resource ID (UUID)"
// @Param request body SetStatusRequest true "Target status"
// @Success 200 {object} service.Result "Status changed"
// @Failure 400 {object} service.Result "Invalid status"
// @Failure 409 {object} service.Result "Invalid state or already processed"
// @Security BearerAuth
// @Router /resources/{kind}/{id}/status [post]
func (h *LifecycleHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, service.Result{Code: service.CodeInvalidRequest, Message: err.Error()})
		return
	}
	h.transition(c, func(ctx context.Context, kind models.ResourceKind, id uuid.UUID) service.Result {
		return h.lifecycle.SetStatus(ctx, kind, id, req.Status)
	})
}

// ListPendingReturns handles GET /returns/pending
// @Summary List servers awaiting return approval
// @Description Team leaders see their team, admins every team.
// @Tags lifecycle
// @Produce json
// @Success 200 {array} models.Server "Pending servers"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /returns/pending [get]
func (h *LifecycleHandler) ListPendingReturns(c *gin.Context) {
	servers, err := h.lifecycle.ListPendingReturns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, servers)
}

func (h *LifecycleHandler) transition(c *gin.Context, op func(ctx context.Context, kind models.ResourceKind, id uuid.UUID) service.Result) {
	kind, err := models.ParseResourceKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, service.Result{Code: service.CodeInvalidRequest, Message: err.Error()})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, service.Result{Code: service.CodeNotFound, Message: "resource not found"})
		return
	}

	result := op(c.Request.Context(), kind, id)
	c.JSON(resultStatus(result.Code), result)
}
