package handlers

import (
	"net/http"

	"mailops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RevenueHandler handles daily revenue logging and reporting
type RevenueHandler struct {
	revenue service.RevenueServiceInterface
}

// NewRevenueHandler creates a new revenue handler
func NewRevenueHandler(revenue service.RevenueServiceInterface) *RevenueHandler {
	return &RevenueHandler{revenue: revenue}
}

// LogRevenue handles POST /revenue
// @Summary Log the caller's revenue for a day
// @Description Mailers only. Logging the same day twice replaces the first entry.
// @Tags revenue
// @Accept json
// @Produce json
// @Param request body service.LogRevenueRequest true "Revenue entry"
// @Success 201 {object} models.DailyRevenue "Logged entry"
// @Failure 400 {object} ErrorResponse "Invalid entry or future date"
// @Failure 403 {object} ErrorResponse "Mailers only"
// @Security BearerAuth
// @Router /revenue [post]
func (h *RevenueHandler) LogRevenue(c *gin.Context) {
	var req service.LogRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.revenue.Log(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListRevenue handles GET /revenue
// @Summary List revenue entries
// @Tags revenue
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param mailer_id query string false "Mailer filter (leaders and admins)"
// @Param team_id query string false "Team filter (admins)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} ListResponse "Entries"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Security BearerAuth
// @Router /revenue [get]
func (h *RevenueHandler) ListRevenue(c *gin.Context) {
	mailerID, ok := optionalUUID(c, "mailer_id")
	if !ok {
		return
	}
	teamID, ok := optionalUUID(c, "team_id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	entries, total, err := h.revenue.List(c.Request.Context(), service.RevenueQuery{
		From:     c.Query("from"),
		To:       c.Query("to"),
		MailerID: mailerID,
		TeamID:   teamID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Items: entries, Total: total, Limit: limit, Offset: offset})
}

// RevenueSummary handles GET /revenue/summary
// @Summary Revenue totals per mailer of a team
// @Tags revenue
// @Produce json
// @Param team_id query string false "Team (required for admins)"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {array} repository.MailerRevenueTotal "Totals"
// @Failure 403 {object} ErrorResponse "Team leaders and admins only"
// @Security BearerAuth
// @Router /revenue/summary [get]
func (h *RevenueHandler) RevenueSummary(c *gin.Context) {
	teamID, ok := optionalUUID(c, "team_id")
	if !ok {
		return
	}

	totals, err := h.revenue.Summary(c.Request.Context(), teamID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
