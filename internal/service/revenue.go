package service

import (
	"context"
	"strings"
	"time"

	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LogRevenueRequest represents a mailer's revenue for one day
type LogRevenueRequest struct {
	// RevenueDate defaults to today when empty
	RevenueDate string  `json:"revenue_date" validate:"omitempty,datetime=2006-01-02" example:"2026-03-14"`
	Amount      float64 `json:"amount" validate:"gte=0" example:"125.50"`
	Notes       string  `json:"notes" validate:"max=500"`
}

// RevenueQuery narrows a revenue listing; dates are inclusive
type RevenueQuery struct {
	From     string
	To       string
	MailerID *uuid.UUID
	TeamID   *uuid.UUID
	Limit    int
	Offset   int
}

// RevenueService records and reports daily revenue
type RevenueService struct {
	callers   *CallerResolver
	repo      repository.RevenueRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewRevenueService creates a new revenue service
func NewRevenueService(callers *CallerResolver, repo repository.RevenueRepositoryInterface, validator *validator.Validate) *RevenueService {
	return &RevenueService{
		callers:   callers,
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to decide what "today" is
func (s *RevenueService) WithClock(now func() time.Time) *RevenueService {
	s.now = now
	return s
}

// Log records the caller's revenue for a day. Logging the same day again replaces it.
func (s *RevenueService) Log(ctx context.Context, req *LogRevenueRequest) (*models.DailyRevenue, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleMailer {
		return nil, apperrors.ErrForbiddenRole
	}
	if caller.TeamID == nil {
		return nil, apperrors.ErrUserNotAssignedToTeam
	}

	req.RevenueDate = strings.TrimSpace(req.RevenueDate)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("revenue", err.Error())
	}

	today := s.now().Format(models.RevenueDateLayout)
	date := req.RevenueDate
	if date == "" {
		date = today
	}
	// Same-layout dates compare correctly as strings
	if date > today {
		return nil, apperrors.ErrRevenueDateInFuture
	}

	entry := &models.DailyRevenue{
		MailerID:    caller.ID,
		TeamID:      *caller.TeamID,
		RevenueDate: date,
		Amount:      req.Amount,
		Notes:       req.Notes,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, apperrors.NewPersistenceError("log revenue", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"revenue_date": date,
		"amount":       req.Amount,
	}).Info("revenue logged")
	return entry, nil
}

// List returns revenue rows visible to the caller: own rows for mailers, the team for
// team leaders, everything for admins
func (s *RevenueService) List(ctx context.Context, query RevenueQuery) ([]models.DailyRevenue, int64, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := requireApproved(caller); err != nil {
		return nil, 0, err
	}
	if err := validateDateRange(query.From, query.To); err != nil {
		return nil, 0, err
	}

	filter := repository.RevenueFilter{
		From:   query.From,
		To:     query.To,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	switch caller.Role {
	case models.RoleAdmin:
		filter.TeamID = query.TeamID
		filter.MailerID = query.MailerID
	case models.RoleTeamLeader:
		filter.TeamID = caller.TeamID
		filter.MailerID = query.MailerID
	default:
		filter.TeamID = caller.TeamID
		filter.MailerID = &caller.ID
	}

	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewPersistenceError("list revenue", err)
	}
	return entries, total, nil
}

// Summary totals revenue per mailer of a team. Team leaders always get their own team;
// admins must name one.
func (s *RevenueService) Summary(ctx context.Context, teamID *uuid.UUID, from, to string) ([]repository.MailerRevenueTotal, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	var team uuid.UUID
	switch {
	case caller.IsAdmin():
		if teamID == nil {
			return nil, apperrors.NewValidationError("team_id", "is required")
		}
		team = *teamID
	case requireLeader(caller) == nil:
		if teamID != nil && *teamID != *caller.TeamID {
			return nil, apperrors.ErrForbiddenTeamMismatch
		}
		team = *caller.TeamID
	default:
		return nil, apperrors.ErrForbiddenRole
	}

	totals, err := s.repo.SummaryByMailer(ctx, team, from, to)
	if err != nil {
		return nil, apperrors.NewPersistenceError("summarize revenue", err)
	}
	return totals, nil
}

func validateDateRange(from, to string) error {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(models.RevenueDateLayout, d); err != nil {
			return apperrors.ErrInvalidDateRange
		}
	}
	if from != "" && to != "" && from > to {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}
