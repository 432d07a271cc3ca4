package service

import (
	"context"
	"errors"
	"strings"

	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	callers   *CallerResolver
	repo      repository.TeamRepositoryInterface
	profiles  repository.ProfileRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(callers *CallerResolver, repo repository.TeamRepositoryInterface, profiles repository.ProfileRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		callers:   callers,
		repo:      repo,
		profiles:  profiles,
		validator: validator,
	}
}

// TeamRequest represents the request to create or update a team
type TeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100" example:"Team Falcon"`
	Description string `json:"description" validate:"max=500" example:"EU sending team"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []models.Team `json:"teams"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Create creates a new team
func (s *TeamService) Create(ctx context.Context, req *TeamRequest) (*models.Team, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}

	// Check if team with same name exists
	if err := s.checkNameFree(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, apperrors.NewPersistenceError("create team", err)
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("team created")
	return team, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

// GetAll retrieves teams with pagination
func (s *TeamService) GetAll(ctx context.Context, page, pageSize int) (*TeamListResponse, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	teams, total, err := s.repo.GetAll(ctx, pageSize, offset)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list teams", err)
	}

	return &TeamListResponse{
		Teams:    teams,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update renames a team or changes its description
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *TeamRequest) (*models.Team, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}

	team, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if team.Name != req.Name {
		if err := s.checkNameFree(ctx, req.Name, id); err != nil {
			return nil, err
		}
	}

	team.Name = req.Name
	team.Description = req.Description
	if err := s.repo.Update(ctx, team); err != nil {
		return nil, apperrors.NewPersistenceError("update team", err)
	}
	return team, nil
}

// Delete removes a team that no longer has members
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.authorize(ctx); err != nil {
		return err
	}

	members, err := s.profiles.CountByTeam(ctx, id)
	if err != nil {
		return apperrors.NewPersistenceError("count team members", err)
	}
	if members > 0 {
		return apperrors.ErrTeamHasMembers
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return apperrors.NewPersistenceError("delete team", err)
	}

	logger.WithContext(ctx).WithField("team_id", id).Info("team deleted")
	return nil
}

// authorize passes admins only; every team operation is an admin operation
func (s *TeamService) authorize(ctx context.Context) error {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return err
	}
	return requireAdmin(caller)
}

func (s *TeamService) load(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewPersistenceError("load team", err)
	}
	return team, nil
}

func (s *TeamService) checkNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewPersistenceError("check existing team", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrTeamExists
	}
	return nil
}
