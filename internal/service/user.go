package service

import (
	"context"
	"errors"
	"strings"

	"mailops-backend/internal/auth"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateMeRequest represents the fields a user may change on their own profile
type UpdateMeRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=100" example:"Jane Mailer"`
}

// AssignRoleRequest grants an approved role and, for team members, a team
type AssignRoleRequest struct {
	Role   string     `json:"role" validate:"required,oneof=admin team-leader mailer" example:"mailer"`
	TeamID *uuid.UUID `json:"team_id,omitempty"`
}

// UserListQuery narrows the admin user listing
type UserListQuery struct {
	Role   string
	TeamID *uuid.UUID
	Limit  int
	Offset int
}

// UserService handles sign-up, login lookups and profile administration
type UserService struct {
	callers   *CallerResolver
	profiles  repository.ProfileRepositoryInterface
	teams     repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(callers *CallerResolver, profiles repository.ProfileRepositoryInterface, teams repository.TeamRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		callers:   callers,
		profiles:  profiles,
		teams:     teams,
		validator: validator,
	}
}

var _ auth.Authenticator = (*UserService)(nil)

// Signup creates a profile awaiting admin approval
func (s *UserService) Signup(ctx context.Context, displayName, email, password string) (*models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	displayName = strings.TrimSpace(displayName)
	if err := s.validator.Var(email, "required,email,max=255"); err != nil {
		return nil, apperrors.NewValidationError("email", "must be an email address")
	}
	if displayName == "" {
		return nil, apperrors.NewValidationError("display_name", "is required")
	}

	existing, err := s.profiles.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewPersistenceError("check existing profile", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	profile := &models.Profile{
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RolePendingApproval,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, apperrors.NewPersistenceError("create profile", err)
	}

	logger.WithContext(ctx).WithField("profile_id", profile.ID).Info("profile signed up, awaiting approval")
	return profile, nil
}

// Authenticate checks credentials. An unknown email and a wrong password are indistinguishable.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.Profile, error) {
	profile, err := s.profiles.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewPersistenceError("load profile", err)
	}
	if !auth.VerifyPassword(profile.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return profile, nil
}

// Me returns the caller's own profile; pending users may read it
func (s *UserService) Me(ctx context.Context) (*models.Profile, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, caller.ID)
}

// UpdateMe changes the caller's display name
func (s *UserService) UpdateMe(ctx context.Context, req *UpdateMeRequest) (*models.Profile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("display_name", err.Error())
	}
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.UpdateDisplayName(ctx, caller.ID, strings.TrimSpace(req.DisplayName)); err != nil {
		return nil, profileWriteError("update profile", err)
	}
	return s.load(ctx, caller.ID)
}

// ListUsers lists profiles for admins, optionally by role or team
func (s *UserService) ListUsers(ctx context.Context, query UserListQuery) ([]models.Profile, int64, error) {
	if err := s.requireAdminCaller(ctx); err != nil {
		return nil, 0, err
	}

	filter := repository.ProfileFilter{TeamID: query.TeamID, Limit: query.Limit, Offset: query.Offset}
	if query.Role != "" {
		role, err := models.ParseRole(query.Role)
		if err != nil {
			return nil, 0, apperrors.NewValidationError("role", err.Error())
		}
		filter.Role = &role
	}

	profiles, total, err := s.profiles.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewPersistenceError("list profiles", err)
	}
	return profiles, total, nil
}

// ApproveUser grants a pending profile its first role
func (s *UserService) ApproveUser(ctx context.Context, id uuid.UUID, req *AssignRoleRequest) (*models.Profile, error) {
	if err := s.requireAdminCaller(ctx); err != nil {
		return nil, err
	}

	target, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.Role != models.RolePendingApproval {
		return nil, apperrors.NewValidationError("role", "user is already approved")
	}
	return s.assign(ctx, target, req)
}

// UpdateUser changes the role or team of an approved profile
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *AssignRoleRequest) (*models.Profile, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if caller.ID == id {
		return nil, apperrors.NewValidationError("id", "admins cannot change their own role")
	}

	target, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assign(ctx, target, req)
}

// DeleteUser removes a profile
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return err
	}
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if caller.ID == id {
		return apperrors.NewValidationError("id", "admins cannot delete themselves")
	}

	if err := s.profiles.Delete(ctx, id); err != nil {
		return profileWriteError("delete profile", err)
	}
	logger.WithContext(ctx).WithField("profile_id", id).Info("profile deleted")
	return nil
}

// ListTeamMembers lists the profiles of the team leader's own team
func (s *UserService) ListTeamMembers(ctx context.Context) ([]models.Profile, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireLeader(caller); err != nil {
		return nil, err
	}

	profiles, _, err := s.profiles.List(ctx, repository.ProfileFilter{TeamID: caller.TeamID})
	if err != nil {
		return nil, apperrors.NewPersistenceError("list team members", err)
	}
	return profiles, nil
}

func (s *UserService) assign(ctx context.Context, target *models.Profile, req *AssignRoleRequest) (*models.Profile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("role", "must be one of admin, team-leader, mailer")
	}
	role := models.Role(req.Role)

	teamID := req.TeamID
	if role == models.RoleAdmin {
		// Admins are not scoped to a team
		teamID = nil
	} else {
		if teamID == nil {
			return nil, apperrors.NewValidationError("team_id", "is required for "+req.Role)
		}
		if _, err := s.teams.GetByID(ctx, *teamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, apperrors.NewPersistenceError("load team", err)
		}
	}

	if err := s.profiles.UpdateRoleAndTeam(ctx, target.ID, role, teamID); err != nil {
		return nil, profileWriteError("update profile role", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"profile_id": target.ID,
		"role":       role,
		"team_id":    teamID,
	}).Info("profile role assigned")
	return s.load(ctx, target.ID)
}

func (s *UserService) requireAdminCaller(ctx context.Context) error {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return err
	}
	return requireAdmin(caller)
}

func (s *UserService) load(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewPersistenceError("load profile", err)
	}
	return profile, nil
}

func profileWriteError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrUserNotFound
	}
	return apperrors.NewPersistenceError(op, err)
}
