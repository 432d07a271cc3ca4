package service

import (
	"context"
	"errors"

	"mailops-backend/internal/auth"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Caller is the identity and authority of the current request, loaded from the stored profile
type Caller struct {
	ID     uuid.UUID
	Email  string
	Role   models.Role
	TeamID *uuid.UUID
}

// IsAdmin reports whether the caller is an admin
func (c *Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// InTeam reports whether the caller belongs to the team
func (c *Caller) InTeam(teamID uuid.UUID) bool {
	return c.TeamID != nil && *c.TeamID == teamID
}

// CallerResolver turns the authenticated profile id in a request context into a Caller.
// Role and team are re-read on every call so a demotion takes effect immediately.
type CallerResolver struct {
	profiles repository.ProfileRepositoryInterface
}

// NewCallerResolver creates a new caller resolver
func NewCallerResolver(profiles repository.ProfileRepositoryInterface) *CallerResolver {
	return &CallerResolver{profiles: profiles}
}

// Resolve loads the caller of the request
func (r *CallerResolver) Resolve(ctx context.Context) (*Caller, error) {
	id, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}

	profile, err := r.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, apperrors.NewPersistenceError("load caller profile", err)
	}

	return &Caller{
		ID:     profile.ID,
		Email:  profile.Email,
		Role:   profile.Role,
		TeamID: profile.TeamID,
	}, nil
}

// requireTeamMember passes approved mailers and team leaders that are assigned to a team
func requireTeamMember(c *Caller) error {
	if c.Role != models.RoleMailer && c.Role != models.RoleTeamLeader {
		return apperrors.ErrForbiddenRole
	}
	if c.TeamID == nil {
		return apperrors.ErrUserNotAssignedToTeam
	}
	return nil
}

// requireApproved passes admins and team members; pending profiles are refused
func requireApproved(c *Caller) error {
	if c.IsAdmin() {
		return nil
	}
	return requireTeamMember(c)
}

// requireLeader passes team leaders assigned to a team
func requireLeader(c *Caller) error {
	if c.Role != models.RoleTeamLeader {
		return apperrors.ErrForbiddenRole
	}
	if c.TeamID == nil {
		return apperrors.ErrUserNotAssignedToTeam
	}
	return nil
}

// requireAdmin passes admins only
func requireAdmin(c *Caller) error {
	if !c.IsAdmin() {
		return apperrors.ErrForbiddenRole
	}
	return nil
}

// authorizeResource checks that the caller may act on the resource.
// Admins act on any team, team leaders on their own team, mailers only on what they own.
func authorizeResource(c *Caller, core *models.ResourceCore) error {
	if c.IsAdmin() {
		return nil
	}
	if !c.InTeam(core.TeamID) {
		return apperrors.ErrForbiddenTeamMismatch
	}
	if c.Role == models.RoleMailer && core.OwnerMailerID != c.ID {
		return apperrors.ErrForbiddenNotOwner
	}
	return nil
}

// scopeTeam is the team every write is constrained to: the caller's own team, or the
// resource's team for admins
func scopeTeam(c *Caller, core *models.ResourceCore) uuid.UUID {
	if c.IsAdmin() || c.TeamID == nil {
		return core.TeamID
	}
	return *c.TeamID
}

// lookupError maps a repository read failure for a resource
func lookupError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrResourceNotFound
	}
	return apperrors.NewPersistenceError(op, err)
}
