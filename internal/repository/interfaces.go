package repository

import (
	"context"
	"time"

	"mailops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ResourceFilter narrows resource listings. Nil fields are not applied.
type ResourceFilter struct {
	TeamID  *uuid.UUID
	OwnerID *uuid.UUID
	Status  *models.ResourceStatus
	Limit   int
	Offset  int
}

// ProfileFilter narrows profile listings. Nil fields are not applied.
type ProfileFilter struct {
	Role   *models.Role
	TeamID *uuid.UUID
	Limit  int
	Offset int
}

// RevenueFilter narrows revenue listings; dates use models.RevenueDateLayout
type RevenueFilter struct {
	MailerID *uuid.UUID
	TeamID   *uuid.UUID
	From     string
	To       string
	Limit    int
	Offset   int
}

// MailerRevenueTotal is the summed revenue of one mailer over a date range
type MailerRevenueTotal struct {
	MailerID uuid.UUID `json:"mailer_id"`
	Days     int64     `json:"days"`
	Total    float64   `json:"total"`
}

// ResourceRepositoryInterface is the table-scoped contract over servers, proxies, rdps and seed_emails
type ResourceRepositoryInterface interface {
	Create(ctx context.Context, resource models.Resource) error
	GetByID(ctx context.Context, kind models.ResourceKind, id uuid.UUID) (models.Resource, error)
	List(ctx context.Context, kind models.ResourceKind, filter ResourceFilter) ([]models.Resource, int64, error)
	// UpdateFields writes payload columns on the row matching id and team, returning affected rows
	UpdateFields(ctx context.Context, kind models.ResourceKind, id, teamID uuid.UUID, fields map[string]interface{}) (int64, error)
	// TransitionStatus moves a row from one status to another only if id, team and current status all match
	TransitionStatus(ctx context.Context, kind models.ResourceKind, id, teamID uuid.UUID, from, to models.ResourceStatus) (int64, error)
	Delete(ctx context.Context, kind models.ResourceKind, id, teamID uuid.UUID) (int64, error)
	// ExistingKeys returns which of the given dedupe keys are already used in the team
	ExistingKeys(ctx context.Context, kind models.ResourceKind, teamID uuid.UUID, keys []string) ([]string, error)
	CountPendingOlderThan(ctx context.Context, kind models.ResourceKind, before time.Time) (map[uuid.UUID]int64, error)
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	List(ctx context.Context, filter ProfileFilter) ([]models.Profile, int64, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) error
	UpdateRoleAndTeam(ctx context.Context, id uuid.UUID, role models.Role, teamID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Team, int64, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RevenueRepositoryInterface defines the interface for daily revenue operations
type RevenueRepositoryInterface interface {
	// Upsert inserts the entry or replaces amount and notes of the mailer's row for that date
	Upsert(ctx context.Context, entry *models.DailyRevenue) error
	List(ctx context.Context, filter RevenueFilter) ([]models.DailyRevenue, int64, error)
	SummaryByMailer(ctx context.Context, teamID uuid.UUID, from, to string) ([]MailerRevenueTotal, error)
}
