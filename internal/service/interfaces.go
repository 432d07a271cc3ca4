package service

import (
	"context"
	"io"

	"mailops-backend/internal/database/models"
	"mailops-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LifecycleServiceInterface defines the interface for the resource lifecycle engine
type LifecycleServiceInterface interface {
	RequestReturn(ctx context.Context, kind models.ResourceKind, id uuid.UUID) Result
	ApproveReturn(ctx context.Context, kind models.ResourceKind, id uuid.UUID) Result
	RejectReturn(ctx context.Context, kind models.ResourceKind, id uuid.UUID) Result
	SetStatus(ctx context.Context, kind models.ResourceKind, id uuid.UUID, status string) Result
	ListPendingReturns(ctx context.Context) ([]models.Server, error)
}

// ResourceServiceInterface defines the interface for resource service
type ResourceServiceInterface interface {
	Create(ctx context.Context, kind models.ResourceKind, fields map[string]string) (models.Resource, error)
	Get(ctx context.Context, kind models.ResourceKind, id uuid.UUID) (models.Resource, error)
	List(ctx context.Context, kind models.ResourceKind, query ResourceListQuery) ([]models.Resource, int64, error)
	Update(ctx context.Context, kind models.ResourceKind, id uuid.UUID, fields map[string]string) (models.Resource, error)
	Delete(ctx context.Context, kind models.ResourceKind, id uuid.UUID) error
}

// ImportServiceInterface defines the interface for bulk import and export
type ImportServiceInterface interface {
	Import(ctx context.Context, kind models.ResourceKind, format ImportFormat, r io.Reader) (*ImportReport, error)
	Export(ctx context.Context, kind models.ResourceKind) ([]byte, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Me(ctx context.Context) (*models.Profile, error)
	UpdateMe(ctx context.Context, req *UpdateMeRequest) (*models.Profile, error)
	ListUsers(ctx context.Context, query UserListQuery) ([]models.Profile, int64, error)
	ApproveUser(ctx context.Context, id uuid.UUID, req *AssignRoleRequest) (*models.Profile, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *AssignRoleRequest) (*models.Profile, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListTeamMembers(ctx context.Context) ([]models.Profile, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *TeamRequest) (*models.Team, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetAll(ctx context.Context, page, pageSize int) (*TeamListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *TeamRequest) (*models.Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RevenueServiceInterface defines the interface for revenue service
type RevenueServiceInterface interface {
	Log(ctx context.Context, req *LogRevenueRequest) (*models.DailyRevenue, error)
	List(ctx context.Context, query RevenueQuery) ([]models.DailyRevenue, int64, error)
	Summary(ctx context.Context, teamID *uuid.UUID, from, to string) ([]repository.MailerRevenueTotal, error)
}

// Ensure the services implement their interfaces
var (
	_ LifecycleServiceInterface = (*LifecycleService)(nil)
	_ ResourceServiceInterface  = (*ResourceService)(nil)
	_ ImportServiceInterface    = (*ImportService)(nil)
	_ UserServiceInterface      = (*UserService)(nil)
	_ TeamServiceInterface      = (*TeamService)(nil)
	_ RevenueServiceInterface   = (*RevenueService)(nil)
)
