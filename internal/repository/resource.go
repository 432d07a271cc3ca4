package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mailops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUnknownStoredValue is returned when a row carries an enum value this service does not know
var ErrUnknownStoredValue = errors.New("stored value is not a known enum value")

// ResourceRepository handles database operations for all resource tables
type ResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) table(ctx context.Context, kind models.ResourceKind) (*gorm.DB, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
	return r.db.WithContext(ctx).Table(kind.TableName()), nil
}

// Create inserts a new resource row
func (r *ResourceRepository) Create(ctx context.Context, resource models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

// GetByID retrieves a resource by ID, returning gorm.ErrRecordNotFound when absent
func (r *ResourceRepository) GetByID(ctx context.Context, kind models.ResourceKind, id uuid.UUID) (models.Resource, error) {
	resource := models.NewResource(kind)
	if resource == nil {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
	if err := r.db.WithContext(ctx).First(resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := checkStatus(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// List retrieves resources of a kind with pagination
func (r *ResourceRepository) List(ctx context.Context, kind models.ResourceKind, filter ResourceFilter) ([]models.Resource, int64, error) {
	query, err := r.table(ctx, kind)
	if err != nil {
		return nil, 0, err
	}

	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_mailer_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	resources, err := findResources(query, kind)
	if err != nil {
		return nil, 0, err
	}
	for _, resource := range resources {
		if err := checkStatus(resource); err != nil {
			return nil, 0, err
		}
	}
	return resources, total, nil
}

// UpdateFields writes payload columns and bumps updated_at
func (r *ResourceRepository) UpdateFields(ctx context.Context, kind models.ResourceKind, id, teamID uuid.UUID, fields map[string]interface{}) (int64, error) {
	query, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	result := query.Where("id = ? AND team_id = ?", id, teamID).Updates(updates)
	return result.RowsAffected, result.Error
}

// TransitionStatus is the conditional write behind every lifecycle transition.
// Exactly one of several concurrent callers matching the same "from" status sees one affected row.
func (r *ResourceRepository) TransitionStatus(ctx context.Context, kind models.ResourceKind, id, teamID uuid.UUID, from, to models.ResourceStatus) (int64, error) {
	query, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}

	result := query.
		Where("id = ? AND team_id = ? AND status = ?", id, teamID, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// Delete hard-deletes the row matching id and team
func (r *ResourceRepository) Delete(ctx context.Context, kind models.ResourceKind, id, teamID uuid.UUID) (int64, error) {
	resource := models.NewResource(kind)
	if resource == nil {
		return 0, fmt.Errorf("unknown resource kind %q", kind)
	}
	result := r.db.WithContext(ctx).Where("id = ? AND team_id = ?", id, teamID).Delete(resource)
	return result.RowsAffected, result.Error
}

// ExistingKeys returns the subset of keys already present in the team
func (r *ResourceRepository) ExistingKeys(ctx context.Context, kind models.ResourceKind, teamID uuid.UUID, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	query, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	column := kind.KeyColumn()
	var existing []string
	err = query.
		Where("team_id = ?", teamID).
		Where(column+" IN ?", keys).
		Distinct().
		Pluck(column, &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// CountPendingOlderThan counts resources awaiting return approval since before the cutoff, per team
func (r *ResourceRepository) CountPendingOlderThan(ctx context.Context, kind models.ResourceKind, before time.Time) (map[uuid.UUID]int64, error) {
	query, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	type row struct {
		TeamID uuid.UUID
		Count  int64
	}
	var rows []row
	err = query.
		Select("team_id, COUNT(*) AS count").
		Where("status = ? AND updated_at < ?", models.StatusPendingReturnApproval, before).
		Group("team_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.TeamID] = row.Count
	}
	return counts, nil
}

func findResources(query *gorm.DB, kind models.ResourceKind) ([]models.Resource, error) {
	switch kind {
	case models.ResourceKindServer:
		var rows []models.Server
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]models.Resource, len(rows))
		for i := range rows {
			out[i] = &rows[i]
		}
		return out, nil
	case models.ResourceKindProxy:
		var rows []models.Proxy
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]models.Resource, len(rows))
		for i := range rows {
			out[i] = &rows[i]
		}
		return out, nil
	case models.ResourceKindRDP:
		var rows []models.RDP
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]models.Resource, len(rows))
		for i := range rows {
			out[i] = &rows[i]
		}
		return out, nil
	case models.ResourceKindSeedEmail:
		var rows []models.SeedEmail
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]models.Resource, len(rows))
		for i := range rows {
			out[i] = &rows[i]
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown resource kind %q", kind)
}

func checkStatus(resource models.Resource) error {
	status := resource.GetCore().Status
	if !status.IsValidFor(resource.Kind()) {
		return fmt.Errorf("%w: status %q in %s", ErrUnknownStoredValue, status, resource.Kind().TableName())
	}
	return nil
}
