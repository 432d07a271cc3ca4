package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mailops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile; the email is stored lower-cased
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := checkRole(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email, case-insensitively
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		First(&profile, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	if err := checkRole(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// List retrieves profiles with optional role and team filters
func (r *ProfileRepository) List(ctx context.Context, filter ProfileFilter) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Profile{})
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, 0, err
	}
	for i := range profiles {
		if err := checkRole(&profiles[i]); err != nil {
			return nil, 0, err
		}
	}

	return profiles, total, nil
}

// UpdateDisplayName changes the display name of a profile
func (r *ProfileRepository) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) error {
	return r.updates(ctx, id, map[string]interface{}{
		"display_name": displayName,
	})
}

// UpdateRoleAndTeam sets the role and team assignment of a profile. A nil team clears the assignment.
func (r *ProfileRepository) UpdateRoleAndTeam(ctx context.Context, id uuid.UUID, role models.Role, teamID *uuid.UUID) error {
	return r.updates(ctx, id, map[string]interface{}{
		"role":    role,
		"team_id": teamID,
	})
}

// Delete deletes a profile
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByTeam returns the number of profiles assigned to a team
func (r *ProfileRepository) CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Profile{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

func (r *ProfileRepository) updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func checkRole(profile *models.Profile) error {
	if !profile.Role.IsValid() {
		return fmt.Errorf("%w: role %q on profile %s", ErrUnknownStoredValue, profile.Role, profile.ID)
	}
	return nil
}
