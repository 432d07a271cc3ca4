package repository

import (
	"context"
	"time"

	"mailops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevenueRepository handles database operations for daily revenue entries
type RevenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new revenue repository
func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// Upsert inserts the entry, or overwrites amount and notes when the mailer already logged that date.
// On conflict the stored row keeps its original ID.
func (r *RevenueRepository) Upsert(ctx context.Context, entry *models.DailyRevenue) error {
	entry.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "mailer_id"}, {Name: "revenue_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "notes", "team_id", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return err
	}

	var stored models.DailyRevenue
	err = r.db.WithContext(ctx).
		First(&stored, "mailer_id = ? AND revenue_date = ?", entry.MailerID, entry.RevenueDate).Error
	if err != nil {
		return err
	}
	*entry = stored
	return nil
}

// List retrieves revenue entries, newest date first
func (r *RevenueRepository) List(ctx context.Context, filter RevenueFilter) ([]models.DailyRevenue, int64, error) {
	var entries []models.DailyRevenue
	var total int64

	query := applyRevenueFilter(r.db.WithContext(ctx).Model(&models.DailyRevenue{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("revenue_date DESC").Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// SummaryByMailer sums each mailer's revenue in a team over an inclusive date range
func (r *RevenueRepository) SummaryByMailer(ctx context.Context, teamID uuid.UUID, from, to string) ([]MailerRevenueTotal, error) {
	var totals []MailerRevenueTotal

	query := applyRevenueFilter(r.db.WithContext(ctx).Model(&models.DailyRevenue{}), RevenueFilter{
		TeamID: &teamID,
		From:   from,
		To:     to,
	})
	err := query.
		Select("mailer_id, COUNT(*) AS days, COALESCE(SUM(amount), 0) AS total").
		Group("mailer_id").
		Order("total DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func applyRevenueFilter(query *gorm.DB, filter RevenueFilter) *gorm.DB {
	if filter.MailerID != nil {
		query = query.Where("mailer_id = ?", *filter.MailerID)
	}
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.From != "" {
		query = query.Where("revenue_date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("revenue_date <= ?", filter.To)
	}
	return query
}
