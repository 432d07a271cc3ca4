package models

import (
	"github.com/google/uuid"
)

// RevenueDateLayout is the storage format of DailyRevenue.RevenueDate
const RevenueDateLayout = "2006-01-02"

// DailyRevenue is the revenue a mailer logged for one calendar day
type DailyRevenue struct {
	BaseModel
	MailerID    uuid.UUID `json:"mailer_id" gorm:"type:uuid;not null;uniqueIndex:idx_daily_revenue_mailer_date"`
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	RevenueDate string    `json:"revenue_date" gorm:"size:10;not null;uniqueIndex:idx_daily_revenue_mailer_date;index"`
	Amount      float64   `json:"amount" gorm:"type:numeric(12,2);not null;default:0"`
	Notes       string    `json:"notes" gorm:"size:500"`
}

// TableName returns the table name for DailyRevenue
func (DailyRevenue) TableName() string {
	return "daily_revenues"
}
