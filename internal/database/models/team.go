package models

// Team groups mailers and team leaders; resources are scoped to a team
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
