package referee

import "gorm.io/gorm"

const (
	CategoryNational = "national"
	CategoryRegional = "regional"
)

// Referee is registered at federation level, not owned by any team.
type Referee struct {
	gorm.Model
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	DNI       string `json:"dni" gorm:"uniqueIndex;not null"`
	Category  string `json:"category" gorm:"default:'regional'"` // national | regional
}
