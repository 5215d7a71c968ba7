// team/model.go
package team

import (
	"gorm.io/gorm"
)

// Team is a federation-affiliated club. Teams exclusively own their athletes
// and coaches. Admin approval is required before a team can register lifters.
type Team struct {
	gorm.Model
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	City     string `json:"city"`
	Province string `json:"province"`
	OwnerID  uint   `json:"owner_id" gorm:"index;not null"` // user account managing the team
	Approved bool   `json:"approved" gorm:"default:false"`
}

// Athlete is a lifter owned by a team. Gender and birth year drive division
// and weight-class eligibility; DNI is unique within the owning team.
type Athlete struct {
	gorm.Model
	TeamID    uint   `json:"team_id" gorm:"index;not null"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	DNI       string `json:"dni" gorm:"index;not null"`
	Gender    string `json:"gender" gorm:"not null"` // M | F
	BirthYear int    `json:"birth_year" gorm:"not null"`
}

// Coach belongs to a team and can be registered into events.
type Coach struct {
	gorm.Model
	TeamID    uint   `json:"team_id" gorm:"index;not null"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	DNI       string `json:"dni" gorm:"index;not null"`
}
