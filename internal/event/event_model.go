// event/model.go
package event

import (
	"time"

	"github.com/JMaldonado-17/powerfed/internal/referee"
	"github.com/JMaldonado-17/powerfed/internal/team"
	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"gorm.io/gorm"
)

const (
	RefereeRoleChief = "chief"
	RefereeRoleSide  = "side"
	RefereeRoleJury  = "jury"

	CoachRoleHead      = "head_coach"
	CoachRoleAssistant = "assistant_coach"
)

// Event is one physical competition day at a venue. Tournaments hang off it
// as categories; referee assignments and coach registrations are event-wide.
type Event struct {
	gorm.Model
	Name      string    `json:"name" gorm:"not null"`
	Venue     string    `json:"venue"`
	City      string    `json:"city"`
	Province  string    `json:"province"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// EventRefereeAssignment links a registry referee to an event panel.
// Removal is a soft delete; re-assignment inserts a fresh row.
type EventRefereeAssignment struct {
	gorm.Model
	EventID   uint            `json:"event_id" gorm:"index;not null"`
	RefereeID uint            `json:"referee_id" gorm:"index;not null"`
	Role      string          `json:"role" gorm:"not null"` // chief | side | jury
	Referee   referee.Referee `json:"referee" gorm:"foreignKey:RefereeID"`
}

// EventCoachRegistration accredits a team coach for an event.
type EventCoachRegistration struct {
	gorm.Model
	EventID uint       `json:"event_id" gorm:"index;not null"`
	CoachID uint       `json:"coach_id" gorm:"index;not null"`
	Role    string     `json:"role" gorm:"not null"` // head_coach | assistant_coach
	Coach   team.Coach `json:"coach" gorm:"foreignKey:CoachID"`
}

// ValidateRefereeRole checks a raw panel role value.
func ValidateRefereeRole(s string) error {
	switch s {
	case RefereeRoleChief, RefereeRoleSide, RefereeRoleJury:
		return nil
	default:
		return apperrors.Validation("unknown referee role %q", s)
	}
}

// ValidateCoachRole checks a raw accreditation role value.
func ValidateCoachRole(s string) error {
	switch s {
	case CoachRoleHead, CoachRoleAssistant:
		return nil
	default:
		return apperrors.Validation("unknown coach role %q", s)
	}
}
