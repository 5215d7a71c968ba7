// tournament/model.go
package tournament

import (
	"time"

	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
	"gorm.io/gorm"
)

const (
	StatusDraft             = "draft"
	StatusPreliminaryOpen   = "preliminary_open"
	StatusPreliminaryClosed = "preliminary_closed"
	StatusFinished          = "finished"

	ModalityFullPower = "full_power"
	ModalityBenchOnly = "bench_only"

	EquipmentRaw      = "raw"
	EquipmentEquipped = "equipped"
)

// Tournament is one competition category announced within an event.
// Division drives registration eligibility; status gates registrations.
type Tournament struct {
	gorm.Model
	EventID   uint      `json:"event_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Division  string    `json:"division" gorm:"not null"`  // subjunior | teen | open | master
	Modality  string    `json:"modality" gorm:"not null"`  // full_power | bench_only
	Equipment string    `json:"equipment" gorm:"not null"` // raw | equipped
	Status    string    `json:"status" gorm:"default:'draft'"`
	StartDate time.Time `json:"start_date"`
}

// statusTransitions pins the admin-driven lifecycle:
// draft -> preliminary_open -> preliminary_closed -> finished.
// Closed preliminaries may be reopened while the meet has not finished.
var statusTransitions = map[string][]string{
	StatusDraft:             {StatusPreliminaryOpen},
	StatusPreliminaryOpen:   {StatusPreliminaryClosed},
	StatusPreliminaryClosed: {StatusPreliminaryOpen, StatusFinished},
	StatusFinished:          {},
}

// CanTransition reports whether a status change is allowed.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateStatus checks a raw status value.
func ValidateStatus(s string) error {
	switch s {
	case StatusDraft, StatusPreliminaryOpen, StatusPreliminaryClosed, StatusFinished:
		return nil
	default:
		return apperrors.Validation("unknown tournament status %q", s)
	}
}

// ValidateModality checks a raw modality value.
func ValidateModality(s string) error {
	switch s {
	case ModalityFullPower, ModalityBenchOnly:
		return nil
	default:
		return apperrors.Validation("unknown modality %q", s)
	}
}

// ValidateEquipment checks a raw equipment value.
func ValidateEquipment(s string) error {
	switch s {
	case EquipmentRaw, EquipmentEquipped:
		return nil
	default:
		return apperrors.Validation("unknown equipment %q", s)
	}
}
