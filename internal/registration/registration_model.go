// registration/model.go
package registration

import (
	"github.com/JMaldonado-17/powerfed/internal/team"
	"gorm.io/gorm"
)

// Registration enters one athlete into one tournament category. The weight
// class is validated against the athlete's eligibility at write time; openers
// are declared in kilograms and may be adjusted until preliminaries close.
type Registration struct {
	gorm.Model
	TournamentID    uint         `json:"tournament_id" gorm:"index;not null"`
	AthleteID       uint         `json:"athlete_id" gorm:"index;not null"`
	WeightClass     string       `json:"weight_class" gorm:"not null"`
	AthleteDivision string       `json:"athlete_division" gorm:"not null"`
	SquatOpener     float64      `json:"squat_opener"`
	BenchOpener     float64      `json:"bench_opener"`
	DeadliftOpener  float64      `json:"deadlift_opener"`
	ReceiptNumber   string       `json:"receipt_number" gorm:"uniqueIndex;not null"`
	Athlete         team.Athlete `json:"athlete" gorm:"foreignKey:AthleteID"`
}
