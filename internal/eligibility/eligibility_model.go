// eligibility/model.go
package eligibility

import (
	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
)

// Gender is the gender partition used for weight classes.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ParseGender validates a raw gender value from a request or import file.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), nil
	default:
		return "", apperrors.Validation("unknown gender %q, expected M or F", s)
	}
}

// TournamentDivision is the competitive division a tournament is announced
// under. It gates who may register and which athlete division they lift in.
type TournamentDivision string

const (
	DivisionSubjunior TournamentDivision = "subjunior"
	DivisionTeen      TournamentDivision = "teen"
	DivisionOpen      TournamentDivision = "open"
	DivisionMaster    TournamentDivision = "master"
)

// ParseTournamentDivision validates a raw division value.
func ParseTournamentDivision(s string) (TournamentDivision, error) {
	switch TournamentDivision(s) {
	case DivisionSubjunior, DivisionTeen, DivisionOpen, DivisionMaster:
		return TournamentDivision(s), nil
	default:
		return "", apperrors.Validation("unknown tournament division %q", s)
	}
}

// AthleteDivision is the finer-grained age band the athlete actually
// competes in. Open tournaments fan out into these bands; restricted
// tournaments collapse to their own band.
type AthleteDivision string

const (
	AthleteSubjunior AthleteDivision = "subjunior"
	AthleteTeen      AthleteDivision = "teen"
	AthleteJunior    AthleteDivision = "junior"
	AthleteOpen      AthleteDivision = "open"
	AthleteMaster1   AthleteDivision = "master1"
	AthleteMaster2   AthleteDivision = "master2"
	AthleteMaster3   AthleteDivision = "master3"
)

// Label returns the human-readable division name for listings.
func (d AthleteDivision) Label() string {
	switch d {
	case AthleteSubjunior:
		return "Sub-Junior"
	case AthleteTeen:
		return "Teen"
	case AthleteJunior:
		return "Junior"
	case AthleteOpen:
		return "Open"
	case AthleteMaster1:
		return "Master I"
	case AthleteMaster2:
		return "Master II"
	case AthleteMaster3:
		return "Master III"
	default:
		return string(d)
	}
}

// WeightClass is a gender-partitioned body-weight bracket. The enum prefix
// carries the gender; ordering within a gender is ascending by weight with
// the open-ended heavyweight class last.
type WeightClass string

const (
	FCat44 WeightClass = "F_CAT44"
	FCat48 WeightClass = "F_CAT48"
	FCat52 WeightClass = "F_CAT52"
	FCat56 WeightClass = "F_CAT56"
	FCat60 WeightClass = "F_CAT60"
	FCat67 WeightClass = "F_CAT67"
	FCat75 WeightClass = "F_CAT75"
	FCat82 WeightClass = "F_CAT82"
	FCat90 WeightClass = "F_CAT90"
	FCatHW WeightClass = "F_CATHW"

	MCat53  WeightClass = "M_CAT53"
	MCat59  WeightClass = "M_CAT59"
	MCat66  WeightClass = "M_CAT66"
	MCat74  WeightClass = "M_CAT74"
	MCat83  WeightClass = "M_CAT83"
	MCat93  WeightClass = "M_CAT93"
	MCat105 WeightClass = "M_CAT105"
	MCat120 WeightClass = "M_CAT120"
	MCatHW  WeightClass = "M_CATHW"
)

// weightClassesByGender is the authoritative ascending-order enumeration per
// gender. All eligibility computations slice from these, never reorder.
var weightClassesByGender = map[Gender][]WeightClass{
	GenderFemale: {FCat44, FCat48, FCat52, FCat56, FCat60, FCat67, FCat75, FCat82, FCat90, FCatHW},
	GenderMale:   {MCat53, MCat59, MCat66, MCat74, MCat83, MCat93, MCat105, MCat120, MCatHW},
}

// ParseWeightClass validates a raw weight-class value and checks the gender
// prefix matches.
func ParseWeightClass(s string, gender Gender) (WeightClass, error) {
	for _, wc := range weightClassesByGender[gender] {
		if WeightClass(s) == wc {
			return wc, nil
		}
	}
	return "", apperrors.Validation("unknown weight class %q for gender %s", s, gender)
}
