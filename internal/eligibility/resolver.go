// eligibility/resolver.go
//
// Pure eligibility computations. The reference year is always an explicit
// parameter so the functions stay deterministic under test; handlers pass
// time.Now().Year() at the boundary.
package eligibility

import (
	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
)

const (
	minBirthYear = 1900
	noUpperAge   = 200 // sentinel for open-ended bands
)

// ageBand maps an inclusive calendar-year age range to an athlete division.
// Federation rule: age = reference year minus birth year, no month precision.
var ageBands = []struct {
	min, max int
	division AthleteDivision
}{
	{0, 13, AthleteSubjunior},
	{14, 18, AthleteTeen},
	{19, 23, AthleteJunior},
	{24, 39, AthleteOpen},
	{40, 49, AthleteMaster1},
	{50, 59, AthleteMaster2},
	{60, noUpperAge, AthleteMaster3},
}

// divisionGates pins which ages may register under each tournament division.
// Bounds are inclusive on both ends.
var divisionGates = map[TournamentDivision]struct {
	minAge, maxAge int
}{
	DivisionSubjunior: {10, 13},
	DivisionTeen:      {14, 18},
	DivisionOpen:      {14, noUpperAge},
	DivisionMaster:    {40, noUpperAge},
}

// Result bundles everything registration forms need for one athlete and
// tournament pair.
type Result struct {
	AthleteDivision AthleteDivision `json:"athlete_division"`
	DivisionLabel   string          `json:"division_label"`
	AgeEligible     bool            `json:"age_eligible"`
	WeightClasses   []WeightClass   `json:"weight_classes"`
}

func validateBirthYear(birthYear, refYear int) error {
	if birthYear < minBirthYear || birthYear > refYear {
		return apperrors.Validation("birth year %d out of range %d..%d", birthYear, minBirthYear, refYear)
	}
	return nil
}

func bandFor(age int) AthleteDivision {
	for _, b := range ageBands {
		if age >= b.min && age <= b.max {
			return b.division
		}
	}
	// Unreachable: bands cover 0..noUpperAge and validateBirthYear bounds age.
	return AthleteSubjunior
}

// ResolveAthleteDivision computes the division an athlete lifts in for a
// given tournament division. Restricted tournaments collapse to their own
// band; Open and Master tournaments fan out to the athlete's natural band.
// Total over all valid inputs.
func ResolveAthleteDivision(division TournamentDivision, birthYear, refYear int) (AthleteDivision, error) {
	if _, err := ParseTournamentDivision(string(division)); err != nil {
		return "", err
	}
	if err := validateBirthYear(birthYear, refYear); err != nil {
		return "", err
	}
	age := refYear - birthYear
	switch division {
	case DivisionSubjunior:
		return AthleteSubjunior, nil
	case DivisionTeen:
		return AthleteTeen, nil
	default:
		return bandFor(age), nil
	}
}

// IsAgeEligible reports whether the athlete may register at all under the
// tournament division. Used as a hard gate before weight-class selection.
func IsAgeEligible(division TournamentDivision, birthYear, refYear int) (bool, error) {
	gate, ok := divisionGates[division]
	if !ok {
		return false, apperrors.Validation("unknown tournament division %q", division)
	}
	if err := validateBirthYear(birthYear, refYear); err != nil {
		return false, err
	}
	age := refYear - birthYear
	return age >= gate.minAge && age <= gate.maxAge, nil
}

// EligibleWeightClasses returns the legal weight classes for the athlete in
// ascending weight order. Recomputed fresh each call; callers own the slice.
// Sub-Junior tournaments exclude the open-ended heavyweight class.
func EligibleWeightClasses(gender Gender, birthYear int, division TournamentDivision, refYear int) ([]WeightClass, error) {
	if _, err := ParseGender(string(gender)); err != nil {
		return nil, err
	}
	if _, err := ParseTournamentDivision(string(division)); err != nil {
		return nil, err
	}
	if err := validateBirthYear(birthYear, refYear); err != nil {
		return nil, err
	}
	base := weightClassesByGender[gender]
	if division == DivisionSubjunior {
		base = base[:len(base)-1]
	}
	out := make([]WeightClass, len(base))
	copy(out, base)
	return out, nil
}

// Resolve is the combined entry point used by registration handlers and
// listing UIs.
func Resolve(gender Gender, birthYear int, division TournamentDivision, refYear int) (Result, error) {
	athleteDivision, err := ResolveAthleteDivision(division, birthYear, refYear)
	if err != nil {
		return Result{}, err
	}
	eligible, err := IsAgeEligible(division, birthYear, refYear)
	if err != nil {
		return Result{}, err
	}
	classes, err := EligibleWeightClasses(gender, birthYear, division, refYear)
	if err != nil {
		return Result{}, err
	}
	return Result{
		AthleteDivision: athleteDivision,
		DivisionLabel:   athleteDivision.Label(),
		AgeEligible:     eligible,
		WeightClasses:   classes,
	}, nil
}
