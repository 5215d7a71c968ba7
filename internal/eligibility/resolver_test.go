package eligibility

import (
	"strings"
	"testing"

	"github.com/JMaldonado-17/powerfed/pkg/apperrors"
)

const refYear = 2025

func TestResolveAthleteDivisionBoundaries(t *testing.T) {
	// Reference table for calendar-year age bands, inclusive on both ends.
	tests := []struct {
		name      string
		division  TournamentDivision
		birthYear int
		want      AthleteDivision
	}{
		{"subjunior collapses", DivisionSubjunior, refYear - 12, AthleteSubjunior},
		{"teen collapses", DivisionTeen, refYear - 15, AthleteTeen},
		{"open age 13 last subjunior year", DivisionOpen, refYear - 13, AthleteSubjunior},
		{"open age 14 first teen year", DivisionOpen, refYear - 14, AthleteTeen},
		{"open age 18 last teen year", DivisionOpen, refYear - 18, AthleteTeen},
		{"open age 19 first junior year", DivisionOpen, refYear - 19, AthleteJunior},
		{"open age 23 last junior year", DivisionOpen, refYear - 23, AthleteJunior},
		{"open age 24 first open year", DivisionOpen, refYear - 24, AthleteOpen},
		{"open age 39 last open year", DivisionOpen, refYear - 39, AthleteOpen},
		{"open age 40 first master1 year", DivisionOpen, refYear - 40, AthleteMaster1},
		{"open age 49 last master1 year", DivisionOpen, refYear - 49, AthleteMaster1},
		{"open age 50 first master2 year", DivisionOpen, refYear - 50, AthleteMaster2},
		{"open age 59 last master2 year", DivisionOpen, refYear - 59, AthleteMaster2},
		{"open age 60 first master3 year", DivisionOpen, refYear - 60, AthleteMaster3},
		{"open age 80", DivisionOpen, refYear - 80, AthleteMaster3},
		{"master fans out to band", DivisionMaster, refYear - 55, AthleteMaster2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAthleteDivision(tt.division, tt.birthYear, refYear)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveAthleteDivision(%s, %d) = %s, want %s", tt.division, tt.birthYear, got, tt.want)
			}
		})
	}
}

func TestIsAgeEligibleBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		division  TournamentDivision
		birthYear int
		want      bool
	}{
		{"subjunior age 9 too young", DivisionSubjunior, refYear - 9, false},
		{"subjunior age 10 first year", DivisionSubjunior, refYear - 10, true},
		{"subjunior age 13 last year", DivisionSubjunior, refYear - 13, true},
		{"subjunior age 14 too old", DivisionSubjunior, refYear - 14, false},
		{"teen age 13 too young", DivisionTeen, refYear - 13, false},
		{"teen age 14 first year", DivisionTeen, refYear - 14, true},
		{"teen age 18 last year", DivisionTeen, refYear - 18, true},
		{"teen age 19 too old", DivisionTeen, refYear - 19, false},
		{"open age 13 too young", DivisionOpen, refYear - 13, false},
		{"open age 14 first year", DivisionOpen, refYear - 14, true},
		{"open no upper bound", DivisionOpen, refYear - 90, true},
		{"master age 39 too young", DivisionMaster, refYear - 39, false},
		{"master age 40 first year", DivisionMaster, refYear - 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAgeEligible(tt.division, tt.birthYear, refYear)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAgeEligible(%s, %d) = %v, want %v", tt.division, tt.birthYear, got, tt.want)
			}
		})
	}
}

func TestEligibleWeightClassesGenderPrefixAndOrder(t *testing.T) {
	divisions := []TournamentDivision{DivisionSubjunior, DivisionTeen, DivisionOpen, DivisionMaster}
	birthYears := map[TournamentDivision]int{
		DivisionSubjunior: refYear - 12,
		DivisionTeen:      refYear - 16,
		DivisionOpen:      refYear - 30,
		DivisionMaster:    refYear - 45,
	}
	for _, gender := range []Gender{GenderFemale, GenderMale} {
		for _, division := range divisions {
			classes, err := EligibleWeightClasses(gender, birthYears[division], division, refYear)
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", gender, division, err)
			}
			if len(classes) == 0 {
				t.Fatalf("%s/%s: empty weight-class list", gender, division)
			}
			for _, wc := range classes {
				if !strings.HasPrefix(string(wc), string(gender)+"_") {
					t.Errorf("%s/%s: class %s has wrong gender prefix", gender, division, wc)
				}
			}
			// Ascending order follows the enumeration; verify against it.
			full := weightClassesByGender[gender]
			for i, wc := range classes {
				if full[i] != wc {
					t.Errorf("%s/%s: class %d = %s, want %s", gender, division, i, wc, full[i])
				}
			}
		}
	}
}

func TestEligibleWeightClassesSubjuniorExcludesHeavyweight(t *testing.T) {
	classes, err := EligibleWeightClasses(GenderMale, refYear-12, DivisionSubjunior, refYear)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, wc := range classes {
		if wc == MCatHW {
			t.Errorf("subjunior list must not contain %s", MCatHW)
		}
	}
	if len(classes) != len(weightClassesByGender[GenderMale])-1 {
		t.Errorf("subjunior list length = %d, want %d", len(classes), len(weightClassesByGender[GenderMale])-1)
	}
}

func TestResolveTeenFemaleScenario(t *testing.T) {
	// Athlete born 2010, female, teen tournament, as of 2025 (age 15).
	res, err := Resolve(GenderFemale, 2010, DivisionTeen, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AgeEligible {
		t.Error("expected age eligible")
	}
	if res.AthleteDivision != AthleteTeen {
		t.Errorf("athlete division = %s, want %s", res.AthleteDivision, AthleteTeen)
	}
	want := []WeightClass{FCat44, FCat48, FCat52, FCat56, FCat60, FCat67, FCat75, FCat82, FCat90, FCatHW}
	if len(res.WeightClasses) != len(want) {
		t.Fatalf("weight classes = %v, want %v", res.WeightClasses, want)
	}
	for i := range want {
		if res.WeightClasses[i] != want[i] {
			t.Errorf("weight class %d = %s, want %s", i, res.WeightClasses[i], want[i])
		}
	}
}

func TestInvalidInputsFailFast(t *testing.T) {
	if _, err := ResolveAthleteDivision("veteran", 1990, refYear); !apperrors.IsValidation(err) {
		t.Errorf("unknown division: got %v, want validation error", err)
	}
	if _, err := ResolveAthleteDivision(DivisionOpen, 1850, refYear); !apperrors.IsValidation(err) {
		t.Errorf("birth year below range: got %v, want validation error", err)
	}
	if _, err := ResolveAthleteDivision(DivisionOpen, refYear+1, refYear); !apperrors.IsValidation(err) {
		t.Errorf("birth year in the future: got %v, want validation error", err)
	}
	if _, err := EligibleWeightClasses("X", 1990, DivisionOpen, refYear); !apperrors.IsValidation(err) {
		t.Errorf("unknown gender: got %v, want validation error", err)
	}
	if _, err := IsAgeEligible("veteran", 1990, refYear); !apperrors.IsValidation(err) {
		t.Errorf("unknown division gate: got %v, want validation error", err)
	}
	if _, err := ParseWeightClass("F_CAT999", GenderFemale); !apperrors.IsValidation(err) {
		t.Errorf("unknown weight class: got %v, want validation error", err)
	}
	if _, err := ParseWeightClass("M_CAT93", GenderFemale); !apperrors.IsValidation(err) {
		t.Errorf("cross-gender weight class: got %v, want validation error", err)
	}
}
