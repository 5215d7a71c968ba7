package event

import "testing"

func TestValidateRefereeRole(t *testing.T) {
	for _, role := range []string{RefereeRoleChief, RefereeRoleSide, RefereeRoleJury} {
		if err := ValidateRefereeRole(role); err != nil {
			t.Errorf("ValidateRefereeRole(%s) = %v, want nil", role, err)
		}
	}
	if err := ValidateRefereeRole("spotter"); err == nil {
		t.Error("unknown referee role should be rejected")
	}
}

func TestValidateCoachRole(t *testing.T) {
	for _, role := range []string{CoachRoleHead, CoachRoleAssistant} {
		if err := ValidateCoachRole(role); err != nil {
			t.Errorf("ValidateCoachRole(%s) = %v, want nil", role, err)
		}
	}
	if err := ValidateCoachRole("manager"); err == nil {
		t.Error("unknown coach role should be rejected")
	}
}
