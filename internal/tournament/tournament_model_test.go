package tournament

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusDraft, StatusPreliminaryOpen, true},
		{StatusDraft, StatusPreliminaryClosed, false},
		{StatusDraft, StatusFinished, false},
		{StatusPreliminaryOpen, StatusPreliminaryClosed, true},
		{StatusPreliminaryOpen, StatusFinished, false},
		{StatusPreliminaryClosed, StatusPreliminaryOpen, true},
		{StatusPreliminaryClosed, StatusFinished, true},
		{StatusFinished, StatusPreliminaryOpen, false},
		{StatusFinished, StatusDraft, false},
		{StatusPreliminaryOpen, StatusDraft, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidateEnums(t *testing.T) {
	if err := ValidateStatus("cancelled"); err == nil {
		t.Error("unknown status should be rejected")
	}
	if err := ValidateStatus(StatusPreliminaryOpen); err != nil {
		t.Errorf("valid status rejected: %v", err)
	}
	if err := ValidateModality("push_pull"); err == nil {
		t.Error("unknown modality should be rejected")
	}
	if err := ValidateEquipment("wraps"); err == nil {
		t.Error("unknown equipment should be rejected")
	}
}
