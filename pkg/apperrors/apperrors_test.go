package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad gender %q", "X"), KindValidation},
		{"not found", NotFound("athlete"), KindNotFound},
		{"conflict", Conflict("duplicate dni %s", "123"), KindConflict},
		{"persistence", Persistence("insert registration", cause), KindPersistence},
		{"wrapped", fmt.Errorf("handler: %w", NotFound("team")), KindNotFound},
		{"plain", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPersistenceUnwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Persistence("insert assignment", cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause to be reachable via errors.Is")
	}
	if got := err.Error(); got != "insert assignment failed: duplicate key value violates unique constraint" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestHelpers(t *testing.T) {
	if !IsValidation(Validation("x")) || IsValidation(NotFound("x")) {
		t.Error("IsValidation misclassified")
	}
	if !IsConflict(Conflict("x")) || IsConflict(errors.New("x")) {
		t.Error("IsConflict misclassified")
	}
	if !IsNotFound(NotFound("x")) || !IsPersistence(Persistence("x", nil)) {
		t.Error("IsNotFound/IsPersistence misclassified")
	}
}
