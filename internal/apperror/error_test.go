package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: Validation("bad"), want: CodeValidation},
		{name: "wrapped not found", err: fmt.Errorf("load: %w", NotFoundf("no row %d", 3)), want: CodeNotFound},
		{name: "plain error", err: errors.New("boom"), want: CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetCode(tc.err); got != tc.want {
				t.Fatalf("expected code %q, got %q", tc.want, got)
			}
		})
	}
}

func TestStorageKeepsDriverMessage(t *testing.T) {
	driverErr := errors.New("Error 1048 (23000): Column 'employee_id' cannot be null")
	err := Storage(driverErr, "mysql 1048")

	if err.Error() != driverErr.Error() {
		t.Fatalf("expected driver message, got %q", err.Error())
	}
	if !errors.Is(err, driverErr) {
		t.Fatalf("expected storage error to unwrap to driver error")
	}
	if GetDetail(fmt.Errorf("save: %w", err)) != "mysql 1048" {
		t.Fatalf("expected detail to survive wrapping")
	}
}
