package assert

import (
	"errors"
	"strings"
	"testing"
)

func TestContractErrorMessage(t *testing.T) {
	tests := []struct {
		err      *ContractError
		expected string
	}{
		{&ContractError{Op: "Ptr.Value", Detail: "empty handle"}, "Ptr.Value: contract violation: empty handle"},
		{&ContractError{Detail: "bad"}, "contract violation: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("Error() = %q, want %q", got, tt.expected)
		}
	}
}

func TestContractErrorUnwrap(t *testing.T) {
	var err error = &ContractError{Op: "op", Detail: "detail"}
	if !errors.Is(err, ErrContract) {
		t.Error("expected errors.Is(err, ErrContract)")
	}
}

// capture runs fn and returns the recovered ContractError, if any.
func capture(fn func()) (ce *ContractError) {
	defer func() {
		if r := recover(); r != nil {
			ce, _ = r.(*ContractError)
		}
	}()
	fn()
	return nil
}

func TestThat(t *testing.T) {
	if ce := capture(func() { That(true, "op", "never") }); ce != nil {
		t.Errorf("That(true) panicked: %v", ce)
	}

	ce := capture(func() { That(false, "op", "value %d", 7) })
	if !Enabled {
		if ce != nil {
			t.Errorf("That(false) panicked with checks disabled: %v", ce)
		}
		return
	}
	if ce == nil {
		t.Fatal("That(false) did not panic with checks enabled")
	}
	if !strings.Contains(ce.Detail, "value 7") {
		t.Errorf("Detail = %q, want it to contain %q", ce.Detail, "value 7")
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		index, length int
		violates      bool
	}{
		{0, 1, false},
		{4, 5, false},
		{5, 5, true},
		{-1, 5, true},
		{0, 0, true},
	}

	for _, tt := range tests {
		ce := capture(func() { InRange("op", tt.index, tt.length) })
		want := tt.violates && Enabled
		if (ce != nil) != want {
			t.Errorf("InRange(%d, %d) panicked = %v, want %v", tt.index, tt.length, ce != nil, want)
		}
	}
}
