package assert

import (
	"errors"
	"fmt"
)

// ErrContract is the sentinel wrapped by every contract violation.
var ErrContract = errors.New("contract violation")

// ContractError describes a violated precondition.
type ContractError struct {
	Op     string // Operation that detected the violation (e.g., "Ptr.Value")
	Detail string // What was wrong
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", ErrContract, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrContract, e.Detail)
}

// Unwrap returns ErrContract.
func (e *ContractError) Unwrap() error {
	return ErrContract
}

// Fail panics with a ContractError when checks are enabled.
func Fail(op, format string, args ...any) {
	if !Enabled {
		return
	}
	panic(&ContractError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// That panics with a ContractError if ok is false and checks are enabled.
func That(ok bool, op, format string, args ...any) {
	if Enabled && !ok {
		Fail(op, format, args...)
	}
}

// InRange checks 0 <= index < length.
func InRange(op string, index, length int) {
	if Enabled && (index < 0 || index >= length) {
		Fail(op, "index %d out of range [0, %d)", index, length)
	}
}
