// Package assert provides contract checks for programmer errors.
//
// The checks guard preconditions that callers are expected to validate
// themselves: dereferencing an empty owner, querying a position outside the
// text, retaining two owners of the same value. They are not an error
// channel. In normal builds Enabled is false and every check compiles away;
// building with the attrdebug tag turns them into panics carrying a
// *ContractError.
//
//	go test -tags attrdebug ./...
//
// Hot paths guard calls with the constant so argument construction is
// eliminated too:
//
//	if assert.Enabled {
//		assert.InRange("View.AttributesAt", i, n)
//	}
package assert
