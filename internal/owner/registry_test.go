//go:build attrdebug

package owner

import (
	"errors"
	"testing"

	"github.com/dshills/attrtext/internal/assert"
)

func expectContract(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, assert.ErrContract) {
			t.Errorf("%s: panic value = %v, want contract violation", name, r)
		}
	}()
	fn()
}

func TestRegistryDetectsSecondOwner(t *testing.T) {
	raw := newInt(1)
	p := New[*int, Discard[*int]](raw)
	defer p.Reset()

	expectContract(t, "second New", func() {
		_ = New[*int, Discard[*int]](raw)
	})
}

func TestRegistryAllowsReownAfterRelinquish(t *testing.T) {
	raw := newInt(1)
	p := New[*int, Discard[*int]](raw)
	got := p.Relinquish()

	q := New[*int, Discard[*int]](got)
	q.Reset()
}

func TestRegistryDetectsEmptyDereference(t *testing.T) {
	var p Owned[*int]
	expectContract(t, "Value on empty", func() {
		_ = p.Value()
	})
}

func TestRegistryDetectsDoubleRelease(t *testing.T) {
	raw := newInt(1)
	p := New[*int, Discard[*int]](raw)
	// A second handle built around the same value, bypassing New.
	q := Ptr[*int, Discard[*int]]{v: raw}

	p.Reset()
	expectContract(t, "second Reset", func() {
		q.Reset()
	})
}

type descriptor struct {
	fd int
}

func TestRegistryIgnoresPlainValues(t *testing.T) {
	p := New[descriptor, Discard[descriptor]](descriptor{fd: 1})
	q := New[descriptor, Discard[descriptor]](descriptor{fd: 1})

	p.Reset()
	q.Reset()
}
