package owner

import (
	"fmt"

	"github.com/dshills/attrtext/internal/assert"
)

// noCopy may be embedded into structs which must not be copied after first
// use. It is recognized by go vet's copylocks checker.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Ptr is an exclusive owner of a value of type V, deleted by policy D.
// The zero Ptr is empty and ready to use.
type Ptr[V comparable, D Deleter[V]] struct {
	noCopy noCopy
	v      V
}

// Owned is a Ptr with the Discard policy.
type Owned[V comparable] = Ptr[V, Discard[V]]

// New returns a handle owning v. A zero v yields an empty handle.
// The caller must not keep another owning handle for v.
func New[V comparable, D Deleter[V]](v V) Ptr[V, D] {
	var zero V
	if assert.Enabled && v != zero {
		track("owner.New", v)
	}
	return Ptr[V, D]{v: v}
}

// Move transfers ownership to the returned handle and leaves p empty.
func (p *Ptr[V, D]) Move() Ptr[V, D] {
	var zero V
	v := p.v
	p.v = zero
	return Ptr[V, D]{v: v}
}

// Take deletes the value p currently owns, if any, then moves src's value
// into p. src is left empty. Taking from p itself is a no-op.
func (p *Ptr[V, D]) Take(src *Ptr[V, D]) {
	if src == p {
		return
	}
	var zero V
	p.Reset()
	p.v = src.v
	src.v = zero
}

// Reset deletes the owned value, if any, and leaves p empty.
func (p *Ptr[V, D]) Reset() {
	var zero V
	v := p.v
	if v == zero {
		return
	}
	// Cleared before Delete so a re-entrant Reset sees an empty handle.
	p.v = zero
	if assert.Enabled {
		untrack("Ptr.Reset", v)
	}
	var d D
	d.Delete(v)
}

// Relinquish returns the owned value and leaves p empty without deleting
// anything. The caller becomes responsible for the value. p is consumed: it
// must not be treated as an owner of the returned value afterwards.
func (p *Ptr[V, D]) Relinquish() V {
	var zero V
	v := p.v
	p.v = zero
	if assert.Enabled && v != zero {
		untrack("Ptr.Relinquish", v)
	}
	return v
}

// Value returns the owned value. p must not be empty.
func (p *Ptr[V, D]) Value() V {
	if assert.Enabled {
		var zero V
		assert.That(p.v != zero, "Ptr.Value", "dereference of empty handle")
	}
	return p.v
}

// Get returns the owned value, or the zero value if p is empty.
func (p *Ptr[V, D]) Get() V {
	return p.v
}

// Valid reports whether p owns a value.
func (p *Ptr[V, D]) Valid() bool {
	var zero V
	return p.v != zero
}

// IsNil reports whether p is empty.
func (p *Ptr[V, D]) IsNil() bool {
	return !p.Valid()
}

// String implements fmt.Stringer.
func (p *Ptr[V, D]) String() string {
	if !p.Valid() {
		return "owner.Ptr(nil)"
	}
	return fmt.Sprintf("owner.Ptr(%v)", p.v)
}

// Assign moves src's value into dst across owner types, where a U value is
// usable as a T (U implements interface T, or T is U). dst's previous value is
// deleted first and src is left empty. An empty src simply resets dst.
//
// Go cannot express the convertibility requirement as a constraint, so it is
// checked when the value moves: a non-empty src whose value is not a T panics
// with an *assert.ContractError and leaves both handles untouched.
func Assign[T, U comparable, DT Deleter[T], DU Deleter[U]](dst *Ptr[T, DT], src *Ptr[U, DU]) {
	if any(dst) == any(src) {
		return
	}
	var zeroU U
	u := src.v
	if u == zeroU {
		dst.Reset()
		return
	}
	t, ok := any(u).(T)
	if !ok {
		var zeroT T
		panic(&assert.ContractError{
			Op:     "owner.Assign",
			Detail: fmt.Sprintf("%T is not assignable to %T", u, zeroT),
		})
	}
	dst.Reset()
	dst.v = t
	src.v = zeroU
}
