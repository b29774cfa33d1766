package attrstr

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Key names an attribute.
type Key string

// Attributes maps attribute keys to values. Maps returned by queries are
// shared with the underlying text and must not be modified.
type Attributes map[Key]any

// Get returns the value for key and whether it is present.
func (a Attributes) Get(key Key) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// Keys returns the keys in sorted order.
func (a Attributes) Keys() []Key {
	return slices.Sorted(maps.Keys(a))
}

// Equal reports whether a and b hold the same keys with equal values.
// A nil map equals an empty one.
func (a Attributes) Equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !ValueEqual(av, bv) {
			return false
		}
	}
	return true
}

// String formats the attributes as {k=v, ...} in key order.
func (a Attributes) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, a[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

// Equaler is implemented by attribute values with their own notion of
// equality.
type Equaler interface {
	Equal(other any) bool
}

// ValueEqual reports whether two attribute values are equal. Values
// implementing Equaler decide for themselves; anything else is compared
// with reflect.DeepEqual so that uncomparable values such as slices work.
func ValueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// sameValue compares two lookups where absence counts as a value.
func sameValue(av any, aok bool, bv any, bok bool) bool {
	if aok != bok {
		return false
	}
	return !aok || ValueEqual(av, bv)
}
