package owner

import (
	"reflect"
	"sync"

	"github.com/dshills/attrtext/internal/assert"
)

// registry records the values currently owned by some Ptr. It is consulted
// only when assert.Enabled is true.
var registry = struct {
	mu    sync.Mutex
	owned map[any]struct{}
}{owned: make(map[any]struct{})}

// tracked reports whether v is a reference whose identity can key the
// registry. Plain values compare equal across distinct owners and are not
// tracked.
func tracked(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func track(op string, v any) {
	if !tracked(v) {
		return
	}
	registry.mu.Lock()
	_, dup := registry.owned[v]
	if !dup {
		registry.owned[v] = struct{}{}
	}
	registry.mu.Unlock()
	assert.That(!dup, op, "%v already has an owner", v)
}

func untrack(op string, v any) {
	if !tracked(v) {
		return
	}
	registry.mu.Lock()
	_, ok := registry.owned[v]
	delete(registry.owned, v)
	registry.mu.Unlock()
	assert.That(ok, op, "%v is not owned (released twice?)", v)
}
