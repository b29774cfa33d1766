package attrstr

import (
	"strings"
	"testing"
)

type caseless string

func (c caseless) Equal(other any) bool {
	o, ok := other.(caseless)
	return ok && strings.EqualFold(string(c), string(o))
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{"both nil", nil, nil, true},
		{"nil and value", nil, 1, false},
		{"ints", 1, 1, true},
		{"different types", int64(1), 1, false},
		{"slices", []any{"a", int64(2)}, []any{"a", int64(2)}, true},
		{"different slices", []int{1}, []int{2}, false},
		{"equaler", caseless("Bold"), caseless("bold"), true},
		{"equaler mismatch", caseless("Bold"), "bold", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueEqual(tt.a, tt.b); got != tt.expected {
				t.Errorf("ValueEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestAttributesEqual(t *testing.T) {
	a := Attributes{"x": 1, "tags": []string{"a"}}

	if !a.Equal(Attributes{"x": 1, "tags": []string{"a"}}) {
		t.Error("identical attributes should be equal")
	}
	if a.Equal(Attributes{"x": 1}) {
		t.Error("attributes with different key counts should differ")
	}
	if a.Equal(Attributes{"x": 1, "other": []string{"a"}}) {
		t.Error("attributes with different keys should differ")
	}
	if !Attributes(nil).Equal(Attributes{}) {
		t.Error("nil should equal empty")
	}
}

func TestAttributesString(t *testing.T) {
	a := Attributes{"weight": "bold", "size": 12}
	if got := a.String(); got != "{size=12, weight=bold}" {
		t.Errorf("String() = %q", got)
	}
	if got := Attributes(nil).String(); got != "{}" {
		t.Errorf("nil String() = %q, want {}", got)
	}
}

func TestAttributesGet(t *testing.T) {
	a := Attributes{"x": nil}

	if v, ok := a.Get("x"); !ok || v != nil {
		t.Errorf("Get(x) = %v, %v; want nil, true", v, ok)
	}
	if _, ok := a.Get("y"); ok {
		t.Error("Get(y) should report absence")
	}
}
