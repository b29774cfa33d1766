package attrstr

import (
	"github.com/dshills/attrtext/internal/assert"
)

// View is a non-owning query facade over a RichText.
//
// The whole-set lookup is resolved once, when the view is created, and the
// resulting method value is reused by every query. The RichText must outlive
// the view and must not change while it is in use.
type View struct {
	rt     RichText
	text   Text
	length int

	// attributesAt is rt.AttributesAt, bound at construction.
	attributesAt func(index int, effective *Range) Attributes
}

// NewView binds a view to rt. rt must not be nil.
func NewView(rt RichText) *View {
	if assert.Enabled {
		assert.That(rt != nil, "attrstr.NewView", "nil RichText")
	}
	return &View{
		rt:           rt,
		text:         NewText(rt.Runes()),
		length:       rt.Len(),
		attributesAt: rt.AttributesAt,
	}
}

// RichText returns the bound text.
func (v *View) RichText() RichText {
	return v.rt
}

// Text returns the plain-text view.
func (v *View) Text() Text {
	return v.text
}

// Len returns the number of positions.
func (v *View) Len() int {
	return v.length
}

// AttributesAt returns the attributes effective at index.
// Requires 0 <= index < Len().
func (v *View) AttributesAt(index int) Attributes {
	if assert.Enabled {
		assert.InRange("View.AttributesAt", index, v.length)
	}
	return v.attributesAt(index, nil)
}

// AttributesWithRange returns the attributes effective at index together
// with the run containing index over which they are constant. Adjacent runs
// reported by the RichText are passed through unmerged, even if their sets
// happen to be equal. Requires 0 <= index < Len().
func (v *View) AttributesWithRange(index int) (Attributes, Range) {
	if assert.Enabled {
		assert.InRange("View.AttributesWithRange", index, v.length)
	}
	var r Range
	attrs := v.attributesAt(index, &r)
	return attrs, r
}

// AttributeAt returns key's value at index and whether it is present.
// Requires 0 <= index < Len().
func (v *View) AttributeAt(key Key, index int) (any, bool) {
	if assert.Enabled {
		assert.InRange("View.AttributeAt", index, v.length)
	}
	return v.attributesAt(index, nil).Get(key)
}

// AttributeWithEnd returns key's value at index, whether it is present, and
// the end of the longest range [index, end) over which that value (or its
// absence) stays the same. The range never extends before index and never
// past Len(); it may span several whole-set runs.
// Requires 0 <= index < Len().
func (v *View) AttributeWithEnd(key Key, index int) (value any, ok bool, end int) {
	if assert.Enabled {
		assert.InRange("View.AttributeWithEnd", index, v.length)
	}
	var r Range
	value, ok = v.rt.AttributeAt(key, index, &r, Range{Start: index, End: v.length})
	return value, ok, r.End
}
