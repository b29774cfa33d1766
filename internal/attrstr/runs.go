package attrstr

import (
	"fmt"
	"iter"

	"github.com/dshills/attrtext/internal/assert"
)

// Runs iterates over the whole-set runs of the text in position order.
// The yielded ranges tile [0, Len()).
func (v *View) Runs() iter.Seq2[Range, Attributes] {
	return func(yield func(Range, Attributes) bool) {
		for pos := 0; pos < v.length; {
			attrs, r := v.AttributesWithRange(pos)
			if assert.Enabled {
				assert.That(r.Contains(pos), "View.Runs", "run %s does not contain %d", r, pos)
			}
			end := min(max(r.End, pos+1), v.length)
			if !yield(Range{Start: pos, End: end}, attrs) {
				return
			}
			pos = end
		}
	}
}

// Lookup is the result of a single-key query. OK is false when the key is
// absent, which is distinct from a present nil Value.
type Lookup struct {
	Value any
	OK    bool
}

// String formats the value, or <none> when the key is absent.
func (l Lookup) String() string {
	if !l.OK {
		return "<none>"
	}
	return fmt.Sprint(l.Value)
}

// AttributeRuns iterates over the forward extents of key's value, starting at
// position 0.
func (v *View) AttributeRuns(key Key) iter.Seq2[Range, Lookup] {
	return func(yield func(Range, Lookup) bool) {
		for pos := 0; pos < v.length; {
			val, ok, end := v.AttributeWithEnd(key, pos)
			end = min(max(end, pos+1), v.length)
			if !yield(Range{Start: pos, End: end}, Lookup{Value: val, OK: ok}) {
				return
			}
			pos = end
		}
	}
}
