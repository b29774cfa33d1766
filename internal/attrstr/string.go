package attrstr

import (
	"sort"

	"github.com/dshills/attrtext/internal/assert"
)

// run is a stored attribute run ending (exclusive) at end. Its start is the
// previous run's end, or 0.
type run struct {
	end   int
	attrs Attributes
}

// String is an immutable attributed string. Adjacent stored runs always
// differ, so the runs it reports are maximal in both directions.
type String struct {
	text []rune
	runs []run
}

// Len returns the number of positions.
func (s *String) Len() int {
	return len(s.text)
}

// Runes returns the plain text. The slice must not be modified.
func (s *String) Runes() []rune {
	return s.text
}

// String returns the plain text.
func (s *String) String() string {
	return string(s.text)
}

// RunCount returns the number of stored runs.
func (s *String) RunCount() int {
	return len(s.runs)
}

// runIndex returns the index of the run containing pos.
func (s *String) runIndex(pos int) int {
	return sort.Search(len(s.runs), func(i int) bool {
		return s.runs[i].end > pos
	})
}

func (s *String) runStart(i int) int {
	if i == 0 {
		return 0
	}
	return s.runs[i-1].end
}

// AttributesAt implements RichText.
func (s *String) AttributesAt(index int, effective *Range) Attributes {
	if assert.Enabled {
		assert.InRange("String.AttributesAt", index, len(s.text))
	}
	i := s.runIndex(index)
	if effective != nil {
		*effective = Range{Start: s.runStart(i), End: s.runs[i].end}
	}
	return s.runs[i].attrs
}

// AttributeAt implements RichText. The longest range grows backward and
// forward from the run containing index, across runs where key has the same
// value or is absent in each, and is clipped to within.
func (s *String) AttributeAt(key Key, index int, longest *Range, within Range) (any, bool) {
	if assert.Enabled {
		assert.InRange("String.AttributeAt", index, len(s.text))
		assert.That(within.Contains(index) && NewRange(0, len(s.text)).ContainsRange(within),
			"String.AttributeAt", "bounding range %s must contain %d within [0:%d)", within, index, len(s.text))
	}
	i := s.runIndex(index)
	value, ok := s.runs[i].attrs.Get(key)
	if longest == nil {
		return value, ok
	}

	start, end := s.runStart(i), s.runs[i].end
	for j := i - 1; j >= 0 && start > within.Start; j-- {
		v, vok := s.runs[j].attrs.Get(key)
		if !sameValue(value, ok, v, vok) {
			break
		}
		start = s.runStart(j)
	}
	for j := i + 1; j < len(s.runs) && end < within.End; j++ {
		v, vok := s.runs[j].attrs.Get(key)
		if !sameValue(value, ok, v, vok) {
			break
		}
		end = s.runs[j].end
	}
	*longest = NewRange(start, end).Intersect(within)
	return value, ok
}
