package attrstr

import (
	"iter"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/attrtext/internal/assert"
)

// Text is a non-owning view of plain text indexed by rune position.
type Text struct {
	runes []rune
}

// NewText wraps runes without copying them.
func NewText(runes []rune) Text {
	return Text{runes: runes}
}

// Len returns the number of runes.
func (t Text) Len() int {
	return len(t.runes)
}

// At returns the rune at position i.
func (t Text) At(i int) rune {
	if assert.Enabled {
		assert.InRange("Text.At", i, len(t.runes))
	}
	return t.runes[i]
}

// Slice returns the text in r as a string.
func (t Text) Slice(r Range) string {
	if assert.Enabled {
		assert.That(r.IsValid() && r.Start >= 0 && r.End <= len(t.runes),
			"Text.Slice", "range %s outside [0:%d)", r, len(t.runes))
	}
	return string(t.runes[r.Start:r.End])
}

// String returns the whole text.
func (t Text) String() string {
	return string(t.runes)
}

// Graphemes iterates over the extended grapheme clusters of the text,
// yielding the rune range of each in order.
func (t Text) Graphemes() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		s := string(t.runes)
		state := -1
		pos := 0
		for len(s) > 0 {
			var cluster string
			cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
			n := utf8.RuneCountInString(cluster)
			if !yield(Range{Start: pos, End: pos + n}) {
				return
			}
			pos += n
		}
	}
}

// GraphemeBoundaries returns every position at which a grapheme cluster
// starts, followed by Len(). Empty text yields [0].
func (t Text) GraphemeBoundaries() []int {
	bounds := []int{0}
	for r := range t.Graphemes() {
		bounds = append(bounds, r.End)
	}
	return bounds
}

// IsGraphemeBoundary reports whether a cluster starts or the text ends at pos.
// It scans from the start of the text.
func (t Text) IsGraphemeBoundary(pos int) bool {
	if pos == 0 || pos == len(t.runes) {
		return true
	}
	for r := range t.Graphemes() {
		if r.End >= pos {
			return r.End == pos
		}
	}
	return false
}
