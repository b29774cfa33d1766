package attrstr

import (
	"fmt"
	"maps"
	"slices"
)

// Builder assembles a String. Methods record the first error and turn every
// later call into a no-op; Build reports it.
type Builder struct {
	text []rune
	runs []run
	err  error
}

// NewBuilder starts a String over text with no attributes.
func NewBuilder(text string) *Builder {
	b := &Builder{text: []rune(text)}
	if len(b.text) > 0 {
		b.runs = []run{{end: len(b.text)}}
	}
	return b
}

// SetAttribute sets key to value over r.
func (b *Builder) SetAttribute(key Key, value any, r Range) *Builder {
	b.update(key, r, func(attrs Attributes) {
		attrs[key] = value
	})
	return b
}

// SetAttributes sets every key in attrs over r.
func (b *Builder) SetAttributes(attrs Attributes, r Range) *Builder {
	if !b.validRange(r) {
		return b
	}
	for _, k := range attrs.Keys() {
		b.SetAttribute(k, attrs[k], r)
	}
	return b
}

// RemoveAttribute removes key over r.
func (b *Builder) RemoveAttribute(key Key, r Range) *Builder {
	b.update(key, r, func(attrs Attributes) {
		delete(attrs, key)
	})
	return b
}

// Err returns the first error recorded so far.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the String, with adjacent runs of equal attributes merged.
// The builder stays usable afterwards.
func (b *Builder) Build() (*String, error) {
	if b.err != nil {
		return nil, b.err
	}
	runs := make([]run, 0, len(b.runs))
	for _, r := range b.runs {
		if n := len(runs); n > 0 && runs[n-1].attrs.Equal(r.attrs) {
			runs[n-1].end = r.end
			continue
		}
		runs = append(runs, r)
	}
	return &String{text: b.text, runs: runs}, nil
}

func (b *Builder) update(key Key, r Range, edit func(Attributes)) {
	if b.err != nil {
		return
	}
	if key == "" {
		b.err = fmt.Errorf("%w: over %s", ErrEmptyKey, r)
		return
	}
	if !b.validRange(r) {
		return
	}
	if r.IsEmpty() {
		return
	}

	first := b.splitAt(r.Start)
	last := b.splitAt(r.End)
	for i := first; i < last; i++ {
		// Maps may be shared between runs and with built Strings.
		attrs := maps.Clone(b.runs[i].attrs)
		if attrs == nil {
			attrs = Attributes{}
		}
		edit(attrs)
		if len(attrs) == 0 {
			attrs = nil
		}
		b.runs[i].attrs = attrs
	}
}

// validRange records ErrInvalidRange unless r lies within the text. It
// reports false if an error is recorded, now or earlier.
func (b *Builder) validRange(r Range) bool {
	if b.err != nil {
		return false
	}
	if !r.IsValid() || !NewRange(0, len(b.text)).ContainsRange(r) {
		b.err = fmt.Errorf("%w: %s not within [0:%d)", ErrInvalidRange, r, len(b.text))
		return false
	}
	return true
}

// splitAt makes pos a run boundary and returns the index of the run that
// starts at pos (len(b.runs) when pos is the end of the text).
func (b *Builder) splitAt(pos int) int {
	i, start := 0, 0
	for i < len(b.runs) && b.runs[i].end <= pos {
		start = b.runs[i].end
		i++
	}
	if i == len(b.runs) || start == pos {
		return i
	}
	b.runs = slices.Insert(b.runs, i, run{end: pos, attrs: b.runs[i].attrs})
	return i + 1
}
