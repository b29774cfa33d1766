package attrstr

// RichText is the capability a View queries. Implementations must not change
// while a View over them is in use.
type RichText interface {
	// Len returns the number of positions.
	Len() int

	// Runes returns the plain text. The slice is borrowed; callers must not
	// modify it.
	Runes() []rune

	// AttributesAt returns the attributes effective at index. If effective
	// is non-nil it receives the run containing index over which the
	// returned set is constant. Requires 0 <= index < Len().
	AttributesAt(index int, effective *Range) Attributes

	// AttributeAt returns key's value at index and whether it is present.
	// If longest is non-nil it receives the longest range within the
	// bounding range over which the value (or its absence) is unchanged.
	// Requires within to contain index and lie inside [0, Len()).
	AttributeAt(key Key, index int, longest *Range, within Range) (any, bool)
}
