// Package fixture loads attributed strings from TOML files.
//
// A fixture names the plain text and a list of spans. Spans are applied in
// order, so later spans override earlier ones where they overlap, and a
// span may remove keys as well as set them:
//
//	text = "Hello world"
//
//	[[span]]
//	start = 0
//	end = 11
//	[span.attributes]
//	font = "serif"
//
//	[[span]]
//	start = 6
//	end = 11
//	remove = ["font"]
//
// Positions are rune indices into text. TOML integers decode as int64 and
// arrays as []any; attribute values keep those types.
package fixture
