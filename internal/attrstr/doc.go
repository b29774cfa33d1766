// Package attrstr provides a non-owning query view over attributed text.
//
// Attributed text is a sequence of character positions [0, Len()) with
// attribute values assigned over sub-ranges. Positions are rune (code point)
// indices. Any type implementing RichText can be queried; this package also
// carries an immutable reference implementation, String, built with Builder.
//
// A View binds to a RichText and answers two kinds of question:
//
//   - Whole-set queries (AttributesAt, AttributesWithRange) return every
//     attribute effective at a position, and optionally the run [start, end)
//     containing it over which that set is constant. Runs tile the text.
//
//   - Single-key queries (AttributeAt, AttributeWithEnd) return one
//     attribute's value, and optionally the end of the longest range starting
//     at the position over which that value does not change. This range looks
//     forward only and may cover several whole-set runs. An absent key is a
//     value too: the range extends while the key stays absent.
//
// The two range notions are deliberately separate operations.
//
// Basic usage:
//
//	s, err := attrstr.NewBuilder("Hello world").
//		SetAttribute("weight", "bold", attrstr.Range{Start: 0, End: 5}).
//		Build()
//	if err != nil {
//		return err
//	}
//	v := attrstr.NewView(s)
//	for r, attrs := range v.Runs() {
//		fmt.Println(r, v.Text().Slice(r), attrs)
//	}
//
// Precondition violations (a nil RichText, a position outside [0, Len()))
// are programmer errors. They are checked only in builds tagged attrdebug;
// otherwise behavior is undefined.
//
// Thread Safety:
//
// A View holds no locks. It assumes the bound RichText is not mutated while
// the view is in use. String values are immutable and may be shared between
// goroutines freely.
package attrstr
