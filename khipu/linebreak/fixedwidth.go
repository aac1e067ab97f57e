package linebreak

import (
	"strings"

	"github.com/npillmayer/parbreak/core/dimen"
	"github.com/npillmayer/parbreak/khipu"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// FixedWidthCursor is a cursor for monospaced text, i.e. text where each
// grapheme has a fixed width. It replaces the widths of the knots it
// iterates over: text boxes get the width of their grapheme count, glue
// gets the width of a single space cell.
type FixedWidthCursor struct {
	cursor      Cursor
	fixedWidth  dimen.Dimen
	hyphenWidth dimen.Dimen
	graphemes   *segment.Segmenter
	context     *uax11.Context
}

// NewFixedWidthCursor creates a FixedWidthCursor, given a cursor over a
// khipu. Every grapheme of text will be given a width of fixedWidth.
// A hyphenWidth of 0 means hyphens are one grapheme wide, too.
func NewFixedWidthCursor(cursor Cursor, fixedWidth dimen.Dimen, hyphenWidth dimen.Dimen) FixedWidthCursor {
	if hyphenWidth == 0 {
		hyphenWidth = fixedWidth
	}
	grapheme.SetupGraphemeClasses()
	return FixedWidthCursor{
		cursor:      cursor,
		fixedWidth:  fixedWidth,
		hyphenWidth: hyphenWidth,
		graphemes:   segment.NewSegmenter(grapheme.NewBreaker(1)),
		context:     uax11.LatinContext,
	}
}

// Next advances the cursor to the next knot.
func (fwc FixedWidthCursor) Next() bool {
	return fwc.cursor.Next()
}

// Knot returns the knot at the current cursor position, with its width
// scaled to monospace cells.
func (fwc FixedWidthCursor) Knot() khipu.Knot {
	return fwc.resize(fwc.cursor.Knot())
}

// Peek is lookahead by one knot.
func (fwc FixedWidthCursor) Peek() (khipu.Knot, bool) {
	knot, ok := fwc.cursor.Peek()
	if !ok {
		return nil, false
	}
	return fwc.resize(knot), true
}

// Mark returns a mark for the current position.
func (fwc FixedWidthCursor) Mark() khipu.Mark {
	m := fwc.cursor.Mark()
	return khipu.NewMark(m.Position(), fwc.resize(m.Knot()))
}

func (fwc FixedWidthCursor) resize(knot khipu.Knot) khipu.Knot {
	switch k := knot.(type) {
	case *khipu.TextBox:
		box := *k
		box.Width = dimen.Dimen(fwc.cells(box.Text())) * fwc.fixedWidth
		box.Height = fwc.fixedWidth
		return &box
	case khipu.Glue:
		if k.Stretch() >= dimen.Fil { // leave fill glue alone
			return k
		}
		return khipu.NewGlue(fwc.fixedWidth, fwc.fixedWidth/2, fwc.fixedWidth/3)
	case khipu.Penalty:
		if k.Flagged && k.Width == 0 {
			k.Width = fwc.hyphenWidth
		}
		return k
	}
	return knot
}

// cells counts the monospace cells of a text fragment. Graphemes are
// counted by UAX#29, wide East Asian graphemes occupy two cells (UAX#11).
func (fwc FixedWidthCursor) cells(text string) int {
	fwc.graphemes.Init(strings.NewReader(text))
	n := 0
	for fwc.graphemes.Next() {
		n += uax11.Width(fwc.graphemes.Bytes(), fwc.context)
	}
	return n
}

var _ Cursor = FixedWidthCursor{}
