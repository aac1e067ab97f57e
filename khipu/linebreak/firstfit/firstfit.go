// Package firstfit implements a straightforward line-breaking algorithm,
// as used by web browsers and most word processors: lines are filled
// greedily from left to right, and a line ends at the last breakpoint
// that still fits. The algorithm considers one line at a time and never
// reconsiders a decision, trading typographic quality for speed.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package firstfit

import (
	"fmt"

	"github.com/npillmayer/parbreak/core"
	"github.com/npillmayer/parbreak/core/dimen"
	"github.com/npillmayer/parbreak/khipu"
	"github.com/npillmayer/parbreak/khipu/linebreak"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global engine-tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// breakpoint is a line break the greedy pass has committed to.
type breakpoint struct {
	pos  int64
	knot khipu.Knot
}

func (bp breakpoint) Position() int64  { return bp.pos }
func (bp breakpoint) Knot() khipu.Knot { return bp.knot }

func (bp breakpoint) String() string {
	return fmt.Sprintf("<break %d at %v>", bp.pos, bp.knot)
}

var _ linebreak.Breakpoint = breakpoint{}

// candidate is a breakpoint the current line could still end at.
type candidate struct {
	pos    int64
	knot   khipu.Knot
	totals linebreak.WSS // widths of all knots before this candidate
}

// BreakParagraph breaks a paragraph with a first-fit strategy: each line
// ends at the last feasible breakpoint before the text overshoots the
// line length. Lines are decided one after the other, without any
// backtracking.
//
// The returned breakpoints start with a synthetic breakpoint at position 0.
// Clients will iterate lines between consecutive breakpoints.
//
// A parshape is mandatory. If params is nil, default parameters are used.
func BreakParagraph(cursor linebreak.Cursor, parshape linebreak.ParShape,
	params *linebreak.Parameters) ([]linebreak.Breakpoint, error) {
	//
	if parshape == nil {
		return nil, core.Error(core.EINVALID, "cannot break a paragraph without a parshape")
	}
	if params == nil {
		params = linebreak.DefaultParameters()
	}
	ff := &linebreaker{
		parshape: parshape,
		params:   params,
		breaks:   []linebreak.Breakpoint{breakpoint{}},
	}
	var prev khipu.Knot
	pos := int64(0)
	for cursor.Next() {
		knot := cursor.Knot()
		if isFeasibleBreakpoint(knot, prev) {
			ff.tryBreak(candidate{pos: pos, knot: knot, totals: ff.totals})
		}
		ff.totals = ff.totals.Add(linebreak.WSS{}.SetFromKnot(knot))
		prev = knot
		pos++
	}
	if pos == 0 { // no text, no breaks
		return []linebreak.Breakpoint{}, nil
	}
	if ff.breaks[len(ff.breaks)-1].Position() != pos-1 {
		// paragraphs end in a forced break, but clients may feed us
		// arbitrary khipu fragments
		ff.breakAt(candidate{pos: pos - 1, knot: prev, totals: ff.totals})
	}
	T().Infof("paragraph broken into %d lines", len(ff.breaks)-1)
	return ff.breaks, nil
}

type linebreaker struct {
	parshape  linebreak.ParShape
	params    *linebreak.Parameters
	breaks    []linebreak.Breakpoint
	last      *candidate    // last breakpoint the current line could end at
	linestart linebreak.WSS // totals at the start of the current line
	totals    linebreak.WSS // running sums of width, stretch and shrink
}

// tryBreak considers a feasible breakpoint. If the line up to the candidate
// no longer fits, the line is closed at the previously remembered candidate.
func (ff *linebreaker) tryBreak(c candidate) {
	if isForcedBreak(c.knot) {
		ff.breakAt(c)
		return
	}
	if ff.overfull(c) {
		if ff.last != nil {
			ff.breakAt(*ff.last)
		}
		if ff.overfull(c) { // a single unbreakable chunk wider than the line
			T().Debugf("overfull line before position %d", c.pos)
			ff.breakAt(c)
			return
		}
	}
	last := c
	ff.last = &last
}

// overfull checks if the line from the current line start to a candidate
// would be too wide, even with all its glue shrunk.
func (ff *linebreaker) overfull(c candidate) bool {
	segment := c.totals.Subtract(ff.linestart)
	width := segment.W
	if p, ok := c.knot.(khipu.Penalty); ok {
		width += p.Width // hyphens only show if we break here
	}
	linelen := ff.parshape.LineLength(int32(len(ff.breaks)))
	return width-segment.Shrink() > linelen
}

// breakAt closes the current line at a candidate breakpoint.
func (ff *linebreaker) breakAt(c candidate) {
	T().Debugf("line %d ends at %d/%v", len(ff.breaks), c.pos, c.knot)
	ff.breaks = append(ff.breaks, breakpoint{pos: c.pos, knot: c.knot})
	ff.linestart = c.totals.Add(linebreak.WSS{}.SetFromKnot(c.knot))
	ff.last = nil
}

// isFeasibleBreakpoint decides if a knot is a legal breakpoint: either a
// penalty less than infinity, or glue directly following a box.
func isFeasibleBreakpoint(knot khipu.Knot, prev khipu.Knot) bool {
	if p, ok := knot.(khipu.Penalty); ok {
		return p.Demerits() < dimen.Infinity
	}
	if knot.Type() == khipu.KTGlue && prev != nil && prev.Type() == khipu.KTTextBox {
		return true
	}
	return false
}

// isForcedBreak decides if a knot forces a line break.
func isForcedBreak(knot khipu.Knot) bool {
	if p, ok := knot.(khipu.Penalty); ok {
		return p.Demerits() <= -dimen.Infinity
	}
	return false
}
