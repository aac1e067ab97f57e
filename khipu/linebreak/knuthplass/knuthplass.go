// Package knuthplass implements globally optimized line-breaking
// after the algorithm by Knuth & Plass, as described in
//
//	D.E. Knuth, M.F. Plass: Breaking Paragraphs into Lines.
//	Software practice and Experience, 1981.
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
package knuthplass

import (
	"fmt"
	"math"

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

// --- Break nodes -----------------------------------------------------------

// Break is a feasible breakpoint, i.e. a node in the tree of breakpoint
// candidates. Break nodes reference their predecessor, forming chains back
// to the start of the paragraph. Only the chain of the finally selected
// node is ever handed out; the rest of the tree becomes garbage.
type Break struct {
	pos      int64                  // knot index of this break
	line     int32                  // 1-based number of the line ending at this break
	fitness  linebreak.FitnessClass // fitness of the line ending at this break
	ratio    float64                // adjustment ratio of the line ending at this break
	demerits float64                // cumulated demerits from the start of the paragraph
	flagged  bool                   // did we break at a flagged penalty?
	totals   linebreak.WSS          // widths of all knots before this break
	knot     khipu.Knot             // the knot we break at
	prev     *Break                 // predecessor breakpoint
}

// Position is the knot index of this break.
func (b *Break) Position() int64 { return b.pos }

// Knot returns the knot at the break position.
func (b *Break) Knot() khipu.Knot { return b.knot }

// Line is the 1-based number of the line ending at this break.
// The root break of a paragraph has line number 0.
func (b *Break) Line() int32 { return b.line }

// Fitness is the fitness class of the line ending at this break.
func (b *Break) Fitness() linebreak.FitnessClass { return b.fitness }

// Ratio is the adjustment ratio of the line ending at this break. Clients
// will spread the glue of the line by this ratio.
func (b *Break) Ratio() float64 { return b.ratio }

// Demerits is the cumulated demerit count from the start of the paragraph
// up to this break.
func (b *Break) Demerits() float64 { return b.demerits }

// Prev returns the predecessor breakpoint, or nil for the root break.
func (b *Break) Prev() *Break { return b.prev }

func (b *Break) String() string {
	return fmt.Sprintf("<break %d @ line %d, %s, r=%.2f, d=%.1f>",
		b.pos, b.line, b.fitness, b.ratio, b.demerits)
}

var _ linebreak.Breakpoint = &Break{}

// --- The line-breaker ------------------------------------------------------

type linebreaker struct {
	parshape linebreak.ParShape
	params   *linebreak.Parameters
	horizon  *activeNodes
	totals   linebreak.WSS // running sums of width, stretch and shrink
}

// BreakParagraph finds a globally optimal set of breakpoints for the
// paragraph a cursor iterates over.
//
// The returned breakpoints start with a synthetic breakpoint at position 0.
// Clients will iterate lines between consecutive breakpoints.
//
// A parshape is mandatory. If params is nil, default parameters are used.
// The call is deterministic and keeps no state between invocations.
//
// If no set of breakpoints within the tolerance reaches the end of the
// paragraph, an application error with code core.EINFEASIBLE is returned,
// together with the best incomplete chain as a fallback.
func BreakParagraph(cursor linebreak.Cursor, parshape linebreak.ParShape,
	params *linebreak.Parameters) ([]linebreak.Breakpoint, error) {
	//
	if parshape == nil {
		return nil, core.Error(core.EINVALID, "cannot break a paragraph without a parshape")
	}
	if params == nil {
		params = linebreak.DefaultParameters()
	}
	kp := &linebreaker{
		parshape: parshape,
		params:   params,
		horizon:  newActiveNodes(),
	}
	root := &Break{fitness: linebreak.Normal}
	kp.horizon.insert(root)
	var prev khipu.Knot
	pos := int64(0)
	toDrop := make([]*Break, 0, 16)
	toAdd := make([]*Break, 0, 16)
	for cursor.Next() {
		knot := cursor.Knot()
		if isFeasibleBreakpoint(knot, prev) {
			toDrop, toAdd = toDrop[:0], toAdd[:0]
			kp.horizon.each(func(a *Break) {
				r := kp.adjustmentRatio(a, knot)
				if r < -1 || isForcedBreak(knot) {
					toDrop = append(toDrop, a)
				}
				if -1 <= r && r <= kp.params.Tolerance {
					brk := kp.breakFrom(a, knot, pos, r)
					T().Debugf("feasible break %v", brk)
					toAdd = append(toAdd, brk)
				}
			})
			for _, a := range toDrop {
				if kp.horizon.size() > 1 { // never drop the last active node
					kp.horizon.remove(a)
				}
			}
			for _, brk := range toAdd {
				kp.horizon.insert(brk)
			}
		}
		kp.totals = kp.totals.Add(linebreak.WSS{}.SetFromKnot(knot))
		prev = knot
		pos++
	}
	if pos == 0 { // no text, no breaks
		return []linebreak.Breakpoint{}, nil
	}
	return kp.selectChain(pos - 1)
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

const infiniteRatio = float64(dimen.Infinity)

// adjustmentRatio computes how much the glue of the line from break a to
// the current knot would have to stretch (r > 0) or shrink (r < 0) to make
// the line fit its target length exactly.
func (kp *linebreaker) adjustmentRatio(a *Break, knot khipu.Knot) float64 {
	segment := kp.totals.Subtract(a.totals)
	width := segment.W
	if p, ok := knot.(khipu.Penalty); ok {
		width += p.Width // hyphens only show if we break here
	}
	linelen := kp.parshape.LineLength(a.line + 1)
	switch {
	case width < linelen:
		if stretch := segment.Stretch(); stretch > 0 {
			return float64(linelen-width) / float64(stretch)
		}
		return infiniteRatio
	case width > linelen:
		if shrink := segment.Shrink(); shrink > 0 {
			return float64(linelen-width) / float64(shrink)
		}
		return infiniteRatio
	}
	return 0
}

// breakFrom creates a new break node for a line from break a to the
// current knot, with adjustment ratio r.
func (kp *linebreaker) breakFrom(a *Break, knot khipu.Knot, pos int64, r float64) *Break {
	p, flagged := penaltyAt(knot)
	b := badness(r)
	var d float64
	switch {
	case p >= 0:
		d = (1 + b + p) * (1 + b + p) * (1 + b + p)
	case p <= -float64(dimen.Infinity): // forced breaks carry no penalty of their own
		d = (1 + b) * (1 + b)
	default:
		d = (1+b)*(1+b) - p*p
	}
	if flagged && a.flagged { // hyphens on consecutive lines
		d += kp.params.FlaggedDemerits
	}
	fitness := linebreak.Fitness(r)
	if fitnessJump(fitness, a.fitness) { // tightness changes abruptly
		d += kp.params.FitnessDemerits
	}
	d = linebreak.CapDemerits(d)
	return &Break{
		pos:      pos,
		line:     a.line + 1,
		fitness:  fitness,
		ratio:    r,
		demerits: a.demerits + d,
		flagged:  flagged,
		totals:   kp.totals,
		knot:     knot,
		prev:     a,
	}
}

// badness is a measure for the amount of stretching or shrinking of a line.
func badness(r float64) float64 {
	b := 100 * math.Abs(r) * r * r
	return math.Abs(b)
}

func penaltyAt(knot khipu.Knot) (float64, bool) {
	if p, ok := knot.(khipu.Penalty); ok {
		return float64(p.Demerits()), p.Flagged
	}
	return 0, false
}

func fitnessJump(f1, f2 linebreak.FitnessClass) bool {
	d := int(f1) - int(f2)
	return d > 1 || d < -1
}

// --- Final selection -------------------------------------------------------

// selectChain picks the final breakpoint among the surviving active nodes
// and walks its predecessor chain back to the root.
func (kp *linebreaker) selectChain(last int64) ([]linebreak.Breakpoint, error) {
	finals := make([]*Break, 0, kp.horizon.size())
	all := make([]*Break, 0, kp.horizon.size())
	kp.horizon.each(func(a *Break) {
		all = append(all, a)
		if a.pos == last { // chains not reaching the end of the paragraph are dead
			finals = append(finals, a)
		}
	})
	var err error
	candidates := finals
	if len(finals) == 0 {
		err = core.Error(core.EINFEASIBLE,
			"no breakpoints found within tolerance %.1f, try increasing it", kp.params.Tolerance)
		candidates = all
	}
	best := candidates[0]
	for _, a := range candidates[1:] {
		if a.demerits < best.demerits {
			best = a
		}
	}
	if err == nil && kp.params.Looseness != 0 {
		best = looserChoice(candidates, best, kp.params.Looseness)
	}
	T().Infof("paragraph broken into %d lines, total demerits %.1f", best.line, best.demerits)
	breakpoints := make([]linebreak.Breakpoint, best.line+1)
	for b := best; b != nil; b = b.prev {
		breakpoints[b.line] = b
	}
	return breakpoints, err
}

// looserChoice re-selects the final break for a non-zero looseness: the
// paragraph is requested to be that many lines longer or shorter than the
// optimum. We pick the node with line count closest to the requested one,
// ties decided by fewest demerits.
func looserChoice(candidates []*Break, best *Break, looseness int) *Break {
	target := best.line + int32(looseness)
	choice := best
	dist := absInt32(choice.line - target)
	for _, a := range candidates {
		d := absInt32(a.line - target)
		if d < dist || (d == dist && a.demerits < choice.demerits) {
			choice = a
			dist = d
		}
	}
	return choice
}

func absInt32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
