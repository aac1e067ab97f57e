// Package linebreak collects types for line-breaking algorithms.
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
package linebreak

import (
	"fmt"
	"math"

	"github.com/npillmayer/parbreak/core/dimen"
	params "github.com/npillmayer/parbreak/core/parameters"
	"github.com/npillmayer/parbreak/khipu"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global engine-tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// --- Interfaces ------------------------------------------------------------

// Cursor is a type to iterate over the knots of a khipu.
type Cursor interface {
	Next() bool
	Knot() khipu.Knot
	Peek() (khipu.Knot, bool)
	Mark() khipu.Mark
}

// Breakpoint is a point within a khipu where a line may end.
type Breakpoint interface {
	Position() int64
	Knot() khipu.Knot
}

// ParShape is a type to return the line length for a given line number.
// Line numbers start at 1, the way TeX counts lines of a paragraph.
type ParShape interface {
	LineLength(linenum int32) dimen.Dimen
}

// --- Parameter shapes ------------------------------------------------------

type rectParShape dimen.Dimen

func (r rectParShape) LineLength(int32) dimen.Dimen {
	return dimen.Dimen(r)
}

// RectangularParShape returns a Parshape for paragraphs of constant line
// length.
func RectangularParShape(linelen dimen.Dimen) ParShape {
	return rectParShape(linelen)
}

type lengthsParShape []dimen.Dimen

func (ls lengthsParShape) LineLength(linenum int32) dimen.Dimen {
	if len(ls) == 0 {
		return 0
	}
	if int(linenum) > len(ls) || linenum <= 0 {
		return ls[len(ls)-1]
	}
	return ls[linenum-1]
}

// ParShapeFromLengths creates a Parshape from a schedule of line lengths.
// Lines beyond the schedule reuse the last entry.
func ParShapeFromLengths(lengths []dimen.Dimen) ParShape {
	return lengthsParShape(lengths)
}

// --- Parameters ------------------------------------------------------------

// Parameters is a bundle of configuration parameters for line-breaking.
type Parameters struct {
	Tolerance       float64 // upper bound for the adjustment ratio of a line
	Looseness       int     // lengthen or shorten the paragraph by this many lines
	FitnessDemerits float64 // demerits for adjacent lines of incompatible fitness
	FlaggedDemerits float64 // demerits for two consecutive flagged breaks
}

// DefaultParameters are a reasonable set of line-breaking parameters.
func DefaultParameters() *Parameters {
	return &Parameters{
		Tolerance:       1,
		Looseness:       0,
		FitnessDemerits: 100,
		FlaggedDemerits: 100,
	}
}

// ParametersFromRegisters fills a parameters bundle from a set of
// typesetting registers.
func ParametersFromRegisters(regs *params.TypesettingRegisters) *Parameters {
	if regs == nil {
		return DefaultParameters()
	}
	return &Parameters{
		Tolerance:       float64(regs.N(params.P_TOLERANCE)),
		Looseness:       regs.N(params.P_LOOSENESS),
		FitnessDemerits: float64(regs.N(params.P_FITNESSDEMERITS)),
		FlaggedDemerits: float64(regs.N(params.P_FLAGGEDDEMERITS)),
	}
}

// InfinityDemerits is the demerits value for intolerably bad lines.
// Demerits of a line never exceed this value.
const InfinityDemerits float64 = 1e22

// InfinityBadness is the badness of a line that cannot be shrunk or
// stretched to its target length.
const InfinityBadness float64 = math.MaxInt32

// CapDemerits caps a demerits value at InfinityDemerits.
func CapDemerits(d float64) float64 {
	if d > InfinityDemerits {
		return InfinityDemerits
	}
	return d
}

// --- Fitness classes -------------------------------------------------------

// FitnessClass rates the tightness or looseness of a typeset line.
// Lines of distant fitness should not be neighbors.
type FitnessClass int8

// Fitness classes, ordered from tight to very loose.
const (
	Tight FitnessClass = iota
	Normal
	Loose
	VeryLoose
)

func (fc FitnessClass) String() string {
	switch fc {
	case Tight:
		return "tight"
	case Normal:
		return "normal"
	case Loose:
		return "loose"
	case VeryLoose:
		return "very-loose"
	}
	return fmt.Sprintf("fitness(%d)", int8(fc))
}

// Fitness classifies a line by its adjustment ratio.
func Fitness(r float64) FitnessClass {
	switch {
	case r < -0.5:
		return Tight
	case r <= 0.5:
		return Normal
	case r <= 1:
		return Loose
	}
	return VeryLoose
}

// --- WSS -------------------------------------------------------------------

// WSS is a triple of natural width, minimum width after shrinking and
// maximum width after stretching.
type WSS struct {
	W   dimen.Dimen
	Min dimen.Dimen
	Max dimen.Dimen
}

// SetFromKnot initializes a WSS from a knot.
func (wss WSS) SetFromKnot(knot khipu.Knot) WSS {
	if knot == nil {
		return wss
	}
	return WSS{
		W:   knot.W(),
		Min: knot.MinW(),
		Max: knot.MaxW(),
	}
}

// Add adds two WSS elementwise. Infinities stay infinite: sums over a
// paragraph cannot overflow the underlying 64 bit type.
func (wss WSS) Add(other WSS) WSS {
	return WSS{
		W:   wss.W + other.W,
		Min: wss.Min + other.Min,
		Max: wss.Max + other.Max,
	}
}

// Subtract subtracts another WSS elementwise.
func (wss WSS) Subtract(other WSS) WSS {
	return WSS{
		W:   wss.W - other.W,
		Min: wss.Min - other.Min,
		Max: wss.Max - other.Max,
	}
}

// Stretch is the amount of stretchability, i.e. Max - W.
func (wss WSS) Stretch() dimen.Dimen {
	return wss.Max - wss.W
}

// Shrink is the amount of shrinkability, i.e. W - Min.
func (wss WSS) Shrink() dimen.Dimen {
	return wss.W - wss.Min
}

// Spread calculates the rendered width for an adjustment ratio r, i.e.
// the natural width plus r times the stretch- or shrinkability.
func (wss WSS) Spread(r float64) dimen.Dimen {
	if r >= 0 {
		stretch := wss.Stretch()
		if stretch >= dimen.Fil { // infinitely stretchable glue stays natural
			return wss.W
		}
		return wss.W + dimen.Dimen(r*float64(stretch))
	}
	return wss.W + dimen.Dimen(r*float64(wss.Shrink()))
}

func (wss WSS) String() string {
	return fmt.Sprintf("{%s<%s<%s}", wss.Min, wss.W, wss.Max)
}
