// Package khipu implements lists of typesetting items.
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
package khipu

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/parbreak/core/dimen"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// KnotType is a type for the different kinds of knots.
type KnotType int8

// A couple of knot types.
const (
	KTKern KnotType = iota
	KTGlue
	KTTextBox
	KTPenalty
)

// Knot is an interface for the types of items put on a khipu.
type Knot interface {
	Type() KnotType          // kind of knot
	W() dimen.Dimen          // natural width
	MinW() dimen.Dimen       // width after maximum shrinking
	MaxW() dimen.Dimen       // width after maximum stretching
	IsDiscardable() bool     // is this knot discardable after a line break?
	fmt.Stringer
}

// NewKnot is a factory method to create a knot. Parameter is a valid knot type.
func NewKnot(knottype KnotType) Knot {
	switch knottype {
	case KTKern:
		return Kern(0)
	case KTGlue:
		return Glue{}
	case KTPenalty:
		return Penalty{}
	case KTTextBox:
		return &TextBox{}
	}
	panic(fmt.Sprintf("unknown knot type %d", knottype))
}

// --- Kern ------------------------------------------------------------------

// Kern is a rigid space of fixed width.
type Kern dimen.Dimen

// Type returns KTKern.
func (k Kern) Type() KnotType { return KTKern }

// W is the kern's width.
func (k Kern) W() dimen.Dimen { return dimen.Dimen(k) }

// MinW equals W for kerns.
func (k Kern) MinW() dimen.Dimen { return dimen.Dimen(k) }

// MaxW equals W for kerns.
func (k Kern) MaxW() dimen.Dimen { return dimen.Dimen(k) }

// IsDiscardable is true for kerns.
func (k Kern) IsDiscardable() bool { return true }

func (k Kern) String() string {
	return fmt.Sprintf("\\kern{%s}", dimen.Dimen(k))
}

// --- Glue ------------------------------------------------------------------

// Glue is an elastic space. The dimensions are natural width, stretchability
// and shrinkability, in that order.
type Glue [3]dimen.Dimen

// NewGlue creates a new drop of glue with stretch and shrink.
func NewGlue(w dimen.Dimen, stretch dimen.Dimen, shrink dimen.Dimen) Glue {
	return Glue{w, stretch, shrink}
}

// NewFill creates a drop of infinitely stretchable glue.
// Fill order may be 1, 2 or 3, with 3 being the most infinite.
func NewFill(order int) Glue {
	switch order {
	case 2:
		return NewGlue(0, dimen.Fill, 0)
	case 3:
		return NewGlue(0, dimen.Filll, 0)
	}
	return NewGlue(0, dimen.Fil, 0)
}

// Type returns KTGlue.
func (g Glue) Type() KnotType { return KTGlue }

// W is the natural width of the glue.
func (g Glue) W() dimen.Dimen { return g[0] }

// Stretch is the stretchability of the glue. It may be one of the infinite
// fil-dimensions.
func (g Glue) Stretch() dimen.Dimen { return g[1] }

// Shrink is the shrinkability of the glue.
func (g Glue) Shrink() dimen.Dimen { return g[2] }

// MinW is the glue's width after maximum shrinking.
func (g Glue) MinW() dimen.Dimen { return g[0] - g[2] }

// MaxW is the glue's width after maximum stretching. For infinitely
// stretchable glue this is the natural width plus a fil-dimension.
func (g Glue) MaxW() dimen.Dimen {
	return g[0] + g[1]
}

// IsDiscardable is true for glue.
func (g Glue) IsDiscardable() bool { return true }

func (g Glue) String() string {
	return fmt.Sprintf("\\glue{%s+%s-%s}", g[0], g[1], g[2])
}

// --- Penalty ---------------------------------------------------------------

// Penalty acts as an encouragement or discouragement to break a line at this
// point. Breaking at a flagged penalty adds the penalty's width to the line,
// think of the dash of a hyphenated word. The width does not participate in
// the natural width of the khipu, therefore W returns 0.
type Penalty struct {
	P       dimen.Dimen // numeric penalty, at or beyond ±dimen.Infinity means ±infinite
	Width   dimen.Dimen // width added to the line iff the break is taken here
	Flagged bool        // breaks at two consecutive flagged penalties are extra ugly
}

// NewPenalty creates a plain unflagged penalty of width 0.
func NewPenalty(p dimen.Dimen) Penalty {
	return Penalty{P: p}
}

// NewFlaggedPenalty creates a flagged penalty carrying the width of a
// hyphen character.
func NewFlaggedPenalty(p dimen.Dimen, width dimen.Dimen) Penalty {
	return Penalty{P: p, Width: width, Flagged: true}
}

// Type returns KTPenalty.
func (p Penalty) Type() KnotType { return KTPenalty }

// W of a penalty is always 0. The width for taken breaks is in p.Width.
func (p Penalty) W() dimen.Dimen { return 0 }

// MinW is 0 for penalties.
func (p Penalty) MinW() dimen.Dimen { return 0 }

// MaxW is 0 for penalties.
func (p Penalty) MaxW() dimen.Dimen { return 0 }

// IsDiscardable is true for penalties.
func (p Penalty) IsDiscardable() bool { return true }

// Demerits returns the numeric penalty, clamped to ±dimen.Infinity.
func (p Penalty) Demerits() dimen.Dimen {
	return dimen.Max(-dimen.Infinity, dimen.Min(dimen.Infinity, p.P))
}

func (p Penalty) String() string {
	flag := ""
	if p.Flagged {
		flag = "!"
	}
	return fmt.Sprintf("\\penalty%s{%s}", flag, p.Demerits())
}

// --- TextBox ---------------------------------------------------------------

// TextBox is a fragment of text, a rigid box of a fixed width and height.
type TextBox struct {
	Width    dimen.Dimen // width
	Height   dimen.Dimen // height
	Depth    dimen.Dimen // depth
	text     string      // text, if available
	Position uint64      // position of the text fragment in the input text
}

// NewTextBox creates a text box for a text fragment, starting at a
// given byte position of the input text.
func NewTextBox(s string, pos uint64) *TextBox {
	return &TextBox{
		text:     s,
		Position: pos,
	}
}

// Text returns the enclosed text fragment.
func (b *TextBox) Text() string { return b.text }

// Type returns KTTextBox.
func (b *TextBox) Type() KnotType { return KTTextBox }

// W is the width of the box.
func (b *TextBox) W() dimen.Dimen { return b.Width }

// MinW equals W for boxes.
func (b *TextBox) MinW() dimen.Dimen { return b.Width }

// MaxW equals W for boxes.
func (b *TextBox) MaxW() dimen.Dimen { return b.Width }

// IsDiscardable is false for boxes.
func (b *TextBox) IsDiscardable() bool { return false }

func (b *TextBox) String() string {
	return fmt.Sprintf("\\box{%s}", b.text)
}

// --- Khipu -----------------------------------------------------------------

// Khipu is a list of knots. Can be in horizontal or vertical mode.
type Khipu struct {
	typ   int // hlist, vlist or mlist
	knots []Knot
}

// Khipu directions.
const (
	HList int = iota // horizontal list
	VList            // vertical list
	MList            // math list
)

// NewKhipu creates a new empty khipu in horizontal mode.
func NewKhipu() *Khipu {
	return &Khipu{
		typ:   HList,
		knots: make([]Knot, 0, 50),
	}
}

// Length gives the number of knots in the khipu.
func (kh *Khipu) Length() int64 {
	return int64(len(kh.knots))
}

// Knot returns the knot at a given position.
func (kh *Khipu) Knot(inx int64) Knot {
	return kh.knots[inx]
}

// AppendKnot appends a knot to the khipu.
func (kh *Khipu) AppendKnot(knot Knot) *Khipu {
	kh.knots = append(kh.knots, knot)
	return kh
}

// AppendKhipu concatenates two khipus.
func (kh *Khipu) AppendKhipu(k *Khipu) *Khipu {
	kh.knots = append(kh.knots, k.knots...)
	return kh
}

// ReplaceKnot replaces the knot at a given position and hands back the
// previous knot at this position.
func (kh *Khipu) ReplaceKnot(inx int64, knot Knot) Knot {
	old := kh.knots[inx]
	kh.knots[inx] = knot
	return old
}

// Measure returns the widths of a subset of this khipu. The subset runs from
// index [from ... to-1]. The method returns the natural, maximum and minimum
// width.
func (kh *Khipu) Measure(from, to int64) (dimen.Dimen, dimen.Dimen, dimen.Dimen) {
	var w, max, min dimen.Dimen
	if to > kh.Length() {
		to = kh.Length()
	}
	for i := from; i < to; i++ {
		knot := kh.knots[i]
		w += knot.W()
		max += knot.MaxW()
		min += knot.MinW()
	}
	return w, max, min
}

// Text returns the text contents of a khipu segment [from ... to-1].
// Glue is rendered as a single space.
func (kh *Khipu) Text(from, to int64) string {
	var buf bytes.Buffer
	if to > kh.Length() {
		to = kh.Length()
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < to; i++ {
		switch knot := kh.knots[i].(type) {
		case *TextBox:
			buf.WriteString(knot.Text())
		case Glue:
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// TerminateParagraph terminates the khipu the way paragraphs in horizontal
// mode are usually closed: an unbreakable penalty, a fil glue to pad the
// last line, and a forced final break.
//
//	\penalty{+infinity} \glue{0pt plus 1fil} \penalty{-infinity}
func (kh *Khipu) TerminateParagraph() *Khipu {
	kh.AppendKnot(NewPenalty(dimen.Infinity))
	kh.AppendKnot(NewFill(1))
	kh.AppendKnot(NewPenalty(-dimen.Infinity))
	return kh
}

func (kh *Khipu) String() string {
	var buf bytes.Buffer
	switch kh.typ {
	case VList:
		buf.WriteString("\\vlist{")
	case MList:
		buf.WriteString("\\mlist{")
	default:
		buf.WriteString("\\hlist{")
	}
	for _, knot := range kh.knots {
		buf.WriteString(knot.String())
	}
	buf.WriteString("}")
	return buf.String()
}
