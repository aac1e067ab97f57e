package khipu

/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of the software nor the names of its contributors
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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/parbreak/core/dimen"
	params "github.com/npillmayer/parbreak/core/parameters"
	"github.com/npillmayer/parbreak/hyphen"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/text/unicode/norm"
)

// A TypesettingPipeline consists of steps to produce a khipu from text.
type TypesettingPipeline struct {
	input       io.RuneReader
	wordbreaker *uax29.WordBreaker
	segmenter   *segment.Segmenter
	words       *segment.Segmenter
}

// KnotEncode transforms an input text into a khipu.
//
// We use the default segmenter configuration as the primary breaker, which
// identifies line wrap opportunities by UAX#14, and extract spans of
// whitespace with a secondary breaker. This is adequate for western
// languages. If the registers allow hyphenation, words are broken up into
// syllables with discretionary penalties at the joints.
func KnotEncode(text io.Reader, pipeline *TypesettingPipeline,
	regs *params.TypesettingRegisters) *Khipu {
	//
	if regs == nil {
		regs = params.NewTypesettingRegisters()
	}
	pipeline = PrepareTypesettingPipeline(text, pipeline)
	textpos := uint64(0)
	khipu := NewKhipu()
	seg := pipeline.segmenter
	for seg.Next() {
		fragment := seg.Text()
		p := penlty(seg.Penalties())
		T().Debugf("next segment = '%s'\twith penalties %d|%d", fragment, p.p1, p.p2)
		k := createPartialKhipuFromSegment(seg, textpos, regs)
		if regs.N(params.P_MINHYPHENLENGTH) < int(dimen.Infinity) {
			HyphenateTextBoxes(k, pipeline, regs)
		}
		khipu.AppendKhipu(k)
		textpos += uint64(len(fragment))
	}
	T().Infof("resulting khipu = %s", khipu)
	return khipu
}

// EncodeCord encodes the text of a cord into a khipu. Paragraph text coming
// out of the styling pipeline is held in text ropes, which we simply read
// from the rope's reader.
func EncodeCord(text cords.Cord, pipeline *TypesettingPipeline,
	regs *params.TypesettingRegisters) *Khipu {
	//
	return KnotEncode(text.Reader(), pipeline, regs)
}

// Call this for creating a sub-khipu from a segment. The first parameter
// is a segmenter which already has detected a segment, i.e. seg.Next()
// has been called successfully.
//
// Returns a khipu consisting of text-boxes, glues and penalties.
func createPartialKhipuFromSegment(seg *segment.Segmenter, textpos uint64,
	regs *params.TypesettingRegisters) *Khipu {
	//
	khipu := NewKhipu()
	p := penlty(seg.Penalties())
	if p.canWrapLine() { // broken by primary breaker
		// fragment is terminated by possible line wrap opportunity
		if p.breaksAtSpace() { // broken by secondary breaker, too
			if isspace(seg.Text()) {
				g := spaceglue(regs)
				khipu.AppendKnot(g).AppendKnot(NewPenalty(dimen.Dimen(p.p2)))
			} else {
				b := NewTextBox(seg.Text(), textpos)
				khipu.AppendKnot(b).AppendKnot(NewPenalty(dimen.Infinity))
			}
		} else { // identified as a possible line break, but no space
			// insert explicit discretionary '\-' penalty
			b := NewTextBox(seg.Text(), textpos)
			pen := NewFlaggedPenalty(dimen.Dimen(regs.N(params.P_HYPHENPENALTY)), 0)
			khipu.AppendKnot(b).AppendKnot(pen)
		}
	} else { // segment is broken by secondary breaker
		// fragment is start or end of a span of whitespace
		if isspace(seg.Text()) {
			// close a span of whitespace
			g := spaceglue(regs)
			pen := NewPenalty(dimen.Dimen(p.p2))
			khipu.AppendKnot(g).AppendKnot(pen)
		} else {
			// close a text box which is not a possible line wrap position
			b := NewTextBox(seg.Text(), textpos)
			pen := NewPenalty(dimen.Infinity)
			khipu.AppendKnot(b).AppendKnot(pen)
		}
	}
	return khipu
}

// HyphenateTextBoxes hyphenates all the words in a khipu.
// Words are contained inside TextBox knots.
//
// Hyphenation is governed by the typesetting registers.
// If regs is nil, no hyphenation is done.
func HyphenateTextBoxes(khipu *Khipu, pipeline *TypesettingPipeline,
	regs *params.TypesettingRegisters) {
	//
	if regs == nil || khipu == nil {
		return
	}
	hyphenpenalty := dimen.Dimen(regs.N(params.P_HYPHENPENALTY))
	k := make([]Knot, 0, khipu.Length())
	iterator := NewCursor(khipu)
	for iterator.Next() {
		if iterator.Knot().Type() != KTTextBox { // can only hyphenate text knots
			k = append(k, iterator.Knot())
			continue
		}
		textbox := iterator.AsTextBox()
		textpos := textbox.Position
		text := textbox.Text()
		pipeline.words.Init(strings.NewReader(text))
		for pipeline.words.Next() {
			word := pipeline.words.Text()
			T().Debugf("   word = '%s'", word)
			if len(word) == 0 { // should never happen, but be careful not to panic
				continue
			}
			var syllables []string
			isHyphenated := false
			if utf8.RuneCountInString(word) >= regs.N(params.P_MINHYPHENLENGTH) {
				if syllables, isHyphenated = HyphenateWord(word, regs); isHyphenated {
					pos := textpos
					for _, sy := range syllables[:len(syllables)-1] {
						k = append(k, NewTextBox(sy, pos))
						k = append(k, NewFlaggedPenalty(hyphenpenalty, 0))
						pos += uint64(len(sy))
					}
					k = append(k, NewTextBox(syllables[len(syllables)-1], pos))
				}
			}
			if !isHyphenated {
				if word == text {
					k = append(k, iterator.Knot())
				} else {
					k = append(k, NewTextBox(word, textpos))
				}
			}
			textpos += uint64(len(word))
		}
	}
	khipu.knots = k
}

// HyphenateWord hyphenates a single word. The second return value signals
// if at least one hyphenation position has been found.
func HyphenateWord(word string, regs *params.TypesettingRegisters) ([]string, bool) {
	dict := hyphen.Dictionary(regs.S(params.P_LANGUAGE))
	if dict == nil {
		T().Infof("no hyphenation patterns for language %s", regs.S(params.P_LANGUAGE))
		return []string{word}, false
	}
	splitWord := dict.Hyphenate(word)
	return splitWord, len(splitWord) > 1
}

// PrepareTypesettingPipeline checks if a typesetting pipeline is correctly
// initialized and creates a new one if it is invalid.
//
// We use the segmenter's default line wrapper as the primary breaker and
// extract spans of whitespace with the secondary breaker.
// For the inner loop we use a uax29.WordBreaker.
// This is a default configuration adequate for western languages.
func PrepareTypesettingPipeline(text io.Reader, pipeline *TypesettingPipeline) *TypesettingPipeline {
	// wrap a normalization-reader around the input
	if pipeline == nil {
		pipeline = &TypesettingPipeline{}
	}
	pipeline.input = bufio.NewReader(norm.NFC.Reader(text))
	if pipeline.segmenter == nil {
		pipeline.segmenter = segment.NewSegmenter()
		pipeline.wordbreaker = uax29.NewWordBreaker(1)
		pipeline.words = segment.NewSegmenter(pipeline.wordbreaker)
		pipeline.words.BreakOnZero(true, false)
	}
	pipeline.segmenter.Init(pipeline.input)
	return pipeline
}

// ---------------------------------------------------------------------------

type penalties struct {
	p1, p2 int
}

func penlty(p1, p2 int) penalties {
	return penalties{p1, p2}
}

func (p penalties) canWrapLine() bool {
	return p.p1 < uax.InfinitePenalty
}

func (p penalties) breaksAtSpace() bool {
	return p.p2 < uax.InfinitePenalty
}

func isspace(text string) bool {
	if len(text) == 0 {
		return false
	}
	r, width := utf8.DecodeRuneInString(text)
	if width == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsSpace(r)
}

func spaceglue(regs *params.TypesettingRegisters) Glue {
	return NewGlue(5*dimen.PT, 1*dimen.PT, 2*dimen.PT)
}
