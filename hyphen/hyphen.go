// Package hyphen implements hyphenation of words after the algorithm by
// F.M. Liang, as described in
//
//	F.M. Liang: Word Hy-phen-a-tion by Com-put-er.
//	Dissertation, Stanford University, 1983.
//
// Hyphenation patterns carry inter-letter priorities; odd priorities
// permit a hyphen, even priorities forbid one. Patterns for a word are
// collected from a dictionary and the maximum priority wins at every
// position. Dictionaries additionally carry exceptions, words with
// hyphenation positions given verbatim.
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
package hyphen

import (
	"bufio"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
	"github.com/npillmayer/parbreak/core"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Dict is a hyphenation dictionary for a single language: a pattern trie
// plus a list of exceptions.
type Dict struct {
	patterns   *trie.Trie
	exceptions map[string][]string
	MinLeft    int // minimum number of letters before the first hyphen
	MinRight   int // minimum number of letters after the last hyphen
}

// pattern priorities, indexed by inter-letter position of the pattern key
type priorities []int8

// NewDict creates an empty hyphenation dictionary with the usual margins
// of 2 letters before the first and 3 letters after the last hyphen.
func NewDict() *Dict {
	return &Dict{
		patterns:   trie.New(),
		exceptions: make(map[string][]string),
		MinLeft:    2,
		MinRight:   3,
	}
}

// AddPattern inserts a single pattern in TeX notation, e.g. "hy3ph" or
// ".ach4". Digits carry the inter-letter priorities, a dot anchors the
// pattern at a word boundary.
func (dict *Dict) AddPattern(pat string) {
	var letters strings.Builder
	prios := priorities{0}
	for _, r := range pat {
		if unicode.IsDigit(r) {
			prios[len(prios)-1] = int8(r - '0')
			continue
		}
		letters.WriteRune(r)
		prios = append(prios, 0)
	}
	dict.patterns.Add(letters.String(), prios)
}

// AddException inserts a pre-hyphenated word, e.g. "ta-ble". Exceptions
// override whatever the patterns would decide.
func (dict *Dict) AddException(hyphenated string) {
	word := strings.ReplaceAll(hyphenated, "-", "")
	dict.exceptions[strings.ToLower(word)] = strings.Split(hyphenated, "-")
}

// Hyphenate splits a word into syllables. Words without a legal hyphen
// position are returned as a single syllable.
func (dict *Dict) Hyphenate(word string) []string {
	runes := []rune(word)
	if lc, ok := dict.exceptions[strings.ToLower(word)]; ok {
		return applyException(runes, lc)
	}
	key := append([]rune{'.'}, []rune(strings.ToLower(word))...)
	key = append(key, '.')
	prios := make(priorities, len(key)+1)
	for i := 0; i < len(key); i++ {
		for j := i + 1; j <= len(key); j++ {
			sub := string(key[i:j])
			if !dict.patterns.HasKeysWithPrefix(sub) {
				break
			}
			if node, ok := dict.patterns.Find(sub); ok {
				for k, p := range node.Meta().(priorities) {
					if p > prios[i+k] {
						prios[i+k] = p
					}
				}
			}
		}
	}
	// prios[i+1] governs the position before rune i of the word
	var syllables []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if prios[i+1]%2 == 0 {
			continue
		}
		if i < dict.MinLeft || len(runes)-i < dict.MinRight {
			continue
		}
		syllables = append(syllables, string(runes[start:i]))
		start = i
	}
	syllables = append(syllables, string(runes[start:]))
	return syllables
}

// applyException re-applies the split of a lowercase exception entry to a
// word in its original casing.
func applyException(runes []rune, split []string) []string {
	syllables := make([]string, 0, len(split))
	start := 0
	for _, syl := range split[:len(split)-1] {
		n := len([]rune(syl))
		syllables = append(syllables, string(runes[start:start+n]))
		start += n
	}
	return append(syllables, string(runes[start:]))
}

// LoadPatterns reads a whitespace-separated list of patterns in TeX
// notation. Entries containing a dash are taken as exceptions, lines
// starting with a percent sign are comments.
func LoadPatterns(input *bufio.Scanner) (*Dict, error) {
	dict := NewDict()
	count := 0
	for input.Scan() {
		line := strings.TrimSpace(input.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		for _, pat := range strings.Fields(line) {
			if strings.Contains(pat, "-") {
				dict.AddException(pat)
			} else {
				dict.AddPattern(pat)
			}
			count++
		}
	}
	if err := input.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read hyphenation patterns")
	}
	T().Debugf("loaded %d hyphenation patterns", count)
	return dict, nil
}
