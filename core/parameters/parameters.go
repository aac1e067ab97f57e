/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/parbreak/core/dimen"
)

type TypesettingParameter int

//go:generate stringer -type=TypesettingParameter
const (
	none TypesettingParameter = iota
	P_LANGUAGE
	P_SCRIPT
	P_TEXTDIRECTION
	P_BASELINESKIP
	P_LINESKIP
	P_LINESKIPLIMIT
	P_HYPHENCHAR
	P_HYPHENPENALTY
	P_MINHYPHENLENGTH
	P_TOLERANCE
	P_LOOSENESS
	P_FITNESSDEMERITS
	P_FLAGGEDDEMERITS
	P_STOPPER
)

type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en_EN"                    // a string
	p[P_SCRIPT] = "Latin"                      // a string
	p[P_TEXTDIRECTION] = bidi.LeftToRight      //
	p[P_BASELINESKIP] = 12 * dimen.PT          // dimension
	p[P_LINESKIP] = dimen.Zero                 // dimension
	p[P_LINESKIPLIMIT] = dimen.Zero            // dimension
	p[P_HYPHENCHAR] = int('-')                 // a rune
	p[P_HYPHENPENALTY] = 50                    // a numeric penalty (int)
	p[P_MINHYPHENLENGTH] = int(dimen.Infinity) // a numeric quantity (int) = # of runes
	p[P_TOLERANCE] = 1                         // adjustment ratio tolerance (int)
	p[P_LOOSENESS] = 0                         // line count adjustment (int)
	p[P_FITNESSDEMERITS] = 100                 // demerits for fitness class jumps (int)
	p[P_FLAGGEDDEMERITS] = 100                 // demerits for consecutive flagged breaks (int)
}

func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel == 0 {
		return
	}
	if regs.groups != nil && regs.groups.level == regs.grouplevel {
		regs.groups = regs.groups.next
	}
	regs.grouplevel--
}

func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil {
			g = &ParameterGroup{}
			g.params = make(map[TypesettingParameter]interface{})
			g.level = regs.grouplevel
			regs.groups = g
		} else {
			if regs.groups.level < regs.grouplevel {
				g = &ParameterGroup{}
				g.params = make(map[TypesettingParameter]interface{})
				g.level = regs.grouplevel
				g.next = regs.groups
				regs.groups = g
			} else {
				g = regs.groups
			}
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= 0 || key == P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *TypesettingRegisters) S(key TypesettingParameter) string {
	return regs.Get(key).(string)
}

func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

func (regs *TypesettingRegisters) D(key TypesettingParameter) dimen.Dimen {
	return regs.Get(key).(dimen.Dimen)
}
