package parameters

import "testing"

func TestParametersDefaults(t *testing.T) {
	regs := NewTypesettingRegisters()
	if regs.S(P_LANGUAGE) != "en_EN" {
		t.Errorf("default language is %s, expected en_EN", regs.S(P_LANGUAGE))
	}
	if regs.N(P_HYPHENPENALTY) != 50 {
		t.Errorf("default hyphen penalty is %d, expected 50", regs.N(P_HYPHENPENALTY))
	}
	if regs.N(P_TOLERANCE) != 1 {
		t.Errorf("default tolerance is %d, expected 1", regs.N(P_TOLERANCE))
	}
}

func TestParametersPush(t *testing.T) {
	regs := NewTypesettingRegisters()
	regs.Push(P_LOOSENESS, 1)
	if regs.N(P_LOOSENESS) != 1 {
		t.Errorf("looseness is %d, expected 1", regs.N(P_LOOSENESS))
	}
}

func TestParametersGrouping(t *testing.T) {
	regs := NewTypesettingRegisters()
	regs.Begingroup()
	regs.Push(P_TOLERANCE, 99)
	if regs.N(P_TOLERANCE) != 99 {
		t.Errorf("tolerance within group is %d, expected 99", regs.N(P_TOLERANCE))
	}
	regs.Endgroup()
	if regs.N(P_TOLERANCE) != 1 {
		t.Errorf("tolerance after group is %d, expected default of 1", regs.N(P_TOLERANCE))
	}
}

func TestParametersEmptyGroup(t *testing.T) {
	regs := NewTypesettingRegisters()
	regs.Push(P_LOOSENESS, -1)
	regs.Begingroup()
	regs.Endgroup() // group without local settings
	if regs.N(P_LOOSENESS) != -1 {
		t.Errorf("looseness is %d, expected -1", regs.N(P_LOOSENESS))
	}
	regs.Begingroup()
	regs.Push(P_LOOSENESS, 2)
	regs.Endgroup()
	if regs.N(P_LOOSENESS) != -1 {
		t.Errorf("looseness after group is %d, expected -1", regs.N(P_LOOSENESS))
	}
}
