package dimen

import "testing"

func TestDimenBase(t *testing.T) {
	if BP.String() != "65536sp" {
		t.Error("a big point BP should be 65536 scaled points SP")
	}
	if Infinity.String() != "∞sp" {
		t.Errorf("Infinity prints as %s, should be ∞sp", Infinity)
	}
}

func TestDimenParse(t *testing.T) {
	tests := []struct {
		input string
		d     Dimen
		pcnt  bool
	}{
		{"1", 1 * SP, false},
		{"10pt", 10 * PT, false},
		{"-2cm", -2 * CM, false},
		{"8bp", 8 * BP, false},
		{"80%", Dimen(80), true},
	}
	for _, test := range tests {
		d, pcnt, err := ParseDimen(test.input)
		if err != nil {
			t.Errorf("cannot parse '%s': %v", test.input, err)
		} else if d != test.d || pcnt != test.pcnt {
			t.Errorf("'%s' parsed as %d/%v, expected %d/%v", test.input,
				d, pcnt, test.d, test.pcnt)
		}
	}
	if _, _, err := ParseDimen("12quux"); err == nil {
		t.Error("expected parsing of '12quux' to fail")
	}
}

func TestDimenMinMax(t *testing.T) {
	if Min(1*PT, 2*PT) != 1*PT {
		t.Error("expected min(1pt, 2pt) to be 1pt")
	}
	if Max(1*PT, 2*PT) != 2*PT {
		t.Error("expected max(1pt, 2pt) to be 2pt")
	}
}
