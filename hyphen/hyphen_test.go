package hyphen

import (
	"bufio"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func config(t *testing.T) func() {
	return testconfig.QuickConfig(t)
}

func TestPatternMatching(t *testing.T) {
	teardown := config(t)
	defer teardown()
	dict := NewDict()
	dict.AddPattern("y3p")
	syllables := dict.Hyphenate("hyphen")
	if len(syllables) != 2 || syllables[0] != "hy" || syllables[1] != "phen" {
		t.Errorf("'hyphen' split as %v, expected hy-phen", syllables)
	}
}

func TestEvenPrioritiesForbid(t *testing.T) {
	teardown := config(t)
	defer teardown()
	dict := NewDict()
	dict.AddPattern("y3p")
	dict.AddPattern("hy4ph") // longer pattern outvotes the shorter one
	syllables := dict.Hyphenate("hyphen")
	if len(syllables) != 1 {
		t.Errorf("'hyphen' split as %v, expected no hyphenation", syllables)
	}
}

func TestMargins(t *testing.T) {
	teardown := config(t)
	defer teardown()
	dict := NewDict()
	dict.AddPattern("o1b")
	if syllables := dict.Hyphenate("job"); len(syllables) != 1 {
		t.Errorf("margins forbid a hyphen before the last letter, got %v", syllables)
	}
	dict.MinLeft = 1
	dict.MinRight = 1
	if syllables := dict.Hyphenate("job"); len(syllables) != 2 {
		t.Errorf("with margins of 1 'job' splits as jo-b, got %v", syllables)
	}
}

func TestExceptions(t *testing.T) {
	teardown := config(t)
	defer teardown()
	dict := NewDict()
	dict.AddException("ta-ble")
	syllables := dict.Hyphenate("table")
	if len(syllables) != 2 || syllables[0] != "ta" || syllables[1] != "ble" {
		t.Errorf("'table' split as %v, expected ta-ble", syllables)
	}
	syllables = dict.Hyphenate("Table") // casing is preserved
	if len(syllables) != 2 || syllables[0] != "Ta" {
		t.Errorf("'Table' split as %v, expected Ta-ble", syllables)
	}
}

func TestLoadPatterns(t *testing.T) {
	teardown := config(t)
	defer teardown()
	input := `
% comment lines are skipped
y3p .ach4
ta-ble
`
	dict, err := LoadPatterns(bufio.NewScanner(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("cannot load patterns: %v", err)
	}
	if syllables := dict.Hyphenate("hyphen"); len(syllables) != 2 {
		t.Errorf("'hyphen' split as %v, expected hy-phen", syllables)
	}
	if syllables := dict.Hyphenate("table"); len(syllables) != 2 {
		t.Errorf("exception 'table' split as %v, expected ta-ble", syllables)
	}
}

func TestEmbeddedDictionary(t *testing.T) {
	teardown := config(t)
	defer teardown()
	dict := Dictionary("en_US")
	if dict == nil {
		t.Fatalf("no embedded dictionary for English")
	}
	if Dictionary("en_EN") != dict {
		t.Errorf("dictionaries are shared per base language")
	}
	syllables := dict.Hyphenate("associate")
	if len(syllables) != 3 {
		t.Errorf("'associate' split as %v, expected as-so-ciate", syllables)
	}
	if Dictionary("tlh") != nil {
		t.Errorf("expected no dictionary for Klingon")
	}
}

func TestRegisterDictionary(t *testing.T) {
	teardown := config(t)
	defer teardown()
	dict := NewDict()
	dict.AddException("qa-pla")
	RegisterDictionary("xx", dict)
	if Dictionary("xx_XX") != dict {
		t.Errorf("registered dictionary not found")
	}
}
