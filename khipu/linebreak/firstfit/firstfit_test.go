package firstfit

import (
	"testing"

	"github.com/npillmayer/parbreak/core"
	"github.com/npillmayer/parbreak/core/dimen"
	"github.com/npillmayer/parbreak/khipu"
	"github.com/npillmayer/parbreak/khipu/linebreak"
	"github.com/npillmayer/parbreak/khipu/linebreak/knuthplass"
	"github.com/npillmayer/schuko/testconfig"
)

func config(t *testing.T) func() {
	return testconfig.QuickConfig(t)
}

const u = dimen.BP

func box(w dimen.Dimen) *khipu.TextBox {
	b := khipu.NewTextBox("word", 0)
	b.Width = w
	return b
}

func words(n int, w dimen.Dimen, g khipu.Glue) *khipu.Khipu {
	kh := khipu.NewKhipu()
	for i := 0; i < n; i++ {
		if i > 0 {
			kh.AppendKnot(g)
		}
		kh.AppendKnot(box(w))
	}
	return kh.TerminateParagraph()
}

func positions(breaks []linebreak.Breakpoint) []int64 {
	pp := make([]int64, len(breaks))
	for i, b := range breaks {
		pp[i] = b.Position()
	}
	return pp
}

func TestFirstFit(t *testing.T) {
	teardown := config(t)
	defer teardown()
	kh := words(6, 3*u, khipu.NewGlue(2*u, 2*u, 2*u))
	breaks, err := BreakParagraph(khipu.NewCursor(kh),
		linebreak.RectangularParShape(8*u), nil)
	if err != nil {
		t.Fatalf("cannot break paragraph: %v", err)
	}
	pp := positions(breaks)
	if len(pp) != 4 || pp[1] != 3 || pp[2] != 7 || pp[3] != 13 {
		t.Errorf("greedy breaks are %v, expected [0 3 7 13]", pp)
	}
}

func TestFirstFitForcedBreak(t *testing.T) {
	teardown := config(t)
	defer teardown()
	kh := khipu.NewKhipu()
	kh.AppendKnot(box(3 * u)).AppendKnot(khipu.NewGlue(2*u, 1*u, 1*u))
	kh.AppendKnot(box(3 * u))
	kh.AppendKnot(khipu.NewPenalty(-dimen.Infinity)) // index 3
	kh.AppendKnot(box(3 * u))
	kh.TerminateParagraph()
	breaks, err := BreakParagraph(khipu.NewCursor(kh),
		linebreak.RectangularParShape(20*u), nil)
	if err != nil {
		t.Fatalf("cannot break paragraph: %v", err)
	}
	found := false
	for _, b := range breaks {
		if b.Position() == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("a forced break must end a line, breaks are %v", positions(breaks))
	}
}

func TestFirstFitMissingParshape(t *testing.T) {
	teardown := config(t)
	defer teardown()
	_, err := BreakParagraph(khipu.NewCursor(khipu.NewKhipu()), nil, nil)
	if core.Code(err) != core.EINVALID {
		t.Errorf("expected EINVALID for a nil parshape, got %v", err)
	}
}

func TestFirstFitEmpty(t *testing.T) {
	teardown := config(t)
	defer teardown()
	breaks, err := BreakParagraph(khipu.NewCursor(khipu.NewKhipu()),
		linebreak.RectangularParShape(10*u), nil)
	if err != nil {
		t.Fatalf("breaking an empty khipu failed: %v", err)
	}
	if len(breaks) != 0 {
		t.Errorf("empty input yields an empty chain, got %v", positions(breaks))
	}
}

// The greedy strategy never beats the global optimum.
func TestFirstFitVersusOptimal(t *testing.T) {
	teardown := config(t)
	defer teardown()
	kh := words(6, 3*u, khipu.NewGlue(2*u, 2*u, 2*u))
	parshape := linebreak.RectangularParShape(8 * u)
	params := linebreak.DefaultParameters()
	params.Tolerance = 1.5
	greedy, err := BreakParagraph(khipu.NewCursor(kh), parshape, nil)
	if err != nil {
		t.Fatalf("first-fit failed: %v", err)
	}
	optimal, err := knuthplass.BreakParagraph(khipu.NewCursor(kh), parshape, params)
	if err != nil {
		t.Fatalf("knuth-plass failed: %v", err)
	}
	if len(optimal) > len(greedy) {
		t.Errorf("optimal paragraph has more lines (%d) than the greedy one (%d)",
			len(optimal)-1, len(greedy)-1)
	}
}
