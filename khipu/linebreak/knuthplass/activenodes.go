package knuthplass

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// activeNodes is the list of breakpoint candidates still in competition,
// the "horizon" of the algorithm. It is kept sorted by line number, so a
// sweep over it sees chains for shorter paragraphs first.
//
// A node is dominated if an earlier insert produced a node with the same
// line number, position and fitness class: the earlier node is kept and
// later duplicates are discarded, even if they carry fewer demerits.
type activeNodes struct {
	actives *arraylist.List
}

func newActiveNodes() *activeNodes {
	return &activeNodes{actives: arraylist.New()}
}

func (h *activeNodes) size() int {
	return h.actives.Size()
}

// each calls f for every active node, in line number order.
func (h *activeNodes) each(f func(a *Break)) {
	it := h.actives.Iterator()
	for it.Next() {
		f(it.Value().(*Break))
	}
}

// insert adds a break node to the horizon, keeping the list sorted by line
// number. Dominated duplicates are not inserted.
func (h *activeNodes) insert(n *Break) {
	inx := 0
	it := h.actives.Iterator()
	for it.Next() {
		a := it.Value().(*Break)
		if a.line > n.line {
			break
		}
		if a.line == n.line && a.pos == n.pos && a.fitness == n.fitness {
			return // dominated by an earlier node
		}
		inx++
	}
	h.actives.Insert(inx, n)
}

// remove deactivates a break node. Unknown nodes are ignored.
func (h *activeNodes) remove(n *Break) {
	if inx := h.actives.IndexOf(n); inx >= 0 {
		h.actives.Remove(inx)
	}
}

func (h *activeNodes) String() string {
	var sb strings.Builder
	sb.WriteString("horizon[")
	it := h.actives.Iterator()
	for it.Next() {
		if it.Index() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(it.Value().(*Break).String())
	}
	sb.WriteString("]")
	return sb.String()
}
