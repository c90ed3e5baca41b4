package tree

import "github.com/alexanderramin/bbtree/internal/domain"

// Resolve derives a node's display color from its bounds and the global
// incumbent (the root's primal bound). It is a pure function of its inputs.
//
// Once both bounds are finite, a node whose dual bound is strictly worse
// than the incumbent is inferior, and a node whose primal and dual bounds
// meet is optimal. Otherwise the raw solver color stands.
func Resolve(sense domain.Sense, n domain.Node, incumbent float64) domain.Color {
	if !domain.Bounded(n.DualBound) || !domain.Bounded(incumbent) {
		return n.RawColor
	}
	if sense.Better(incumbent, n.DualBound) {
		return domain.ColorInferior
	}
	if n.PrimalBound == n.DualBound {
		return domain.ColorOptimal
	}
	return n.RawColor
}
