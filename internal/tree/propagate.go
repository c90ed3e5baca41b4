package tree

import "github.com/alexanderramin/bbtree/internal/domain"

// Propagate copies n's primal bound to each ancestor whose bound is no
// better, stopping at the first ancestor that already holds a strictly
// better one. It returns the number of ancestors visited.
//
// After any call the root holds the best primal bound found in the tree,
// and along a touched chain bounds never get worse towards the leaves.
func Propagate(s *Store, n *domain.Node) int {
	sense := s.Sense()
	steps := 0
	for father := s.Parent(n); father != nil; father = s.Parent(n) {
		steps++
		if !sense.AtLeastAsGood(n.PrimalBound, father.PrimalBound) {
			break
		}
		father.PrimalBound = n.PrimalBound
		n = father
	}
	return steps
}
