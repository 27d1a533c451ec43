// Package quadstore implements the multi-index quad store: Model holds
// quads under every ordering a query might need, Planner picks the
// cheapest ordering for a given pattern, and Iterator walks the chosen
// range.
package quadstore

import "github.com/aleksaelezovic/quadstore/pkg/rdf"

// Pattern describes a quad query. A nil field is a wildcard: it matches
// any node in that position. A nil Graph additionally means "any graph,
// including the default graph" - there is no separate way to ask for
// "default graph only", mirroring how a store without an explicit graph
// argument behaves.
type Pattern struct {
	Subject   *rdf.Node
	Predicate *rdf.Node
	Object    *rdf.Node
	Graph     *rdf.Node
}

func (p Pattern) bound() (s, pr, o, g bool) {
	return p.Subject != nil, p.Predicate != nil, p.Object != nil, p.Graph != nil
}

// boundCount reports how many of S, P, O are bound, a rough sense of how
// selective a pattern is without reaching into the planner.
func (p Pattern) boundCount() int {
	n := 0
	if p.Subject != nil {
		n++
	}
	if p.Predicate != nil {
		n++
	}
	if p.Object != nil {
		n++
	}
	return n
}

func (p Pattern) asQuad() rdf.Quad {
	return rdf.Quad{Subject: p.Subject, Predicate: p.Predicate, Object: p.Object, Graph: p.Graph}
}

// Matches reports whether q satisfies every bound position of p.
func (p Pattern) Matches(q rdf.Quad) bool {
	if p.Subject != nil && p.Subject != q.Subject {
		return false
	}
	if p.Predicate != nil && p.Predicate != q.Predicate {
		return false
	}
	if p.Object != nil && p.Object != q.Object {
		return false
	}
	if p.Graph != nil && p.Graph != q.Graph {
		return false
	}
	return true
}
