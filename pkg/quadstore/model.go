package quadstore

import (
	"errors"

	"golang.org/x/exp/maps"

	"github.com/aleksaelezovic/quadstore/internal/xindex"
	"github.com/aleksaelezovic/quadstore/pkg/rdf"
)

var (
	// ErrNilTerm is returned when Add is given a quad with a nil
	// subject, predicate or object; only the graph position may be
	// nil (meaning the default graph).
	ErrNilTerm = errors.New("quadstore: subject, predicate and object must be concrete nodes")
	// ErrInvalidPredicate is returned when the predicate is not an IRI.
	ErrInvalidPredicate = errors.New("quadstore: predicate must be an IRI")
	// ErrLiteralSubject is returned when the subject or graph position
	// holds a literal, which RDF forbids.
	ErrLiteralSubject = errors.New("quadstore: subject and graph must not be literals")
)

// Model is an in-memory multi-index quad store. Every quad is kept
// simultaneously under the six graph-less orderings (indexed by S, P, O
// alone, spanning every graph) and, when its graph position is bound,
// under the six graph-prefixed orderings - the same redundant-storage
// approach sord and trigo's store layer both use to turn every bound
// combination of positions into an index range scan instead of a linear
// filter.
type Model struct {
	world *rdf.World

	allOrders   map[rdf.Order]*xindex.Index[rdf.Quad]
	graphOrders map[rdf.Order]*xindex.Index[rdf.Quad]

	numQuads int
}

var nonGraphOrders = [6]rdf.Order{rdf.SPO, rdf.SOP, rdf.OPS, rdf.OSP, rdf.PSO, rdf.POS}
var graphPrefixedOrders = [6]rdf.Order{rdf.GSPO, rdf.GSOP, rdf.GOPS, rdf.GOSP, rdf.GPSO, rdf.GPOS}

// NewModel creates an empty Model backed by world. All nodes added to the
// model must have been interned through world.
func NewModel(world *rdf.World) *Model {
	m := &Model{
		world:       world,
		allOrders:   make(map[rdf.Order]*xindex.Index[rdf.Quad]),
		graphOrders: make(map[rdf.Order]*xindex.Index[rdf.Quad]),
	}
	for _, o := range nonGraphOrders {
		m.allOrders[o] = xindex.New(o.Compare)
	}
	for _, o := range graphPrefixedOrders {
		m.graphOrders[o] = xindex.New(o.Compare)
	}
	return m
}

func validateQuad(q rdf.Quad) error {
	if q.Subject == nil || q.Predicate == nil || q.Object == nil {
		return ErrNilTerm
	}
	if q.Predicate.Kind() != rdf.KindIRI {
		return ErrInvalidPredicate
	}
	if q.Subject.Kind() == rdf.KindLiteral {
		return ErrLiteralSubject
	}
	if q.Graph != nil && q.Graph.Kind() == rdf.KindLiteral {
		return ErrLiteralSubject
	}
	return nil
}

// Add inserts q into every relevant index. It returns true if the quad
// was new, false if it was already present (in which case the store is
// unchanged - add is idempotent, matching sord_add's return convention).
// Add takes a reference on each of q's nodes on behalf of the model's own
// copy of the quad; callers that built q from World.New* calls retain
// ownership of their own reference and may Release it freely afterwards.
func (m *Model) Add(q rdf.Quad) (bool, error) {
	if err := validateQuad(q); err != nil {
		return false, err
	}
	// SPO ties on subject, predicate and object alone (graph is excluded
	// from its comparator), but xindex.Index.Find still distinguishes
	// same-(S,P,O) quads that differ only in graph by exact equality
	// within that tied run, so this remains an exact duplicate check.
	canonical := m.allOrders[rdf.SPO]
	if _, found := canonical.Find(q); found {
		return false, nil
	}

	m.world.Copy(q.Subject)
	m.world.Copy(q.Predicate)
	m.world.Copy(q.Object)
	if q.Graph != nil {
		m.world.Copy(q.Graph)
	}
	m.refObjectPosition(q.Object, 1)

	for _, idx := range m.allOrders {
		idx.Insert(q)
	}
	if q.Graph != nil {
		for _, idx := range m.graphOrders {
			idx.Insert(q)
		}
	}
	m.numQuads++
	return true, nil
}

// Remove deletes q from every index it was stored in. It returns true if
// the quad was present.
func (m *Model) Remove(q rdf.Quad) bool {
	canonical := m.allOrders[rdf.SPO]
	if _, found := canonical.Find(q); !found {
		return false
	}
	for _, idx := range m.allOrders {
		idx.Remove(q)
	}
	if q.Graph != nil {
		for _, idx := range m.graphOrders {
			idx.Remove(q)
		}
	}
	m.numQuads--

	m.world.Release(q.Subject)
	m.world.Release(q.Predicate)
	m.world.Release(q.Object)
	if q.Graph != nil {
		m.world.Release(q.Graph)
	}
	m.refObjectPosition(q.Object, -1)
	return true
}

// refObjectPosition keeps Node.RefsAsObject accurate as quads move in and
// out of the object position.
func (m *Model) refObjectPosition(n *rdf.Node, delta int) {
	if delta > 0 {
		m.world.TrackObject(n)
	} else {
		m.world.UntrackObject(n)
	}
}

// Contains reports whether q is stored exactly, with no wildcards.
func (m *Model) Contains(q rdf.Quad) bool {
	_, found := m.allOrders[rdf.SPO].Find(q)
	return found
}

// NumQuads returns the number of distinct quads currently stored.
func (m *Model) NumQuads() int {
	return m.numQuads
}

// World returns the World this model interns its nodes through.
func (m *Model) World() *rdf.World {
	return m.world
}

// Match plans and runs pattern, returning an Iterator over every stored
// quad that satisfies it. When pattern leaves the graph a wildcard, the
// scan runs over a graph-less order, and the returned iterator collapses
// a triple asserted into several graphs down to one result - a
// graph-bound pattern always scans the matching graph's own run and
// never collapses anything.
func (m *Model) Match(pattern Pattern) *Iterator {
	s, p, o, g := pattern.bound()
	pl := selectPlan(s, p, o, g)

	var idx *xindex.Index[rdf.Quad]
	if g {
		idx = m.graphOrders[pl.order]
	} else {
		idx = m.allOrders[pl.order]
	}
	return newIterator(idx, pl, pattern, !g)
}

// Begin returns an iterator over every quad in the model under the
// default order, the same starting point sord_begin hands a caller that
// wants a full scan rather than a specific pattern. An empty model's
// iterator simply reports no results on the first Next, Go's stand-in
// for sord's sentinel "end" iterator.
func (m *Model) Begin() *Iterator {
	return m.Match(Pattern{})
}

// IndexSizes reports how many quads each maintained order currently
// holds, keyed by the order's name. It's a diagnostic: each of the six
// graph-less orders holds every stored quad, so they always agree, and
// each of the six graph-prefixed orders holds only the quads whose graph
// is bound (all six are empty if no quad has ever carried a graph).
func (m *Model) IndexSizes() map[string]int {
	sizes := make(map[string]int, len(m.allOrders)+len(m.graphOrders))
	for _, o := range maps.Keys(m.allOrders) {
		sizes[o.String()] = m.allOrders[o].Len()
	}
	for _, o := range maps.Keys(m.graphOrders) {
		sizes[o.String()] = m.graphOrders[o].Len()
	}
	return sizes
}
