package rdf

// Order names one of the twelve ways a Quad can be sorted: a permutation
// of its four positions, read as the order index keys are compared in.
// The six graph-less orders treat the quad as a triple in the default
// graph index family; the six graph-prefixed orders key on the graph
// first and serve the named-graph index family. This mirrors sord.c's
// SordOrder plus its parallel "graph-first" variants.
type Order byte

const (
	SPO Order = iota
	SOP
	OPS
	OSP
	PSO
	POS

	GSPO
	GSOP
	GOPS
	GOSP
	GPSO
	GPOS
)

func (o Order) String() string {
	switch o {
	case SPO:
		return "SPO"
	case SOP:
		return "SOP"
	case OPS:
		return "OPS"
	case OSP:
		return "OSP"
	case PSO:
		return "PSO"
	case POS:
		return "POS"
	case GSPO:
		return "GSPO"
	case GSOP:
		return "GSOP"
	case GOPS:
		return "GOPS"
	case GOSP:
		return "GOSP"
	case GPSO:
		return "GPSO"
	case GPOS:
		return "GPOS"
	default:
		return "invalid"
	}
}

// HasGraph reports whether this order keys on the graph position first.
func (o Order) HasGraph() bool {
	return o >= GSPO
}

// Positions indexes of Quad{S,P,O,G} in the order [0]=S [1]=P [2]=O [3]=G.
// Permutation returns the sequence this order compares positions in, so
// Compare can iterate Permutation instead of hard-coding a switch per
// order. For the six graph-less
// orders the graph position is always last and Compare ignores it
// entirely - the same quad asserted into two different graphs is one
// (S,P,O) as far as these orders are concerned. For the six
// graph-prefixed orders the graph position is always first and is
// compared like any other position.
func (o Order) Permutation() [4]int {
	switch o {
	case SPO:
		return [4]int{0, 1, 2, 3}
	case SOP:
		return [4]int{0, 2, 1, 3}
	case OPS:
		return [4]int{2, 1, 0, 3}
	case OSP:
		return [4]int{2, 0, 1, 3}
	case PSO:
		return [4]int{1, 0, 2, 3}
	case POS:
		return [4]int{1, 2, 0, 3}
	case GSPO:
		return [4]int{3, 0, 1, 2}
	case GSOP:
		return [4]int{3, 0, 2, 1}
	case GOPS:
		return [4]int{3, 2, 1, 0}
	case GOSP:
		return [4]int{3, 2, 0, 1}
	case GPSO:
		return [4]int{3, 1, 0, 2}
	case GPOS:
		return [4]int{3, 1, 2, 0}
	default:
		return [4]int{0, 1, 2, 3}
	}
}

// Quad is a subject/predicate/object/graph tuple of interned nodes. A nil
// Graph denotes the default graph, not a wildcard; patterns use a
// separate *Node wildcard convention (see Model.Match).
type Quad struct {
	Subject   *Node
	Predicate *Node
	Object    *Node
	Graph     *Node
}

// Get returns the node at position i of the quad in S,P,O,G order.
func (q Quad) Get(i int) *Node {
	switch i {
	case 0:
		return q.Subject
	case 1:
		return q.Predicate
	case 2:
		return q.Object
	case 3:
		return q.Graph
	default:
		panic("rdf: quad position out of range")
	}
}

// Compare compares a and b under order o: it walks o's permutation of
// positions and returns at the first position whose nodes differ. This is
// the direct analogue of sord_quad_compare keyed by a SordOrder. The
// graph-less orders (SPO, SOP, OPS, OSP, PSO, POS) stop after the first
// three permutation entries, so the graph never participates in the
// comparison for them - two quads that agree on S, P and O tie under
// these orders regardless of graph, matching spec.md's "graph is ignored
// for iteration" rule for this order family.
func (o Order) Compare(a, b Quad) int {
	perm := o.Permutation()
	n := 4
	if !o.HasGraph() {
		n = 3
	}
	for _, pos := range perm[:n] {
		if c := Compare(a.Get(pos), b.Get(pos)); c != 0 {
			return c
		}
	}
	return 0
}

func (q Quad) String() string {
	g := q.Graph
	if g == nil {
		return q.Subject.String() + " " + q.Predicate.String() + " " + q.Object.String() + " ."
	}
	return q.Subject.String() + " " + q.Predicate.String() + " " + q.Object.String() + " " + g.String() + " ."
}
