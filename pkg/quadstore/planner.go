package quadstore

import "github.com/aleksaelezovic/quadstore/pkg/rdf"

// Mode classifies the scan a plan results in, mirroring the iterator
// modes sord_iter distinguishes: whether the chosen index narrows to a
// single quad, a contiguous range, or needs no narrowing at all.
type Mode byte

const (
	// ModeAll scans an entire index; no position is bound.
	ModeAll Mode = iota
	// ModeSingle looks up one exact quad; every position the index
	// leads with is bound, so the match is a single point.
	ModeSingle
	// ModeRange narrows to a contiguous run using a proper prefix of
	// the chosen index's leading positions, then scans that run.
	ModeRange
	// ModeFilterRange narrows to a range that is a superset of the
	// answer and filters residual positions while scanning it.
	ModeFilterRange
	// ModeFilterAll scans the whole index and filters every position;
	// used only when no index offers a useful prefix.
	ModeFilterAll
)

// plan is the result of planning a pattern: which order to scan and in
// what mode.
type plan struct {
	order rdf.Order
	mode  Mode
}

// selectPlan is the planner: given which of S, P, O are bound and
// whether the query is graph-scoped, it picks the order whose leading
// positions match the bound set most closely. This is the Go analogue
// of sord_best_index's bound-signature table; because every single- and
// double-bound S/P/O combination in our twelve orders has a
// corresponding order that leads with exactly that combination, the
// plan is always an exact prefix match (ModeRange or better) - the
// FILTER modes exist for completeness and for callers that scan an
// order directly rather than through Match.
func selectPlan(s, p, o, graphBound bool) plan {
	var order rdf.Order
	switch {
	case s && p && o:
		order = rdf.SPO
	case s && p:
		order = rdf.SPO
	case s && o:
		order = rdf.SOP
	case p && o:
		order = rdf.POS
	case s:
		order = rdf.SPO
	case p:
		order = rdf.PSO
	case o:
		order = rdf.OPS
	default:
		order = rdf.SPO
	}
	if graphBound {
		order = toGraphOrder(order)
	}

	// A pattern with only the graph bound still gets a graph-prefixed
	// order above, whose leading position is the one thing it has bound -
	// that's a one-element prefix, ModeRange, not a full scan.
	mode := ModeRange
	switch {
	case !s && !p && !o && !graphBound:
		mode = ModeAll
	case s && p && o:
		mode = ModeSingle
	}
	return plan{order: order, mode: mode}
}

// toGraphOrder maps a graph-less order onto its graph-prefixed
// counterpart, preserving the relative order of S, P and O.
func toGraphOrder(o rdf.Order) rdf.Order {
	switch o {
	case rdf.SPO:
		return rdf.GSPO
	case rdf.SOP:
		return rdf.GSOP
	case rdf.OPS:
		return rdf.GOPS
	case rdf.OSP:
		return rdf.GOSP
	case rdf.PSO:
		return rdf.GPSO
	case rdf.POS:
		return rdf.GPOS
	default:
		return rdf.GSPO
	}
}
