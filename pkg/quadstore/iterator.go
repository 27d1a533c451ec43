package quadstore

import (
	"github.com/aleksaelezovic/quadstore/internal/xindex"
	"github.com/aleksaelezovic/quadstore/pkg/rdf"
)

// Iterator walks the quads selected by a Pattern in the order the
// planner chose. It is positioned before the first result; call Next
// before the first Quad.
type Iterator struct {
	idx      *xindex.Index[rdf.Quad]
	order    rdf.Order
	pattern  Pattern
	mode     Mode
	collapse bool

	pos     int
	current rdf.Quad
	done    bool
}

// newIterator builds an iterator over idx under plan pl. collapse marks a
// graph-wildcard query run through a graph-less order: several stored
// quads can share a subject, predicate and object while differing only
// in graph, and Next folds each such run down to a single result.
func newIterator(idx *xindex.Index[rdf.Quad], pl plan, pattern Pattern, collapse bool) *Iterator {
	it := &Iterator{idx: idx, order: pl.order, pattern: pattern, mode: pl.mode, collapse: collapse}
	switch pl.mode {
	case ModeAll, ModeFilterAll:
		it.pos = 0
	default:
		probe := rdf.Quad{Subject: pattern.Subject, Predicate: pattern.Predicate, Object: pattern.Object, Graph: pattern.Graph}
		it.pos = idx.RangeFrom(probe)
	}
	return it
}

// Next advances the iterator, returning false once no further quad
// satisfies the pattern. In ModeRange and ModeSingle this also acts as
// the range's stopping condition: once a scanned quad no longer matches
// the bound prefix, every later quad in the index (sorted on that same
// prefix) won't either, so the scan ends there rather than running to
// the end of the index - the same early-exit sord_iter_forward relies on.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	for it.pos < it.idx.Len() {
		q := it.idx.At(it.pos)
		it.pos++
		if it.pattern.Matches(q) {
			it.current = q
			if it.collapse {
				it.skipGraphTies(q)
			}
			return true
		}
		if it.mode == ModeRange || it.mode == ModeSingle {
			it.done = true
			return false
		}
	}
	it.done = true
	return false
}

// skipGraphTies advances past any run of entries immediately following q
// that tie with it under the iterator's order - which, for a graph-less
// order, means they share q's subject, predicate and object and differ
// only in graph. This surfaces the first-visited graph for a collapsed
// (S,P,O) and skips the rest, the same behavior sord_iter_forward gives
// a skip-graphs iterator.
func (it *Iterator) skipGraphTies(q rdf.Quad) {
	for it.pos < it.idx.Len() && it.order.Compare(it.idx.At(it.pos), q) == 0 {
		it.pos++
	}
}

// Quad returns the quad Next most recently positioned on.
func (it *Iterator) Quad() rdf.Quad {
	return it.current
}

// Mode reports the scan strategy the planner chose for this iterator.
func (it *Iterator) Mode() Mode {
	return it.mode
}
