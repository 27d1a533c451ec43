package quadstore

import (
	"testing"

	"github.com/aleksaelezovic/quadstore/pkg/rdf"
)

func fixture() (*rdf.World, *Model) {
	w := rdf.NewWorld()
	m := NewModel(w)
	return w, m
}

func TestAddAndContains(t *testing.T) {
	w, m := fixture()
	q := rdf.Quad{
		Subject:   w.NewIRI("http://example.org/alice"),
		Predicate: w.NewIRI("http://example.org/knows"),
		Object:    w.NewIRI("http://example.org/bob"),
	}
	added, err := m.Add(q)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if !added {
		t.Fatalf("expected Add to report the quad as new")
	}
	if !m.Contains(q) {
		t.Fatalf("expected Contains to find the added quad")
	}
	if m.NumQuads() != 1 {
		t.Fatalf("expected NumQuads=1, got %d", m.NumQuads())
	}

	added, err = m.Add(q)
	if err != nil {
		t.Fatalf("re-adding the same quad returned error: %v", err)
	}
	if added {
		t.Fatalf("re-adding an existing quad should report false")
	}
	if m.NumQuads() != 1 {
		t.Fatalf("re-adding should not change NumQuads, got %d", m.NumQuads())
	}
}

func TestAddRejectsLiteralSubject(t *testing.T) {
	w, m := fixture()
	q := rdf.Quad{
		Subject:   w.NewLiteral("not a subject"),
		Predicate: w.NewIRI("http://example.org/p"),
		Object:    w.NewIRI("http://example.org/o"),
	}
	if _, err := m.Add(q); err != ErrLiteralSubject {
		t.Fatalf("expected ErrLiteralSubject, got %v", err)
	}
}

func TestAddRejectsNonIRIPredicate(t *testing.T) {
	w, m := fixture()
	q := rdf.Quad{
		Subject:   w.NewIRI("http://example.org/s"),
		Predicate: w.NewBlank("b1"),
		Object:    w.NewIRI("http://example.org/o"),
	}
	if _, err := m.Add(q); err != ErrInvalidPredicate {
		t.Fatalf("expected ErrInvalidPredicate, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	w, m := fixture()
	q := rdf.Quad{
		Subject:   w.NewIRI("http://example.org/s"),
		Predicate: w.NewIRI("http://example.org/p"),
		Object:    w.NewIRI("http://example.org/o"),
	}
	m.Add(q)
	if !m.Remove(q) {
		t.Fatalf("expected first Remove to succeed")
	}
	if m.Remove(q) {
		t.Fatalf("expected second Remove to report false")
	}
	if m.Contains(q) {
		t.Fatalf("quad should no longer be stored after Remove")
	}
	if m.NumQuads() != 0 {
		t.Fatalf("expected NumQuads=0 after removal, got %d", m.NumQuads())
	}
}

func TestMatchByEachBoundCombination(t *testing.T) {
	w, m := fixture()
	alice := w.NewIRI("http://example.org/alice")
	bob := w.NewIRI("http://example.org/bob")
	carol := w.NewIRI("http://example.org/carol")
	knows := w.NewIRI("http://example.org/knows")

	quads := []rdf.Quad{
		{Subject: alice, Predicate: knows, Object: bob},
		{Subject: alice, Predicate: knows, Object: carol},
		{Subject: bob, Predicate: knows, Object: carol},
	}
	for _, q := range quads {
		if _, err := m.Add(q); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	count := func(p Pattern) int {
		it := m.Match(p)
		n := 0
		for it.Next() {
			n++
		}
		return n
	}

	if n := count(Pattern{}); n != 3 {
		t.Fatalf("wildcard match: expected 3, got %d", n)
	}
	if n := count(Pattern{Subject: alice}); n != 2 {
		t.Fatalf("subject-bound match: expected 2, got %d", n)
	}
	if n := count(Pattern{Object: carol}); n != 2 {
		t.Fatalf("object-bound match: expected 2, got %d", n)
	}
	if n := count(Pattern{Subject: alice, Object: bob}); n != 1 {
		t.Fatalf("subject+object-bound match: expected 1, got %d", n)
	}
	if n := count(Pattern{Predicate: knows, Object: bob}); n != 1 {
		t.Fatalf("predicate+object-bound match: expected 1, got %d", n)
	}
	if n := count(Pattern{Subject: alice, Predicate: knows, Object: bob}); n != 1 {
		t.Fatalf("fully bound match: expected 1, got %d", n)
	}
	if n := count(Pattern{Subject: carol}); n != 0 {
		t.Fatalf("non-matching subject: expected 0, got %d", n)
	}
}

func TestMatchRespectsGraph(t *testing.T) {
	w, m := fixture()
	s := w.NewIRI("http://example.org/s")
	p := w.NewIRI("http://example.org/p")
	o := w.NewIRI("http://example.org/o")
	g1 := w.NewIRI("http://example.org/g1")
	g2 := w.NewIRI("http://example.org/g2")

	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g1})
	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g2})
	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o})

	it := m.Match(Pattern{Graph: g1})
	n := 0
	for it.Next() {
		if it.Quad().Graph != g1 {
			t.Fatalf("graph-bound match returned a quad from the wrong graph")
		}
		n++
	}
	if n != 1 {
		t.Fatalf("expected exactly 1 quad in g1, got %d", n)
	}

	if n := 0; true {
		it = m.Match(Pattern{Subject: s, Predicate: p, Object: o})
		var first rdf.Quad
		for it.Next() {
			if n == 0 {
				first = it.Quad()
			}
			n++
		}
		if n != 1 {
			t.Fatalf("graph-wildcard match over a graph-less order should collapse to 1, got %d", n)
		}
		if first.Graph != g1 {
			t.Fatalf("expected the collapsed result to surface the first-asserted graph g1, got %v", first.Graph)
		}
	}
}

// TestMatchGraphWildcardSeesEveryGraphVariantSeparately confirms that
// collapsing only affects a graph-wildcard query over a graph-less
// order: asking for a specific graph still finds exactly the quad
// stored under it, and removing one graph's quad leaves the others (and
// the collapsed view) intact.
func TestMatchGraphWildcardSeesEveryGraphVariantSeparately(t *testing.T) {
	w, m := fixture()
	s := w.NewIRI("http://example.org/s")
	p := w.NewIRI("http://example.org/p")
	o := w.NewIRI("http://example.org/o")
	g1 := w.NewIRI("http://example.org/g1")
	g2 := w.NewIRI("http://example.org/g2")

	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g1})
	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g2})

	if !m.Contains(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g1}) {
		t.Fatalf("expected Contains to find the g1 variant")
	}
	if !m.Contains(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g2}) {
		t.Fatalf("expected Contains to find the g2 variant")
	}
	if m.NumQuads() != 2 {
		t.Fatalf("expected NumQuads=2 for two distinct graph variants, got %d", m.NumQuads())
	}

	if !m.Remove(rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: g1}) {
		t.Fatalf("expected Remove(g1 variant) to succeed")
	}
	if m.NumQuads() != 1 {
		t.Fatalf("expected NumQuads=1 after removing one variant, got %d", m.NumQuads())
	}

	it := m.Match(Pattern{Subject: s, Predicate: p, Object: o})
	n := 0
	var seen rdf.Quad
	for it.Next() {
		seen = it.Quad()
		n++
	}
	if n != 1 {
		t.Fatalf("expected the surviving g2 variant to still be visible, got %d results", n)
	}
	if seen.Graph != g2 {
		t.Fatalf("expected the surviving variant to be g2, got %v", seen.Graph)
	}
}

func TestAddTakesReferenceOnNodes(t *testing.T) {
	w, m := fixture()
	s := w.NewIRI("http://example.org/s")
	p := w.NewIRI("http://example.org/p")
	o := w.NewIRI("http://example.org/o")
	before := s.Refs()

	m.Add(rdf.Quad{Subject: s, Predicate: p, Object: o})
	if s.Refs() != before+1 {
		t.Fatalf("expected Add to take a reference on the subject, refs=%d", s.Refs())
	}

	m.Remove(rdf.Quad{Subject: s, Predicate: p, Object: o})
	if s.Refs() != before {
		t.Fatalf("expected Remove to release the model's reference, refs=%d", s.Refs())
	}
}

func TestBeginScansEveryQuad(t *testing.T) {
	w, m := fixture()
	it := m.Begin()
	if it.Next() {
		t.Fatalf("expected Begin on an empty model to yield no results")
	}

	alice := w.NewIRI("http://example.org/alice")
	knows := w.NewIRI("http://example.org/knows")
	bob := w.NewIRI("http://example.org/bob")
	m.Add(rdf.Quad{Subject: alice, Predicate: knows, Object: bob})

	n := 0
	for it := m.Begin(); it.Next(); {
		n++
	}
	if n != 1 {
		t.Fatalf("expected Begin to see the one stored quad, got %d", n)
	}
}

func TestIndexSizesReflectsStoredQuads(t *testing.T) {
	w, m := fixture()
	alice := w.NewIRI("http://example.org/alice")
	knows := w.NewIRI("http://example.org/knows")
	bob := w.NewIRI("http://example.org/bob")
	g1 := w.NewIRI("http://example.org/g1")

	m.Add(rdf.Quad{Subject: alice, Predicate: knows, Object: bob})
	m.Add(rdf.Quad{Subject: alice, Predicate: knows, Object: bob, Graph: g1})

	sizes := m.IndexSizes()
	if sizes["SPO"] != 2 {
		t.Fatalf("expected SPO to hold 2 quads, got %d", sizes["SPO"])
	}
	if sizes["GSPO"] != 1 {
		t.Fatalf("expected GSPO to hold 1 quad, got %d", sizes["GSPO"])
	}
	if sizes["POS"] != sizes["SPO"] {
		t.Fatalf("expected every graph-less order to agree on population: POS=%d SPO=%d", sizes["POS"], sizes["SPO"])
	}
}

func TestRefsAsObjectTracking(t *testing.T) {
	w, m := fixture()
	s := w.NewIRI("http://example.org/s")
	p := w.NewIRI("http://example.org/p")
	o := w.NewIRI("http://example.org/o")

	q := rdf.Quad{Subject: s, Predicate: p, Object: o}
	m.Add(q)
	if o.RefsAsObject() != 1 {
		t.Fatalf("expected RefsAsObject=1, got %d", o.RefsAsObject())
	}
	m.Remove(q)
	if o.RefsAsObject() != 0 {
		t.Fatalf("expected RefsAsObject=0 after removal, got %d", o.RefsAsObject())
	}
}
