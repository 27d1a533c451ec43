package rdf

import "testing"

func TestNewIRIInterns(t *testing.T) {
	w := NewWorld()
	a := w.NewIRI("http://example.org/a")
	b := w.NewIRI("http://example.org/a")
	if a != b {
		t.Fatalf("expected the same pointer for repeated NewIRI calls")
	}
	if a.Refs() != 2 {
		t.Fatalf("expected refs=2 after two interns, got %d", a.Refs())
	}
}

func TestNewLiteralDistinguishesDatatypeAndLanguage(t *testing.T) {
	w := NewWorld()
	plain := w.NewLiteral("42")
	typed := w.NewTypedLiteral("42", w.NewIRI(XSDInteger))
	tagged := w.NewLangLiteral("42", "en")

	if plain == typed || plain == tagged || typed == tagged {
		t.Fatalf("literals with different datatype/language must not be interned together")
	}
	if w.NewTypedLiteral("42", w.NewIRI(XSDInteger)) != typed {
		t.Fatalf("re-requesting the same typed literal should return the same node")
	}
}

func TestReleaseDropsLiteralAndDatatype(t *testing.T) {
	w := NewWorld()
	dt := w.NewIRI(XSDInteger)
	lit := w.NewTypedLiteral("7", dt) // transfers the NewIRI reference to lit
	if dt.Refs() != 1 {
		t.Fatalf("expected the datatype reference to be transferred to the literal, got refs=%d", dt.Refs())
	}
	w.Release(lit)
	if n := w.NumNodes(); n != 0 {
		t.Fatalf("expected both literal and datatype to be gone, got %d nodes", n)
	}
}

func TestNewTypedLiteralReuseReleasesExtraDatatypeRef(t *testing.T) {
	w := NewWorld()
	dt := w.NewIRI(XSDInteger)
	first := w.NewTypedLiteral("7", dt)
	dt2 := w.NewIRI(XSDInteger) // a second reference, to be transferred and then released as redundant
	second := w.NewTypedLiteral("7", dt2)
	if first != second {
		t.Fatalf("expected the same interned literal back")
	}
	if dt.Refs() != 1 {
		t.Fatalf("expected the redundant transferred reference to be released, got refs=%d", dt.Refs())
	}
}

func TestCompareOrdersByKindThenValue(t *testing.T) {
	w := NewWorld()
	iri := w.NewIRI("http://example.org/a")
	blank := w.NewBlank("b1")
	lit := w.NewLiteral("x")

	if Compare(nil, iri) >= 0 {
		t.Fatalf("wildcard nil must compare less than any concrete node")
	}
	if Compare(iri, blank) >= 0 {
		t.Fatalf("IRI must compare less than blank node")
	}
	if Compare(blank, lit) >= 0 {
		t.Fatalf("blank node must compare less than literal")
	}
	if Compare(iri, iri) != 0 {
		t.Fatalf("a node must compare equal to itself")
	}
}

func TestCompareLiteralTieBreaksOnDatatypeThenLanguage(t *testing.T) {
	w := NewWorld()
	plain := w.NewLiteral("v")
	typed := w.NewTypedLiteral("v", w.NewIRI(XSDString))
	tagged := w.NewLangLiteral("v", "en")

	if Compare(plain, typed) == 0 {
		t.Fatalf("plain and typed literals with equal lexical form must not compare equal")
	}
	if Compare(plain, tagged) == 0 {
		t.Fatalf("plain and language-tagged literals with equal lexical form must not compare equal")
	}
}

func TestOrderPermutationIsConsistentWithCompare(t *testing.T) {
	w := NewWorld()
	a := Quad{
		Subject:   w.NewIRI("s1"),
		Predicate: w.NewIRI("p1"),
		Object:    w.NewIRI("o1"),
	}
	b := Quad{
		Subject:   w.NewIRI("s2"),
		Predicate: w.NewIRI("p1"),
		Object:    w.NewIRI("o1"),
	}
	if SPO.Compare(a, b) >= 0 {
		t.Fatalf("s1 < s2 under SPO should make a < b")
	}
	if POS.Compare(a, b) >= 0 {
		t.Fatalf("a and b share P and O, so POS falls through to S, where a < b")
	}
}
