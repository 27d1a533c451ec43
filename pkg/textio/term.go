// Package textio reads and writes the quad store's two supported
// serializations, N-Quads (with N-Triples and Turtle as its
// graph-less relatives) and a minimal Turtle subset, without depending
// on any particular World: parsing produces plain ParsedQuad values that
// a caller interns into a World of its own choosing via Intern.
package textio

import "github.com/aleksaelezovic/quadstore/pkg/rdf"

// TermKind tags the four things a parsed position can hold. Default
// marks a graph position that the input left unspecified.
type TermKind byte

const (
	TermIRI TermKind = iota
	TermBlank
	TermLiteral
	TermDefault
)

// ParsedTerm is an RDF term as text, before interning. Language and
// Datatype are only meaningful when Kind is TermLiteral, and are
// mutually exclusive.
type ParsedTerm struct {
	Kind     TermKind
	Value    string
	Language string
	Datatype string
}

// ParsedQuad is a quad as text, in parse order.
type ParsedQuad struct {
	Subject   ParsedTerm
	Predicate ParsedTerm
	Object    ParsedTerm
	Graph     ParsedTerm
}

func iriTerm(iri string) ParsedTerm        { return ParsedTerm{Kind: TermIRI, Value: iri} }
func blankTerm(label string) ParsedTerm    { return ParsedTerm{Kind: TermBlank, Value: label} }
func plainLiteral(value string) ParsedTerm { return ParsedTerm{Kind: TermLiteral, Value: value} }
func langLiteral(value, lang string) ParsedTerm {
	return ParsedTerm{Kind: TermLiteral, Value: value, Language: lang}
}
func typedLiteral(value, datatype string) ParsedTerm {
	return ParsedTerm{Kind: TermLiteral, Value: value, Datatype: datatype}
}

// Intern interns a parsed term into w, returning nil for a TermDefault
// graph position.
func Intern(w *rdf.World, t ParsedTerm) *rdf.Node {
	switch t.Kind {
	case TermIRI:
		return w.NewIRI(t.Value)
	case TermBlank:
		return w.NewBlank(t.Value)
	case TermLiteral:
		switch {
		case t.Language != "":
			return w.NewLangLiteral(t.Value, t.Language)
		case t.Datatype != "":
			return w.NewTypedLiteral(t.Value, w.NewIRI(t.Datatype))
		default:
			return w.NewLiteral(t.Value)
		}
	default:
		return nil
	}
}

// ToQuad interns every position of pq into w and returns the resulting
// quad, ready for Model.Add.
func ToQuad(w *rdf.World, pq ParsedQuad) rdf.Quad {
	return rdf.Quad{
		Subject:   Intern(w, pq.Subject),
		Predicate: Intern(w, pq.Predicate),
		Object:    Intern(w, pq.Object),
		Graph:     Intern(w, pq.Graph),
	}
}
