package rdf

import (
	"time"

	"github.com/zeebo/xxh3"
)

// World interns every node a program hands to it so that term equality
// between quads becomes pointer equality. It also owns the reference
// counts that decide when an interned node can be dropped. A World is not
// safe for concurrent use without external synchronization, matching
// sord_world_t's single-writer contract.
type World struct {
	iris   map[string]*Node
	blanks map[string]*Node
	langs  map[string]*string

	// literals buckets literal nodes by a 64-bit xxh3 hash of their
	// (lexical form, datatype, language) triple, the same combination
	// sord_literal_equal compares on. Each bucket is a short chain; a
	// real collision only costs a few string comparisons.
	literals map[uint64][]*Node
}

// NewWorld creates an empty, ready-to-use World.
func NewWorld() *World {
	return &World{
		iris:     make(map[string]*Node),
		blanks:   make(map[string]*Node),
		langs:    make(map[string]*string),
		literals: make(map[uint64][]*Node),
	}
}

// NumNodes returns the number of distinct interned terms currently live.
func (w *World) NumNodes() int {
	n := len(w.iris) + len(w.blanks)
	for _, bucket := range w.literals {
		n += len(bucket)
	}
	return n
}

// InternLang interns a language tag on its own, independent of any
// literal, so that every literal tagged with the same language shares one
// backing string and can compare tags by pointer. Returns nil for "".
func (w *World) InternLang(lang string) *string {
	if lang == "" {
		return nil
	}
	if p, ok := w.langs[lang]; ok {
		return p
	}
	p := new(string)
	*p = lang
	w.langs[lang] = p
	return p
}

// NewIRI interns an IRI node, incrementing its reference count.
func (w *World) NewIRI(iri string) *Node {
	if n, ok := w.iris[iri]; ok {
		n.refs++
		return n
	}
	n := &Node{kind: KindIRI, lex: iri, refs: 1}
	w.iris[iri] = n
	return n
}

// NewBlank interns a blank node by its local label.
func (w *World) NewBlank(label string) *Node {
	if n, ok := w.blanks[label]; ok {
		n.refs++
		return n
	}
	n := &Node{kind: KindBlank, lex: label, refs: 1}
	w.blanks[label] = n
	return n
}

func literalHash(lex string, datatype *Node, lang string) uint64 {
	h := xxh3.HashString(lex)
	if datatype != nil {
		h ^= xxh3.HashString(datatype.lex)
	}
	if lang != "" {
		h ^= xxh3.HashString(lang)<<1 | 1
	}
	return h
}

func sameLiteral(n *Node, lex string, datatype *Node, lang string) bool {
	if n.lex != lex {
		return false
	}
	if n.Language() != lang {
		return false
	}
	if n.datatype == nil || datatype == nil {
		return n.datatype == datatype
	}
	return n.datatype.lex == datatype.lex
}

// newLiteral is the shared implementation behind NewLiteral,
// NewLangLiteral and NewTypedLiteral. datatype, if non-nil, must already
// be an interned node owned by w, and the caller's reference on it is
// transferred to the new literal (the caller must not Release it
// separately) - mirroring sord_new_literal_counted, which takes ownership
// of the datatype node reference it is handed rather than adding its own.
// If an equal literal already exists, the transferred reference is
// released immediately, since the existing literal already holds one.
func (w *World) newLiteral(lex string, datatype *Node, lang string) *Node {
	h := literalHash(lex, datatype, lang)
	for _, n := range w.literals[h] {
		if sameLiteral(n, lex, datatype, lang) {
			n.refs++
			if datatype != nil {
				w.Release(datatype)
			}
			return n
		}
	}
	n := &Node{
		kind:     KindLiteral,
		lex:      lex,
		datatype: datatype,
		lang:     w.InternLang(lang),
		refs:     1,
	}
	w.literals[h] = append(w.literals[h], n)
	return n
}

// NewLiteral interns a plain (untyped, untagged) literal.
func (w *World) NewLiteral(value string) *Node {
	return w.newLiteral(value, nil, "")
}

// NewLangLiteral interns a language-tagged literal.
func (w *World) NewLangLiteral(value, lang string) *Node {
	return w.newLiteral(value, nil, lang)
}

// NewTypedLiteral interns a datatyped literal. datatype must be an IRI
// node obtained from this same World.
func (w *World) NewTypedLiteral(value string, datatype *Node) *Node {
	return w.newLiteral(value, datatype, "")
}

func (w *World) NewIntegerLiteral(value int64) *Node {
	return w.NewTypedLiteral(formatInt(value), w.NewIRI(XSDInteger))
}

func (w *World) NewDoubleLiteral(value float64) *Node {
	return w.NewTypedLiteral(formatDouble(value), w.NewIRI(XSDDouble))
}

func (w *World) NewBooleanLiteral(value bool) *Node {
	return w.NewTypedLiteral(formatBool(value), w.NewIRI(XSDBoolean))
}

func (w *World) NewDateTimeLiteral(value time.Time) *Node {
	return w.NewTypedLiteral(formatDateTime(value), w.NewIRI(XSDDateTime))
}

// Copy takes out an additional reference on an already-interned node.
// Use it whenever a caller stores a node somewhere that will later call
// Release independently of the place it got the node from.
func (w *World) Copy(n *Node) *Node {
	if n == nil {
		return nil
	}
	n.refs++
	return n
}

// TrackObject records that n now occurs one more time in a quad's object
// position. Stores call this from Add so Node.RefsAsObject stays accurate
// without exposing the counter itself for direct mutation.
func (w *World) TrackObject(n *Node) {
	if n != nil {
		n.refsAsObj++
	}
}

// UntrackObject is TrackObject's inverse, called from Remove.
func (w *World) UntrackObject(n *Node) {
	if n != nil && n.refsAsObj > 0 {
		n.refsAsObj--
	}
}

// Release drops a reference taken by NewIRI/NewBlank/New*Literal/Copy. When
// the count reaches zero the node is dropped from the intern tables and,
// for a typed literal, its hold on the datatype node is released in turn -
// mirroring sord_node_free's recursive teardown. Releasing a node whose
// count is already zero panics.
func (w *World) Release(n *Node) {
	if n == nil {
		return
	}
	if n.refs <= 0 {
		panic("rdf: Release of a node with no references left")
	}
	n.refs--
	if n.refs > 0 {
		return
	}
	switch n.kind {
	case KindIRI:
		delete(w.iris, n.lex)
	case KindBlank:
		delete(w.blanks, n.lex)
	case KindLiteral:
		h := literalHash(n.lex, n.datatype, n.Language())
		bucket := w.literals[h]
		for i, m := range bucket {
			if m == n {
				bucket[i] = bucket[len(bucket)-1]
				w.literals[h] = bucket[:len(bucket)-1]
				break
			}
		}
		if n.datatype != nil {
			w.Release(n.datatype)
		}
	}
}
