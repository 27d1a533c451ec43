package textio

import (
	"fmt"
	"io"
	"strings"

	"github.com/aleksaelezovic/quadstore/pkg/rdf"
)

// EncodeNQuads writes every quad in quads to w in N-Quads syntax, one per
// line. A quad whose Graph is nil is written as an N-Triple (no fourth
// term), matching DecodeNQuads's convention that an absent graph means
// the default graph.
func EncodeNQuads(w io.Writer, quads []rdf.Quad) error {
	for _, q := range quads {
		line, err := encodeQuadLine(q)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeQuadLine(q rdf.Quad) (string, error) {
	s, err := encodeTerm(q.Subject)
	if err != nil {
		return "", fmt.Errorf("textio: subject: %w", err)
	}
	p, err := encodeTerm(q.Predicate)
	if err != nil {
		return "", fmt.Errorf("textio: predicate: %w", err)
	}
	o, err := encodeTerm(q.Object)
	if err != nil {
		return "", fmt.Errorf("textio: object: %w", err)
	}
	if q.Graph == nil {
		return fmt.Sprintf("%s %s %s .", s, p, o), nil
	}
	g, err := encodeTerm(q.Graph)
	if err != nil {
		return "", fmt.Errorf("textio: graph: %w", err)
	}
	return fmt.Sprintf("%s %s %s %s .", s, p, o, g), nil
}

func encodeTerm(n *rdf.Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("textio: cannot encode a wildcard/nil term")
	}
	switch n.Kind() {
	case rdf.KindIRI:
		return "<" + n.Value() + ">", nil
	case rdf.KindBlank:
		return "_:" + n.Value(), nil
	case rdf.KindLiteral:
		escaped := escapeLiteral(n.Value())
		if lang := n.Language(); lang != "" {
			return fmt.Sprintf(`"%s"@%s`, escaped, lang), nil
		}
		if dt := n.Datatype(); dt != nil {
			return fmt.Sprintf(`"%s"^^<%s>`, escaped, dt.Value()), nil
		}
		return fmt.Sprintf(`"%s"`, escaped), nil
	default:
		return "", fmt.Errorf("textio: unknown node kind")
	}
}

func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}
