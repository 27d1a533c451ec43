package quadstore

import (
	"github.com/aleksaelezovic/quadstore/pkg/rdf"
	"github.com/aleksaelezovic/quadstore/pkg/textio"
)

// LoadNQuads parses input as N-Quads and adds every resulting quad to m,
// interning terms through m.World(). It returns the number of quads that
// were newly added (duplicates already present in m don't count).
func LoadNQuads(m *Model, input string) (int, error) {
	parsed, err := textio.DecodeNQuads(input)
	if err != nil {
		return 0, err
	}
	return m.loadParsed(parsed)
}

// LoadTurtle parses input as Turtle and adds every resulting quad to m.
func LoadTurtle(m *Model, input string) (int, error) {
	parsed, err := textio.DecodeTurtle(input)
	if err != nil {
		return 0, err
	}
	return m.loadParsed(parsed)
}

// loadParsed interns each parsed quad, hands it to Add, then releases its
// own reference - Add takes the reference the model needs, so the
// transient reference interning produced here must not outlive this call.
func (m *Model) loadParsed(parsed []textio.ParsedQuad) (int, error) {
	added := 0
	for _, pq := range parsed {
		q := textio.ToQuad(m.world, pq)
		ok, err := m.Add(q)
		m.releaseQuad(q)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

func (m *Model) releaseQuad(q rdf.Quad) {
	m.world.Release(q.Subject)
	m.world.Release(q.Predicate)
	m.world.Release(q.Object)
	if q.Graph != nil {
		m.world.Release(q.Graph)
	}
}
