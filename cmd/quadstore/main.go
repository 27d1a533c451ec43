// Command quadstore is a small CLI front end for the in-memory quad
// store: it loads an N-Quads or Turtle file, runs a pattern query against
// it, or reports basic statistics.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aleksaelezovic/quadstore/pkg/quadstore"
	"github.com/aleksaelezovic/quadstore/pkg/rdf"
	"github.com/aleksaelezovic/quadstore/pkg/textio"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "load":
		runLoad(os.Args[2:])
	case "query":
		runQuery(os.Args[2:])
	case "stats":
		runStats(os.Args[2:])
	case "demo":
		runDemo()
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: quadstore <load|query|stats|demo> [args...]")
	fmt.Fprintln(os.Stderr, "  load <file.nq>                load and print the number of quads added")
	fmt.Fprintln(os.Stderr, "  query <file.nq> <s|*> <p|*> <o|*> [g|*]   run a pattern match and print results")
	fmt.Fprintln(os.Stderr, "  stats <file.nq>                print node and quad counts")
	fmt.Fprintln(os.Stderr, "  demo                           load a small built-in dataset and query it")
}

func loadFile(path string) (*rdf.World, *quadstore.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	w := rdf.NewWorld()
	m := quadstore.NewModel(w)

	decode := quadstore.LoadNQuads
	if strings.HasSuffix(path, ".ttl") {
		decode = quadstore.LoadTurtle
	}
	if _, err := decode(m, string(data)); err != nil {
		return nil, nil, err
	}
	return w, m, nil
}

func runLoad(args []string) {
	if len(args) != 1 {
		log.Fatalf("load: expected a file path")
	}
	_, m, err := loadFile(args[0])
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	fmt.Printf("loaded %d quads\n", m.NumQuads())
}

func runStats(args []string) {
	if len(args) != 1 {
		log.Fatalf("stats: expected a file path")
	}
	w, m, err := loadFile(args[0])
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	fmt.Printf("quads: %d\n", m.NumQuads())
	fmt.Printf("nodes: %d\n", w.NumNodes())
}

func termArg(w *rdf.World, arg string) *rdf.Node {
	if arg == "*" {
		return nil
	}
	if strings.HasPrefix(arg, "_:") {
		return w.NewBlank(strings.TrimPrefix(arg, "_:"))
	}
	return w.NewIRI(arg)
}

func runQuery(args []string) {
	if len(args) < 4 || len(args) > 5 {
		log.Fatalf("query: expected <file> <s|*> <p|*> <o|*> [g|*]")
	}
	w, m, err := loadFile(args[0])
	if err != nil {
		log.Fatalf("query: %v", err)
	}

	pattern := quadstore.Pattern{
		Subject:   termArg(w, args[1]),
		Predicate: termArg(w, args[2]),
		Object:    termArg(w, args[3]),
	}
	if len(args) == 5 {
		pattern.Graph = termArg(w, args[4])
	}

	it := m.Match(pattern)
	n := 0
	for it.Next() {
		q := it.Quad()
		fmt.Println(q.String())
		n++
	}
	fmt.Fprintf(os.Stderr, "%d results\n", n)
}

func runDemo() {
	w := rdf.NewWorld()
	m := quadstore.NewModel(w)

	alice := w.NewIRI("http://example.org/alice")
	bob := w.NewIRI("http://example.org/bob")
	knows := w.NewIRI("http://example.org/knows")
	name := w.NewIRI("http://example.org/name")

	quads := []rdf.Quad{
		{Subject: alice, Predicate: knows, Object: bob},
		{Subject: alice, Predicate: name, Object: w.NewLiteral("Alice")},
		{Subject: bob, Predicate: name, Object: w.NewLiteral("Bob")},
	}
	for _, q := range quads {
		if _, err := m.Add(q); err != nil {
			log.Fatalf("demo: %v", err)
		}
	}

	fmt.Println("everything alice knows:")
	it := m.Match(quadstore.Pattern{Subject: alice, Predicate: knows})
	for it.Next() {
		fmt.Println(" ", it.Quad().Object)
	}

	var buf strings.Builder
	all := []rdf.Quad{}
	it = m.Match(quadstore.Pattern{})
	for it.Next() {
		all = append(all, it.Quad())
	}
	if err := textio.EncodeNQuads(&buf, all); err != nil {
		log.Fatalf("demo: %v", err)
	}
	fmt.Print(buf.String())
}
