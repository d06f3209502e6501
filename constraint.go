package cliargs

import "fmt"

type edgeKind uint8

const (
	requires  edgeKind = iota // from cannot be passed without to
	conflicts                 // from and to are mutually exclusive
)

// origin records which declaration produced an edge. RequiredFor produces a
// requires edge in each direction, DependsOn a single one.
type origin uint8

const (
	originRequiredFor origin = iota
	originDependsOn
	originConflicts
)

type edge struct {
	kind     edgeKind
	declared origin
	from, to string
}

// graph holds the constraints between options. Edges are recorded with the
// tokens used in declarations, because a peer can be declared after the
// option naming it. resolve maps them to canonical names.
type graph struct {
	declared []edge
	edges    []edge // resolved, in declaration sequence
}

func (g *graph) require(from, to string, o origin) {
	g.declared = append(g.declared, edge{kind: requires, declared: o, from: from, to: to})
}

// conflict adds pairwise conflicts between all tokens.
func (g *graph) conflict(tokens ...string) {
	for i := 0; i < len(tokens); i++ {
		for j := i + 1; j < len(tokens); j++ {
			g.declared = append(g.declared, edge{kind: conflicts, declared: originConflicts, from: tokens[i], to: tokens[j]})
		}
	}
}

// resolve maps the tokens of all declared edges to canonical names.
func (g *graph) resolve(r *registry) error {
	edges := make([]edge, 0, len(g.declared))
	for _, e := range g.declared {
		from, ok := r.option(e.from)
		if !ok {
			return undeclared(e, e.from)
		}
		to, ok := r.option(e.to)
		if !ok {
			return undeclared(e, e.to)
		}
		if from == to {
			return &InvalidConstraintError{
				Options: []string{from.display()},
				Reason:  fmt.Sprintf("%s cannot %s itself", from.display(), e.declared.verb()),
			}
		}
		e.from, e.to = from.name, to.name
		edges = append(edges, e)
	}
	g.edges = edges
	return nil
}

func undeclared(e edge, token string) error {
	return &InvalidConstraintError{
		Options: []string{e.from, e.to},
		Reason:  fmt.Sprintf("constraint between %s and %s refers to undeclared option %s", e.from, e.to, token),
	}
}

// check verifies that no pair of options is both mutually exclusive and
// mutually dependent. Such a declaration cannot be satisfied by any input.
func (g *graph) check(r *registry) error {
	type pair struct{ a, b string }
	key := func(a, b string) pair {
		if b < a {
			a, b = b, a
		}
		return pair{a, b}
	}
	dependent := make(map[pair]bool)
	for _, e := range g.edges {
		if e.kind == requires {
			dependent[key(e.from, e.to)] = true
		}
	}
	for _, e := range g.edges {
		if e.kind == conflicts && dependent[key(e.from, e.to)] {
			a, b := r.byName[e.from].display(), r.byName[e.to].display()
			return &InvalidConstraintError{
				Options: []string{a, b},
				Reason:  fmt.Sprintf("%s and %s cannot be mutually exclusive and mutually dependent simultaneously", a, b),
			}
		}
	}
	return nil
}

// requirements returns the names required by the named option.
func (g *graph) requirements(name string) []string {
	var names []string
	for _, e := range g.edges {
		if e.kind == requires && e.from == name {
			names = append(names, e.to)
		}
	}
	return names
}

// exclusions returns the names conflicting with the named option.
func (g *graph) exclusions(name string) []string {
	var names []string
	for _, e := range g.edges {
		if e.kind != conflicts {
			continue
		}
		switch name {
		case e.from:
			names = append(names, e.to)
		case e.to:
			names = append(names, e.from)
		}
	}
	return names
}

func (o origin) verb() string {
	switch o {
	case originRequiredFor:
		return "be required for"
	case originDependsOn:
		return "depend on"
	}
	return "conflict with"
}
