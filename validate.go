package cliargs

// validate verifies the constraints against the values of a Parse call.
// Conflicts are verified before requirements, each in declaration sequence.
// Constraints whose guarding option is absent are satisfied.
func (a *Parser) validate(values map[string]*value) error {
	for _, e := range a.graph.edges {
		if e.kind != conflicts {
			continue
		}
		if values[e.from] != nil && values[e.to] != nil {
			return &OptionConflictError{Options: []string{a.display(e.from), a.display(e.to)}}
		}
	}
	for _, e := range a.graph.edges {
		if e.kind != requires {
			continue
		}
		if values[e.from] != nil && values[e.to] == nil {
			return &OptionConstraintError{
				Option:   a.display(e.from),
				Required: a.display(e.to),
				declared: e.declared,
			}
		}
	}
	return nil
}

func (a *Parser) display(name string) string {
	return a.registry.byName[name].display()
}
