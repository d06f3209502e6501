package cliargs

import "strings"

// registry holds the declared options. Every alias and every canonical name
// maps to exactly one option. It is read-only once the parser is checked.
type registry struct {
	options []*Option // definition sequence
	byName  map[string]*Option
	byAlias map[string]*Option
}

func newRegistry() *registry {
	return &registry{
		options: make([]*Option, 0),
		byName:  make(map[string]*Option),
		byAlias: make(map[string]*Option),
	}
}

// register adds o with its name and aliases. Nothing is added when the name
// or any alias is already used.
func (r *registry) register(o *Option) error {
	if other, ok := r.byName[o.name]; ok {
		return &DuplicateOptionError{Token: o.name, Name: other.name}
	}
	seen := make(map[string]bool, len(o.aliases))
	for _, a := range o.aliases {
		if other, ok := r.byAlias[a]; ok {
			return &DuplicateOptionError{Token: a, Name: other.name}
		}
		if seen[a] {
			return &DuplicateOptionError{Token: a, Name: o.name}
		}
		seen[a] = true
	}
	r.options = append(r.options, o)
	r.byName[o.name] = o
	for _, a := range o.aliases {
		r.byAlias[a] = o
	}
	return nil
}

// alias adds one more alias to a registered option. The canonical name
// follows the new primary alias, so "-v" given "--verbose" becomes "verbose".
func (r *registry) alias(o *Option, alias string) error {
	if other, ok := r.byAlias[alias]; ok {
		return &DuplicateOptionError{Token: alias, Name: other.name}
	}
	aliases := append(append([]string(nil), o.aliases...), alias)
	name := canonical(primary(aliases))
	if other, ok := r.byName[name]; ok && other != o {
		return &DuplicateOptionError{Token: name, Name: other.name}
	}
	delete(r.byName, o.name)
	o.aliases, o.name = aliases, name
	r.byName[name] = o
	r.byAlias[alias] = o
	return nil
}

// lookup returns the option with the given alias or nil.
func (r *registry) lookup(alias string) *Option {
	return r.byAlias[alias]
}

// option finds an option from any spelling used in declarations or by
// callers: an alias, a canonical name, or a bare alias. A name without
// dashes is a canonical name first, so "a" names option "a" even when
// another option has alias "-a".
func (r *registry) option(name string) (*Option, bool) {
	if !strings.HasPrefix(name, "-") {
		if o := r.byName[canonical(name)]; o != nil {
			return o, true
		}
	}
	if o := r.byAlias[surface(name)]; o != nil {
		return o, true
	}
	o, ok := r.byName[canonical(name)]
	return o, ok
}

// all returns the options in definition sequence.
func (r *registry) all() []*Option {
	return r.options
}
