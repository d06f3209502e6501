package cliargs

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/shlex"
)

// Parser methods declare options and constraints and parse command line
// arguments. There are also methods for producing command documentation.
//
// Declarations are closed by Check, which Parse calls implicitly. After that
// the parser is read-only and may be used by concurrent Parse calls.
type Parser struct {
	config   *Config
	registry *registry
	graph    graph
	doc      []string
	err      error // first declaration error
	closed   bool
	once     sync.Once
	checked  error
}

// CustomParser returns a new Parser with a specific configuration. Because the
// parser keeps a copy of the configuration and not the original, changes to the
// configuration have only an effect before calling this function, but not after.
func CustomParser(configuration *Config) *Parser {
	return &Parser{
		config:   configuration.copy(),
		registry: newRegistry(),
		doc:      make([]string, 0),
	}
}

// NewParser returns a new Parser with a default configuration.
func NewParser() *Parser {
	return CustomParser(NewConfig())
}

// Switch declares a boolean option recognized by any of the tokens, for
// example "-v" and "--verbose". The canonical name comes from the longest
// token with a "--" prefix, hyphens becoming underscores.
func (a *Parser) Switch(tokens ...string) *Option {
	for _, t := range tokens {
		if strings.HasSuffix(t, "=") {
			return a.define(Switch, nil, &InvalidNameError{Token: t, Reason: "a switch takes no value"})
		}
	}
	return a.define(Switch, tokens, nil)
}

// Flag declares an option taking exactly one value. Tokens are usually
// written with a trailing "=", as in "--filename=", to show that a value
// follows.
func (a *Parser) Flag(tokens ...string) *Option {
	return a.define(ValueFlag, tokens, nil)
}

// CommaArray declares an option whose value is a list. The value is split on
// each list separator, without trimming, so "a,,b" gives three elements and
// an empty value gives one empty element.
func (a *Parser) CommaArray(tokens ...string) *Option {
	return a.define(ListFlag, tokens, nil)
}

// Conflicts declares all given options mutually exclusive.
func (a *Parser) Conflicts(tokens ...string) {
	a.declare(func() error {
		a.graph.conflict(tokens...)
		return nil
	})
}

// Doc sets lines of help text for the command as a whole.
func (a *Parser) Doc(s ...string) {
	a.declare(func() error {
		a.doc = s
		return nil
	})
}

// Check closes the declarations and verifies them. It returns the first
// declaration error, if any, or an *InvalidConstraintError when the
// constraints contradict each other. Check runs only once; later calls return
// the same result.
func (a *Parser) Check() error {
	a.once.Do(func() {
		a.closed = true
		a.checked = a.check()
		log := a.config.logger()
		if a.checked != nil {
			log.Debug("declarations rejected", "error", a.checked)
			return
		}
		log.Debug("declarations checked", "options", len(a.registry.all()), "constraints", len(a.graph.edges))
	})
	return a.checked
}

func (a *Parser) check() error {
	if a.err != nil {
		return a.err
	}
	if err := a.graph.resolve(a.registry); err != nil {
		return err
	}
	return a.graph.check(a.registry)
}

// Options returns the declared options in definition sequence.
func (a *Parser) Options() []*Option {
	return append([]*Option(nil), a.registry.all()...)
}

// ParseLine splits line like a POSIX shell would and parses the result.
func (a *Parser) ParseLine(line string) (*Result, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("cannot split %q: %w", line, err)
	}
	return a.Parse(argv)
}

// PrintDoc uses a Writer to print the command help text, followed by the help
// text of each option in definition sequence. Any relevant information about
// options is included. PrintDoc closes the declarations.
//
// If any s is specified, the first line of command help text is assumed
// to contain formatting verbs and is printed with Fprintf, else it is
// printed with Fprintln.
//
// If no help text was supplied with Doc, a default help text is provided
// which depends on the length of s and on whether any option was
// declared:
//
// No s, no options:
//	the command takes no option\n
// No s, options declared:
//	the command takes these options:\n
// s specified, no options:
//	Usage: %v\n
// s specified, options declared:
//	Usage: %v [options]...\n
//
//	Options:
func (a *Parser) PrintDoc(w io.Writer, s ...interface{}) {
	constraints := a.Check() == nil
	options := a.registry.all()

	switch {
	case len(a.doc) > 0:
		for i, line := range a.doc {
			if i == 0 && len(s) > 0 {
				fmt.Fprintf(w, line, s...)
			} else {
				fmt.Fprintln(w, line)
			}
		}
	case len(s) == 0 && len(options) == 0:
		fmt.Fprintln(w, "the command takes no option")
	case len(s) == 0:
		fmt.Fprintln(w, "the command takes these options:")
	case len(options) == 0:
		fmt.Fprintf(w, "Usage: %v\n", s[0])
	default:
		fmt.Fprintf(w, "Usage: %v [options]...\n\nOptions:\n", s[0])
	}

	for _, o := range options {
		n := strings.Join(o.aliases, ", ")
		lines := append(append([]string{}, o.doc...), a.info(o, constraints))
		next := 0
		if len(n) > 16 {
			fmt.Fprintf(w, "  %s\n", n)
		} else {
			fmt.Fprintf(w, "  %-16s %s\n", n, lines[0])
			next = 1
		}
		for _, line := range lines[next:] {
			fmt.Fprintf(w, "  %-16s %s\n", "", line)
		}
	}
}

// info describes an option for PrintDoc.
func (a *Parser) info(o *Option, constraints bool) string {
	var b strings.Builder
	b.WriteString("type: " + o.kind.String())
	if o.kind == ListFlag {
		fmt.Fprintf(&b, " split by '%c'", a.config.GetSpecial(SpecListSeparator))
	}
	if o.env != "" {
		b.WriteString(", env: " + o.EnvKey())
	}
	if !constraints {
		return b.String()
	}
	if names := a.graph.requirements(o.name); len(names) > 0 {
		b.WriteString(", requires: " + a.displayAll(names))
	}
	if names := a.graph.exclusions(o.name); len(names) > 0 {
		b.WriteString(", conflicts: " + a.displayAll(names))
	}
	return b.String()
}

func (a *Parser) displayAll(names []string) string {
	d := make([]string, len(names))
	for i, n := range names {
		d[i] = a.display(n)
	}
	return strings.Join(d, " ")
}

// define creates and registers an option. When an error is already pending,
// or when err is not nil, the option is returned unregistered so that
// chained calls remain harmless.
func (a *Parser) define(kind Kind, tokens []string, err error) *Option {
	o := &Option{dict: a, kind: kind}
	a.declare(func() error {
		if err != nil {
			return err
		}
		if len(tokens) == 0 {
			return &InvalidNameError{Reason: "no token specified"}
		}
		aliases := make([]string, len(tokens))
		for i, t := range tokens {
			if err := validate(t); err != nil {
				return err
			}
			aliases[i] = surface(t)
		}
		o.aliases = aliases
		o.name = canonical(primary(aliases))
		return a.registry.register(o)
	})
	return o
}

// declare runs a declaration unless an earlier one failed, and keeps its
// error. Panics when declarations are closed.
func (a *Parser) declare(f func() error) {
	if a.closed {
		panic(ErrDeclarationClosed)
	}
	if a.err != nil {
		return
	}
	a.err = f()
}
