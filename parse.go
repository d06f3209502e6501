package cliargs

import "strings"

// source tells where a value comes from.
type source uint8

const (
	fromEnv source = iota
	fromArgs
)

// value is the value of one option in one Parse call.
type value struct {
	source source
	b      bool
	s      string
	list   []string
}

// Parse parses argv against the declarations, verifies the constraints and
// returns the result. The argv slice is not modified; arguments which are not
// options are available from Result.Args. Parse first calls Check and returns
// its error, if any.
//
// Parse only reads the parser, so concurrent calls are safe.
func (a *Parser) Parse(argv []string) (*Result, error) {
	if err := a.Check(); err != nil {
		return nil, err
	}
	log := a.config.logger()
	values := make(map[string]*value, len(a.registry.all()))
	a.seed(values)

	args := make([]string, 0, len(argv))
	sc := newScanner(a.config, a.registry, argv)
loop:
	for {
		ev, it, err := sc.Next()
		switch ev {
		case eventError:
			log.Debug("parse failed", "error", err)
			return nil, err
		case eventEnd:
			break loop
		case eventPositional:
			args = append(args, it.value)
		case eventSwitch:
			values[it.option.name] = &value{source: fromArgs, b: true}
			log.Debug("option parsed", "option", it.option.name, "token", it.token)
		case eventValue:
			values[it.option.name] = a.newValue(it.option, it.value, fromArgs)
			log.Debug("option parsed", "option", it.option.name, "token", it.token, "value", it.value)
		}
	}

	if err := a.validate(values); err != nil {
		log.Debug("constraint violated", "error", err)
		return nil, err
	}
	return newResult(a, values, args), nil
}

// seed sets the values of options bound to environment variables which are
// set.
func (a *Parser) seed(values map[string]*value) {
	for _, o := range a.registry.all() {
		if o.env == "" {
			continue
		}
		key := o.EnvKey()
		s, ok := a.config.lookupEnv(key)
		if !ok {
			continue
		}
		if o.kind == Switch {
			values[o.name] = &value{source: fromEnv, b: true}
		} else {
			values[o.name] = a.newValue(o, s, fromEnv)
		}
		a.config.logger().Debug("option seeded", "option", o.name, "env", key)
	}
}

// newValue makes the value of a flag. List values are split eagerly.
func (a *Parser) newValue(o *Option, s string, src source) *value {
	v := &value{source: src, s: s}
	if o.kind == ListFlag {
		v.list = strings.Split(s, string(a.config.GetSpecial(SpecListSeparator)))
	}
	return v
}
