package cliargs

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// event is the kind of item found by the scanner.
type event uint8

const (
	eventNone       event = iota // internal: nothing produced yet
	eventEnd                     // input exhausted
	eventSwitch                  // a switch was found
	eventValue                   // a flag was found with its value
	eventPositional              // an argument which is not an option
	eventError                   // see the error
)

// item holds what the scanner found. Option is nil for positional
// arguments.
type item struct {
	option *Option
	token  string // the option as typed, e.g. "-a" or "--name"
	value  string
}

// resolver finds options by alias.
type resolver interface {
	lookup(alias string) *Option
}

// scanner methods split an argument list into options and positional
// arguments. It knows nothing about values beyond whether an option takes
// one.
type scanner struct {
	config   *Config
	resolver resolver
	input    []string
	pos      int
	cluster  string // unread part of a short option cluster
	arg      string // argument holding the cluster
	rest     bool   // "--" seen, everything else is positional
	failed   bool
}

func newScanner(configuration *Config, resolver resolver, input []string) *scanner {
	return &scanner{
		config:   configuration,
		resolver: resolver,
		input:    input,
	}
}

// Next finds the next item in the input. If and only if the event is
// eventError, error is not nil. The item is nil for eventEnd and
// eventError.
func (s *scanner) Next() (event, *item, error) {
	if s.failed {
		panic(fmt.Errorf("bug: Next() called after an error"))
	}
	for {
		ev, it, err := s.scan()
		if ev == eventError {
			s.failed = true
		}
		if ev != eventNone {
			return ev, it, err
		}
	}
}

func (s *scanner) scan() (event, *item, error) {
	if len(s.cluster) > 0 {
		return s.short()
	}
	if s.pos >= len(s.input) {
		return eventEnd, nil, nil
	}
	arg := s.input[s.pos]
	s.pos++

	switch {
	case s.rest:
		return eventPositional, &item{value: arg}, nil
	case arg == "--":
		s.rest = true
		return eventNone, nil, nil
	case len(arg) < 2 || arg[0] != '-':
		// includes "" and "-"
		return eventPositional, &item{value: arg}, nil
	case strings.HasPrefix(arg, "--"):
		return s.long(arg)
	default:
		s.cluster, s.arg = arg[1:], arg
		return s.short()
	}
}

// long handles --name, --name=value and --name value.
func (s *scanner) long(arg string) (event, *item, error) {
	token, value, attached := strings.Cut(arg, string(s.config.GetSpecial(SpecSeparator)))
	o := s.resolver.lookup(token)
	if o == nil {
		return eventError, nil, &UnknownOptionError{Token: token, Arg: arg}
	}
	if o.kind == Switch {
		if attached {
			return eventError, nil, &UnexpectedValueError{Token: token, Value: value}
		}
		return eventSwitch, &item{option: o, token: token}, nil
	}
	if !attached {
		var ok bool
		if value, ok = s.following(); !ok {
			return eventError, nil, &MissingValueError{Token: token}
		}
	}
	return eventValue, &item{option: o, token: token, value: value}, nil
}

// short handles the next character of a cluster such as -abc. A flag in a
// cluster takes the rest of the cluster as its value, or the next argument
// when it is the last character.
func (s *scanner) short() (event, *item, error) {
	_, size := utf8.DecodeRuneInString(s.cluster)
	token := "-" + s.cluster[:size]
	s.cluster = s.cluster[size:]
	o := s.resolver.lookup(token)
	if o == nil {
		s.cluster = ""
		return eventError, nil, &UnknownOptionError{Token: token, Arg: s.arg}
	}
	sep := string(s.config.GetSpecial(SpecSeparator))
	if o.kind == Switch {
		if strings.HasPrefix(s.cluster, sep) {
			value := s.cluster[len(sep):]
			s.cluster = ""
			return eventError, nil, &UnexpectedValueError{Token: token, Value: value}
		}
		return eventSwitch, &item{option: o, token: token}, nil
	}
	value := s.cluster
	s.cluster = ""
	switch {
	case len(value) > 0:
		value = strings.TrimPrefix(value, sep)
	default:
		var ok bool
		if value, ok = s.following(); !ok {
			return eventError, nil, &MissingValueError{Token: token}
		}
	}
	return eventValue, &item{option: o, token: token, value: value}, nil
}

// following consumes the next argument as a value.
func (s *scanner) following() (string, bool) {
	if s.pos >= len(s.input) {
		return "", false
	}
	s.pos++
	return s.input[s.pos-1], true
}
