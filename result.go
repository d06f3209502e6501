package cliargs

import (
	"fmt"
	"strconv"
)

// Result holds the values of one Parse call. It cannot be modified. Options
// are named by canonical name or by any alias, with or without dashes:
// "switch_a", "switch-a", "--switch-a" and "-a" all name the same switch.
//
// Naming an undeclared option, or calling an accessor of the wrong kind, is a
// bug in the program and panics.
type Result struct {
	dict   *Parser
	values map[string]*value
	args   []string
}

func newResult(dict *Parser, values map[string]*value, args []string) *Result {
	return &Result{dict: dict, values: values, args: args}
}

func (r *Result) option(name string) *Option {
	o, ok := r.dict.registry.option(name)
	if !ok {
		panic(fmt.Errorf(`option "%s" not defined`, name))
	}
	return o
}

func (r *Result) typed(name string, kind Kind) *value {
	o := r.option(name)
	if o.kind != kind {
		panic(fmt.Errorf(`option "%s" is a %s option, not a %s option`, o.name, o.kind, kind))
	}
	return r.values[o.name]
}

// Lookup returns the value of an option and true, or nil and false when the
// option was not set. The value is a bool for a switch, a string for a value
// flag and a []string for a list flag.
func (r *Result) Lookup(name string) (interface{}, bool) {
	o := r.option(name)
	v := r.values[o.name]
	if v == nil {
		return nil, false
	}
	switch o.kind {
	case Switch:
		return v.b, true
	case ListFlag:
		return append([]string(nil), v.list...), true
	}
	return v.s, true
}

// Value returns the value of an option, or nil when it was not set.
func (r *Result) Value(name string) interface{} {
	v, _ := r.Lookup(name)
	return v
}

// IsSet returns true if the option was passed or seeded from the environment.
func (r *Result) IsSet(name string) bool {
	return r.values[r.option(name).name] != nil
}

// FromEnv returns true if the value of the option comes from the environment.
func (r *Result) FromEnv(name string) bool {
	v := r.values[r.option(name).name]
	return v != nil && v.source == fromEnv
}

// Bool returns the value of a switch. It is false when the switch was not set.
func (r *Result) Bool(name string) bool {
	v := r.typed(name, Switch)
	return v != nil && v.b
}

// String returns the value of a value flag, or "" when it was not set.
func (r *Result) String(name string) string {
	if v := r.typed(name, ValueFlag); v != nil {
		return v.s
	}
	return ""
}

// Strings returns a copy of the values of a list flag, or nil when it was not
// set.
func (r *Result) Strings(name string) []string {
	if v := r.typed(name, ListFlag); v != nil {
		return append([]string(nil), v.list...)
	}
	return nil
}

// Convert converts the value of a switch or a value flag and assigns it to
// target, which must point to a string, a bool, a number or a time.Duration.
// The target is left alone when the option is not set, so it can hold a
// default.
func (r *Result) Convert(name string, target interface{}) error {
	o := r.option(name)
	v := r.values[o.name]
	if v == nil {
		return nil
	}
	var err error
	switch o.kind {
	case Switch:
		err = typescan(strconv.FormatBool(v.b), target)
	case ValueFlag:
		err = typescan(v.s, target)
	default:
		err = fmt.Errorf("cannot convert a %s option", o.kind)
	}
	if err != nil {
		return decorate(err, o.display())
	}
	return nil
}

// Args returns a copy of the arguments which are not options, in input
// order.
func (r *Result) Args() []string {
	return append([]string(nil), r.args...)
}

// Names returns the canonical names of all options in definition sequence,
// whether set or not.
func (r *Result) Names() []string {
	options := r.dict.registry.all()
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.name
	}
	return names
}

// decorate adds option information to error messages.
func decorate(err error, name string) error {
	return fmt.Errorf(`parse error on %s: %w`, name, err)
}
