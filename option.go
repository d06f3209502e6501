package cliargs

import "strings"

// Kind is the kind of value an option takes.
type Kind uint8

// Option kinds.
const (
	Switch    Kind = iota // true when present
	ValueFlag             // exactly one string value
	ListFlag              // a value split into a list of strings
)

func (k Kind) String() string {
	switch k {
	case Switch:
		return "switch"
	case ValueFlag:
		return "value"
	case ListFlag:
		return "list"
	}
	return "unknown"
}

// Option methods specify optional details of option declarations. An Option
// is created by Parser.Switch, Parser.Flag or Parser.CommaArray. Option
// methods are designed to support chaining:
//
//	a.Flag("--flag2=").RequiredFor("--flag1=").Doc("needed by flag1")
//
// Errors detected by Option methods do not panic. The first one is kept by
// the parser and returned by Check and Parse.
type Option struct {
	dict    *Parser
	name    string // the canonical name
	kind    Kind
	aliases []string // surface forms, in declaration sequence
	env     string   // binding as declared
	doc     []string
}

// Name returns the canonical name.
func (o *Option) Name() string {
	return o.name
}

// Kind returns the kind of the option.
func (o *Option) Kind() Kind {
	return o.kind
}

// Aliases returns the tokens recognized for the option.
func (o *Option) Aliases() []string {
	return append([]string(nil), o.aliases...)
}

// EnvKey returns the environment variable seeding the option, or "".
func (o *Option) EnvKey() string {
	if o.env == "" {
		return ""
	}
	return o.dict.config.envKey(o.env)
}

// Description returns the help text of the option as a single line.
func (o *Option) Description() string {
	return strings.Join(o.doc, " ")
}

// display returns the alias used to name the option in messages.
func (o *Option) display() string {
	return primary(o.aliases)
}

// Aka adds alias as a synonym for the option.
func (o *Option) Aka(alias string) *Option {
	o.dict.declare(func() error {
		if err := validate(alias); err != nil {
			return err
		}
		return o.dict.registry.alias(o, surface(alias))
	})
	return o
}

// Doc sets lines of help text for the option.
func (o *Option) Doc(s ...string) *Option {
	o.dict.declare(func() error {
		o.doc = s
		return nil
	})
	return o
}

// Env binds the option to an environment variable. When the variable is set,
// its value seeds the option before the arguments are parsed: a switch
// becomes true whatever the value, a flag takes the value.
func (o *Option) Env(binding string) *Option {
	o.dict.declare(func() error {
		if binding == "" {
			return &InvalidNameError{Token: o.display(), Reason: "empty environment binding"}
		}
		o.env = binding
		return nil
	})
	return o
}

// RequiredFor declares that the option and peer must be passed together:
// neither can be passed without the other.
func (o *Option) RequiredFor(peer string) *Option {
	o.dict.declare(func() error {
		o.dict.graph.require(peer, o.display(), originRequiredFor)
		o.dict.graph.require(o.display(), peer, originRequiredFor)
		return nil
	})
	return o
}

// DependsOn declares that the option cannot be passed without peer. Peer
// can be passed alone.
func (o *Option) DependsOn(peer string) *Option {
	o.dict.declare(func() error {
		o.dict.graph.require(o.display(), peer, originDependsOn)
		return nil
	})
	return o
}

// ConflictsWith declares that the option and each peer are mutually
// exclusive.
func (o *Option) ConflictsWith(peers ...string) *Option {
	o.dict.declare(func() error {
		for _, p := range peers {
			o.dict.graph.conflict(o.display(), p)
		}
		return nil
	})
	return o
}
