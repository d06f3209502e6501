package cliargs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type specConstant uint8

// Special character constants for Config methods.
const (
	SpecSeparator specConstant = iota
	SpecListSeparator
)

var specialDescription = [2]string{
	"name-value separator",
	"list separator",
}

// Config holds configurable special characters and the environment and
// logging collaborators of a Parser.
type Config struct {
	specList [2]rune

	// EnvPrefix is prepended to environment bindings. With prefix "HOMEBREW_"
	// an option bound to "pry" reads HOMEBREW_PRY.
	EnvPrefix string

	// Getenv looks up an environment variable. It defaults to os.LookupEnv.
	Getenv func(key string) (string, bool)

	// Logger receives debug records. A nil Logger discards them.
	Logger *slog.Logger
}

// NewConfig returns the address of a new default Config.
func NewConfig() *Config {
	return &Config{
		specList: [2]rune{'=', ','},
		Getenv:   os.LookupEnv,
	}
}

func (c *Config) copy() *Config {
	cp := *c
	return &cp
}

// GetSpecial returns the character currently corresponding to a special
// character identified by its constant.
func (c *Config) GetSpecial(which specConstant) rune {
	switch which {
	case SpecSeparator, SpecListSeparator:
		return c.specList[which]
	}
	panic(fmt.Errorf(`unknown special: %v`, which))
}

// SetSpecial changes a special character identified by a constant. Panics if
// ch is invalid, or is already used, or if spec is unknown.
func (c *Config) SetSpecial(spec specConstant, ch rune) {
	switch spec {
	case SpecSeparator, SpecListSeparator:
	default:
		panic(fmt.Errorf(`unknown special: %v`, spec))
	}
	if !validSpecial(ch) {
		panic(fmt.Errorf("cannot use '%c' as %s: not a valid special character", ch, specialDescription[spec]))
	}
	if c.specList[1-spec] == ch {
		panic(fmt.Errorf("cannot use '%c' as %s: already used", ch, specialDescription[spec]))
	}
	c.specList[spec] = ch
}

// envKey maps a binding to a variable name: prefix, upper case, and
// underscores instead of hyphens.
func (c *Config) envKey(binding string) string {
	return c.EnvPrefix + strings.ToUpper(strings.ReplaceAll(binding, "-", "_"))
}

func (c *Config) lookupEnv(key string) (string, bool) {
	if c.Getenv == nil {
		return os.LookupEnv(key)
	}
	return c.Getenv(key)
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
