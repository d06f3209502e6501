package cliargs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrDeclarationClosed is the panic value of a declaration attempted after
// Check, which also runs on the first Parse.
var ErrDeclarationClosed = errors.New("declarations are closed")

// Declaration errors. They depend on the declarations alone and are returned
// by Check and by every Parse.

// InvalidNameError reports an option token which cannot be declared.
type InvalidNameError struct {
	Token  string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf(`"%s" cannot be used as an option: %s`, e.Token, e.Reason)
}

// DuplicateOptionError reports a canonical name or alias declared twice.
type DuplicateOptionError struct {
	Token string // the colliding name or alias
	Name  string // canonical name of the option already holding it
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf(`option "%s" already defined by "%s"`, e.Token, e.Name)
}

// InvalidConstraintError reports a constraint declaration which no input can
// satisfy, or which refers to an undeclared option.
type InvalidConstraintError struct {
	Options []string
	Reason  string
}

func (e *InvalidConstraintError) Error() string {
	return e.Reason
}

// Usage errors. They depend on the argument list passed to Parse.

// UnknownOptionError reports an option-shaped argument matching no alias.
type UnknownOptionError struct {
	Token string // the unrecognized option, e.g. "-x"
	Arg   string // the argument containing it, e.g. "-abx"
}

func (e *UnknownOptionError) Error() string {
	if e.Arg != "" && e.Arg != e.Token {
		return fmt.Sprintf("invalid option: %s (in %s)", printable(e.Token), printable(e.Arg))
	}
	return "invalid option: " + printable(e.Token)
}

// printable quotes s when it is not valid UTF-8.
func printable(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strconv.Quote(s)
}

// MissingValueError reports a value flag given without its value.
type MissingValueError struct {
	Token string
}

func (e *MissingValueError) Error() string {
	return "missing argument: " + e.Token
}

// UnexpectedValueError reports a value attached to a switch.
type UnexpectedValueError struct {
	Token string
	Value string
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("needless argument: %s (value %q)", e.Token, e.Value)
}

// OptionConflictError reports mutually exclusive options passed together.
type OptionConflictError struct {
	Options []string
}

func (e *OptionConflictError) Error() string {
	return fmt.Sprintf("options %s are mutually exclusive", strings.Join(e.Options, " and "))
}

// OptionConstraintError reports an option passed without an option it
// requires.
type OptionConstraintError struct {
	Option   string // the option which was passed
	Required string // the missing option
	declared origin
}

func (e *OptionConstraintError) Error() string {
	if e.declared == originRequiredFor {
		return fmt.Sprintf("%s and %s should be passed together", e.Option, e.Required)
	}
	return fmt.Sprintf("%s cannot be passed without %s", e.Option, e.Required)
}

// IsDeclarationError returns true if err comes from the declarations.
func IsDeclarationError(err error) bool {
	var (
		name       *InvalidNameError
		duplicate  *DuplicateOptionError
		constraint *InvalidConstraintError
	)
	return errors.As(err, &name) || errors.As(err, &duplicate) ||
		errors.As(err, &constraint) || errors.Is(err, ErrDeclarationClosed)
}

// IsUsageError returns true if err comes from the arguments being parsed.
func IsUsageError(err error) bool {
	var (
		unknown     *UnknownOptionError
		missing     *MissingValueError
		unexpected  *UnexpectedValueError
		conflict    *OptionConflictError
		constraints *OptionConstraintError
	)
	return errors.As(err, &unknown) || errors.As(err, &missing) ||
		errors.As(err, &unexpected) || errors.As(err, &conflict) ||
		errors.As(err, &constraints)
}
