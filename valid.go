package cliargs

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// validSpecial returns true iff char is valid as a special character.
// Valid special characters are graphic, not white space, not valid in a name.
func validSpecial(char rune) bool {
	return !valid(char) && unicode.IsGraphic(char) && !unicode.IsSpace(char)
}

// valid returns true iff char is valid in an option name.
// Valid characters are letters, digits, the hyphen and the underscore.
func valid(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsDigit(char) || char == '-' || char == '_'
}

// validate verifies an option token as written in a declaration: "-v",
// "--more-verbose", "--name=" or a bare name like "verbose". At most two
// leading dashes are allowed, the remainder must start with a letter or a
// digit, and a single dash must be followed by exactly one character.
func validate(token string) error {
	body := strings.TrimSuffix(token, "=")
	dashes := 0
	for dashes < len(body) && dashes < 2 && body[dashes] == '-' {
		dashes++
	}
	body = body[dashes:]
	if len(body) == 0 {
		return &InvalidNameError{Token: token, Reason: "empty name"}
	}
	first, _ := utf8.DecodeRuneInString(body)
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		return &InvalidNameError{Token: token, Reason: "name must start with a letter or a digit"}
	}
	for _, r := range body {
		if !valid(r) {
			return &InvalidNameError{Token: token, Reason: "invalid character '" + string(r) + "'"}
		}
	}
	if dashes == 1 && utf8.RuneCountInString(body) != 1 {
		return &InvalidNameError{Token: token, Reason: "a short option takes a single character"}
	}
	return nil
}

// surface returns the alias form of a token: the trailing value sentinel is
// dropped and a bare name gets one dash when it is a single character, two
// otherwise. The token is not validated.
func surface(token string) string {
	token = strings.TrimSuffix(token, "=")
	if strings.HasPrefix(token, "-") {
		return token
	}
	if utf8.RuneCountInString(token) == 1 {
		return "-" + token
	}
	return "--" + token
}

// canonical returns the identity of a token: no leading dashes, no trailing
// sentinel and underscores as word separators ("--switch-a=" is "switch_a").
func canonical(token string) string {
	token = strings.TrimSuffix(token, "=")
	token = strings.TrimLeft(token, "-")
	return strings.ReplaceAll(token, "-", "_")
}

// primary selects the alias giving an option its canonical name: the longest
// alias with a "--" prefix, else the longest alias. The first one wins ties.
func primary(aliases []string) string {
	best := ""
	long := false
	for _, a := range aliases {
		isLong := strings.HasPrefix(a, "--")
		switch {
		case isLong && !long:
			best, long = a, true
		case isLong == long && len(a) > len(best):
			best = a
		}
	}
	return best
}
