package cliargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type aliasTable map[string]*Option

func (m aliasTable) lookup(alias string) *Option {
	return m[alias]
}

func testAliases() aliasTable {
	a := &Option{name: "a", kind: Switch}
	b := &Option{name: "b", kind: Switch}
	o := &Option{name: "output", kind: ValueFlag}
	f := &Option{name: "files", kind: ListFlag}
	return aliasTable{"-a": a, "--all": a, "-b": b, "-o": o, "--output": o, "--files": f}
}

// describe turns scanner results into strings easy to compare.
func describe(ev event, it *item, err error) string {
	switch ev {
	case eventSwitch:
		return "switch " + it.token
	case eventValue:
		return "value " + it.token + "=" + it.value
	case eventPositional:
		return "arg " + it.value
	case eventEnd:
		return "end"
	case eventError:
		return "error " + err.Error()
	}
	return "unexpected event"
}

var scanTestData = []struct {
	input  []string
	expect []string
}{
	{[]string{"-a"}, []string{"switch -a", "end"}},
	{[]string{"--all"}, []string{"switch --all", "end"}},
	{[]string{"-ab", "x"}, []string{"switch -a", "switch -b", "arg x", "end"}},
	{[]string{"--output=file", "--output", "next"}, []string{"value --output=file", "value --output=next", "end"}},
	{[]string{"--output="}, []string{"value --output=", "end"}},
	{[]string{"--output", "--all"}, []string{"value --output=--all", "end"}},
	{[]string{"-ofile"}, []string{"value -o=file", "end"}},
	{[]string{"-o=file"}, []string{"value -o=file", "end"}},
	{[]string{"-abo", "file"}, []string{"switch -a", "switch -b", "value -o=file", "end"}},
	{[]string{"--files=a,b"}, []string{"value --files=a,b", "end"}},
	{[]string{"--", "-a", "--x"}, []string{"arg -a", "arg --x", "end"}},
	{[]string{"", "-", "foo"}, []string{"arg ", "arg -", "arg foo", "end"}},
	{[]string{"-o"}, []string{"error missing argument: -o"}},
	{[]string{"-a", "--output"}, []string{"switch -a", "error missing argument: --output"}},
	{[]string{"--random"}, []string{"error invalid option: --random"}},
	{[]string{"--random=x"}, []string{"error invalid option: --random (in --random=x)"}},
	{[]string{"-ax"}, []string{"switch -a", "error invalid option: -x (in -ax)"}},
	{[]string{"-a\xff"}, []string{"switch -a", `error invalid option: "-\xff" (in "-a\xff")`}},
	{[]string{"-aé"}, []string{"switch -a", "error invalid option: -é (in -aé)"}},
	{[]string{"--all=yes"}, []string{`error needless argument: --all (value "yes")`}},
	{[]string{"-a=1"}, []string{`error needless argument: -a (value "1")`}},
	{[]string{}, []string{"end"}},
}

func TestScannerOnGenericData(t *testing.T) {
	for _, data := range scanTestData {
		s := newScanner(NewConfig(), testAliases(), data.input)
		got := make([]string, 0, len(data.expect))
		for {
			ev, it, err := s.Next()
			got = append(got, describe(ev, it, err))
			if ev == eventEnd || ev == eventError {
				break
			}
		}
		assert.Equal(t, data.expect, got, "input: %q", data.input)
	}
}

func TestScannerDoesNotModifyInput(t *testing.T) {
	input := []string{"-ab", "--output", "x", "--", "-a"}
	s := newScanner(NewConfig(), testAliases(), input)
	for {
		if ev, _, _ := s.Next(); ev == eventEnd || ev == eventError {
			break
		}
	}
	assert.Equal(t, []string{"-ab", "--output", "x", "--", "-a"}, input)
}

func TestScannerCallAfterError(t *testing.T) {
	s := newScanner(NewConfig(), testAliases(), []string{"--random"})
	ev, _, _ := s.Next()
	assert.Equal(t, eventError, ev)
	assert.PanicsWithError(t, "bug: Next() called after an error", func() { s.Next() })
}

func TestScannerCustomSeparator(t *testing.T) {
	c := NewConfig()
	c.SetSpecial(SpecSeparator, ':')
	s := newScanner(c, testAliases(), []string{"--output:file", "-o:x"})
	var got []string
	for {
		ev, it, err := s.Next()
		got = append(got, describe(ev, it, err))
		if ev == eventEnd || ev == eventError {
			break
		}
	}
	assert.Equal(t, []string{"value --output=file", "value -o=x", "end"}, got)
}
