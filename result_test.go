package cliargs_test

import (
	"testing"
	"time"

	"github.com/jpvetterli/cliargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultParser() *cliargs.Parser {
	a := cliargs.NewParser()
	a.Switch("-v", "--verbose")
	a.Switch("-q", "--quiet")
	a.Flag("-p", "--port=")
	a.Flag("--timeout=")
	a.Flag("--name=")
	a.CommaArray("--files")
	return a
}

func TestResultAccessors(t *testing.T) {
	args, err := resultParser().Parse([]string{"-v", "--port=8080", "--files=a,b", "x"})
	require.NoError(t, err)

	assert.True(t, args.Bool("verbose"))
	assert.True(t, args.Bool("-v"))
	assert.True(t, args.Bool("--verbose"))
	assert.False(t, args.Bool("quiet"))
	assert.Equal(t, "8080", args.String("port"))
	assert.Equal(t, "8080", args.String("-p"))
	assert.Equal(t, []string{"a", "b"}, args.Strings("files"))
	assert.Equal(t, []string{"x"}, args.Args())

	v, ok := args.Lookup("verbose")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	v, ok = args.Lookup("quiet")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, "8080", args.Value("port"))
	assert.Equal(t, []string{"a", "b"}, args.Value("files"))
	assert.Nil(t, args.Value("name"))

	assert.True(t, args.IsSet("files"))
	assert.False(t, args.IsSet("name"))
	assert.False(t, args.FromEnv("port"))
	assert.Equal(t, []string{"verbose", "quiet", "port", "timeout", "name", "files"}, args.Names())
}

func TestResultCannotBeModified(t *testing.T) {
	args, err := resultParser().Parse([]string{"--files=a,b", "x"})
	require.NoError(t, err)

	files := args.Strings("files")
	files[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, args.Strings("files"))

	list := args.Value("files").([]string)
	list[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, args.Strings("files"))

	positional := args.Args()
	positional[0] = "changed"
	assert.Equal(t, []string{"x"}, args.Args())
}

func TestResultsAreIndependent(t *testing.T) {
	a := resultParser()
	first, err := a.Parse([]string{"-v"})
	require.NoError(t, err)
	second, err := a.Parse([]string{"-q"})
	require.NoError(t, err)
	assert.True(t, first.Bool("verbose"))
	assert.False(t, first.Bool("quiet"))
	assert.False(t, second.Bool("verbose"))
	assert.True(t, second.Bool("quiet"))
}

func TestResultUndeclaredOption(t *testing.T) {
	args, err := resultParser().Parse(nil)
	require.NoError(t, err)
	assert.PanicsWithError(t, `option "nope" not defined`, func() { args.Bool("nope") })
	assert.PanicsWithError(t, `option "--nope" not defined`, func() { args.Value("--nope") })
}

func TestResultWrongKind(t *testing.T) {
	args, err := resultParser().Parse(nil)
	require.NoError(t, err)
	assert.PanicsWithError(t, `option "verbose" is a switch option, not a value option`, func() { args.String("verbose") })
	assert.PanicsWithError(t, `option "port" is a value option, not a switch option`, func() { args.Bool("port") })
	assert.PanicsWithError(t, `option "files" is a list option, not a value option`, func() { args.String("files") })
	assert.PanicsWithError(t, `option "name" is a value option, not a list option`, func() { args.Strings("name") })
}

func TestResultConvert(t *testing.T) {
	args, err := resultParser().Parse([]string{"-v", "--port=0x1F90", "--timeout=1m30s", "--files=a"})
	require.NoError(t, err)

	var port uint16
	require.NoError(t, args.Convert("port", &port))
	assert.Equal(t, uint16(8080), port)

	var timeout time.Duration
	require.NoError(t, args.Convert("timeout", &timeout))
	assert.Equal(t, 90*time.Second, timeout)

	verbose := false
	require.NoError(t, args.Convert("verbose", &verbose))
	assert.True(t, verbose)

	name := "default"
	require.NoError(t, args.Convert("name", &name))
	assert.Equal(t, "default", name)

	assert.EqualError(t, args.Convert("files", &name), "parse error on --files: cannot convert a list option")
	assert.EqualError(t, args.Convert("port", port), `parse error on --port: target for value "0x1F90" is not a pointer`)
}

func TestResultConvertErrors(t *testing.T) {
	args, err := resultParser().Parse([]string{"--port=abc", "--name=300"})
	require.NoError(t, err)

	var port int
	assert.EqualError(t, args.Convert("port", &port), `parse error on --port: strconv.ParseInt: parsing "abc": invalid syntax`)

	var small int8
	assert.EqualError(t, args.Convert("name", &small), `parse error on --name: strconv.ParseInt: parsing "300": value out of range`)

	var ratio float32
	require.NoError(t, args.Convert("name", &ratio))
	assert.Equal(t, float32(300), ratio)

	var c complex64
	assert.EqualError(t, args.Convert("name", &c), `parse error on --name: target for value "300" has unsupported type complex64`)
}
