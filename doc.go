/*

Package cliargs parses command line options declared with a small set of
methods, and verifies relations between them: an option may be required
for another, depend on another, or conflict with others.

A first example declares a switch, a flag taking a value and a flag taking a
list, then parses the arguments of the program:

    package main

    import (
    	"fmt"
    	"os"

    	"github.com/jpvetterli/cliargs"
    )

    func main() {
    	a := cliargs.NewParser()
    	a.Switch("-v", "--verbose").Doc("say more")
    	a.Flag("-o", "--output=").Doc("output file")
    	a.CommaArray("--files").Doc("input files")
    	args, err := a.Parse(os.Args[1:])
    	if err != nil {
    		fmt.Fprintln(os.Stderr, err.Error()+" (try --help)")
    		os.Exit(1)
    	}
    	if args.Bool("verbose") {
    		fmt.Println("writing", args.String("output"), "from", args.Strings("files"))
    	}
    }

Declarations

Switch, Flag and CommaArray declare an option with one or more tokens. A token
is written "-x" for a short option or "--name" for a long one. A trailing
"=", as in "--output=", documents that the option takes a value and is
otherwise ignored. The canonical name of an option comes from its longest
long token: dashes are removed and hyphens become underscores, so
"--more-verbose" is named "more_verbose".

Each declaration returns an Option, whose methods can be chained:

    a.Switch("--pry").Env("pry")
    a.Flag("--flag2=").RequiredFor("--flag1=")
    a.Flag("--flag4=").DependsOn("--flag3=")
    a.Conflicts("--flag1=", "--flag3=")

Env binds an environment variable, prefixed with Config.EnvPrefix and upper
cased. When it is set, it seeds the option before the arguments are parsed. A
switch is then true whatever the value of the variable.

DependsOn declares that an option cannot be passed without another:
"--flag4" above cannot be passed without "--flag3", which can be passed alone.
RequiredFor is stronger: "--flag2" and "--flag1" must be passed together,
neither can be passed without the other. Both are verified the same way.
Conflicts declares options mutually exclusive.

Check closes the declarations and verifies them. Errors in declarations do not
panic. The first one is kept and returned by Check and by Parse. Contradictory
constraints, such as two options both conflicting and dependent, are reported
by Check with an *InvalidConstraintError even if no argument would ever
trigger them.

Arguments

Parse recognizes these forms:

    --name          a switch
    --name=value    a flag and its value
    --name value    a flag and its value
    -x              a switch
    -xyz            the switches -x, -y and -z
    -ovalue         the flag -o and its value
    -o value        the flag -o and its value
    --              the end of options

Arguments which do not start with a dash, a lone "-", and all arguments after
"--" are not options. They are available in order from Result.Args. An
argument which looks like an option but matches no declaration is an error.

The value of a CommaArray option is split on commas, literally: "a,,b" gives
"a", "", "b" and an empty value gives a single empty string. When an option is
repeated the last value wins.

After parsing, constraints are verified. A constraint is only verified when
its guarding option is present, so by default options are optional.

Results

Parse returns a new Result each time. A Result cannot be modified and the
parser keeps no reference to it. Values are looked up by canonical name or by
any alias:

    args.Bool("switch_a")      // false when not set
    args.String("--flag1")     // "" when not set
    args.Strings("files")      // nil when not set
    args.Value("flag1")        // nil when not set
    args.Convert("port", &port)

Errors

Errors are typed and carry the options involved. Declaration errors are
*InvalidNameError, *DuplicateOptionError and *InvalidConstraintError. Usage
errors are *UnknownOptionError, *MissingValueError, *UnexpectedValueError,
*OptionConflictError and *OptionConstraintError. IsDeclarationError and
IsUsageError tell the two classes apart.

*/
package cliargs
