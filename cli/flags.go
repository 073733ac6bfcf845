package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// UsageError invalid command line arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// parseInterleaved parses args with fs, allowing flags after positional
// arguments. It returns the positional arguments in order. Everything after
// a "--" terminator is positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	args, terminated := splitTerminator(fs, args)
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, &UsageError{Err: err}
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return append(positional, terminated...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// splitTerminator splits args at the first "--" that is not the value of a flag.
func splitTerminator(fs *flag.FlagSet, args []string) (flags, terminated []string) {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return args[:i], args[i+1:]
		}
		if takesValue(fs, args[i]) {
			i++
		}
	}
	return args, nil
}

// takesValue reports whether arg is a non-boolean flag of fs given without "=value",
// so the next argument is its value.
func takesValue(fs *flag.FlagSet, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || strings.Contains(arg, "=") {
		return false
	}
	f := fs.Lookup(strings.TrimLeft(arg, "-"))
	if f == nil {
		return false
	}
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return !ok || !b.IsBoolFlag()
}

// modifiers the output modifiers shared by every subcommand.
type modifiers struct {
	json bool
	raw  bool
}

func (m *modifiers) register(fs *flag.FlagSet) {
	fs.BoolVar(&m.json, "j", false, "print the full JSON response from the server")
	fs.BoolVar(&m.json, "json", false, "print the full JSON response from the server")
	fs.BoolVar(&m.raw, "r", false, "print the raw output instead of a table")
	fs.BoolVar(&m.raw, "raw", false, "print the raw output instead of a table")
}

func (m *modifiers) validate() error {
	if m.json && m.raw {
		return usageErrorf("the --json and --raw flags cannot be used together")
	}
	return nil
}
