// Package cli implements the frankfurter command line client.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"go-frankfurter/config"
	"io"
)

// Version of the command line client, set at build time.
var Version = "dev"

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Global the options shared by every subcommand.
type Global struct {
	// Config the configuration, with command line overrides applied.
	Config config.Config
	// Debug prints error details and enables debug logging.
	Debug bool
	// Version prints the version and exits.
	Version bool
	// Args the subcommand and its arguments.
	Args []string
}

// ParseGlobal parses the global flags preceding the subcommand. Flags override cfg.
func ParseGlobal(args []string, cfg config.Config, usage io.Writer) (*Global, error) {
	g := &Global{Config: cfg}
	var (
		color   = string(cfg.Color)
		timeout = cfg.Timeout
	)

	fs := flag.NewFlagSet("frankfurter", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&color, "c", color, "when to colorize output: auto, always or never")
	fs.StringVar(&color, "color", color, "when to colorize output: auto, always or never")
	fs.StringVar(&g.Config.URL, "u", cfg.URL, "URL of the Frankfurter API, e.g. http://localhost:8080")
	fs.StringVar(&g.Config.URL, "url", cfg.URL, "URL of the Frankfurter API, e.g. http://localhost:8080")
	fs.BoolVar(&g.Debug, "d", false, "show debug info for errors")
	fs.BoolVar(&g.Debug, "debug", false, "show debug info for errors")
	fs.DurationVar(&timeout, "timeout", timeout, "timeout of a request")
	fs.StringVar(&g.Config.PushgatewayURL, "metrics", cfg.PushgatewayURL, "push metrics to the Prometheus Pushgateway at `URL`")
	fs.BoolVar(&g.Version, "version", false, "print the version")
	fs.Usage = func() {
		_, _ = io.WriteString(usage, "Usage: frankfurter [flags] <convert|period|currencies> [arguments]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, &UsageError{Err: err}
	}
	g.Args = fs.Args()

	mode, err := config.ParseColorMode(color)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	g.Config.Color = mode
	g.Config.Timeout = timeout
	if g.Debug {
		g.Config.LogLevel = config.LogDebug
	}
	if err := g.Config.Validate(); err != nil {
		return nil, &UsageError{Err: err}
	}
	return g, nil
}

// App runs the subcommands
type App struct {
	commands []Command
	stdout   *Output
	stderr   *Output
	debug    bool
}

// NewApp constructs an App printing results to stdout and errors to stderr.
func NewApp(commands []Command, stdout, stderr *Output, debug bool) *App {
	return &App{
		commands: commands,
		stdout:   stdout,
		stderr:   stderr,
		debug:    debug,
	}
}

// Run executes the subcommand named by args[0] and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return ExitUsage
	}

	command := a.command(args[0])
	if command == nil {
		a.printError(usageErrorf("unrecognized subcommand %q", args[0]))
		a.usage()
		return ExitUsage
	}

	err := command.Run(ctx, args[1:], a.stdout)
	var usageErr *UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.As(err, &usageErr):
		a.printError(err)
		return ExitUsage
	default:
		a.printError(err)
		return ExitError
	}
}

func (a *App) command(name string) Command {
	for _, c := range a.commands {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func (a *App) usage() {
	fmt.Fprintln(a.stderr, "Usage: frankfurter [flags] <command> [arguments]")
	fmt.Fprintln(a.stderr)
	fmt.Fprintln(a.stderr, "Commands:")
	for _, c := range a.commands {
		fmt.Fprintf(a.stderr, "  %-12s%s\n", c.Name(), c.Synopsis())
	}
}

// printError prints err, and its details in debug mode.
func (a *App) printError(err error) {
	if a.debug {
		fmt.Fprintf(a.stderr, "%+v\n", err)
	}
	fmt.Fprintln(a.stderr, a.stderr.Paint("Error: "+err.Error(), Red))
}
