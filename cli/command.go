package cli

import (
	"context"
	"flag"
	"go-frankfurter/domain"
	"go-frankfurter/frankfurter"
	"io"
)

// Command a subcommand of the command line client
type Command interface {
	// Name the subcommand name, as typed by the user.
	Name() string
	// Synopsis a one line description for the usage message.
	Synopsis() string
	// Run parses the subcommand arguments and prints its result to out.
	Run(ctx context.Context, args []string, out *Output) error
}

// env what every subcommand needs to run
type env struct {
	service frankfurter.Service
	clock   domain.Clock
	// usage output for the subcommand flags
	usage io.Writer
}

func (e *env) flagSet(name, arguments string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.usage)
	fs.Usage = func() {
		_, _ = io.WriteString(e.usage, "Usage: frankfurter "+name+" "+arguments+"\n\nFlags:\n")
		fs.PrintDefaults()
		_, _ = io.WriteString(e.usage, "\nCurrencies: "+domain.JoinCurrencies(domain.KnownCurrencies)+
			"\nHistorical codes, e.g. ESP, are accepted for past dates.\n")
	}
	return fs
}

// NewCommands the subcommands of the command line client, backed by service.
func NewCommands(service frankfurter.Service, clock domain.Clock, usage io.Writer) []Command {
	e := &env{service: service, clock: clock, usage: usage}
	return []Command{
		&convertCommand{env: e},
		&periodCommand{env: e},
		&currenciesCommand{env: e},
	}
}
