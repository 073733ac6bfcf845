package cli

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// loggingCommand decorates a Command with logging
type loggingCommand struct {
	logger log.Logger
	next   Command
}

// NewLoggingCommand returns a new instance of a logging Command
func NewLoggingCommand(logger log.Logger, c Command) Command {
	return &loggingCommand{
		next:   c,
		logger: logger,
	}
}

func (c *loggingCommand) Name() string {
	return c.next.Name()
}

func (c *loggingCommand) Synopsis() string {
	return c.next.Synopsis()
}

func (c *loggingCommand) Run(ctx context.Context, args []string, out *Output) (err error) {
	defer func(begin time.Time) {
		level.Info(c.logger).Log(
			"command", c.next.Name(),
			"args", len(args),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Run(ctx, args, out)
}
