package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"go-frankfurter/cli"
	"go-frankfurter/config"
	"go-frankfurter/domain"
	"go-frankfurter/frankfurter"
	"go-frankfurter/http"
	"os"
	"os/signal"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitError
	}

	global, err := cli.ParseGlobal(args, *cfg, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return cli.ExitOK
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitUsage
	}
	if global.Version {
		fmt.Println("frankfurter", cli.Version)
		return cli.ExitOK
	}

	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	logger = level.NewFilter(logger, global.Config.LogLevel.Option())

	reg := prometheus.NewRegistry()

	transport := http.NewTransport(global.Config.Timeout, log.With(logger, "component", "http"))
	service := frankfurter.NewService(global.Config.URL, transport)
	service = frankfurter.NewLoggingService(log.With(logger, "component", "frankfurter"), service)
	service = frankfurter.NewInstrumentingService(frankfurter.NewMetrics(reg), service)

	var commands []cli.Command
	for _, c := range cli.NewCommands(service, domain.SystemClock, os.Stderr) {
		commands = append(commands, cli.NewLoggingCommand(log.With(logger, "component", "cli"), c))
	}

	stdout := cli.NewOutput(os.Stdout, global.Config.Color)
	stderr := cli.NewOutput(os.Stderr, global.Config.Color)
	code := cli.NewApp(commands, stdout, stderr, global.Debug).Run(ctx, global.Args)

	if global.Config.PushgatewayURL != "" {
		err := push.New(global.Config.PushgatewayURL, "frankfurter").Gatherer(reg).Push()
		if err != nil {
			level.Warn(logger).Log("msg", "pushing metrics", "url", global.Config.PushgatewayURL, "err", err)
		}
	}

	return code
}
