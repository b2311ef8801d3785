package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/internal/config"
	"github.com/zkpa/zkpa/internal/export"
	"github.com/zkpa/zkpa/internal/setup"
	"github.com/zkpa/zkpa/pkg/log"
)

var (
	configFile string = ""
	dumpConfig bool   = false
	exportDir  string = ""
)

func init() {
	flag.StringVar(&configFile, "config", configFile, "configuration file")
	flag.BoolVar(&dumpConfig, "dump-config", dumpConfig, "dump default configuration file and exit")
	flag.StringVar(&exportDir, "export", exportDir, "write the static site to the given directory and exit")
}

func main() {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if dumpConfig {
		if err := config.Dump(os.Stdout, config.NewDefaultConfig()); err != nil {
			slog.ErrorContext(ctx, "could not dump config file", log.Error(errors.WithStack(err)))
			os.Exit(1)
		}

		os.Exit(0)
	}

	conf, err := config.New(configFile)
	if err != nil {
		slog.ErrorContext(ctx, "could not load configuration", log.Error(errors.WithStack(err)), slog.String("file", configFile))
		os.Exit(1)
	}

	logger := slog.New(log.ContextHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     slog.Level(conf.Logger.Level),
			AddSource: true,
		}),
	})

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(slog.Level(conf.Logger.Level))

	if exportDir != "" {
		if _, err := export.Run(ctx, exportDir, setup.NewRendererFromConfig(conf)); err != nil {
			slog.ErrorContext(ctx, "could not export site", log.Error(errors.WithStack(err)), slog.String("dir", exportDir))
			os.Exit(1)
		}

		os.Exit(0)
	}

	handler, err := setup.NewHandlerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not generate handler from config", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	server := http.Server{
		Addr:    string(conf.HTTP.Address),
		Handler: handler,
	}

	go func() {
		<-ctx.Done()

		if err := server.Shutdown(context.Background()); err != nil {
			slog.ErrorContext(ctx, "could not shutdown server", log.Error(errors.WithStack(err)))
		}
	}()

	slog.InfoContext(ctx, "http server listening", slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.ErrorContext(ctx, "could not listen", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}
