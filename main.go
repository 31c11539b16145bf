package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"i4.energy/across/gsmquery/at"
	"i4.energy/across/gsmquery/modem"
)

const (
	defaultCommand = at.CmdSignalQuality + "\r"
	defaultPattern = `\+CSQ: (\d{1,2})`
	// neverMatch makes a custom command run into the timeout while the raw
	// output is logged.
	neverMatch = `^THISWILLNEVERMATCH()`
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [command]\n", os.Args[0])
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "YAML configuration file")
	pattern := flag.String("pattern", "", "Success pattern with one capturing group")
	flag.String("serial-port", "/dev/ttyS0", "Serial port to connect to the modem")
	flag.Int("baud-rate", 9600, "Baud rate for serial communication")
	flag.Duration("read-timeout", 15*time.Second, "Timeout of a single byte read")
	flag.Duration("timeout", 15*time.Second, "Timeout of a whole command")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.String("bind-address", "", "Serve POST /fetch on this address instead of running one command")
	flag.String("mqtt-broker", "", "Publish outcomes to this MQTT broker (e.g. tcp://localhost:1883)")
	flag.String("mqtt-topic", "gsmquery/outcome", "MQTT topic for outcomes")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithFile(*configPath), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	logLevel := slog.LevelInfo
	switch config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	modemConfig, err := modem.NewConfigBuilder().
		WithTimeout(config.FetchTimeout).
		WithLogger(logger.With("component", "modem")).
		WithDialer(modem.SerialDialer{
			PortName:    config.SerialPort,
			BaudRate:    config.BaudRate,
			ReadTimeout: config.ReadTimeout,
		}).
		Build()
	if err != nil {
		logger.Error("Failed to create modem config", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := modem.Open(ctx, modemConfig)
	if err != nil {
		logger.Error("Failed to open modem", "error", err, "port", config.SerialPort)
		return 1
	}
	defer session.Close()

	var publisher Publisher
	if config.MQTT.Broker != "" {
		p, err := NewMQTTPublisher(config.MQTT, logger.With("component", "mqtt"))
		if err != nil {
			logger.Error("Failed to connect to MQTT broker", "error", err)
			return 1
		}
		defer p.Close()
		publisher = p
	}

	if config.BindAddress != "" {
		return serve(ctx, logger, config.BindAddress, &Server{
			Logger:    logger.With("component", "server"),
			Session:   session,
			Publisher: publisher,
		})
	}

	command, expr := defaultCommand, defaultPattern
	if flag.NArg() > 0 {
		command, expr = flag.Arg(0), neverMatch
	}
	if *pattern != "" {
		expr = *pattern
	}
	re, err := at.CompilePattern(expr)
	if err != nil {
		logger.Error("Invalid pattern", "error", err, "pattern", expr)
		return 1
	}

	return fetchOnce(ctx, os.Stdout, logger, session, publisher, []byte(command), re)
}

// serve runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler) int {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			return 1
		}
		return 0
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("Closing HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to gracefully shutdown server", "error", err)
		return 1
	}
	return 0
}
