package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"atlassian-cloud-mcp/internal/application"
	"atlassian-cloud-mcp/internal/domain"
	"atlassian-cloud-mcp/internal/infrastructure"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to optional configuration file")
	flag.Parse()

	// Logs go to stderr: stdout belongs to the stdio transport.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	config, err := domain.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(config.Log.Level); err == nil && config.Log.Level != "" {
		logger = logger.Level(level)
	}

	// The client is constructed lazily on the first tool call so that
	// missing credentials produce a per-call configuration envelope
	// instead of a startup crash.
	factory := func() (domain.AtlassianAPI, error) {
		creds, err := domain.CredentialsFromEnv(config)
		if err != nil {
			return nil, err
		}
		return infrastructure.NewClient(creds)
	}

	dispatcher := application.NewDispatcher(factory, logger)
	transport := domain.NewStdioTransport()
	server := application.NewServer(transport, dispatcher, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	if err := server.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server failed to start")
	}
	logger.Info().Msg("MCP server started (stdio transport)")

	sig := <-sigChan
	logger.Info().Str("signal", sig.String()).Msg("shutting down")
	cancel()

	if err := server.Close(); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
		os.Exit(1)
	}
}
