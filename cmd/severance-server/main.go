package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/severance-calculator/internal/logging"
	"github.com/iwvelando/severance-calculator/internal/server"
	"github.com/iwvelando/severance-calculator/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	rules, err := cfg.LoadRules()
	if err != nil {
		logger.Fatal("failed to load calculation rules",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range rules.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		logger.Fatal("failed to listen",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.Error(err),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := server.NewHandler(logger, cfg, rules, version)
	if err := server.Serve(ctx, logger, ln, handler); err != nil {
		logger.Fatal("server stopped with error",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
