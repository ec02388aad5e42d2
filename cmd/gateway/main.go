package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/numaan0/travel-genius/gateway"
	"github.com/numaan0/travel-genius/pkg/logger"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to TOML config file")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	agentURL := flag.String("agent", "", "Agent service base URL (overrides config and ADK_SERVICE_URL)")
	dbPath := flag.String("db", "", "Path to SQLite history database (default: in-memory)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Set up logger
	logger := logger.NewLogger(*debug)
	defer logger.Sync()

	config, err := gateway.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Flags win over config file and environment
	if *listenAddr != "" {
		config.ListenAddr = *listenAddr
	}
	if *agentURL != "" {
		config.AgentURL = *agentURL
	}
	if *dbPath != "" {
		config.DBPath = *dbPath
	}

	logger.Info("travel genius gateway starting",
		zap.String("listen", config.ListenAddr),
		zap.String("agent", config.AgentURL),
		zap.Bool("debug", *debug),
	)

	g, err := gateway.New(config, logger)
	if err != nil {
		logger.Fatal("failed to create gateway", zap.Error(err))
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Fatal("gateway server failed", zap.Error(err))
	}
}
