package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var (
	servePort    int
	serveConfig  string
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume analysis and job matching endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Emit debug-level logs")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg.Port = servePort
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := buildLogger(serveVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(cmd.Context(), server.Config{
		Port:           cfg.Port,
		AdzunaAppID:    cfg.AdzunaAppID,
		AdzunaAppKey:   cfg.AdzunaAppKey,
		GeminiAPIKey:   cfg.GeminiAPIKey,
		EmbeddingModel: cfg.EmbeddingModel,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
