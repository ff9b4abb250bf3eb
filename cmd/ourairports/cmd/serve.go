/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/airdata/ourairports-api/pkg/api"
	"github.com/airdata/ourairports-api/pkg/catalog"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Load every dataset and start the REST API server.

The server refuses to start if any dataset fails to load. Once running it
reloads all datasets every refresh interval; a failed reload keeps the
previous data and is logged.

Examples:
  ourairports serve
  ourairports serve --port 9000 --bind 0.0.0.0
  ourairports serve --static-dir ./web --refresh-interval 6h`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Address to bind to (overrides config)")
	serveCmd.Flags().String("static-dir", "", "Directory of static files served at / (overrides config)")
	serveCmd.Flags().Duration("refresh-interval", 0, "Reload interval, 0 keeps the configured value")
	return serveCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	c, err := requireContainer()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("bind") {
		cfg.Bind, _ = cmd.Flags().GetString("bind")
	}
	if cmd.Flags().Changed("static-dir") {
		cfg.Server.StaticDir, _ = cmd.Flags().GetString("static-dir")
	}
	if cmd.Flags().Changed("refresh-interval") {
		cfg.Refresh.Interval, _ = cmd.Flags().GetDuration("refresh-interval")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := api.NewMetrics(nil)
	fetcher := c.GetFetcherFactory().CreateFetcher(cfg.Source.Timeout, cfg.Source.UserAgent)
	cat := catalog.New(catalog.NewLoader(fetcher, cfg.SourceURL, metrics), logger)

	logger.Info("loading datasets", "source", cfg.Source.BaseURL)
	if _, err := cat.Refresh(ctx); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}

	go cat.Run(ctx, cfg.Refresh.Interval)

	starter := c.GetServerFactory().CreateServerStarter()
	return starter.StartServer(ctx, cat, api.ServerConfig{
		Addr:            cfg.Addr(),
		StaticDir:       cfg.Server.StaticDir,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		RequestTimeout:  cfg.Server.RequestTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, metrics)
}
