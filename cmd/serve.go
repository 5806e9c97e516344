package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"taskforce/config"
	"taskforce/dashboard"
	"taskforce/dataset"
	"taskforce/dispatch"
	"taskforce/roster"
	"taskforce/store"
	"taskforce/streamers"
)

var (
	serveConfigPath string
	serveAddr       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Mission Sustainability dashboard",
	Long: `Start the dashboard server: a single-page UI where a user picks an
operative (or the full task force), enters a mission topic, and watches the
dispatch stream back over a websocket.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger("taskforce")

		cfg, err := loadConfig(serveConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		if err := dataset.EnsureSample(cfg.Server.DatasetPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error bootstrapping dataset: %v\n", err)
			os.Exit(1)
		}

		stores, err := store.NewBundle(cfg.Storage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
			os.Exit(1)
		}
		defer stores.Close()

		registry := roster.BuildRegistry()
		resolver := roster.NewResolver(registry, roster.BuildTeam(registry))

		factory := newExecutorFactory(cmd.Context(), cfg, resolver, stores)

		srv, err := dashboard.NewServer(resolver, stores, factory, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building server: %v\n", err)
			os.Exit(1)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start(cfg.Server.Addr)
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		case <-stop:
			fmt.Println("\nShutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}
	},
}

// newExecutorFactory binds the shared config, resolver, and store to a
// per-connection mission handler.
func newExecutorFactory(ctx context.Context, cfg *config.Config, resolver *roster.Resolver, stores *store.Bundle) dashboard.ExecutorFactory {
	return func(handler streamers.MissionHandler) *dispatch.Executor {
		return dispatch.NewExecutor(dispatch.Options{
			Resolver:    resolver,
			Runners:     dispatch.NewRunnerFactory(ctx, cfg, handler),
			DatasetPath: cfg.Server.DatasetPath,
			Missions:    stores.Missions,
			Log:         newLogger("dispatch"),
		})
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to config file or directory")
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides config)")
}
