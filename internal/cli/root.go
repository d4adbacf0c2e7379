package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/banker/internal/factory"
	"github.com/mcoot/banker/internal/services/search"
	redisstorage "github.com/mcoot/banker/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "banker",
		Short: "Solver for the banker tile fusion game",
		Long: `banker plays a 5x5 tile fusion game with an expectiminimax search.

It can solve a game tile by tile from commands on stdin, play itself with
sampled tiles, host a game for an external player, and estimate tile
probabilities from the recorded tile log.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

			appCfg := factory.Config{
				Logger:      logger,
				StorageType: cfg.Storage,
				TileLogPath: cfg.TileLog,
				Search:      search.Config{Depth: cfg.Depth, CacheSize: cfg.CacheSize},
			}
			if cfg.Storage == factory.StorageTypeRedis {
				redisCfg := redisstorage.DefaultConfig()
				redisCfg.URL = cfg.RedisURL
				appCfg.RedisConfig = &redisCfg
			}

			var err error
			app, err = factory.New(appCfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVarP(&cfg.Depth, "depth", "d", cfg.Depth, "Search depth (env: BANKER_DEPTH)")
	rootCmd.PersistentFlags().IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "Search cache entries, 0 disables (env: BANKER_CACHE_SIZE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: memory, file, redis (env: BANKER_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.TileLog, "tile-log", cfg.TileLog, "Tile log path for file storage (env: BANKER_TILE_LOG)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for redis storage (env: BANKER_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BANKER_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: BANKER_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured output (env: NO_COLOR)")

	// Add subcommands
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newRolloutCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newProbabilitiesCmd())
	rootCmd.AddCommand(newSessionsCmd())

	return rootCmd
}

// Execute runs the root command. An interrupt cancels running rollouts and games.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
