package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	chatbot "github.com/ic1618/chat-bot"
	"github.com/ic1618/chat-bot/internal/config"
	"github.com/ic1618/chat-bot/internal/logging"
	"github.com/ic1618/chat-bot/pkg/adapters/redis"
	"github.com/ic1618/chat-bot/pkg/observability"
	"github.com/ic1618/chat-bot/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatbot",
	Short: "A menu-driven stock chatbot",
	Long: `chatbot walks users from a list of stock exchanges to the price of a stock.
The catalog is read from a JSON or YAML file (default data/stock-data.json) or from Redis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default chatbot.yaml if present)")
	pf.String("data", config.DefaultDataPath, "Catalog file (JSON or YAML)")
	pf.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.String("redis-addr", "", "Read the catalog from this Redis server instead of a file")
	pf.String("redis-password", "", "Redis password")
	pf.Int("redis-db", 0, "Redis database")
	pf.String("redis-key", config.DefaultRedisKey, "Redis key holding the catalog")
	pf.Int("max-input-size", config.DefaultMaxInputSize, "Largest accepted user input in bytes")
}

// app is what every command needs: settings, a logger and the bot.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	bot      *chatbot.Bot
	registry *prometheus.Registry

	// close releases the catalog source. It is never nil.
	close func() error
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	return config.Load(cfgFile, cmd.Flags())
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level), nil
}

// newLoader picks the catalog source. The returned close function is never nil.
func newLoader(cfg *config.Config) (ports.CatalogLoader, func() error) {
	if cfg.UseRedis() {
		l := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithKey(cfg.RedisKey))
		return l, l.Close
	}
	return nil, func() error { return nil }
}

// setup loads the configuration and builds the bot. A missing or malformed
// catalog is returned as an error, which makes the command exit with status 1.
// Callers release the catalog source with app.close once the command is done.
func setup(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	opts := []chatbot.Option{chatbot.WithLogger(logger)}

	if cfg.Metrics {
		a.registry = prometheus.NewRegistry()
		metrics := observability.NewMetrics(a.registry)
		opts = append(opts, chatbot.WithLifecycleHooks(metrics.Hooks()))
	}

	loader, closeLoader := newLoader(cfg)
	if loader != nil {
		opts = append(opts, chatbot.WithLoader(loader))
	}
	a.close = closeLoader

	a.bot, err = chatbot.New(ctx, cfg.Data, opts...)
	if err != nil {
		closeLoader()
		return nil, err
	}
	logger.Debug("bot ready", "data", cfg.Data, "redis", cfg.UseRedis())
	return a, nil
}
