package main

import (
	"fmt"
	"time"

	"github.com/ic1618/chat-bot/internal/compiler"
	"github.com/ic1618/chat-bot/pkg/adapters/file"
	"github.com/ic1618/chat-bot/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Copy the catalog file into Redis",
	Long: `Reads the catalog file, checks that it compiles and stores it under the Redis key
so that other instances can start with --redis-addr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !cfg.UseRedis() {
			return fmt.Errorf("--redis-addr is required")
		}
		ttl, _ := cmd.Flags().GetDuration("ttl")

		records, err := file.New(cfg.Data).Load(cmd.Context())
		if err != nil {
			return err
		}
		if _, err := compiler.Build(records); err != nil {
			return err
		}

		l := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			redis.WithKey(cfg.RedisKey),
			redis.WithTTL(ttl),
		)
		defer l.Close()

		if err := l.Publish(cmd.Context(), records); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %d exchanges to %s (key %s)\n", len(records), cfg.RedisAddr, l.Key())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().Duration("ttl", time.Duration(0), "Expire the catalog after this long (0 keeps it)")
}
