package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"playbox/internal/config"
	"playbox/internal/contentstore"
	"playbox/internal/inventory"
	"playbox/internal/logging"
	"playbox/internal/notifications"
	"playbox/internal/reward"
	"playbox/internal/sticker"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger from config. Logs go to stderr so
// command output stays parseable.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg, os.Stderr)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) contentClient() (*contentstore.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.ContentStore.RequestTimeout) * time.Second
	return contentstore.New(cfg.ContentStore.BaseURL, timeout)
}

// openInventory builds the expected-asset inventory and overlays the last
// persisted audit snapshot. The caller owns the returned store.
func (c *commandContext) openInventory(ctx context.Context) (*inventory.Inventory, *inventory.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := inventory.OpenStore(cfg.InventoryDBPath())
	if err != nil {
		return nil, nil, err
	}
	inv := inventory.Build()
	rows, err := store.LoadSnapshot(ctx)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	inv.ApplySnapshot(rows)
	return inv, store, nil
}

func (c *commandContext) rewardEngine() (*reward.Engine, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := c.ensureLogger()
	store := reward.NewFileStore(cfg.RewardStatePath(), logger)
	sink := notifications.NewSink(notifications.NewService(cfg), logger)
	return reward.New(sticker.All(), store,
		reward.WithThresholds(cfg.Reward.StickerThreshold, cfg.Reward.BigRewardThreshold),
		reward.WithSink(sink),
		reward.WithLogger(logger),
	), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
