package testsupport

import (
	"path/filepath"
	"testing"

	"playbox/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.ContentStore.BaseURL = "http://127.0.0.1:0"
	cfgVal.Synth.APIKey = "test"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithContentStoreURL points the test config at a (usually httptest) server.
func WithContentStoreURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.ContentStore.BaseURL = url
	}
}

// WithNtfyTopic enables notifications on the test config.
func WithNtfyTopic(topic string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notifications.NtfyTopic = topic
	}
}

// WithThresholds overrides the reward unlock thresholds.
func WithThresholds(sticker, big int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Reward.StickerThreshold = sticker
		b.cfg.Reward.BigRewardThreshold = big
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
