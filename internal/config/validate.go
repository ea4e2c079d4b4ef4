package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for values that would break at runtime.
// It does not require a synth API key; commands that need one check for it
// themselves so read-only commands work unconfigured.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Paths.DataDir) == "" {
		problems = append(problems, "paths.data_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		problems = append(problems, "paths.log_dir must not be empty")
	}

	if c.ContentStore.BaseURL == "" {
		problems = append(problems, "content_store.base_url must not be empty")
	} else if parsed, err := url.Parse(c.ContentStore.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		problems = append(problems, fmt.Sprintf("content_store.base_url %q is not an absolute URL", c.ContentStore.BaseURL))
	}
	if c.ContentStore.RequestTimeout <= 0 {
		problems = append(problems, "content_store.request_timeout must be positive")
	}
	if c.ContentStore.ProbeConcurrency <= 0 {
		problems = append(problems, "content_store.probe_concurrency must be positive")
	}

	if c.Synth.TimeoutSeconds <= 0 {
		problems = append(problems, "synth.timeout_seconds must be positive")
	}

	if c.Reward.StickerThreshold <= 0 {
		problems = append(problems, "reward.sticker_threshold must be positive")
	}
	if c.Reward.BigRewardThreshold <= 0 {
		problems = append(problems, "reward.big_reward_threshold must be positive")
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of console, json", c.Logging.Format))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration:\n  - " + strings.Join(problems, "\n  - "))
	}
	return nil
}
