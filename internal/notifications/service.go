package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"playbox/internal/config"
)

const userAgent = "playbox/0.1"

// Service defines the notification surface exposed to the reward engine and
// the generation runner.
type Service interface {
	NotifyStickerUnlocked(ctx context.Context, stickerName string) error
	NotifyBigReward(ctx context.Context) error
	NotifyBatchStarted(ctx context.Context, batchID string, count int) error
	NotifyBatchCompleted(ctx context.Context, batchID string, generated, failed int, duration time.Duration) error
	NotifyError(ctx context.Context, err error, context string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &http.Client{Timeout: timeout}
	return &ntfyService{
		endpoint: topic,
		client:   client,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyStickerUnlocked(ctx context.Context, stickerName string) error {
	stickerName = strings.TrimSpace(stickerName)
	data := payload{
		title:   "Playbox - Sticker Unlocked",
		message: fmt.Sprintf("New sticker unlocked: %s", stickerName),
		tags:    []string{"playbox", "sticker", "unlocked"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyBigReward(ctx context.Context) error {
	data := payload{
		title:    "Playbox - Big Reward",
		message:  "Big reward earned! The celebration screen is up.",
		tags:     []string{"playbox", "reward", "big"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyBatchStarted(ctx context.Context, batchID string, count int) error {
	data := payload{
		title:   "Playbox - Generation Started",
		message: fmt.Sprintf("Started generating %d missing assets (batch %s)", count, batchID),
		tags:    []string{"playbox", "generate", "started"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyBatchCompleted(ctx context.Context, batchID string, generated, failed int, duration time.Duration) error {
	duration = duration.Round(time.Second)
	if duration < 0 {
		duration = 0
	}
	durationText := duration.String()
	if duration == 0 {
		durationText = "0s"
	}

	var title string
	var message string
	if failed == 0 {
		title = "Playbox - Generation Complete"
		message = fmt.Sprintf("Batch %s complete: %d assets generated in %s", batchID, generated, durationText)
	} else {
		title = "Playbox - Generation Complete (with errors)"
		message = fmt.Sprintf("Batch %s complete: %d generated, %d failed in %s", batchID, generated, failed, durationText)
	}

	data := payload{
		title:   title,
		message: message,
		tags:    []string{"playbox", "generate", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" with ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "Playbox - Error",
		message:  builder.String(),
		tags:     []string{"playbox", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Playbox - Test",
		message:  "Notification system test",
		tags:     []string{"playbox", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyStickerUnlocked(context.Context, string) error { return nil }
func (noopService) NotifyBigReward(context.Context) error               { return nil }
func (noopService) NotifyBatchStarted(context.Context, string, int) error {
	return nil
}
func (noopService) NotifyBatchCompleted(context.Context, string, int, int, time.Duration) error {
	return nil
}
func (noopService) NotifyError(context.Context, error, string) error { return nil }
func (noopService) TestNotification(context.Context) error           { return nil }
