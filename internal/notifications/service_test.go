package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"playbox/internal/config"
	"playbox/internal/notifications"
)

type captured struct {
	title    string
	tags     string
	priority string
	body     string
}

func newCaptureServer(t *testing.T, out *[]captured) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*out = append(*out, captured{
			title:    r.Header.Get("Title"),
			tags:     r.Header.Get("Tags"),
			priority: r.Header.Get("Priority"),
			body:     string(body),
		})
		w.WriteHeader(http.StatusOK)
	}))
}

func serviceFor(topic string) notifications.Service {
	cfg := &config.Config{}
	cfg.Notifications.NtfyTopic = topic
	cfg.Notifications.RequestTimeout = 5
	return notifications.NewService(cfg)
}

func TestNoopWhenTopicUnset(t *testing.T) {
	service := serviceFor("")
	if err := service.NotifyStickerUnlocked(context.Background(), "Lion"); err != nil {
		t.Fatalf("noop service returned error: %v", err)
	}
	if err := service.NotifyError(context.Background(), errors.New("boom"), "generation"); err != nil {
		t.Fatalf("noop service returned error: %v", err)
	}
}

func TestStickerUnlockedPublishes(t *testing.T) {
	var got []captured
	server := newCaptureServer(t, &got)
	defer server.Close()

	service := serviceFor(server.URL)
	if err := service.NotifyStickerUnlocked(context.Background(), "Lion"); err != nil {
		t.Fatalf("NotifyStickerUnlocked: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(got))
	}
	if !strings.Contains(got[0].body, "Lion") {
		t.Fatalf("body missing sticker name: %q", got[0].body)
	}
	if !strings.Contains(got[0].tags, "sticker") {
		t.Fatalf("unexpected tags %q", got[0].tags)
	}
}

func TestBigRewardUsesHighPriority(t *testing.T) {
	var got []captured
	server := newCaptureServer(t, &got)
	defer server.Close()

	service := serviceFor(server.URL)
	if err := service.NotifyBigReward(context.Background()); err != nil {
		t.Fatalf("NotifyBigReward: %v", err)
	}
	if len(got) != 1 || got[0].priority != "high" {
		t.Fatalf("expected high priority publish, got %+v", got)
	}
}

func TestBatchCompletedMentionsFailures(t *testing.T) {
	var got []captured
	server := newCaptureServer(t, &got)
	defer server.Close()

	service := serviceFor(server.URL)
	if err := service.NotifyBatchCompleted(context.Background(), "batch-1", 7, 2, 90*time.Second); err != nil {
		t.Fatalf("NotifyBatchCompleted: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(got))
	}
	if !strings.Contains(got[0].title, "errors") {
		t.Fatalf("title should flag errors: %q", got[0].title)
	}
	if !strings.Contains(got[0].body, "2 failed") {
		t.Fatalf("body should count failures: %q", got[0].body)
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic over quota", http.StatusTooManyRequests)
	}))
	defer server.Close()

	service := serviceFor(server.URL)
	err := service.TestNotification(context.Background())
	if err == nil {
		t.Fatal("expected error from non-2xx response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry status code: %v", err)
	}
}
