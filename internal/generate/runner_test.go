package generate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"playbox/internal/generate"
	"playbox/internal/inventory"
)

type fakeSynth struct {
	calls  []string
	failOn map[string]error
}

func (f *fakeSynth) SynthesizeSpeech(_ context.Context, text, lang string) ([]byte, error) {
	f.calls = append(f.calls, "speech:"+text)
	if err := f.failOn[text]; err != nil {
		return nil, err
	}
	return []byte("audio:" + text + ":" + lang), nil
}

func (f *fakeSynth) GenerateImage(_ context.Context, prompt string, reference []byte) ([]byte, error) {
	f.calls = append(f.calls, "image:"+prompt)
	if err := f.failOn[prompt]; err != nil {
		return nil, err
	}
	if len(reference) > 0 {
		return []byte("styled:" + prompt), nil
	}
	return []byte("image:" + prompt), nil
}

func pendingAssets() []inventory.Asset {
	return []inventory.Asset{
		{Key: "apple_en", Name: "Apple", Kind: inventory.KindAudio, Subfolder: "audio/en", FileName: "apple_en.mp3", Lang: "en", Text: "apple", Status: inventory.StatusPending},
		{Key: "lion", Name: "Lion", Kind: inventory.KindImage, Subfolder: "illustrations", FileName: "lion.png", Prompt: "a lion", Status: inventory.StatusPending},
		{Key: "tiger", Name: "Tiger", Kind: inventory.KindImage, Subfolder: "illustrations", FileName: "tiger.png", Prompt: "a tiger", Status: inventory.StatusError, Error: "old failure"},
		{Key: "zebra", Name: "Zebra", Kind: inventory.KindImage, Subfolder: "illustrations", FileName: "zebra.png", Prompt: "a zebra", Status: inventory.StatusExists},
	}
}

func newRunner(t *testing.T, inv *inventory.Inventory, service *fakeSynth, opts ...generate.Option) *generate.Runner {
	t.Helper()
	dir := t.TempDir()
	opts = append([]generate.Option{generate.WithPause(0)}, opts...)
	return generate.New(inv, service, filepath.Join(dir, "generate.lock"), filepath.Join(dir, "out"), opts...)
}

func TestRunGeneratesPendingAndErroredOnly(t *testing.T) {
	inv := inventory.NewFromAssets(pendingAssets())
	service := &fakeSynth{}
	summary, err := newRunner(t, inv, service).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Total != 3 || summary.Generated != 3 || summary.Failed != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.BatchID == "" {
		t.Fatal("expected a batch id")
	}

	zebra, _ := inv.Get("zebra")
	if zebra.Status != inventory.StatusExists {
		t.Fatalf("existing asset must be untouched, got %q", zebra.Status)
	}
	tiger, _ := inv.Get("tiger")
	if tiger.Status != inventory.StatusGenerated || tiger.Error != "" {
		t.Fatalf("errored asset must retry and clear its error, got %+v", tiger)
	}
}

func TestRunProcessesInDisplayOrder(t *testing.T) {
	inv := inventory.NewFromAssets(pendingAssets())
	service := &fakeSynth{}
	if _, err := newRunner(t, inv, service).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"speech:apple", "image:a lion", "image:a tiger"}
	if len(service.calls) != len(want) {
		t.Fatalf("calls = %v", service.calls)
	}
	for i := range want {
		if service.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, service.calls[i], want[i])
		}
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	inv := inventory.NewFromAssets(pendingAssets())
	service := &fakeSynth{failOn: map[string]error{"a lion": errors.New("quota exceeded")}}
	summary, err := newRunner(t, inv, service).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generated != 2 || summary.Failed != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	lion, _ := inv.Get("lion")
	if lion.Status != inventory.StatusError || lion.Error == "" {
		t.Fatalf("failed asset must record its error, got %+v", lion)
	}
	// The failure must not stop the batch: tiger sorts after lion.
	tiger, _ := inv.Get("tiger")
	if tiger.Status != inventory.StatusGenerated {
		t.Fatalf("assets after a failure must still run, got %q", tiger.Status)
	}
}

func TestRunWritesPayloadsInStoreLayout(t *testing.T) {
	inv := inventory.NewFromAssets(pendingAssets())
	dir := t.TempDir()
	runner := generate.New(inv, &fakeSynth{}, filepath.Join(dir, "generate.lock"), filepath.Join(dir, "out"), generate.WithPause(0))
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out", "audio", "en", "apple_en.mp3"))
	if err != nil {
		t.Fatalf("read generated clip: %v", err)
	}
	if string(data) != "audio:apple:en" {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestRunReportsProgressAfterEveryAttempt(t *testing.T) {
	inv := inventory.NewFromAssets(pendingAssets())
	service := &fakeSynth{failOn: map[string]error{"a lion": errors.New("boom")}}

	var seen []generate.Progress
	runner := newRunner(t, inv, service, generate.WithProgress(func(p generate.Progress) {
		seen = append(seen, p)
	}))
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 progress reports, got %d", len(seen))
	}
	for i, p := range seen {
		if p.Current != i+1 || p.Total != 3 {
			t.Fatalf("report %d = %+v", i, p)
		}
	}
	if seen[1].Err == nil {
		t.Fatal("failed attempt must surface its error in progress")
	}
}

func TestRunFailsFastWhenLockHeld(t *testing.T) {
	dir := t.TempDir()
	lockPath := filepath.Join(dir, "generate.lock")
	held := flock.New(lockPath)
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("prepare held lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	inv := inventory.NewFromAssets(pendingAssets())
	runner := generate.New(inv, &fakeSynth{}, lockPath, filepath.Join(dir, "out"), generate.WithPause(0))
	if _, err := runner.Run(context.Background()); !errors.Is(err, generate.ErrBatchInProgress) {
		t.Fatalf("expected ErrBatchInProgress, got %v", err)
	}
}

func TestRunEmptyBatchSkipsLock(t *testing.T) {
	inv := inventory.NewFromAssets([]inventory.Asset{
		{Key: "zebra", Name: "Zebra", Kind: inventory.KindImage, FileName: "zebra.png", Status: inventory.StatusExists},
	})
	summary, err := newRunner(t, inv, &fakeSynth{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Total != 0 || summary.BatchID != "" {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestRunScopedToCategory(t *testing.T) {
	assets := pendingAssets()
	assets[0].Category = inventory.CategoryShop
	assets[1].Category = inventory.CategoryIllustrations
	assets[2].Category = inventory.CategoryIllustrations
	inv := inventory.NewFromAssets(assets)

	service := &fakeSynth{}
	runner := newRunner(t, inv, service, generate.WithCategory(inventory.CategoryShop))
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Total != 1 || summary.Generated != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	lion, _ := inv.Get("lion")
	if lion.Status != inventory.StatusPending {
		t.Fatalf("out-of-scope asset must stay pending, got %q", lion.Status)
	}
}

type captureNotifier struct {
	started   int
	completed int
	generated int
	failed    int
	errs      []error
}

func (c *captureNotifier) NotifyBatchStarted(_ context.Context, _ string, count int) error {
	c.started = count
	return nil
}

func (c *captureNotifier) NotifyBatchCompleted(_ context.Context, _ string, generated, failed int, _ time.Duration) error {
	c.completed++
	c.generated = generated
	c.failed = failed
	return nil
}

func (c *captureNotifier) NotifyError(_ context.Context, err error, _ string) error {
	c.errs = append(c.errs, err)
	return nil
}

func TestRunNotifiesBatchLifecycle(t *testing.T) {
	inv := inventory.NewFromAssets(pendingAssets())
	service := &fakeSynth{failOn: map[string]error{"a tiger": errors.New("boom")}}
	notifier := &captureNotifier{}
	runner := newRunner(t, inv, service, generate.WithNotifier(notifier))
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if notifier.started != 3 {
		t.Fatalf("start notification count = %d", notifier.started)
	}
	if notifier.completed != 1 || notifier.generated != 2 || notifier.failed != 1 {
		t.Fatalf("unexpected completion notification %+v", notifier)
	}
	// Per-asset failures are part of the completion report, not error pushes.
	if len(notifier.errs) != 0 {
		t.Fatalf("unexpected error notifications %v", notifier.errs)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	inv := inventory.NewFromAssets(pendingAssets())
	service := &fakeSynth{}
	ctx, cancel := context.WithCancel(context.Background())

	notifier := &captureNotifier{}
	runner := newRunner(t, inv, service, generate.WithNotifier(notifier), generate.WithProgress(func(p generate.Progress) {
		if p.Current == 1 {
			cancel()
		}
	}))
	summary, err := runner.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if summary.Generated != 1 {
		t.Fatalf("expected exactly one asset before cancel, got %+v", summary)
	}
	// The untouched assets keep their generation eligibility.
	lion, _ := inv.Get("lion")
	if !lion.Status.NeedsGeneration() {
		t.Fatalf("cancelled batch must leave remaining assets retryable, got %q", lion.Status)
	}
	// The abort is pushed as an error and the partial batch still reports.
	if len(notifier.errs) != 1 || !errors.Is(notifier.errs[0], context.Canceled) {
		t.Fatalf("expected one cancellation error notification, got %v", notifier.errs)
	}
	if notifier.completed != 1 || notifier.generated != 1 {
		t.Fatalf("aborted batch must still report completion, got %+v", notifier)
	}
}
