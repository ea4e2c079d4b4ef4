// Package generate runs batch generation for assets missing from the content
// store. Batches are strictly sequential: the upstream API is rate limited
// and a single in-flight request keeps the account inside its quota.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"playbox/internal/inventory"
	"playbox/internal/logging"
	"playbox/internal/synth"
)

// ErrBatchInProgress reports that another process holds the generation lock.
var ErrBatchInProgress = errors.New("another generation batch is already running")

// DefaultPause is the wait between consecutive generation requests.
const DefaultPause = time.Second

// Progress describes the state of a running batch after each attempt.
type Progress struct {
	Current int
	Total   int
	Asset   inventory.Asset
	Err     error
}

// ProgressFunc receives a Progress after every attempted asset.
type ProgressFunc func(Progress)

// Notifier is the notification subset the runner needs.
type Notifier interface {
	NotifyBatchStarted(ctx context.Context, batchID string, count int) error
	NotifyBatchCompleted(ctx context.Context, batchID string, generated, failed int, duration time.Duration) error
	NotifyError(ctx context.Context, err error, context string) error
}

// Snapshotter persists inventory state after a batch.
type Snapshotter interface {
	SaveSnapshot(ctx context.Context, assets []inventory.Asset) error
}

// ReferenceLoader fetches reference image bytes for style-matched prompts.
type ReferenceLoader interface {
	LoadReference(ctx context.Context, fileName string) ([]byte, error)
}

// Summary reports the outcome of one batch.
type Summary struct {
	BatchID   string
	Total     int
	Generated int
	Failed    int
	Duration  time.Duration
}

// Runner drives sequential asset generation.
type Runner struct {
	inv      *inventory.Inventory
	synth    synth.Service
	store    Snapshotter
	refs     ReferenceLoader
	notifier Notifier
	progress ProgressFunc
	lockPath string
	outDir   string
	category string
	pause    time.Duration
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithSnapshotter persists inventory state when the batch ends.
func WithSnapshotter(store Snapshotter) Option {
	return func(r *Runner) { r.store = store }
}

// WithReferenceLoader enables style-matched image generation for assets that
// name a reference image.
func WithReferenceLoader(refs ReferenceLoader) Option {
	return func(r *Runner) { r.refs = refs }
}

// WithNotifier publishes batch start and completion events.
func WithNotifier(notifier Notifier) Option {
	return func(r *Runner) { r.notifier = notifier }
}

// WithProgress registers a per-attempt progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Runner) { r.progress = fn }
}

// WithCategory limits the batch to one display category.
func WithCategory(category string) Option {
	return func(r *Runner) { r.category = category }
}

// WithPause sets the wait between consecutive requests. Negative means none.
func WithPause(pause time.Duration) Option {
	return func(r *Runner) { r.pause = pause }
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a runner that writes generated payloads under outDir and guards
// batches with a file lock at lockPath.
func New(inv *inventory.Inventory, service synth.Service, lockPath, outDir string, opts ...Option) *Runner {
	r := &Runner{
		inv:      inv,
		synth:    service,
		lockPath: lockPath,
		outDir:   outDir,
		pause:    DefaultPause,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "generate")
	return r
}

// Run generates every pending or failed asset, one at a time in display
// order. A failure marks that asset and moves on; the batch never aborts for
// a single bad item. Returns ErrBatchInProgress when another process holds
// the lock.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	candidates := r.candidates()
	if len(candidates) == 0 {
		r.logger.Info("nothing to generate")
		return Summary{}, nil
	}

	lock := flock.New(r.lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire generation lock: %w", err)
	}
	if !ok {
		return Summary{}, ErrBatchInProgress
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("release generation lock failed", logging.Args(logging.Error(err))...)
		}
	}()

	summary := Summary{
		BatchID: uuid.New().String(),
		Total:   len(candidates),
	}
	start := time.Now()
	batchLogger := r.logger.With(logging.String(logging.FieldBatchID, summary.BatchID))
	batchLogger.Info("generation batch started", logging.Args(logging.Int("assets", summary.Total))...)
	if r.notifier != nil {
		if err := r.notifier.NotifyBatchStarted(ctx, summary.BatchID, summary.Total); err != nil {
			batchLogger.Warn("batch start notification failed", logging.Args(logging.Error(err))...)
		}
	}

	var runErr error
	for i, a := range candidates {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if i > 0 && r.pause > 0 {
			select {
			case <-time.After(r.pause):
			case <-ctx.Done():
				runErr = ctx.Err()
			}
			if runErr != nil {
				break
			}
		}

		r.inv.SetStatus(a.Key, inventory.StatusLoading, "")
		err := r.generateOne(ctx, a)
		if err != nil {
			r.inv.SetStatus(a.Key, inventory.StatusError, err.Error())
			summary.Failed++
			batchLogger.Error("asset generation failed",
				logging.Args(logging.String(logging.FieldAssetKey, a.Key), logging.Error(err))...)
		} else {
			r.inv.SetStatus(a.Key, inventory.StatusGenerated, "")
			summary.Generated++
			batchLogger.Info("asset generated",
				logging.Args(logging.String(logging.FieldAssetKey, a.Key))...)
		}
		if r.progress != nil {
			r.progress(Progress{Current: i + 1, Total: summary.Total, Asset: a, Err: err})
		}
	}
	summary.Duration = time.Since(start)

	// Cancellation must not lose the partial batch: persist and notify on a
	// context that survives the abort.
	doneCtx := context.WithoutCancel(ctx)
	if r.store != nil {
		if err := r.store.SaveSnapshot(doneCtx, r.inv.Assets()); err != nil {
			batchLogger.Warn("persist batch snapshot failed", logging.Args(logging.Error(err))...)
		}
	}
	if r.notifier != nil {
		if runErr != nil {
			if err := r.notifier.NotifyError(doneCtx, runErr, "generation batch "+summary.BatchID); err != nil {
				batchLogger.Warn("batch error notification failed", logging.Args(logging.Error(err))...)
			}
		}
		if err := r.notifier.NotifyBatchCompleted(doneCtx, summary.BatchID, summary.Generated, summary.Failed, summary.Duration); err != nil {
			batchLogger.Warn("batch completion notification failed", logging.Args(logging.Error(err))...)
		}
	}
	batchLogger.Info("generation batch complete",
		logging.Args(
			logging.Int("generated", summary.Generated),
			logging.Int("failed", summary.Failed),
			logging.Duration("duration", summary.Duration),
		)...)
	return summary, runErr
}

// candidates returns the assets that need generation, in display order,
// optionally limited to one category.
func (r *Runner) candidates() []inventory.Asset {
	var out []inventory.Asset
	for _, a := range r.inv.Assets() {
		if !a.Status.NeedsGeneration() {
			continue
		}
		if r.category != "" && a.Category != r.category {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (r *Runner) generateOne(ctx context.Context, a inventory.Asset) error {
	payload, err := r.synthesize(ctx, a)
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return errors.New("empty payload")
	}
	return r.writePayload(a, payload)
}

func (r *Runner) synthesize(ctx context.Context, a inventory.Asset) ([]byte, error) {
	switch a.Kind {
	case inventory.KindAudio, inventory.KindUISound:
		return r.synth.SynthesizeSpeech(ctx, a.Text, a.Lang)
	case inventory.KindImage:
		var reference []byte
		if a.ReferenceImage != "" && r.refs != nil {
			ref, err := r.refs.LoadReference(ctx, a.ReferenceImage)
			if err != nil {
				return nil, fmt.Errorf("load reference %s: %w", a.ReferenceImage, err)
			}
			reference = ref
		}
		return r.synth.GenerateImage(ctx, a.Prompt, reference)
	default:
		return nil, fmt.Errorf("unsupported asset kind %q", a.Kind)
	}
}

// writePayload stores the generated bytes under outDir, mirroring the
// content-store layout so the result can be uploaded as-is.
func (r *Runner) writePayload(a inventory.Asset, payload []byte) error {
	localPath := filepath.Join(r.outDir, filepath.FromSlash(a.RemotePath()))
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(localPath, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", localPath, err)
	}
	return nil
}
