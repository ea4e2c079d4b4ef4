// Package reconcile checks the expected-asset inventory against the content
// store. Probes fan out concurrently with a bounded limit and the results
// land in one atomic merge, so observers never see a half-applied audit.
package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"playbox/internal/inventory"
	"playbox/internal/logging"
)

// DefaultProbeLimit bounds concurrent existence probes when the config does
// not say otherwise.
const DefaultProbeLimit = 16

// Prober answers whether an asset is present on the content store.
// Implementations must fail open: any doubt reads as absent.
type Prober interface {
	Exists(ctx context.Context, a inventory.Asset) bool
}

// Snapshotter persists the post-audit inventory state.
type Snapshotter interface {
	SaveSnapshot(ctx context.Context, assets []inventory.Asset) error
}

// Result summarizes one reconciliation run.
type Result struct {
	Total    int
	Exists   int
	Pending  int
	Duration time.Duration
}

// Reconciler drives the existence-check phase.
type Reconciler struct {
	inv    *inventory.Inventory
	prober Prober
	store  Snapshotter
	limit  int
	logger *slog.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithSnapshotter persists the audit result after each run.
func WithSnapshotter(store Snapshotter) Option {
	return func(r *Reconciler) { r.store = store }
}

// WithProbeLimit bounds concurrent probes. Non-positive keeps the default.
func WithProbeLimit(limit int) Option {
	return func(r *Reconciler) {
		if limit > 0 {
			r.limit = limit
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a reconciler over the inventory.
func New(inv *inventory.Inventory, prober Prober, opts ...Option) *Reconciler {
	r := &Reconciler{
		inv:    inv,
		prober: prober,
		limit:  DefaultProbeLimit,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "reconcile")
	return r
}

// Run probes every asset and applies the results in one merge. The run
// completes even when the store is fully unreachable; unreachable assets
// end pending, never stuck checking.
func (r *Reconciler) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	assets := r.inv.Assets()
	r.inv.MarkAllChecking()

	r.logger.Info("existence check started",
		logging.Args(logging.Int("assets", len(assets)), logging.Int("probe_limit", r.limit))...)

	var mu sync.Mutex
	results := make(map[string]bool, len(assets))

	g, probeCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for _, a := range assets {
		g.Go(func() error {
			exists := r.prober.Exists(probeCtx, a)
			mu.Lock()
			results[a.Key] = exists
			mu.Unlock()
			return nil
		})
	}
	// Probes never return errors; Wait only joins the group.
	_ = g.Wait()

	r.inv.ApplyProbeResults(results)

	result := Result{Total: len(assets), Duration: time.Since(start)}
	for _, exists := range results {
		if exists {
			result.Exists++
		} else {
			result.Pending++
		}
	}

	if r.store != nil {
		if err := r.store.SaveSnapshot(ctx, r.inv.Assets()); err != nil {
			r.logger.Warn("persist audit snapshot failed",
				logging.Args(logging.Error(err))...)
		}
	}

	r.logger.Info("existence check complete",
		logging.Args(
			logging.Int("exists", result.Exists),
			logging.Int("pending", result.Pending),
			logging.Duration("duration", result.Duration),
		)...)
	return result, nil
}
