package reward

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"playbox/internal/logging"
	"playbox/internal/sticker"
)

// Default thresholds: one sticker every 10 correct answers, a full-screen
// celebration every 20. At 20 both fire from the same answer.
const (
	DefaultStickerThreshold   = 10
	DefaultBigRewardThreshold = 20
)

// Sink receives reward events as they happen. The engine calls it
// synchronously; implementations bound their own delivery time.
type Sink interface {
	StickerUnlocked(eventID string, s sticker.Sticker)
	BigRewardReached(eventID string)
}

// Result describes what a single correct answer triggered.
type Result struct {
	EventID   string
	Unlocked  *sticker.Sticker
	BigReward bool
}

// Engine is the reward state machine. Not safe for concurrent use; the
// callers (game UI loop, CLI) are single-threaded by construction.
type Engine struct {
	pool   []sticker.Sticker
	store  Store
	sink   Sink
	rng    *rand.Rand
	logger *slog.Logger

	stickerThreshold int
	bigThreshold     int

	unlocked          []sticker.Sticker
	unlockedIDs       map[string]struct{}
	correctForSticker int
	correctForBig     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSink registers an event sink.
func WithSink(sink Sink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithRand overrides the random source used to pick stickers.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithThresholds overrides the unlock thresholds. Non-positive values keep
// the defaults.
func WithThresholds(stickerEvery, bigEvery int) Option {
	return func(e *Engine) {
		if stickerEvery > 0 {
			e.stickerThreshold = stickerEvery
		}
		if bigEvery > 0 {
			e.bigThreshold = bigEvery
		}
	}
}

// WithLogger attaches a logger; a component child is derived from it.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New builds an engine over the given sticker pool, restoring previously
// unlocked stickers from the store. Counters always start at zero: progress
// toward the next reward is per-session, only the collection is durable.
func New(pool []sticker.Sticker, store Store, opts ...Option) *Engine {
	e := &Engine{
		pool:             pool,
		store:            store,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:           logging.NewNop(),
		stickerThreshold: DefaultStickerThreshold,
		bigThreshold:     DefaultBigRewardThreshold,
		unlockedIDs:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "reward")

	if store != nil {
		for _, s := range store.Load() {
			if _, ok := e.unlockedIDs[s.ID]; ok {
				continue
			}
			e.unlockedIDs[s.ID] = struct{}{}
			e.unlocked = append(e.unlocked, s)
		}
	}
	return e
}

// OnCorrectAnswer advances both counters and fires whichever threshold
// events the new counts reach. The sticker and big-reward checks are
// independent; one answer can trigger both.
func (e *Engine) OnCorrectAnswer() Result {
	e.correctForSticker++
	e.correctForBig++

	var result Result

	if e.correctForSticker >= e.stickerThreshold {
		e.correctForSticker = 0
		if s, ok := e.unlockRandom(); ok {
			result.Unlocked = &s
		}
	}

	if e.correctForBig >= e.bigThreshold {
		e.correctForBig = 0
		result.BigReward = true
	}

	if result.Unlocked != nil || result.BigReward {
		result.EventID = uuid.NewString()
		e.emit(result)
	}
	return result
}

// unlockRandom appends a uniformly chosen sticker from the remaining pool.
// An exhausted pool is a defined no-op, not an error.
func (e *Engine) unlockRandom() (sticker.Sticker, bool) {
	var remaining []sticker.Sticker
	for _, s := range e.pool {
		if _, ok := e.unlockedIDs[s.ID]; !ok {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == 0 {
		e.logger.Debug("sticker pool exhausted, counter reset without unlock")
		return sticker.Sticker{}, false
	}

	chosen := remaining[e.rng.Intn(len(remaining))]
	e.unlockedIDs[chosen.ID] = struct{}{}
	e.unlocked = append(e.unlocked, chosen)
	e.persist()
	return chosen, true
}

func (e *Engine) emit(result Result) {
	if result.Unlocked != nil {
		e.logger.Info("sticker unlocked",
			logging.Args(
				logging.String("sticker_id", result.Unlocked.ID),
				logging.String("event_id", result.EventID),
				logging.Int("collected", len(e.unlocked)),
				logging.Int("pool", len(e.pool)),
			)...)
		if e.sink != nil {
			e.sink.StickerUnlocked(result.EventID, *result.Unlocked)
		}
	}
	if result.BigReward {
		e.logger.Info("big reward reached",
			logging.Args(logging.String("event_id", result.EventID))...)
		if e.sink != nil {
			e.sink.BigRewardReached(result.EventID)
		}
	}
}

func (e *Engine) persist() {
	if e.store == nil {
		return
	}
	if err := e.store.Save(e.Unlocked()); err != nil {
		e.logger.Warn("persist reward state failed",
			logging.Args(logging.Error(err))...)
	}
}

// Unlocked returns the unlock sequence in unlock order.
func (e *Engine) Unlocked() []sticker.Sticker {
	out := make([]sticker.Sticker, len(e.unlocked))
	copy(out, e.unlocked)
	return out
}

// Remaining reports how many stickers are still locked.
func (e *Engine) Remaining() int {
	return len(e.pool) - len(e.unlocked)
}

// Counters reports session progress toward the next sticker and big reward.
func (e *Engine) Counters() (forSticker, forBigReward int) {
	return e.correctForSticker, e.correctForBig
}

// Reset clears the collection and counters and persists the empty state.
func (e *Engine) Reset() {
	e.unlocked = nil
	e.unlockedIDs = make(map[string]struct{})
	e.correctForSticker = 0
	e.correctForBig = 0
	e.persist()
}
