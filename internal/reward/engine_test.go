package reward_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"playbox/internal/logging"
	"playbox/internal/reward"
	"playbox/internal/sticker"
)

func testPool(n int) []sticker.Sticker {
	pool := make([]sticker.Sticker, 0, n)
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		pool = append(pool, sticker.Sticker{ID: id, Name: "Sticker " + id, Image: "stickers/" + id + ".png"})
	}
	return pool
}

type memStore struct {
	saved [][]sticker.Sticker
	state []sticker.Sticker
}

func (m *memStore) Load() []sticker.Sticker { return m.state }

func (m *memStore) Save(unlocked []sticker.Sticker) error {
	cp := make([]sticker.Sticker, len(unlocked))
	copy(cp, unlocked)
	m.saved = append(m.saved, cp)
	m.state = cp
	return nil
}

type recordingSink struct {
	unlocks []sticker.Sticker
	bigs    int
}

func (r *recordingSink) StickerUnlocked(_ string, s sticker.Sticker) { r.unlocks = append(r.unlocks, s) }

func (r *recordingSink) BigRewardReached(string) { r.bigs++ }

func newTestEngine(t *testing.T, pool []sticker.Sticker, store reward.Store, sink reward.Sink) *reward.Engine {
	t.Helper()
	opts := []reward.Option{reward.WithRand(rand.New(rand.NewSource(1)))}
	if sink != nil {
		opts = append(opts, reward.WithSink(sink))
	}
	return reward.New(pool, store, opts...)
}

func TestTenAnswersUnlockExactlyOneSticker(t *testing.T) {
	store := &memStore{}
	engine := newTestEngine(t, testPool(5), store, nil)

	for i := 0; i < 9; i++ {
		if res := engine.OnCorrectAnswer(); res.Unlocked != nil || res.BigReward {
			t.Fatalf("unexpected event at answer %d: %+v", i+1, res)
		}
	}
	res := engine.OnCorrectAnswer()
	if res.Unlocked == nil {
		t.Fatal("expected sticker unlock at answer 10")
	}
	if res.BigReward {
		t.Fatal("big reward must not fire at answer 10")
	}
	if res.EventID == "" {
		t.Fatal("expected an event id on unlock")
	}
	if forSticker, _ := engine.Counters(); forSticker != 0 {
		t.Fatalf("sticker counter should reset, got %d", forSticker)
	}
	if len(engine.Unlocked()) != 1 {
		t.Fatalf("expected 1 unlocked sticker, got %d", len(engine.Unlocked()))
	}
}

func TestTwentyAnswersFireSecondStickerAndBigReward(t *testing.T) {
	sink := &recordingSink{}
	engine := newTestEngine(t, testPool(5), &memStore{}, sink)

	var bigAt int
	for i := 1; i <= 20; i++ {
		res := engine.OnCorrectAnswer()
		if res.BigReward {
			bigAt = i
			if res.Unlocked == nil {
				t.Fatalf("answer %d: big reward must coincide with a sticker unlock", i)
			}
		}
	}
	if bigAt != 20 {
		t.Fatalf("expected big reward at answer 20, got %d", bigAt)
	}
	if len(sink.unlocks) != 2 {
		t.Fatalf("expected 2 sticker unlocks, sink saw %d", len(sink.unlocks))
	}
	if sink.bigs != 1 {
		t.Fatalf("expected 1 big reward, sink saw %d", sink.bigs)
	}
}

func TestUnlockedGrowsMonotonically(t *testing.T) {
	engine := newTestEngine(t, testPool(3), &memStore{}, nil)
	prev := 0
	for i := 0; i < 100; i++ {
		engine.OnCorrectAnswer()
		if n := len(engine.Unlocked()); n < prev {
			t.Fatalf("unlocked count shrank from %d to %d", prev, n)
		} else {
			prev = n
		}
	}
}

func TestPoolExhaustionIsSilentNoOp(t *testing.T) {
	pool := testPool(1)
	sink := &recordingSink{}
	engine := newTestEngine(t, pool, &memStore{}, sink)

	for i := 0; i < 30; i++ {
		engine.OnCorrectAnswer()
	}
	if len(engine.Unlocked()) != 1 {
		t.Fatalf("expected pool of 1 fully unlocked, got %d", len(engine.Unlocked()))
	}
	if len(sink.unlocks) != 1 {
		t.Fatalf("exhausted pool must not emit unlocks, sink saw %d", len(sink.unlocks))
	}
	// Counter still resets at each threshold crossing.
	if forSticker, _ := engine.Counters(); forSticker != 0 {
		t.Fatalf("expected counter reset at answer 30, got %d", forSticker)
	}
}

func TestNoDuplicateUnlocks(t *testing.T) {
	engine := newTestEngine(t, testPool(5), &memStore{}, nil)
	for i := 0; i < 60; i++ {
		engine.OnCorrectAnswer()
	}
	seen := make(map[string]struct{})
	for _, s := range engine.Unlocked() {
		if _, ok := seen[s.ID]; ok {
			t.Fatalf("sticker %q unlocked twice", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
}

func TestEngineRestoresFromStore(t *testing.T) {
	pool := testPool(3)
	store := &memStore{state: []sticker.Sticker{pool[2], pool[0]}}
	engine := newTestEngine(t, pool, store, nil)

	restored := engine.Unlocked()
	if len(restored) != 2 || restored[0].ID != pool[2].ID || restored[1].ID != pool[0].ID {
		t.Fatalf("unexpected restored sequence: %+v", restored)
	}
	if engine.Remaining() != 1 {
		t.Fatalf("expected 1 remaining, got %d", engine.Remaining())
	}
}

func TestSaveCalledAfterEveryUnlock(t *testing.T) {
	store := &memStore{}
	engine := newTestEngine(t, testPool(5), store, nil)
	for i := 0; i < 20; i++ {
		engine.OnCorrectAnswer()
	}
	if len(store.saved) != 2 {
		t.Fatalf("expected 2 saves, got %d", len(store.saved))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.json")
	store := reward.NewFileStore(path, logging.NewNop())

	want := testPool(3)
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := reward.NewFileStore(path, logging.NewNop()).Load()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestFileStoreMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()

	missing := reward.NewFileStore(filepath.Join(dir, "absent.json"), logging.NewNop())
	if got := missing.Load(); len(got) != 0 {
		t.Fatalf("missing file should load empty, got %+v", got)
	}

	corruptPath := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corruptPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	corrupt := reward.NewFileStore(corruptPath, logging.NewNop())
	if got := corrupt.Load(); len(got) != 0 {
		t.Fatalf("corrupt file should load empty, got %+v", got)
	}
}

func TestResetClearsStateAndPersists(t *testing.T) {
	store := &memStore{}
	engine := newTestEngine(t, testPool(2), store, nil)
	for i := 0; i < 10; i++ {
		engine.OnCorrectAnswer()
	}
	engine.Reset()
	if len(engine.Unlocked()) != 0 {
		t.Fatal("expected empty collection after reset")
	}
	if len(store.saved) == 0 || len(store.saved[len(store.saved)-1]) != 0 {
		t.Fatal("reset must persist the empty sequence")
	}
}
