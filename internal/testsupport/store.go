package testsupport

import (
	"testing"

	"playbox/internal/config"
	"playbox/internal/inventory"
)

// MustOpenStore opens an inventory.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *inventory.Store {
	t.Helper()

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("config.EnsureDirectories: %v", err)
	}
	store, err := inventory.OpenStore(cfg.InventoryDBPath())
	if err != nil {
		t.Fatalf("inventory.OpenStore: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
