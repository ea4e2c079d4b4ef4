package inventory_test

import (
	"strings"
	"testing"

	"playbox/internal/inventory"
)

func TestBuildIsDeterministic(t *testing.T) {
	first := inventory.Build().Assets()
	second := inventory.Build().Assets()
	if len(first) == 0 {
		t.Fatal("expected assets from production catalogs")
	}
	if len(first) != len(second) {
		t.Fatalf("asset counts differ across builds: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key != second[i].Key || first[i].Status != second[i].Status {
			t.Fatalf("asset %d differs across builds: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBuildStartsEverythingChecking(t *testing.T) {
	for _, a := range inventory.Build().Assets() {
		if a.Status != inventory.StatusChecking {
			t.Fatalf("asset %q built with status %q", a.Key, a.Status)
		}
	}
}

func TestBuildKeysAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, a := range inventory.Build().Assets() {
		if _, ok := seen[a.Key]; ok {
			t.Fatalf("duplicate asset key %q", a.Key)
		}
		seen[a.Key] = struct{}{}
	}
}

func TestNarrationDedupIsCaseInsensitive(t *testing.T) {
	// "Apple" appears as a shop item name; there must be exactly one English
	// narration clip for it regardless of casing in the catalogs.
	count := 0
	for _, a := range inventory.Build().Assets() {
		if a.Kind == inventory.KindAudio && a.Lang == "en" &&
			strings.EqualFold(a.Text, "apple") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one 'apple' clip, got %d", count)
	}
}

func TestUISoundsCarryExplicitSubfolder(t *testing.T) {
	inv := inventory.Build()
	a, ok := inv.Get("sticker_unlock_en")
	if !ok {
		t.Fatal("expected sticker_unlock_en asset")
	}
	if a.Kind != inventory.KindUISound {
		t.Fatalf("unexpected kind %q", a.Kind)
	}
	if a.Category != inventory.CategoryEffects {
		t.Fatalf("explicit subfolder must route to effects, got %q", a.Category)
	}
	if a.Subfolder != "audio/effects" {
		t.Fatalf("unexpected subfolder %q", a.Subfolder)
	}
}

func TestRouteAudioPriorityOrder(t *testing.T) {
	set := func(texts ...string) map[string]struct{} {
		m := make(map[string]struct{})
		for _, s := range texts {
			m[strings.ToLower(s)] = struct{}{}
		}
		return m
	}
	sets := inventory.RoutingSets{
		Shop:       set("apple", "shared phrase"),
		Science:    set("magnet", "shared phrase"),
		Restaurant: set("pancakes"),
		Cooking:    set("stir the pot"),
		Words:      set("cat"),
	}

	tests := []struct {
		name      string
		text      string
		subfolder string
		want      string
	}{
		{"explicit subfolder wins", "apple", "effects", "effects"},
		{"shop membership", "Apple", "", inventory.CategoryShop},
		{"ambiguous text routes to earlier domain", "Shared Phrase", "", inventory.CategoryShop},
		{"science membership", "magnet", "", inventory.CategoryScience},
		{"words membership", "cat", "", inventory.CategoryWords},
		{"catch-all", "mystery sound", "", inventory.CategoryEffects},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.RouteAudio(tc.text, tc.subfolder, sets)
			if got != tc.want {
				t.Fatalf("RouteAudio(%q, %q) = %q, want %q", tc.text, tc.subfolder, got, tc.want)
			}
			// Routing must be stable across repeated calls.
			if again := inventory.RouteAudio(tc.text, tc.subfolder, sets); again != got {
				t.Fatalf("routing not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestApplyProbeResultsLeavesNoChecking(t *testing.T) {
	inv := inventory.NewFromAssets([]inventory.Asset{
		{Key: "a", Name: "A", Kind: inventory.KindImage},
		{Key: "b", Name: "B", Kind: inventory.KindImage},
	})
	inv.MarkAllChecking()
	inv.ApplyProbeResults(map[string]bool{"a": true, "b": false})

	a, _ := inv.Get("a")
	if a.Status != inventory.StatusExists {
		t.Fatalf("expected exists, got %q", a.Status)
	}
	b, _ := inv.Get("b")
	if b.Status != inventory.StatusPending {
		t.Fatalf("expected pending, got %q", b.Status)
	}
}

func TestApplySnapshotSkipsTransientStates(t *testing.T) {
	inv := inventory.NewFromAssets([]inventory.Asset{
		{Key: "a", Name: "A", Kind: inventory.KindImage},
		{Key: "b", Name: "B", Kind: inventory.KindImage},
	})
	inv.ApplySnapshot([]inventory.SnapshotRow{
		{Key: "a", Status: inventory.StatusExists},
		{Key: "b", Status: inventory.StatusLoading},
		{Key: "gone", Status: inventory.StatusError},
	})
	a, _ := inv.Get("a")
	if a.Status != inventory.StatusExists {
		t.Fatalf("expected snapshot applied, got %q", a.Status)
	}
	b, _ := inv.Get("b")
	if b.Status != inventory.StatusChecking {
		t.Fatalf("transient snapshot state must not restore, got %q", b.Status)
	}
}

func TestAssetsSortedByDisplayName(t *testing.T) {
	assets := inventory.Build().Assets()
	for i := 1; i < len(assets); i++ {
		if assets[i-1].Name > assets[i].Name {
			t.Fatalf("assets not sorted: %q before %q", assets[i-1].Name, assets[i].Name)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if status, ok := inventory.ParseStatus(" Pending "); !ok || status != inventory.StatusPending {
		t.Fatalf("ParseStatus failed: %q %v", status, ok)
	}
	if _, ok := inventory.ParseStatus("nonsense"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
}
