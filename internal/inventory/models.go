package inventory

import (
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// Kind distinguishes the asset variants.
type Kind string

const (
	KindImage   Kind = "image"
	KindAudio   Kind = "audio"
	KindUISound Kind = "ui_sound"
)

// Status represents the lifecycle of an inventory asset.
type Status string

const (
	// StatusChecking means an existence probe is in flight.
	StatusChecking Status = "checking"
	// StatusPending means the asset is absent from the content store.
	StatusPending Status = "pending"
	// StatusLoading means a generation call is in flight.
	StatusLoading Status = "loading"
	// StatusGenerated means generation produced a payload this run.
	StatusGenerated Status = "generated"
	// StatusExists means the asset is already on the content store.
	StatusExists Status = "exists"
	// StatusError means the last generation attempt failed; retryable.
	StatusError Status = "error"
)

var allStatuses = []Status{
	StatusChecking,
	StatusPending,
	StatusLoading,
	StatusGenerated,
	StatusExists,
	StatusError,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// IsTerminalSuccess reports whether a status needs no further work.
func (s Status) IsTerminalSuccess() bool {
	return s == StatusExists || s == StatusGenerated
}

// NeedsGeneration reports whether the asset is eligible for a generation
// batch. Errored assets stay eligible so a later batch can retry them.
func (s Status) NeedsGeneration() bool {
	return s == StatusPending || s == StatusError
}

// Asset is one expected file on the content store.
type Asset struct {
	Key       string
	Name      string
	Kind      Kind
	Category  string
	Subfolder string
	FileName  string
	Status    Status
	Error     string

	// Image fields.
	Prompt         string
	ReferenceImage string

	// Audio fields.
	Lang string
	Text string
}

// RemotePath is the content-store path relative to the CDN base URL.
func (a Asset) RemotePath() string {
	return path.Join(a.Subfolder, a.FileName)
}

// Inventory is the key-to-asset map plus the single mutation path all
// status updates go through.
type Inventory struct {
	mu     sync.Mutex
	assets map[string]*Asset
}

// Get returns a copy of the asset for key.
func (inv *Inventory) Get(key string) (Asset, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	a, ok := inv.assets[key]
	if !ok {
		return Asset{}, false
	}
	return *a, true
}

// Len reports the number of tracked assets.
func (inv *Inventory) Len() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.assets)
}

// Assets returns copies of all assets sorted by display name, the order
// generation batches process them in.
func (inv *Inventory) Assets() []Asset {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]Asset, 0, len(inv.assets))
	for _, a := range inv.assets {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// ByCategory returns the assets routed to one display category, sorted by
// display name.
func (inv *Inventory) ByCategory(category string) []Asset {
	var out []Asset
	for _, a := range inv.Assets() {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// Categories returns the distinct categories present, sorted.
func (inv *Inventory) Categories() []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	seen := make(map[string]struct{})
	for _, a := range inv.assets {
		seen[a.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// MarkAllChecking moves every asset into the checking state ahead of a
// reconciliation run.
func (inv *Inventory) MarkAllChecking() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, a := range inv.assets {
		a.Status = StatusChecking
		a.Error = ""
	}
}

// ApplyProbeResults merges a full set of existence results in one update.
// Keys absent from results stay untouched; probed assets land in exists or
// pending, never checking.
func (inv *Inventory) ApplyProbeResults(results map[string]bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for key, exists := range results {
		a, ok := inv.assets[key]
		if !ok {
			continue
		}
		if exists {
			a.Status = StatusExists
		} else {
			a.Status = StatusPending
		}
		a.Error = ""
	}
}

// SetStatus updates one asset's status and error message.
func (inv *Inventory) SetStatus(key string, status Status, errMsg string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if a, ok := inv.assets[key]; ok {
		a.Status = status
		a.Error = errMsg
	}
}

// ApplySnapshot overlays persisted statuses onto freshly built assets.
// Unknown keys (removed catalog entries) are ignored; transient states are
// not restored.
func (inv *Inventory) ApplySnapshot(rows []SnapshotRow) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, row := range rows {
		a, ok := inv.assets[row.Key]
		if !ok {
			continue
		}
		if row.Status == StatusChecking || row.Status == StatusLoading {
			continue
		}
		a.Status = row.Status
		a.Error = row.Error
	}
}

// SnapshotRow is one persisted audit record.
type SnapshotRow struct {
	Key       string
	Status    Status
	Error     string
	CheckedAt time.Time
}
