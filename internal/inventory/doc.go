// Package inventory builds and tracks the declarative list of assets the
// games expect on the content store: one image per illustration prompt and
// catalog item, one narration clip per distinct display string per language,
// and the shared UI sound effects.
//
// Construction is pure and idempotent: keys derive deterministically from
// sanitized display names, so rebuilding yields stable keys across runs. The
// SQLite store persists the last audit snapshot between CLI invocations.
package inventory
