// Package textutil provides small text helpers shared across the repository:
// filesystem/CDN-safe sanitizers and deterministic asset key derivation.
package textutil
