// Package main hosts the playbox CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the sticker collection, the reward
// engine, and the asset inventory pipeline: existence checks against the
// content store, batch generation of missing assets, and local downloads. It
// centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
