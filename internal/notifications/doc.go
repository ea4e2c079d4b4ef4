// Package notifications delivers push notifications via pluggable notifiers.
//
// The default implementation publishes to ntfy using the topic configured in
// config.toml and gracefully degrades to a no-op when notifications are
// disabled. The Service methods cover the reward and generation milestones so
// callers can emit consistent, user-friendly messages without duplicating
// HTTP glue.
package notifications
