// Package logging builds the slog loggers used across playbox.
//
// Two output formats are supported: a human-oriented console format with a
// component prefix and key=value attributes, and line-delimited JSON for log
// collection. Components obtain child loggers via NewComponentLogger so every
// record carries a component attribute.
package logging
