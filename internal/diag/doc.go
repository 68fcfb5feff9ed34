// Package diag defines the diagnostic model shared by the driver and the CLI.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string form
// (LEX1001, IO4001, ...), a short message and the primary source.Span. Notes
// add secondary context and should say something the message does not.
//
// Producers report through a Reporter; BagReporter collects into a Bag that
// sorts deterministically and honours a limit. Rendering lives in
// internal/diagfmt; this package does no IO.
package diag
