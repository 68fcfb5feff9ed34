// Package trace records what realign is doing while it runs.
//
// Tracing is enabled from the command line:
//
//	realign align --trace=- --trace-level=detail ./src
//
// Events are spans (begin/end pairs) and points. Each carries a scope:
//
//   - ScopeDriver: one run over the requested paths
//   - ScopePass: load, align and write phases
//   - ScopeFile: one source file
//   - ScopeBlock: aligner internals such as degraded runs
//
// The level picks the finest scope that is written; LevelDebug writes all.
// Tracers travel through the driver in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", parent)
//	defer span.End(path)
package trace
