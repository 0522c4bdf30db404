// Package driver owns the main search loop (spec.md §4.9), the
// objective-only fast path (§4.10), and the external terminate/
// best-objective-publish handshakes the concurrency model describes
// (§5). Everything else (model, preprocess, search, score, neighbor,
// weight, restart) is read or invoked by Solver but never imported back.
package driver
