// Package diag defines the diagnostic record model shared by the log
// parser, the rebuild orchestrator and the rendering layers.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures for compiler
//     findings extracted from a raw build log.
//   - Stay free of formatting, IO and CLI concerns: rendering lives in
//     internal/diagfmt, extraction in internal/logparse, orchestration in
//     internal/rebuild.
//
// # Data model
//
// Record is the central type. It carries the file path exactly as the
// compiler wrote it (never resolved against the filesystem), a 1-based
// line and a 1-based visual column, a Severity, and the message text.
// The column counts display cells after tab expansion, not bytes, so
// renderers must expand tabs consistently when aligning markers.
//
// Keep the model deterministic: new fields must remain plain data so the
// records can be cached and compared in tests.
package diag
