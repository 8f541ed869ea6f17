// Package filesystem provides filesystem implementations for promptpaste.
//
// This package contains implementations of the types.FS interface,
// the standard OS filesystem and an afero-backed one used by tests, plus
// the helpers every component shares: metadata-preserving copies,
// existence checks and a recursive walk that only relies on types.FS.
package filesystem
