// Package types defines the core interfaces shared across promptpaste.
// This includes the FS abstraction every component performs its I/O through,
// the Prompter capability used for interactive questions, and the Rules that
// govern naming, eligibility and merging of stored entries.
package types
