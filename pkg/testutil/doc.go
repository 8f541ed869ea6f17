// Package testutil provides utilities for testing promptpaste components.
//
// Key components:
//   - TestEnvironment: a storage root plus a source tree, in memory or on disk
//   - ScriptedPrompter: replays canned answers and records the questions asked
//
// Most tests should use EnvMemoryOnly. EnvIsolated exists for code that
// must touch the real filesystem (metadata preservation, the CLI).
package testutil
