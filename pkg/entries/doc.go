// Package entries maps user supplied entry names onto files below the
// storage root.
//
// Names use "/" between segments regardless of platform. A name without an
// extension gets the default extension appended:
//
//	bucket/prompt1   -> <root>/bucket/prompt1.md
//	a/b/c.txt        -> <root>/a/b/c.txt
//
// Lookups first try the hierarchical path and then fall back to matching a
// bare stem directly under the root, which is how entries were addressed
// before folders existed.
package entries
