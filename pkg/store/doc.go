// Package store is the entry point to a promptpaste storage root.
//
// Saving dispatches on what the source is:
//
//	file                         -> copy, resolving name collisions
//	folder holding only SKILL.md -> copy SKILL.md as <folder>.md
//	folder already in storage    -> merge into it
//	any other folder             -> import as a new entry folder
//
// Plan computes that decision without side effects so it can be inspected
// and tested on its own. Reading, listing and removing entries live here
// as well.
package store
