// Package importer copies a whole source folder into storage as a new
// entry folder, asking once for confirmation and resolving name collisions
// file by file.
package importer
