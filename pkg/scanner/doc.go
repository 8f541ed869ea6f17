// Package scanner finds the files of a source folder that can be imported
// into storage and recognises single-file skill folders.
package scanner
