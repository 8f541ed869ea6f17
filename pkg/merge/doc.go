// Package merge folds a source folder into an existing entry folder of the
// same name.
//
// Files new to the target are copied. Files present on both sides are
// prepend-merged: the new content, a separator, then the old content. No
// content is ever discarded, so duplicates have to be cleaned up by hand.
package merge
