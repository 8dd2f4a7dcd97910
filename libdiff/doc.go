// Package libdiff computes and applies structural differences between
// Arc values.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	fmt.Print(libdiff.Format(changes))
//
//	patched, err := libdiff.Apply(oldNode, changes)
//
// Dicts are compared by key and lists by index.  Differing plain or
// handler strings with the same tag produce an Edit carrying a character
// level diff; any other difference replaces the value at its path.
// Entry order within a dict is not significant.
package libdiff
