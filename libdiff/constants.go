package libdiff

import "fmt"

type Op int

const (
	// Add inserts To at Path.
	Add Op = iota
	// Remove deletes the value From at Path.
	Remove
	// Replace swaps From at Path for To.
	Replace
	// Edit changes the string From at Path into To by Edits.
	Edit
)

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Replace:
		return "replace"
	case Edit:
		return "edit"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Sigil is the one character prefix used when printing a change.
func (o Op) Sigil() string {
	switch o {
	case Add:
		return "+"
	case Remove:
		return "-"
	case Replace, Edit:
		return "~"
	}
	return "?"
}
