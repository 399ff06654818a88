// Package core implements the selection engine: label assignment, label
// geometry, and keypress resolution.
package core

// Alphabet is the fixed set of label symbols.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Label returns the label for the window at index i in the ordered window list.
// Labels wrap after len(Alphabet) entries, so they are not unique for longer lists.
func Label(i int) string {
	return string(Alphabet[i%len(Alphabet)])
}

