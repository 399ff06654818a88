package core

// Resolve maps a key name to an index into an ordered window list of length n.
// It returns ok=false when the key does not select a window: names that are not
// a single character, characters outside 'a'..'z', and indices past the end of
// the list.
//
// No modulo is applied here. With more than len(Alphabet) windows, labels wrap
// on screen but only the first len(Alphabet) windows are reachable.
func Resolve(key string, n int) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}

	c := key[0]
	if c < 'a' || c > 'z' {
		return 0, false
	}

	index := int(c - 'a')
	if index >= n {
		return 0, false
	}
	return index, true
}
