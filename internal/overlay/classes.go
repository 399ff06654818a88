package overlay

import (
	"sync"

	"github.com/jmylchreest/easyfocus/internal/config"
	"github.com/jmylchreest/easyfocus/internal/model"
)

// CSS classes set on overlay widgets.
const (
	classWindow  = "easyfocus"
	classHint    = "hint"
	classFocused = "focused"
)

// colorSchemeClass returns "light" or "dark" for the configured scheme,
// deferring to the system preference for "system".
func colorSchemeClass(scheme string, systemDark bool) string {
	switch config.ColorScheme(scheme) {
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeDark:
		return "dark"
	default:
		if systemDark {
			return "dark"
		}
		return "light"
	}
}

// hintClasses returns the CSS classes for a hint label.
func hintClasses(h model.Hint) []string {
	if h.Window.Focused {
		return []string{classHint, classFocused}
	}
	return []string{classHint}
}

// monitorIndex returns the index of the connector matching output, or -1.
func monitorIndex(connectors []string, output string) int {
	for i, c := range connectors {
		if c == output {
			return i
		}
	}
	return -1
}

// firstKey records the first key press and ignores the rest.
type firstKey struct {
	once sync.Once
	name string
	got  bool
}

// accept stores name if no key was recorded yet and reports whether it did.
func (f *firstKey) accept(name string) bool {
	accepted := false
	f.once.Do(func() {
		f.name = name
		f.got = true
		accepted = true
	})
	return accepted
}
