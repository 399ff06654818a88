// Package theme builds the overlay stylesheet.
//
// The stylesheet has two parts: a block generated from the [style] and
// [label] configuration, which defines named colors and the base hint rule,
// and a theme file that decorates hints using those colors. Themes are
// bundled (embedded) or read from $XDG_CONFIG_HOME/easyfocus/themes/, where a
// file with a bundled theme's name overrides it.
package theme
