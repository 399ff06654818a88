package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// importRegex matches @import "file.css"; @import 'file.css'; and @import url("file.css");
var importRegex = regexp.MustCompile(`@import\s+(?:url\s*\(\s*)?["']([^"']+)["']\s*\)?;?`)

// Theme is a theme stylesheet with its imports inlined.
type Theme struct {
	Name    string // Theme name (without .css extension)
	Path    string // File the theme was read from; empty when bundled
	CSS     string
	Bundled bool
}

// NewTheme loads a theme from a CSS file and inlines its imports.
func NewTheme(name, path string) (*Theme, error) {
	css, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Theme{
		Name: name,
		Path: path,
		CSS:  ProcessImports(string(css), filepath.Dir(path), nil),
	}, nil
}

// Resolve finds a theme by name. A file in themesDir wins over a bundled
// theme of the same name. An unknown name is an error.
func Resolve(name, themesDir string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	if themesDir != "" {
		path := filepath.Join(themesDir, name+".css")
		t, err := NewTheme(name, path)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load theme %s: %w", path, err)
		}
	}

	if css, ok := GetEmbeddedTheme(name); ok {
		return &Theme{
			Name:    name,
			CSS:     ProcessImports(css, "", nil),
			Bundled: true,
		}, nil
	}

	return nil, fmt.Errorf("theme %q not found", name)
}

// ProcessImports inlines @import statements, resolving relative paths
// against baseDir. Imports missing on disk fall back to bundled partials and
// themes. seen tracks files already inlined so cycles terminate.
func ProcessImports(css string, baseDir string, seen map[string]bool) string {
	if seen == nil {
		seen = make(map[string]bool)
	}

	return importRegex.ReplaceAllStringFunc(css, func(match string) string {
		sub := importRegex.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		importPath := sub[1]

		fullPath := importPath
		if !filepath.IsAbs(importPath) {
			fullPath = filepath.Join(baseDir, importPath)
		}

		if seen[fullPath] {
			return "/* skipped circular import: " + importPath + " */"
		}
		seen[fullPath] = true

		data, err := os.ReadFile(fullPath)
		if err != nil {
			if css, ok := embeddedImport(importPath); ok {
				return "/* bundled: " + importPath + " */\n" + ProcessImports(css, "", seen)
			}
			return "/* import failed: " + importPath + ": " + err.Error() + " */"
		}

		return "/* imported: " + importPath + " */\n" + ProcessImports(string(data), filepath.Dir(fullPath), seen)
	})
}

func embeddedImport(importPath string) (string, bool) {
	base := filepath.Base(importPath)
	if strings.HasPrefix(base, "_") {
		if css, ok := GetEmbeddedPartial(base); ok {
			return css, true
		}
	}
	return GetEmbeddedTheme(strings.TrimSuffix(base, ".css"))
}

// ThemeInfo provides basic theme information for listing.
type ThemeInfo struct {
	Name    string
	Path    string
	Bundled bool
}

// ListAvailableThemes lists bundled themes followed by user themes in
// themesDir. A user file overriding a bundled theme is reported once, with
// its path.
func ListAvailableThemes(themesDir string) ([]ThemeInfo, error) {
	var themes []ThemeInfo
	index := make(map[string]int)

	for _, name := range ListEmbeddedThemes() {
		index[name] = len(themes)
		themes = append(themes, ThemeInfo{Name: name, Bundled: true})
	}

	if themesDir == "" {
		return themes, nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return themes, nil
		}
		return themes, err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || filepath.Ext(name) != ".css" {
			continue
		}
		info := ThemeInfo{
			Name: strings.TrimSuffix(name, ".css"),
			Path: filepath.Join(themesDir, name),
		}
		if i, ok := index[info.Name]; ok {
			themes[i] = info
			continue
		}
		index[info.Name] = len(themes)
		themes = append(themes, info)
	}

	return themes, nil
}
