package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessImports_NoImports(t *testing.T) {
	css := `label.hint { color: red; }`
	assert.Equal(t, css, ProcessImports(css, "", nil))
}

func TestProcessImports_FileImport(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "_custom.css"), []byte(`@define-color accent #ff0000;`), 0644))

	result := ProcessImports("@import \"_custom.css\";\nlabel.hint { color: @accent; }", tmpDir, nil)

	assert.Contains(t, result, "/* imported: _custom.css */")
	assert.Contains(t, result, "@define-color accent #ff0000")
	assert.Contains(t, result, "label.hint")
}

func TestProcessImports_Syntaxes(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.css"), []byte(".a {}"), 0644))

	for _, stmt := range []string{`@import "a.css";`, `@import 'a.css';`, `@import url("a.css");`} {
		result := ProcessImports(stmt, tmpDir, nil)
		assert.Contains(t, result, ".a {}", stmt)
		assert.NotContains(t, result, "@import", stmt)
	}
}

func TestProcessImports_NestedImports(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "_grandchild.css"), []byte(".grandchild { color: blue; }"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "_child.css"), []byte("@import \"_grandchild.css\";\n.child { color: green; }"), 0644))

	result := ProcessImports("@import \"_child.css\";\n.main { color: red; }", tmpDir, nil)

	assert.Contains(t, result, "/* imported: _child.css */")
	assert.Contains(t, result, "/* imported: _grandchild.css */")
	assert.Contains(t, result, ".grandchild")
	assert.Contains(t, result, ".child")
	assert.Contains(t, result, ".main")
}

func TestProcessImports_CircularImport(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.css"), []byte("@import \"b.css\";\n.a {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.css"), []byte("@import \"a.css\";\n.b {}"), 0644))

	result := ProcessImports(`@import "a.css";`, tmpDir, nil)

	assert.Contains(t, result, ".a {}")
	assert.Contains(t, result, ".b {}")
	assert.Contains(t, result, "skipped circular import")
}

func TestProcessImports_EmbeddedFallback(t *testing.T) {
	result := ProcessImports(`@import "_base.css";`, t.TempDir(), nil)
	assert.Contains(t, result, "/* bundled: _base.css */")
	assert.Contains(t, result, "border-radius")
}

func TestProcessImports_MissingFile(t *testing.T) {
	result := ProcessImports(`@import "missing.css";`, t.TempDir(), nil)
	assert.Contains(t, result, "/* import failed: missing.css")
}

func TestResolve_Bundled(t *testing.T) {
	th, err := Resolve("default", t.TempDir())
	require.NoError(t, err)
	assert.True(t, th.Bundled)
	assert.Empty(t, th.Path)
	// The partial is inlined.
	assert.Contains(t, th.CSS, "border-radius")
	assert.NotContains(t, th.CSS, "@import")
}

func TestResolve_EmptyNameIsDefault(t *testing.T) {
	th, err := Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeName, th.Name)
}

func TestResolve_UserOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.css")
	require.NoError(t, os.WriteFile(path, []byte("label.hint { color: pink; }"), 0644))

	th, err := Resolve("default", dir)
	require.NoError(t, err)
	assert.False(t, th.Bundled)
	assert.Equal(t, path, th.Path)
	assert.Equal(t, "label.hint { color: pink; }", th.CSS)
}

func TestResolve_UserImportsBundledPartial(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.css"), []byte("@import \"_base.css\";\nlabel.hint { color: pink; }"), 0644))

	th, err := Resolve("mine", dir)
	require.NoError(t, err)
	assert.Contains(t, th.CSS, "border-radius")
	assert.Contains(t, th.CSS, "color: pink")
}

func TestResolve_NotFound(t *testing.T) {
	_, err := Resolve("nope", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListAvailableThemes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "outline.css"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "neon.css"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_partial.css"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(""), 0644))

	themes, err := ListAvailableThemes(dir)
	require.NoError(t, err)

	byName := make(map[string]ThemeInfo)
	for _, th := range themes {
		byName[th.Name] = th
	}
	require.Len(t, byName, 3)
	assert.True(t, byName["default"].Bundled)
	assert.False(t, byName["outline"].Bundled)
	assert.Equal(t, filepath.Join(dir, "outline.css"), byName["outline"].Path)
	assert.Equal(t, filepath.Join(dir, "neon.css"), byName["neon"].Path)
}

func TestListAvailableThemes_MissingDir(t *testing.T) {
	themes, err := ListAvailableThemes(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Len(t, themes, len(BundledThemes))
}
