package viewbundle_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewbundle/viewbundle"
	"github.com/viewbundle/viewbundle/pkg/contenthash"
	"github.com/viewbundle/viewbundle/pkg/errors"
	"github.com/viewbundle/viewbundle/pkg/logging"
)

func inputFS() fstest.MapFS {
	return fstest.MapFS{
		"languages.yaml": &fstest.MapFile{Data: []byte("- es\n- fr\n")},
		"routes.yaml": &fstest.MapFile{
			Data: []byte(`- view: home
  template: templates/home.html
- view: old-home
  redirect: /home
- view: checkout
  template: templates/checkout.html
`),
		},
		"messages/general.yaml": &fstest.MapFile{Data: []byte("greeting: Hello\n")},
		"messages/home.yaml":    &fstest.MapFile{Data: []byte("tagline: Welcome back\n")},
		"templates/home.html":     &fstest.MapFile{Data: []byte("<html/>")},
		"templates/checkout.html": &fstest.MapFile{Data: []byte("<html/>")},
		"translations/es.yaml": &fstest.MapFile{
			Data: []byte(fmt.Sprintf("%s: Hola\n", contenthash.Sum("Hello"))),
		},
		// no translations/fr.yaml: French falls back to English entirely
	}
}

func generate(t *testing.T, fsys fstest.MapFS) (string, error) {
	t.Helper()
	outDir := t.TempDir()

	p, err := viewbundle.New(
		viewbundle.WithFS(fsys),
		viewbundle.WithLogger(&logging.Nop),
	)
	require.NoError(t, err)

	return outDir, p.Generate(outDir)
}

func readBundle(t *testing.T, outDir, view string) map[string]map[string]string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outDir, view+".json"))
	require.NoError(t, err)

	var b map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &b))
	return b
}

func TestGenerateEndToEnd(t *testing.T) {
	outDir, err := generate(t, inputFS())
	require.NoError(t, err)

	checkout := readBundle(t, outDir, "checkout")
	assert.Equal(t, "Hola", checkout["es"]["greeting"])
	assert.Equal(t, "Hello", checkout["fr"]["greeting"])

	home := readBundle(t, outDir, "home")
	assert.Equal(t, "Hola", home["es"]["greeting"])
	assert.Equal(t, "Welcome back", home["es"]["tagline"]) // no Spanish match
}

func TestGenerateExcludesRedirects(t *testing.T) {
	outDir, err := generate(t, inputFS())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(outDir, "old-home.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateEveryKeyEveryLocale(t *testing.T) {
	outDir, err := generate(t, inputFS())
	require.NoError(t, err)

	home := readBundle(t, outDir, "home")
	for _, locale := range []string{"es", "fr"} {
		require.Contains(t, home, locale)
		assert.Len(t, home[locale], 2)
		for id, value := range home[locale] {
			assert.NotEmpty(t, value, "locale %s id %s", locale, id)
		}
	}
}

func TestGenerateAssetOverlay(t *testing.T) {
	fsys := inputFS()
	fsys["assets/home.yaml"] = &fstest.MapFile{
		Data: []byte("hero.image: https://cdn.example.com/hero.png\n"),
	}
	fsys["assets/overrides.yaml"] = &fstest.MapFile{
		Data: []byte("home:\n  es:\n    hero.image: https://cdn.example.com/es/hero.png\n"),
	}

	outDir, err := generate(t, fsys)
	require.NoError(t, err)

	home := readBundle(t, outDir, "home")
	assert.Equal(t, "https://cdn.example.com/es/hero.png", home["es"]["hero.image"])
	assert.Equal(t, "https://cdn.example.com/hero.png", home["fr"]["hero.image"])
}

func TestGenerateUnresolvableViewAborts(t *testing.T) {
	fsys := inputFS()
	// checkout has no per-view catalog; removing its template makes it
	// neither a redirect nor resolvable.
	delete(fsys, "templates/checkout.html")

	outDir, err := generate(t, fsys)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrViewUnresolvable))

	// All-or-nothing: the failure happens during catalog loading, before
	// any bundle is composed.
	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGenerateBrokenAssetCatalogLeavesNoOutput(t *testing.T) {
	fsys := inputFS()
	// checkout comes after home in the manifest; its asset catalog failing
	// to parse must abort before any bundle is composed, not after home's
	// bundle was already written.
	fsys["assets/checkout.yaml"] = &fstest.MapFile{Data: []byte("logo: [unclosed\n")}

	outDir, err := generate(t, fsys)

	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))

	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGenerateAssetsDirOption(t *testing.T) {
	fsys := inputFS()
	fsys["static/home.yaml"] = &fstest.MapFile{
		Data: []byte("logo: https://cdn.example.com/logo.svg\n"),
	}

	outDir := t.TempDir()
	p, err := viewbundle.New(
		viewbundle.WithFS(fsys),
		viewbundle.WithAssetsDir("static"),
		viewbundle.WithLogger(&logging.Nop),
	)
	require.NoError(t, err)
	require.NoError(t, p.Generate(outDir))

	home := readBundle(t, outDir, "home")
	assert.Equal(t, "https://cdn.example.com/logo.svg", home["es"]["logo"])
}

func TestGenerateSchemaErrorAborts(t *testing.T) {
	fsys := inputFS()
	fsys["messages/general.yaml"] = &fstest.MapFile{Data: []byte("greeting: [1, 2]\n")}

	_, err := generate(t, fsys)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidSchema))
}

func TestGenerateMissingGeneralCatalogFatal(t *testing.T) {
	fsys := inputFS()
	delete(fsys, "messages/general.yaml")

	_, err := generate(t, fsys)

	require.Error(t, err)
	var ioErr *errors.IOError
	assert.True(t, errors.As(err, &ioErr))
}
