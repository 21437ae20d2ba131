package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewbundle/viewbundle/pkg/catalogs"
	"github.com/viewbundle/viewbundle/pkg/contenthash"
	"github.com/viewbundle/viewbundle/pkg/index"
)

func TestBuildResolvesByHash(t *testing.T) {
	reverse := catalogs.NewReverseContentMap("general", catalogs.Catalog{"greeting": "Hello"})

	idx := index.Build(reverse)

	keys, ok := idx.Lookup(contenthash.Sum("Hello"))
	require.True(t, ok)
	assert.Contains(t, keys, "general.greeting")

	_, ok = idx.Lookup(contenthash.Sum("Goodbye"))
	assert.False(t, ok)
}

func TestBuildKeepsSharedContentAcrossNamespaces(t *testing.T) {
	// Identical content in two namespaces: the hash must resolve to both
	// identifiers after the reverse maps are merged.
	reverse := catalogs.NewReverseContentMap("general", catalogs.Catalog{"greeting": "Hello"})
	reverse.Merge(catalogs.NewReverseContentMap("home", catalogs.Catalog{"welcome": "Hello"}))

	idx := index.Build(reverse)

	keys, ok := idx.Lookup(contenthash.Sum("Hello"))
	require.True(t, ok)
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, "general.greeting")
	assert.Contains(t, keys, "home.welcome")
}

func TestBuildNormalizesWhitespace(t *testing.T) {
	reverse := catalogs.NewReverseContentMap("general", catalogs.Catalog{"greeting": "Hello\n  world"})

	idx := index.Build(reverse)

	_, ok := idx.Lookup(contenthash.Sum("Hello world"))
	assert.True(t, ok)
}
