// Package index derives the content-hash index that joins the application's
// message catalogs with the externally supplied translation source. The
// index is built once per run from the merged reverse content map, then
// shared read-only across every locale's resolution pass.
package index

import (
	"github.com/viewbundle/viewbundle/pkg/catalogs"
	"github.com/viewbundle/viewbundle/pkg/contenthash"
)

// Index maps a normalized content hash to the set of namespace-qualified
// identifiers whose English source string produces that hash.
type Index map[string]map[string]struct{}

// Build applies the content hasher to every content key of the reverse map.
// Pure and total: hashing cannot fail, and identifier sets are carried over
// untouched, so identifiers sharing content all remain resolvable.
func Build(reverse catalogs.ReverseContentMap) Index {
	idx := make(Index, len(reverse))
	for content, keys := range reverse {
		idx[contenthash.Sum(content)] = keys
	}
	return idx
}

// Lookup returns the identifier set for a content hash, or ok=false when the
// hash is unknown to the application's catalogs.
func (idx Index) Lookup(hash string) (map[string]struct{}, bool) {
	keys, ok := idx[hash]
	return keys, ok
}
