// Package translations loads the externally supplied translation source and
// resolves it against the application's own identifiers.
//
// The source is produced upstream from a gettext-style catalog and is keyed
// by the content hash of the original (source-language) string, not by the
// application's message identifiers. Resolution therefore goes through the
// content-hash index; entries whose hash matches nothing are silently
// skipped, since the translation source is expected to lag the catalogs.
package translations

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/viewbundle/viewbundle/pkg/errors"
	"github.com/viewbundle/viewbundle/pkg/index"
)

// Source holds one locale's translation entries: content hash of the
// original string to translated string.
type Source map[string]string

// Delta is one locale's resolved translations: namespace-qualified
// identifier to translated string. Identifiers without a matched
// translation are absent, never present with an empty or marker value;
// English fallback happens later, at bundle composition.
type Delta map[string]string

// LoadSource reads a locale's translation source file. A missing file is
// acceptable (the upstream exporter may not have produced that locale yet)
// and yields found=false with an empty source.
func LoadSource(fsys fs.FS, path string) (Source, bool, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.WrapIO("read", path, err)
	}

	var source Source
	if err := yaml.Unmarshal(data, &source); err != nil {
		return nil, false, errors.WrapParse("yaml", path, err)
	}
	return source, true, nil
}

// ResolveLocale produces a locale's delta by joining the source's hashes
// through the index. A single source entry populates every identifier that
// shares the original content. The English source strings are never
// consulted here; the resolver only reports what matched.
func ResolveLocale(idx index.Index, source Source) Delta {
	delta := make(Delta)
	for hash, translated := range source {
		keys, ok := idx.Lookup(hash)
		if !ok {
			continue // stale or unextracted entry, expected
		}
		for key := range keys {
			delta[key] = translated
		}
	}
	return delta
}
