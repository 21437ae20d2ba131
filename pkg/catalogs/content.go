package catalogs

// ContentMap maps namespace-qualified identifiers to their English source
// content (the forward direction of the id↔content mapping).
type ContentMap map[string]string

// NewContentMap builds the forward map for one namespace's catalog, one
// entry per catalog key, keyed by "<namespace>.<id>".
func NewContentMap(namespace string, catalog Catalog) ContentMap {
	m := make(ContentMap, len(catalog))
	for id, content := range catalog {
		m[Key(namespace, id)] = content
	}
	return m
}

// ReverseContentMap maps string content to the set of namespace-qualified
// identifiers holding that exact content. The value is a set, never a single
// identifier: when two identifiers share content, both must survive so a
// single translation can populate every identifier it applies to.
type ReverseContentMap map[string]map[string]struct{}

// NewReverseContentMap builds the reverse map for one namespace's catalog.
func NewReverseContentMap(namespace string, catalog Catalog) ReverseContentMap {
	m := make(ReverseContentMap, len(catalog))
	for id, content := range catalog {
		m.add(content, Key(namespace, id))
	}
	return m
}

// Merge folds other into m. Entries for content both maps know take the
// union of the two identifier sets. A plain map assignment here would drop
// identifiers whenever two namespaces share string content, which is the
// silent-data-loss case the set representation exists to prevent.
func (m ReverseContentMap) Merge(other ReverseContentMap) {
	for content, keys := range other {
		for key := range keys {
			m.add(content, key)
		}
	}
}

func (m ReverseContentMap) add(content, key string) {
	set, ok := m[content]
	if !ok {
		set = make(map[string]struct{}, 1)
		m[content] = set
	}
	set[key] = struct{}{}
}
