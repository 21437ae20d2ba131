// Package catalogs provides the message catalog model for the viewbundle
// system: per-namespace catalogs of English source strings, the forward and
// reverse maps between namespace-qualified identifiers and string content,
// and the precedence merge that produces a view's effective catalog.
//
// Namespaces are "general" (global) plus one per view. Once catalogs are
// merged across namespaces, identifiers are qualified as
// "<namespace>.<messageId>" so the same short identifier may exist in
// several namespaces without collision.
//
// Example usage:
//
//	general := catalogs.Catalog{"greeting": "Hello"}
//	view := catalogs.Catalog{"greeting": "Hello there"}
//
//	effective := catalogs.Effective("home", general, view)
//	// effective["home.greeting"] == "Hello there"
package catalogs

import "strings"

// General is the namespace of the global catalog shared by every view.
const General = "general"

// Catalog maps short message identifiers to their English source strings
// within one namespace.
type Catalog map[string]string

// Key returns the namespace-qualified identifier for a short message id.
func Key(namespace, id string) string {
	return namespace + "." + id
}

// ShortID returns the short message id of a namespace-qualified identifier.
// Only the first dot separates namespace from id; message ids may themselves
// contain dots.
func ShortID(key string) string {
	if _, id, ok := strings.Cut(key, "."); ok {
		return id
	}
	return key
}

// Effective composes a view's effective catalog: every general entry, with
// same-named view entries overriding. The result is keyed by the qualified
// identifier of the namespace that supplied the content, so later
// translation-delta lookups resolve against the identifier that actually
// owns the string. A nil view catalog (the optional per-view file was
// absent) means the general catalog alone applies.
func Effective(view string, general, overrides Catalog) ContentMap {
	effective := NewContentMap(General, general)
	for id := range overrides {
		delete(effective, Key(General, id))
	}
	for key, content := range NewContentMap(view, overrides) {
		effective[key] = content
	}
	return effective
}
