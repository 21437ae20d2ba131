// Package bundle composes and persists the finished per-view translation
// bundles. Composition applies a fixed precedence per view and locale:
// English content from the effective catalog first, matched translations
// over it, localized asset URLs last. Asset overlay winning over a
// translated value on the same key is deliberate; asset maps exist to pin
// locale-specific URLs.
package bundle

import (
	"github.com/viewbundle/viewbundle/pkg/catalogs"
	"github.com/viewbundle/viewbundle/pkg/translations"
)

// Bundle is one view's finished output: locale code to short message id to
// final string. Every key of the view's effective catalog appears in every
// locale, translated when the locale's delta matched it, English otherwise.
type Bundle map[string]map[string]string

// Compose builds a view's bundle across all configured locales.
//
// effective is the view's effective catalog (general with view overrides),
// keyed by qualified identifier so each delta lookup hits the identifier
// that owns the content; the short id written to the bundle is derived from
// the same key. deltas maps locale code to that locale's resolved
// translations, and assets maps locale code to the view's asset-URL overlay
// (already merged from defaults and locale overrides). All inputs are
// read-only; Compose shares nothing mutable with other views.
func Compose(effective catalogs.ContentMap, locales []string, deltas map[string]translations.Delta, assets map[string]map[string]string) Bundle {
	composed := make(Bundle, len(locales))
	for _, locale := range locales {
		messages := make(map[string]string, len(effective))
		delta := deltas[locale]
		for key, content := range effective {
			id := catalogs.ShortID(key)
			if translated, ok := delta[key]; ok {
				messages[id] = translated
			} else {
				messages[id] = content
			}
		}
		for key, url := range assets[locale] {
			messages[key] = url
		}
		composed[locale] = messages
	}
	return composed
}
