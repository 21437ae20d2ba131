// Package viewbundle reconciles a web application's message catalogs against
// an externally supplied, hash-keyed translation source and emits one
// finished bundle per view, falling back to English wherever no translation
// matched.
//
// The pipeline runs to completion in a single batch: catalogs, manifest,
// registry and translation sources load first, the content maps and hash
// index are built once as an immutable snapshot, each locale is resolved
// into a delta, and each view's bundle is composed from the shared read-only
// snapshot and written immediately. A fatal configuration error for any view
// aborts the whole run; there is no partial-success mode.
package viewbundle

import (
	"fmt"
	"os"

	"github.com/viewbundle/viewbundle/internal/assets"
	"github.com/viewbundle/viewbundle/internal/manifest"
	"github.com/viewbundle/viewbundle/pkg/bundle"
	"github.com/viewbundle/viewbundle/pkg/catalogs"
	"github.com/viewbundle/viewbundle/pkg/errors"
	"github.com/viewbundle/viewbundle/pkg/index"
	"github.com/viewbundle/viewbundle/pkg/translations"
)

// Pipeline generates per-view, per-locale bundles from a configured input
// tree. Construct with New; all maps it builds are read-only after
// construction and shared across view composition.
type Pipeline struct {
	config *config
}

// New creates a Pipeline with the given options.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{config: defaultConfig()}
	for _, opt := range opts {
		if err := opt(p.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}
	return p, nil
}

// Generate runs the whole batch and writes one <view>.json per non-redirect
// view into outDir, creating the directory if absent.
func (p *Pipeline) Generate(outDir string) error {
	cfg := p.config
	log := cfg.logger

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.WrapIO("create", outDir, err)
	}

	locales, err := manifest.LoadLanguages(cfg.fsys, cfg.languagesFile)
	if err != nil {
		return err
	}
	routes, err := manifest.LoadRoutes(cfg.fsys, cfg.routesFile)
	if err != nil {
		return err
	}

	general, err := catalogs.Load(cfg.fsys, cfg.messagesPath(catalogs.General), catalogs.General)
	if err != nil {
		return err
	}

	// Per-view catalogs are optional; a view missing both its catalog and
	// its template is a configuration error that aborts the run.
	viewCatalogs := make(map[string]catalogs.Catalog)
	reverse := catalogs.NewReverseContentMap(catalogs.General, general)
	for _, route := range routes {
		if route.IsRedirect() {
			continue
		}
		catalog, found, err := catalogs.LoadOptional(cfg.fsys, cfg.messagesPath(route.View), route.View)
		if err != nil {
			return err
		}
		if !found {
			if err := manifest.ConfirmTemplate(cfg.fsys, route); err != nil {
				return err
			}
			log.Debug().Str("view", route.View).Msg("no per-view catalog, using general only")
			continue
		}
		viewCatalogs[route.View] = catalog
		reverse.Merge(catalogs.NewReverseContentMap(route.View, catalog))
	}

	// One immutable hash index joins every locale's translation source back
	// to the application's identifiers.
	idx := index.Build(reverse)

	deltas := make(map[string]translations.Delta, len(locales))
	for _, locale := range locales {
		source, found, err := translations.LoadSource(cfg.fsys, cfg.translationsPath(locale))
		if err != nil {
			return err
		}
		if !found {
			log.Debug().Str("locale", locale).Msg("no translation source, bundles fall back to English")
		}
		delta := translations.ResolveLocale(idx, source)
		log.Debug().
			Str("locale", locale).
			Int("entries", len(source)).
			Int("matched", len(delta)).
			Msg("locale resolved")
		deltas[locale] = delta
	}

	// Asset catalogs load with everything else: composition must never
	// start until every input has been read, so a bad file for a later
	// view cannot leave earlier bundles behind as partial output.
	overrides, _, err := assets.LoadOverrides(cfg.fsys, cfg.assetsPath("overrides"))
	if err != nil {
		return err
	}
	assetDefaults := make(map[string]map[string]string)
	for _, route := range routes {
		if route.IsRedirect() {
			continue
		}
		defaults, found, err := assets.LoadDefaults(cfg.fsys, cfg.assetsPath(route.View))
		if err != nil {
			return err
		}
		if found {
			assetDefaults[route.View] = defaults
		}
	}

	written := 0
	for _, route := range routes {
		if route.IsRedirect() {
			continue
		}
		effective := catalogs.Effective(route.View, general, viewCatalogs[route.View])
		overlay := assets.ForView(route.View, assetDefaults[route.View], overrides, locales)
		composed := bundle.Compose(effective, locales, deltas, overlay)

		if err := bundle.Write(outDir, route.View, composed); err != nil {
			return err
		}
		written++
		log.Debug().Str("view", route.View).Int("messages", len(effective)).Msg("bundle written")
	}

	log.Info().
		Int("views", written).
		Int("locales", len(locales)).
		Str("dir", outDir).
		Msg("bundles generated")
	return nil
}
