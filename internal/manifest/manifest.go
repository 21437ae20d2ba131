// Package manifest loads the route manifest and the language registry.
package manifest

import (
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"

	"github.com/viewbundle/viewbundle/pkg/errors"
)

// Route is one entry of the route manifest: either a redirect (no bundle is
// produced) or a view carrying a template reference.
type Route struct {
	View     string `yaml:"view"`
	Template string `yaml:"template"`
	Redirect string `yaml:"redirect"`
}

// IsRedirect reports whether the route is a redirect and therefore excluded
// from bundle generation.
func (r Route) IsRedirect() bool {
	return r.Redirect != ""
}

// LoadRoutes reads the route manifest, preserving order. Each entry must
// either declare a redirect or name a view; a view without a template
// reference is rejected here so the later template-existence check always
// has a path to probe.
func LoadRoutes(fsys fs.FS, path string) ([]Route, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var routes []Route
	if err := yaml.Unmarshal(data, &routes); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	for i, r := range routes {
		if r.IsRedirect() {
			continue
		}
		if r.View == "" {
			return nil, fmt.Errorf("%s: route %d names no view: %w", path, i, errors.ErrInvalidInput)
		}
		if r.Template == "" {
			return nil, fmt.Errorf("%s: view %s has no template reference: %w", path, r.View, errors.ErrInvalidInput)
		}
	}
	return routes, nil
}

// ConfirmTemplate verifies that a view's template exists. Called only when
// the view's optional per-view catalog is absent: absence of the catalog is
// acceptable for a valid view, but a view with neither catalog nor template
// is a configuration error that aborts the whole run.
func ConfirmTemplate(fsys fs.FS, r Route) error {
	if _, err := fs.Stat(fsys, r.Template); err != nil {
		return &errors.ViewError{View: r.View, Template: r.Template, Err: err}
	}
	return nil
}

// LoadLanguages reads the language registry: the ordered list of locale
// codes bundles are produced for. Codes are validated eagerly so per-locale
// loops never see a malformed tag.
func LoadLanguages(fsys fs.FS, path string) ([]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var locales []string
	if err := yaml.Unmarshal(data, &locales); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	for _, code := range locales {
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("%s: locale %q: %w: %w", path, code, errors.ErrInvalidInput, err)
		}
	}
	return locales, nil
}
