// Package assets loads the optional static asset-URL catalogs: per-view
// default URLs plus a registry of locale-specific overrides. Both files are
// optional; a view without asset entries simply gets no URL overlay.
package assets

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/viewbundle/viewbundle/pkg/errors"
)

// Overrides is the locale-specific URL override registry:
// view -> locale -> asset key -> URL.
type Overrides map[string]map[string]map[string]string

// LoadDefaults reads a view's asset catalog (asset key -> default URL).
// found=false means the view has no asset catalog, which is acceptable.
func LoadDefaults(fsys fs.FS, path string) (map[string]string, bool, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.WrapIO("read", path, err)
	}

	var defaults map[string]string
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return nil, false, errors.WrapParse("yaml", path, err)
	}
	return defaults, true, nil
}

// LoadOverrides reads the override registry, which is likewise optional.
func LoadOverrides(fsys fs.FS, path string) (Overrides, bool, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.WrapIO("read", path, err)
	}

	var overrides Overrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, false, errors.WrapParse("yaml", path, err)
	}
	return overrides, true, nil
}

// ForView assembles one view's asset-URL overlay per locale: the view's
// defaults, with locale-specific overrides replacing same-keyed entries.
// Locales without overrides fall back to the defaults alone.
func ForView(view string, defaults map[string]string, overrides Overrides, locales []string) map[string]map[string]string {
	if len(defaults) == 0 && len(overrides[view]) == 0 {
		return nil
	}

	overlay := make(map[string]map[string]string, len(locales))
	for _, locale := range locales {
		urls := make(map[string]string, len(defaults))
		for key, url := range defaults {
			urls[key] = url
		}
		for key, url := range overrides[view][locale] {
			urls[key] = url
		}
		overlay[locale] = urls
	}
	return overlay
}
