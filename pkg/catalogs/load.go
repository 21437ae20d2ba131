package catalogs

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/viewbundle/viewbundle/pkg/errors"
)

// Load reads a required catalog file. A missing file is an error; callers
// wanting the three-outcome treatment of optional files use LoadOptional.
func Load(fsys fs.FS, path, namespace string) (Catalog, error) {
	catalog, found, err := LoadOptional(fsys, path, namespace)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.WrapIO("read", path, fs.ErrNotExist)
	}
	return catalog, nil
}

// LoadOptional reads a catalog file that is allowed to be absent. It returns
// found=false with a nil error when the file does not exist; whether that
// absence is acceptable or fatal is the caller's decision (it depends on
// facts outside this package, such as whether the view's template resolves).
// Every other failure is an error: unreadable file, unparseable yaml, or a
// value that is not a plain string (a structural schema error, never treated
// as a missing translation).
func LoadOptional(fsys fs.FS, path, namespace string) (Catalog, bool, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.WrapIO("read", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, false, errors.WrapParse("yaml", path, err)
	}

	catalog := make(Catalog, len(raw))
	for id, value := range raw {
		content, ok := value.(string)
		if !ok {
			return nil, false, &errors.SchemaError{Namespace: namespace, Key: id, Value: value}
		}
		catalog[id] = content
	}
	return catalog, true, nil
}
