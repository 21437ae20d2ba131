package bundle

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/viewbundle/viewbundle/pkg/errors"
)

// Write serializes a view's bundle to <dir>/<view>.json, locale code to
// {messageId: string}, for direct consumption by the rendering layer.
// encoding/json emits map keys sorted, so output is deterministic across
// runs. Each bundle is written immediately after composition and never
// revisited.
func Write(dir, view string, b Bundle) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return errors.WrapIO("encode", view, err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, view+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
