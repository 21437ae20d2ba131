package viewbundle

import (
	"io/fs"
	"os"
	"path"

	"github.com/rs/zerolog"

	"github.com/viewbundle/viewbundle/pkg/logging"
)

// Option is a function that configures a Pipeline instance.
type Option func(*config) error

// config holds the pipeline's resolved configuration. The input tree is an
// fs.FS so tests can run against an in-memory filesystem.
type config struct {
	fsys            fs.FS
	messagesDir     string
	translationsDir string
	assetsDir       string
	routesFile      string
	languagesFile   string
	logger          *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		fsys:            os.DirFS("."),
		messagesDir:     "messages",
		translationsDir: "translations",
		assetsDir:       "assets",
		routesFile:      "routes.yaml",
		languagesFile:   "languages.yaml",
		logger:          logging.Default(),
	}
}

func (c *config) messagesPath(namespace string) string {
	return path.Join(c.messagesDir, namespace+".yaml")
}

func (c *config) translationsPath(locale string) string {
	return path.Join(c.translationsDir, locale+".yaml")
}

func (c *config) assetsPath(name string) string {
	return path.Join(c.assetsDir, name+".yaml")
}

// WithInputDir roots the input tree at the given directory.
func WithInputDir(dir string) Option {
	return func(c *config) error {
		c.fsys = os.DirFS(dir)
		return nil
	}
}

// WithFS configures the input tree directly. Intended for tests and for
// embedding catalogs.
func WithFS(fsys fs.FS) Option {
	return func(c *config) error {
		c.fsys = fsys
		return nil
	}
}

// WithMessagesDir configures the directory holding message catalogs,
// relative to the input tree root.
func WithMessagesDir(dir string) Option {
	return func(c *config) error {
		c.messagesDir = dir
		return nil
	}
}

// WithTranslationsDir configures the directory holding per-locale
// translation sources, relative to the input tree root.
func WithTranslationsDir(dir string) Option {
	return func(c *config) error {
		c.translationsDir = dir
		return nil
	}
}

// WithAssetsDir configures the directory holding asset-URL catalogs,
// relative to the input tree root.
func WithAssetsDir(dir string) Option {
	return func(c *config) error {
		c.assetsDir = dir
		return nil
	}
}

// WithLogger configures the pipeline's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
