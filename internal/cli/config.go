package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/slngraph/pkg/errors"
)

// Config is the optional TOML configuration. Every field may be omitted.
//
//	solution_ext = ".sln"
//	project_ext  = ".vbproj"
//	manifest     = "packages.config"
//	skip_dirs    = [".git", "bin", "obj"]
//	output_name  = "dependencies"
//	formats      = ["dgml", "svg"]
//	layout       = "Sugiyama"
//	zoom_level   = -1
//	png_scale    = 2.0
//	detailed     = false
//	flat         = false
type Config struct {
	SolutionExt string   `toml:"solution_ext"`
	ProjectExt  string   `toml:"project_ext"`
	Manifest    string   `toml:"manifest"`
	SkipDirs    []string `toml:"skip_dirs"`
	OutputName  string   `toml:"output_name"`
	Formats     []string `toml:"formats"`
	Layout      string   `toml:"layout"`
	ZoomLevel   *float64 `toml:"zoom_level"`
	PNGScale    float64  `toml:"png_scale"`
	Detailed    bool     `toml:"detailed"`
	Flat        bool     `toml:"flat"`
}

// LoadConfig decodes the TOML file at path. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// resolveConfig loads the explicit config path, or the default file in root
// when it exists. It returns the path actually read, empty when none.
func resolveConfig(root, explicit string) (Config, string, error) {
	if explicit != "" {
		cfg, err := LoadConfig(explicit)
		return cfg, explicit, err
	}
	path := filepath.Join(root, configFileName)
	if _, err := os.Stat(path); err != nil {
		return Config{}, "", nil
	}
	cfg, err := LoadConfig(path)
	return cfg, path, err
}
