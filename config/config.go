package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Name is the config file name, looked up under the user config
// directory (e.g. ~/.config/treebank/config.toml).
const Name = "config.toml"

// Config holds the defaults of the tool. Command line flags and
// TREEBANK_* environment variables take precedence over file values.
type Config struct {

	// TreePath is the default treebank repository: a directory of
	// .conllu files or a SQLite database file.
	TreePath string `toml:"tree_path"`

	NoColor bool `toml:"no_color"`
}

// Path returns the config file location for this user.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "treebank", Name), nil
}

// Load reads the config file. A missing file is not an error, the zero
// Config is returned.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, nil
	}

	return LoadFile(path)
}

// LoadFile reads the config file at path.
func LoadFile(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}

	return cfg, nil
}
