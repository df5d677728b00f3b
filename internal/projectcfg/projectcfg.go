// Package projectcfg reads the cyan.toml project file a host CLI uses to
// configure chunk discovery and import resolution before constructing a
// sema.Driver. Generalized from the teacher's internal/project package,
// which infers a module root ad hoc; cyan makes the equivalent settings an
// explicit declarative file instead.
package projectcfg

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the parsed form of cyan.toml.
type Config struct {
	Module string `toml:"module"` // project's own module name
	Root   string `toml:"root"`   // source root, relative to the project file

	// Rewrite maps an import spec to a resolved location. It is parsed
	// only: nothing in this module reads it, and modreg's GitHub-raw
	// rewrite is applied regardless of it.
	Rewrite map[string]string `toml:"rewrite"`
}

// Default returns the configuration used when no cyan.toml is present:
// module name "main", the current directory as source root, no rewrites.
func Default() Config {
	return Config{Module: "main", Root: "."}
}

// Load reads and parses path. A missing file is not an error: the caller
// gets Default() back so `cyan` works with zero configuration.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
