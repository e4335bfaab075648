package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix, e.g. SIEGMEYER_INSTALL_SKIP=true.
const envPrefix = "SIEGMEYER"

// Loader merges defaults, the config file and environment variables.
// Environment variables take precedence over file values.
type Loader struct {
	v     *viper.Viper
	paths []string
}

// NewLoader creates a loader that searches the working directory and the
// user's home directory.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("install.skip", def.Install.Skip)
	v.SetDefault("install.quiet", def.Install.Quiet)
	v.SetDefault("install.dependencies", def.Install.Dependencies)
	v.SetDefault("install.bundler", def.Install.Bundler)

	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}

	return &Loader{v: v, paths: paths}
}

// WithSearchPaths replaces the directories searched for FileName.
func (l *Loader) WithSearchPaths(paths ...string) *Loader {
	l.paths = paths
	return l
}

// Load reads configFile, or searches for FileName when configFile is empty.
// A missing file is not an error; defaults and environment still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	l.v.SetConfigType("yaml")
	if configFile != "" {
		l.v.SetConfigFile(configFile)
	} else {
		l.v.SetConfigName(strings.TrimSuffix(FileName, ".yml"))
		for _, p := range l.paths {
			l.v.AddConfigPath(p)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// ConfigFileUsed returns the file Load read, or "" if none was found.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
