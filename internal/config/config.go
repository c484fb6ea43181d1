// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads credhash configuration from defaults, an optional YAML
// file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/credhash/internal/credential"
	"github.com/holomush/credhash/internal/logging"
	"github.com/holomush/credhash/internal/xdg"
)

// Configuration keys.
const (
	KeyScheme    = "scheme"
	KeyLogFormat = "log.format"
	KeyLogLevel  = "log.level"
)

// Default values.
const (
	DefaultScheme    = string(credential.SchemeSaltedSHA256)
	DefaultLogFormat = "json"
	DefaultLogLevel  = "info"
)

// flagKeys maps flag names registered by RegisterFlags to config keys.
var flagKeys = map[string]string{
	"scheme":     KeyScheme,
	"log-format": KeyLogFormat,
	"log-level":  KeyLogLevel,
}

// Config is the resolved configuration.
type Config struct {
	Scheme string `koanf:"scheme"`
	Log    Log    `koanf:"log"`
}

// Log configures the process logger.
type Log struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
}

// Defaults returns the default configuration as a flat key map.
func Defaults() map[string]any {
	return map[string]any{
		KeyScheme:    DefaultScheme,
		KeyLogFormat: DefaultLogFormat,
		KeyLogLevel:  DefaultLogLevel,
	}
}

// RegisterFlags adds the flags Load reads overrides from.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("scheme", DefaultScheme, "scheme for new records (salted-sha256 or argon2id)")
	flags.String("log-format", DefaultLogFormat, "log format (json or text)")
	flags.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
}

// Load resolves configuration.
//
// If path is empty the XDG default file is used when it exists; an explicit
// path that does not exist is an error. Only flags the user changed override
// values from the file.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("source", "defaults").Wrap(err)
	}

	filePath, explicit := path, path != ""
	if !explicit {
		// No usable default location is the same as no config file.
		filePath, _ = xdg.ConfigFile()
	}
	if filePath != "" {
		if err := loadFile(k, filePath, explicit); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("source", "flags").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scheme, _ := credential.ParseScheme(cfg.Scheme)
	cfg.Scheme = string(scheme)
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := credential.ParseScheme(c.Scheme); !ok {
		return oops.Code("CONFIG_INVALID").With("key", KeyScheme).
			Errorf("scheme must be %q or %q, got %q", credential.SchemeSaltedSHA256, credential.SchemeArgon2id, c.Scheme)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return oops.Code("CONFIG_INVALID").With("key", KeyLogFormat).
			Errorf("log format must be 'json' or 'text', got %q", c.Log.Format)
	}

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return oops.Code("CONFIG_INVALID").With("key", KeyLogLevel).
			Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
