// Package configuration collects settings from files, environment variables and command line flags.
// All keys are lower cased.
package configuration

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/internal/jsonbackend"
	"github.com/iotaledger/dynserde/value"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = errors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

func parserFor(filePath string) (koanf.Parser, error) {
	switch filepath.Ext(filePath) {
	case ".json":
		return &JSONLowerParser{}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownConfigFormat, "file %s", filePath)
	}
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(ErrConfigDoesNotExist, "file %s", filePath)
		}

		return errors.Wrap(err, "unable to access config file")
	}

	parser, err := parserFor(filePath)
	if err != nil {
		return err
	}

	return errors.Wrapf(c.config.Load(file.Provider(filePath), parser), "unable to load config file %s", filePath)
}

// StoreFile stores the current config to a JSON, YAML or TOML file.
// ignoreSettingsAtStore will not be stored to the file.
func (c *Configuration) StoreFile(filePath string, ignoreSettingsAtStore ...string) error {
	parser, err := parserFor(filePath)
	if err != nil {
		return err
	}

	settings := c.config.Raw()
	for _, ignored := range ignoreSettingsAtStore {
		deletePath(settings, strings.Split(strings.ToLower(ignored), "."))
	}

	data, err := parser.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "unable to marshal config file")
	}

	if err := os.WriteFile(filePath, data, 0o600); err != nil {
		return errors.Wrap(err, "unable to save config file")
	}

	return nil
}

func deletePath(settings map[string]interface{}, path []string) {
	for lvl, name := range path {
		if lvl == len(path)-1 {
			delete(settings, name)

			return
		}

		nested, ok := settings[name].(map[string]interface{})
		if !ok {
			// parameter not found in settings
			return
		}
		settings = nested
	}
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Load takes a Provider that either provides a parsed config map[string]interface{}
// in which case pa (Parser) can be nil, or raw bytes to be parsed by pa.
func (c *Configuration) Load(p koanf.Provider, pa koanf.Parser, opts ...koanf.Option) error {
	return c.config.Load(p, pa, opts...)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// Value returns the settings below path as a value.Value. An empty path returns all settings.
func (c *Configuration) Value(path string) (value.Value, error) {
	if path == "" {
		return value.FromInterface(c.config.Raw())
	}

	key := strings.ToLower(path)
	if !c.config.Exists(key) {
		return value.Value{}, errors.Wrapf(ErrConfigDoesNotExist, "key %s", path)
	}

	return value.FromInterface(c.config.Get(key))
}

func (c *Configuration) Exists(key string) bool { return c.config.Exists(strings.ToLower(key)) }

func (c *Configuration) Get(key string) interface{} { return c.config.Get(strings.ToLower(key)) }

func (c *Configuration) String(key string) string { return c.config.String(strings.ToLower(key)) }

func (c *Configuration) Strings(key string) []string { return c.config.Strings(strings.ToLower(key)) }

func (c *Configuration) Bool(key string) bool { return c.config.Bool(strings.ToLower(key)) }

func (c *Configuration) Int(key string) int { return c.config.Int(strings.ToLower(key)) }

func (c *Configuration) Int64(key string) int64 { return c.config.Int64(strings.ToLower(key)) }

func (c *Configuration) Float64(key string) float64 { return c.config.Float64(strings.ToLower(key)) }

func (c *Configuration) Duration(key string) time.Duration {
	return c.config.Duration(strings.ToLower(key))
}

// All returns the flattened settings.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}

// Decode decodes the settings below path through seed.
func Decode[V any](c *Configuration, path string, seed de.ValueSeed[V]) (V, error) {
	var zero V

	v, err := c.Value(path)
	if err != nil {
		return zero, err
	}

	data, err := jsonbackend.Marshal(v)
	if err != nil {
		return zero, errors.Wrapf(err, "unable to encode settings of %q", path)
	}

	decoded, err := jsonbackend.Unmarshal(data, seed)
	if err != nil {
		return zero, errors.Wrapf(err, "unable to decode settings of %q", path)
	}

	return decoded, nil
}
