package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/depo-io/depoctl/internal/credentials"
)

// Config describes the connection settings for one artifact depot. Every
// field is always populated (possibly with an empty value), so callers can
// read any field without existence checks.
type Config struct {
	ServerURL       string `yaml:"serverUrl" json:"serverUrl" mapstructure:"serverUrl"`
	RepositoryURL   string `yaml:"repositoryUrl" json:"repositoryUrl" mapstructure:"repositoryUrl"`
	RepositoryName  string `yaml:"repositoryName" json:"repositoryName" mapstructure:"repositoryName"`
	Username        string `yaml:"username" json:"username" mapstructure:"username"`
	Password        string `yaml:"password" json:"password" mapstructure:"password"`
	AcceptMediaType string `yaml:"acceptMediaType" json:"acceptMediaType" mapstructure:"acceptMediaType"`
	Verbosity       int    `yaml:"verbosity" json:"verbosity" mapstructure:"verbosity"`
}

// Default returns the built-in depot configuration, with credentials
// merged in from the environment or the credentials file.
func Default() Config {
	return withCredentials(presets["default"])
}

// withCredentials fills empty credential fields from the credentials layer.
func withCredentials(c Config) Config {
	creds := credentials.Get()
	if c.Username == "" {
		c.Username = creds.Username
	}
	if c.Password == "" {
		c.Password = creds.Password
	}
	return c
}

// Resolve normalizes any supported input into a canonical Config. It is
// total: no input shape, however malformed, makes it fail; unrecognized
// shapes degrade to Default(). Resolving an already canonical Config
// returns it unchanged.
//
// Supported shapes, in priority order:
//  1. nil -> Default()
//  2. Config / *Config -> passed through (idempotence)
//  3. string naming a preset -> that preset
//  4. string naming a config file (direct path or discoverable on the
//     config search path) -> file contents merged onto Default()
//  5. map[string]any -> recognized fields merged onto Default()
//  6. []any pair list ("repositoryName", "x", ...) -> converted to a map,
//     then merged as in 5
//  7. anything else -> Default()
func Resolve(input any) Config {
	switch v := input.(type) {
	case nil:
		return Default()
	case Config:
		return v
	case *Config:
		if v != nil {
			return *v
		}
		return Default()
	case string:
		return resolveString(v)
	case map[string]any:
		return merge(Default(), v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		return merge(Default(), m)
	case []any:
		return FromPairs(v...)
	default:
		log.Debug().Msgf("unrecognized configuration input %T, using defaults", input)
		return Default()
	}
}

// FromPairs builds a Config from alternating field name / value arguments,
// e.g. FromPairs("repositoryName", "x"). Malformed pair lists (odd length,
// non-string keys) degrade to Default().
func FromPairs(pairs ...any) Config {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return Default()
	}

	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return Default()
		}
		m[key] = pairs[i+1]
	}
	return merge(Default(), m)
}

// FromFile parses the config file at path and merges its fields onto the
// default configuration. Unlike Resolve, it reports parse failures.
func FromFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Default(), err
	}

	c := Default()
	if err := v.Unmarshal(&c); err != nil {
		return Default(), err
	}
	return c, nil
}

func resolveString(s string) Config {
	if s == "" {
		return Default()
	}
	if c, ok := presets[s]; ok {
		return withCredentials(c)
	}
	if path, ok := lookupFile(s); ok {
		c, err := FromFile(path)
		if err != nil {
			log.Debug().Msgf("failed to parse config file %s: %v", path, err)
			return Default()
		}
		return c
	}

	log.Debug().Msgf("configuration %q is neither a preset nor a file, using defaults", s)
	return Default()
}

// lookupFile resolves a config file argument to an absolute path. A path
// that exists as given wins; otherwise bare file names are searched for on
// the config search path (working directory, then ~/.depo).
func lookupFile(name string) (string, bool) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, true
	}
	if filepath.Base(name) != name {
		return "", false
	}

	for _, dir := range searchPath() {
		candidate := filepath.Join(dir, name)
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

func searchPath() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".depo"))
	}
	return dirs
}

// merge overwrites fields of base with the recognized fields present in m.
// Unrecognized keys and undecodable values are ignored rather than treated
// as errors.
func merge(base Config, m map[string]any) Config {
	c := base
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return base
	}
	if err := dec.Decode(m); err != nil {
		log.Debug().Msgf("failed to merge configuration overrides: %v", err)
		return base
	}
	return c
}
