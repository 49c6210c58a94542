package credentials

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	yamlbase "gopkg.in/yaml.v2"
)

// Credentials contains a username + password pair for the artifact depot.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Source   string `yaml:"-"`
}

// Get returns the configured credentials.
// Effectively a convenience wrapper around FromEnv, followed by a call to FromFile.
//
// The lookup order is:
//  1. Environment variables (see FromEnv)
//  2. Credentials file (see FromFile)
func Get() Credentials {
	if c := FromEnv(); c.IsSet() {
		return c
	}

	return FromFile()
}

// FromEnv reads the credentials from the user environment.
func FromEnv() Credentials {
	return Credentials{
		Username: os.Getenv("DEPO_USERNAME"),
		Password: os.Getenv("DEPO_PASSWORD"),
		Source:   "environment variables",
	}
}

// FromFile reads the credentials that are stored in the default file location.
func FromFile() Credentials {
	return fromFile(defaultFilepath())
}

// fromFile reads the credentials from path.
func fromFile(path string) Credentials {
	yamlFile, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// not a real error but a valid usecase when credentials have not been persisted yet
			return Credentials{}
		}

		log.Error().Msgf("failed to read credentials: %v", err)
		return Credentials{}
	}
	defer yamlFile.Close()

	var c Credentials
	if err = yamlbase.NewDecoder(yamlFile).Decode(&c); err != nil {
		log.Error().Msgf("failed to parse credentials: %v", err)
		return Credentials{}
	}
	c.Source = path

	return c
}

// ToFile stores the provided credentials in the default file location.
func ToFile(c Credentials) error {
	return toFile(c, defaultFilepath())
}

// toFile stores the provided credentials into the file at path.
func toFile(c Credentials, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	b, err := yamlbase.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0600)
}

// defaultFilepath returns the default location of the credentials file.
// It will be based on the user home directory, if defined, or under the current working directory otherwise.
func defaultFilepath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".depo", "credentials.yml")
}

// IsSet checks whether at least the username is present. Anonymous access
// to a depot is valid, so empty credentials are not an error.
func (c *Credentials) IsSet() bool {
	return c.Username != ""
}
