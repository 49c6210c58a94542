package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupEnv(t *testing.T) {
	t.Setenv("DEPO_USERNAME", "")
	t.Setenv("DEPO_PASSWORD", "")
}

func TestResolve_Garbage(t *testing.T) {
	setupEnv(t)

	def := Default()
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"number", 42},
		{"nan", math.NaN()},
		{"bool", true},
		{"mixed slice", []any{1, "two", 3.0}},
		{"odd pair list", []any{"repositoryName"}},
		{"non-string pair key", []any{1, "x"}},
		{"nonexistent file", "no/such/config-file.yml"},
		{"empty string", ""},
		{"nil pointer", (*Config)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.input)
			assert.Equal(t, def, got)
			assert.NotEmpty(t, got.RepositoryURL)
			assert.NotEmpty(t, got.RepositoryName)
			assert.NotEmpty(t, got.AcceptMediaType)
		})
	}
}

func TestResolve_Presets(t *testing.T) {
	setupEnv(t)

	assert.Equal(t, "test-repository", Resolve("test").RepositoryName)
	assert.Equal(t, "alternate-repository-name", Resolve("test-alternate").RepositoryName)
	assert.Equal(t, "https://repo1.maven.org/maven2/", Resolve("maven-central").RepositoryURL)
}

func TestResolve_File(t *testing.T) {
	setupEnv(t)

	path := filepath.Join(t.TempDir(), "alternate.yml")
	err := os.WriteFile(path, []byte(`
serverUrl: https://depot.depo.io
repositoryUrl: https://depot.depo.io/repository/alternate-repository-name/
repositoryName: alternate-repository-name
`), 0644)
	assert.NoError(t, err)

	got := Resolve(path)
	want := Resolve("test-alternate")
	assert.Equal(t, want.RepositoryName, got.RepositoryName)
	assert.Equal(t, want.RepositoryURL, got.RepositoryURL)

	// Fields absent from the file stay at their defaults.
	assert.Equal(t, Default().AcceptMediaType, got.AcceptMediaType)
}

func TestResolve_FileJSON(t *testing.T) {
	setupEnv(t)

	path := filepath.Join(t.TempDir(), "depot.json")
	err := os.WriteFile(path, []byte(`{"repositoryName": "json-repository"}`), 0644)
	assert.NoError(t, err)

	assert.Equal(t, "json-repository", Resolve(path).RepositoryName)
}

func TestResolve_FileOnSearchPath(t *testing.T) {
	setupEnv(t)

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "mydepot.yml"), []byte("repositoryName: searched-repository\n"), 0644)
	assert.NoError(t, err)

	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() {
		_ = os.Chdir(wd)
	}()

	assert.Equal(t, "searched-repository", Resolve("mydepot.yml").RepositoryName)
}

func TestResolve_MalformedFile(t *testing.T) {
	setupEnv(t)

	path := filepath.Join(t.TempDir(), "broken.yml")
	err := os.WriteFile(path, []byte("{{{: not valid"), 0644)
	assert.NoError(t, err)

	assert.Equal(t, Default(), Resolve(path))
}

func TestResolve_Map(t *testing.T) {
	setupEnv(t)

	got := Resolve(map[string]any{"repositoryName": "random-repository-name"})

	want := Default()
	want.RepositoryName = "random-repository-name"
	assert.Equal(t, want, got)
}

func TestResolve_MapIgnoresUnknownKeys(t *testing.T) {
	setupEnv(t)

	got := Resolve(map[string]any{
		"repositoryName": "random-repository-name",
		"flavour":        "strawberry",
	})
	assert.Equal(t, "random-repository-name", got.RepositoryName)
	assert.Equal(t, Default().ServerURL, got.ServerURL)
}

func TestFromPairs(t *testing.T) {
	setupEnv(t)

	got := FromPairs("repositoryName", "silly-repository-name")

	want := Default()
	want.RepositoryName = "silly-repository-name"
	assert.Equal(t, want, got)
}

func TestFromPairs_MultipleFields(t *testing.T) {
	setupEnv(t)

	got := FromPairs("repositoryName", "r", "username", "u", "verbosity", 3)
	assert.Equal(t, "r", got.RepositoryName)
	assert.Equal(t, "u", got.Username)
	assert.Equal(t, 3, got.Verbosity)
	assert.Equal(t, Default().RepositoryURL, got.RepositoryURL)
}

func TestResolve_Idempotent(t *testing.T) {
	setupEnv(t)

	inputs := []any{
		nil,
		"test",
		map[string]any{"repositoryName": "x"},
		[]any{"username", "u"},
		42,
	}
	for _, input := range inputs {
		once := Resolve(input)
		twice := Resolve(once)
		assert.Equal(t, once, twice)
	}
}

func TestResolve_PointerPassthrough(t *testing.T) {
	setupEnv(t)

	c := Resolve("test")
	assert.Equal(t, c, Resolve(&c))
}

func TestDefault_EnvCredentials(t *testing.T) {
	t.Setenv("DEPO_USERNAME", "depobot")
	t.Setenv("DEPO_PASSWORD", "hunter2")

	c := Default()
	assert.Equal(t, "depobot", c.Username)
	assert.Equal(t, "hunter2", c.Password)
}
