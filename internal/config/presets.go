package config

// presets are the built-in depot configurations selectable by name.
// Trailing slashes on repository URLs are deliberate; artifact paths are
// appended directly.
var presets = map[string]Config{
	"default": {
		ServerURL:       "https://depot.depo.io",
		RepositoryURL:   "https://depot.depo.io/repository/releases/",
		RepositoryName:  "releases",
		AcceptMediaType: "application/octet-stream",
		Verbosity:       1,
	},
	"test": {
		ServerURL:       "https://depot.depo.io",
		RepositoryURL:   "https://depot.depo.io/repository/test-repository/",
		RepositoryName:  "test-repository",
		AcceptMediaType: "application/octet-stream",
		Verbosity:       1,
	},
	"test-alternate": {
		ServerURL:       "https://depot.depo.io",
		RepositoryURL:   "https://depot.depo.io/repository/alternate-repository-name/",
		RepositoryName:  "alternate-repository-name",
		AcceptMediaType: "application/octet-stream",
		Verbosity:       1,
	},
	// Read-only mirror config used for fetching public Maven artifacts.
	"maven-central": {
		ServerURL:       "https://repo1.maven.org",
		RepositoryURL:   "https://repo1.maven.org/maven2/",
		RepositoryName:  "maven-central",
		AcceptMediaType: "application/octet-stream",
		Verbosity:       1,
	},
}

// Presets returns the names of all built-in configurations.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
