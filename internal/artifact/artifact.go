package artifact

import (
	"path/filepath"
	"strings"

	"github.com/depo-io/depoctl/internal/config"
)

// Artifact is one versioned, typed file tracked by the depot. The tuple
// (RemotePath, ID, Version, Type) uniquely identifies its remote location.
// Values are constructed fresh per operation and not mutated afterwards.
type Artifact struct {
	// RemotePath is the group path segment under the repository root, e.g. "ant".
	RemotePath string

	ID      string
	Version string
	Type    string

	Description string
	Name        string

	// LocalPath is the file in the local cache that holds (or will hold)
	// the artifact's content.
	LocalPath string

	// URL is the fully resolved remote location.
	URL string
}

// DefaultVersion is used when no version was specified.
const DefaultVersion = "1"

// wrapperExts are compression suffixes that win as the artifact type when a
// file name carries multiple extensions. The inner extension stays part of
// the artifact id so the underlying format survives in the identity
// (data.nii.gz -> id "data.nii", type "gz"). Anything outside this table is
// treated as a plain single extension.
var wrapperExts = map[string]bool{
	"gz":  true,
	"bz2": true,
	"xz":  true,
	"zst": true,
	"lz4": true,
}

// Identify derives the artifact id and type from a file name. Files without
// an extension are valid artifacts with an empty type. A wrapper suffix
// (see wrapperExts) wins as the type, with the stem, inner extension
// included, becoming the id.
func Identify(fileName string) (id, typ string) {
	base := filepath.Base(fileName)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return base, ""
	}

	return strings.TrimSuffix(base, ext), strings.TrimPrefix(ext, ".")
}

// New derives an artifact identity from a local file name. The version
// defaults to DefaultVersion when empty.
func New(fileName, remotePath, version string) Artifact {
	id, typ := Identify(fileName)
	if version == "" {
		version = DefaultVersion
	}
	return Artifact{
		RemotePath: remotePath,
		ID:         id,
		Version:    version,
		Type:       typ,
	}
}

// FileName returns the canonical repository file name, id-version[.type].
func (a Artifact) FileName() string {
	name := a.ID + "-" + a.Version
	if a.Type != "" {
		name += "." + a.Type
	}
	return name
}

// Format returns the format hint of the artifact content. For an artifact
// whose type is a wrapper suffix and whose id retains an inner extension,
// that inner extension is the format ("nii" for data.nii.gz); otherwise the
// format is the type itself.
func (a Artifact) Format() string {
	if !wrapperExts[strings.ToLower(a.Type)] {
		return a.Type
	}
	inner := filepath.Ext(a.ID)
	if inner == "" {
		return a.Type
	}
	return strings.TrimPrefix(inner, ".")
}

// RemoteURL resolves the artifact's location under the configured
// repository root: remotePath/id/version/id-version[.type].
func (a Artifact) RemoteURL(cfg config.Config) string {
	base := strings.TrimSuffix(cfg.RepositoryURL, "/")
	return base + "/" + a.RemotePath + "/" + a.ID + "/" + a.Version + "/" + a.FileName()
}

// CachePath resolves the artifact's location in the local cache. It is a
// pure function of the identity tuple, so repeated fetches of the same
// artifact share one cache file.
func (a Artifact) CachePath(root string) string {
	return filepath.Join(root, a.RemotePath, a.ID, a.Version, a.FileName())
}
