// Package storage defines the contracts for moving single artifacts between
// the local machine and the remote depot.
package storage

import (
	"errors"

	"github.com/depo-io/depoctl/internal/artifact"
	"github.com/depo-io/depoctl/internal/config"
)

// ErrAccessDenied is returned when the depot rejects the credentials.
var ErrAccessDenied = errors.New("access denied")

// ErrArtifactNotFound is returned when the requested artifact does not
// exist in the depot.
var ErrArtifactNotFound = errors.New("artifact not found")

// ErrTooManyRequest is returned when the depot throttles the client.
var ErrTooManyRequest = errors.New("too many requests")

// PublishRequest describes one local file to be uploaded as an artifact.
type PublishRequest struct {
	LocalPath  string
	RemotePath string
	ArtifactID string
	Version    string

	Description string
	Name        string

	// DeleteLocal removes the local file after a successful upload.
	DeleteLocal bool

	// Rescan triggers a repository rescan after the upload. Batch
	// publishing always passes false and defers the rescan to the end of
	// the batch.
	Rescan bool
}

// FetchRequest identifies one artifact to be downloaded.
type FetchRequest struct {
	RemotePath string
	ArtifactID string
	Version    string
	Type       string
}

// Publisher uploads a single local file as a versioned artifact. An
// implementation must honor Rescan=false by never triggering a rescan on
// its own.
type Publisher interface {
	Publish(cfg config.Config, req PublishRequest) (artifact.Artifact, error)
}

// Fetcher downloads one artifact into the local cache, honoring the
// configured accept media type. On success the returned artifact's
// LocalPath names an existing file.
type Fetcher interface {
	Fetch(cfg config.Config, req FetchRequest) ([]byte, artifact.Artifact, error)
}

// Rescanner asks the depot to refresh its artifact listing. The call is
// idempotent and side-effect only.
type Rescanner interface {
	Rescan(cfg config.Config) error
}
