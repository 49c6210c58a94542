package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/depo-io/depoctl/internal/artifact"
	"github.com/depo-io/depoctl/internal/config"
	"github.com/depo-io/depoctl/internal/hashio"
	"github.com/depo-io/depoctl/internal/requesth"
	"github.com/depo-io/depoctl/internal/storage"
)

// Depot is the reference HTTP client for a Maven-layout artifact depot. It
// implements storage.Publisher, storage.Fetcher and storage.Rescanner.
type Depot struct {
	HTTPClient *retryablehttp.Client
	CacheDir   string
}

// NewDepot returns a depot client. An empty cacheDir selects the default
// cache location under the user's home directory.
func NewDepot(timeout time.Duration, cacheDir string) *Depot {
	if cacheDir == "" {
		cacheDir = DefaultCacheDir()
	}
	return &Depot{
		HTTPClient: NewRetryableClient(timeout),
		CacheDir:   cacheDir,
	}
}

// DefaultCacheDir returns the default local artifact cache location.
func DefaultCacheDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".depo", "cache")
}

// Publish uploads one local file as a versioned artifact. The upload
// carries MD5/SHA1/SHA256 checksum headers so the depot can verify the
// transfer. A rescan is triggered only when req.Rescan is set.
func (d *Depot) Publish(cfg config.Config, req storage.PublishRequest) (artifact.Artifact, error) {
	derivedID, typ := artifact.Identify(req.LocalPath)
	id := req.ArtifactID
	if id == "" {
		id = derivedID
	}

	a := artifact.Artifact{
		RemotePath:  req.RemotePath,
		ID:          id,
		Version:     req.Version,
		Type:        typ,
		Description: req.Description,
		Name:        req.Name,
		LocalPath:   req.LocalPath,
	}
	if a.Version == "" {
		a.Version = artifact.DefaultVersion
	}
	a.URL = a.RemoteURL(cfg)

	sums, err := hashio.All(req.LocalPath)
	if err != nil {
		return artifact.Artifact{}, err
	}

	body, err := os.ReadFile(req.LocalPath)
	if err != nil {
		return artifact.Artifact{}, err
	}

	r, err := requesth.New(http.MethodPut, a.URL, bytes.NewReader(body))
	if err != nil {
		return artifact.Artifact{}, err
	}
	r.Header.Set("Content-Type", "application/octet-stream")
	r.Header.Set("X-Checksum-Md5", sums.MD5)
	r.Header.Set("X-Checksum-Sha1", sums.SHA1)
	r.Header.Set("X-Checksum-Sha256", sums.SHA256)
	r.SetBasicAuth(cfg.Username, cfg.Password)

	resp, err := d.HTTPClient.Do(r)
	if err != nil {
		return artifact.Artifact{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case 200, 201:
	case 401, 403:
		return artifact.Artifact{}, storage.ErrAccessDenied
	case 429:
		return artifact.Artifact{}, storage.ErrTooManyRequest
	default:
		return artifact.Artifact{}, newServerError(resp)
	}

	if req.DeleteLocal {
		if err := os.Remove(req.LocalPath); err != nil {
			log.Warn().Msgf("published but failed to delete local file %s: %v", req.LocalPath, err)
		}
	}

	if req.Rescan {
		if err := d.Rescan(cfg); err != nil {
			log.Warn().Msgf("artifact published but rescan failed: %v", err)
		}
	}

	return a, nil
}

// Fetch downloads one artifact into the local cache and returns its
// content. The request negotiates the response format via the configured
// accept media type.
func (d *Depot) Fetch(cfg config.Config, req storage.FetchRequest) ([]byte, artifact.Artifact, error) {
	a := artifact.Artifact{
		RemotePath: req.RemotePath,
		ID:         req.ArtifactID,
		Version:    req.Version,
		Type:       req.Type,
	}
	if a.Version == "" {
		a.Version = artifact.DefaultVersion
	}
	a.URL = a.RemoteURL(cfg)

	r, err := requesth.New(http.MethodGet, a.URL, nil)
	if err != nil {
		return nil, artifact.Artifact{}, err
	}
	if cfg.AcceptMediaType != "" {
		r.Header.Set("Accept", cfg.AcceptMediaType)
	}
	r.SetBasicAuth(cfg.Username, cfg.Password)

	resp, err := d.HTTPClient.Do(r)
	if err != nil {
		return nil, artifact.Artifact{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case 200:
	case 401, 403:
		return nil, artifact.Artifact{}, storage.ErrAccessDenied
	case 404:
		return nil, artifact.Artifact{}, storage.ErrArtifactNotFound
	case 429:
		return nil, artifact.Artifact{}, storage.ErrTooManyRequest
	default:
		return nil, artifact.Artifact{}, newServerError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, artifact.Artifact{}, err
	}

	a.LocalPath = a.CachePath(d.CacheDir)
	if err := os.MkdirAll(filepath.Dir(a.LocalPath), 0755); err != nil {
		return nil, artifact.Artifact{}, err
	}
	if err := os.WriteFile(a.LocalPath, data, 0644); err != nil {
		return nil, artifact.Artifact{}, err
	}

	return data, a, nil
}

// Rescan asks the depot to refresh the listing of the configured
// repository.
func (d *Depot) Rescan(cfg config.Config) error {
	url := fmt.Sprintf("%s/api/repositories/%s/rescan", cfg.ServerURL, cfg.RepositoryName)
	r, err := requesth.New(http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	r.SetBasicAuth(cfg.Username, cfg.Password)

	resp, err := d.HTTPClient.Do(r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case 200, 202, 204:
		return nil
	case 401, 403:
		return storage.ErrAccessDenied
	default:
		return newServerError(resp)
	}
}

func newServerError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("unexpected server response (%d): %s", resp.StatusCode, body)
}
