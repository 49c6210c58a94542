// Package batch publishes every eligible file of a local folder as an
// artifact, deferring the repository rescan to a single call at the end.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"

	"github.com/depo-io/depoctl/internal/artifact"
	"github.com/depo-io/depoctl/internal/config"
	"github.com/depo-io/depoctl/internal/msg"
	"github.com/depo-io/depoctl/internal/storage"
)

// denyExts are platform and editor droppings that are never published,
// matched case-insensitively against the file extension.
var denyExts = map[string]bool{
	"ds_store": true,
	"asv":      true,
	"bak":      true,
	"swp":      true,
}

// Options control one batch publish run.
type Options struct {
	// Version applies to every published file. Defaults to
	// artifact.DefaultVersion when empty.
	Version string

	// Type restricts publishing to files with exactly this extension
	// (case-sensitive). Empty means no filter. Files without an extension
	// are always published.
	Type string

	Description string
	Name        string

	// Exclude drops files whose name matches any of the glob patterns.
	Exclude []string

	// DeleteLocal removes each local file after its successful upload.
	DeleteLocal bool

	// Rescan triggers one repository rescan after the whole batch.
	Rescan bool

	Verbose bool
}

// DefaultOptions returns the options used when the caller specifies
// nothing: version "1", no type filter, one rescan at the end.
func DefaultOptions() Options {
	return Options{
		Version: artifact.DefaultVersion,
		Rescan:  true,
	}
}

// Workflow publishes folders of files through a single-artifact publisher.
type Workflow struct {
	Publisher storage.Publisher
	Rescanner storage.Rescanner
}

// PublishAll publishes every eligible file in folder under remotePath, in
// directory listing order, and returns the published artifacts.
//
// The run is fail-fast: the first failing upload aborts the batch, the
// error is returned alongside the artifacts published before it, and no
// rescan fires. After a fully successful pass the rescan runs exactly once
// (if enabled); a rescan failure is logged but does not invalidate the
// published artifacts.
func (w *Workflow) PublishAll(cfg config.Config, folder, remotePath string, opts Options) ([]artifact.Artifact, error) {
	fi, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf(msg.FolderNotFound+": %w", folder, err)
	}
	if !fi.IsDir() {
		log.Error().Msgf("%s is a file, not a folder; pass the containing folder instead", folder)
		return nil, fmt.Errorf(msg.FolderIsFile, folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	if opts.Version == "" {
		opts.Version = artifact.DefaultVersion
	}

	var published []artifact.Artifact
	for _, entry := range entries {
		if !w.eligible(entry, opts) {
			continue
		}

		id, _ := artifact.Identify(entry.Name())
		if opts.Verbose || cfg.Verbosity > 1 {
			log.Info().Msgf("publishing %s as %s:%s", entry.Name(), id, opts.Version)
		}

		a, err := w.Publisher.Publish(cfg, storage.PublishRequest{
			LocalPath:   filepath.Join(folder, entry.Name()),
			RemotePath:  remotePath,
			ArtifactID:  id,
			Version:     opts.Version,
			Description: opts.Description,
			Name:        opts.Name,
			DeleteLocal: opts.DeleteLocal,
			Rescan:      false,
		})
		if err != nil {
			return published, fmt.Errorf(msg.FailedToPublish+": %w", entry.Name(), err)
		}
		published = append(published, a)
	}

	if opts.Rescan && len(published) > 0 {
		if err := w.Rescanner.Rescan(cfg); err != nil {
			log.Warn().Msgf(msg.RescanFailed, err)
		}
	}

	return published, nil
}

func (w *Workflow) eligible(entry os.DirEntry, opts Options) bool {
	if entry.IsDir() {
		return false
	}

	name := entry.Name()
	for _, pattern := range opts.Exclude {
		if glob.Glob(pattern, name) {
			return false
		}
	}

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if denyExts[strings.ToLower(ext)] {
		return false
	}
	if ext == "" {
		// Extensionless files are eligible regardless of the type filter.
		return true
	}
	if opts.Type != "" && ext != opts.Type {
		return false
	}
	return true
}
