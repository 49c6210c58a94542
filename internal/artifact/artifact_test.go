package artifact

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depo-io/depoctl/internal/config"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		wantID   string
		wantType string
	}{
		{"plain", "ant.jar", "ant", "jar"},
		{"pom", "commons-logging.pom", "commons-logging", "pom"},
		{"no extension", "LICENSE", "LICENSE", ""},
		{"dotfile", ".DS_Store", ".DS_Store", ""},
		{"with directory", "some/dir/report.pdf", "report", "pdf"},
		{"wrapper suffix keeps inner extension", "data.nii.gz", "data.nii", "gz"},
		{"tarball", "backup.tar.gz", "backup.tar", "gz"},
		{"non-wrapper multi dot", "ant-1.6.5.jar", "ant-1.6.5", "jar"},
		{"uppercase wrapper", "data.nii.GZ", "data.nii", "GZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, typ := Identify(tt.fileName)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantType, typ)
		})
	}
}

func TestNew_DefaultVersion(t *testing.T) {
	a := New("report.pdf", "grp", "")
	assert.Equal(t, "1", a.Version)

	a = New("report.pdf", "grp", "2.3")
	assert.Equal(t, "2.3", a.Version)
}

func TestFileName(t *testing.T) {
	a := Artifact{ID: "ant", Version: "1.6.5", Type: "pom"}
	assert.Equal(t, "ant-1.6.5.pom", a.FileName())

	a = Artifact{ID: "LICENSE", Version: "1"}
	assert.Equal(t, "LICENSE-1", a.FileName())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "nii", Artifact{ID: "data.nii", Type: "gz"}.Format())
	assert.Equal(t, "gz", Artifact{ID: "data", Type: "gz"}.Format())
	assert.Equal(t, "jar", Artifact{ID: "ant", Type: "jar"}.Format())
}

func TestRemoteURL(t *testing.T) {
	cfg := config.Config{RepositoryURL: "https://repo1.maven.org/maven2/"}

	a := Artifact{RemotePath: "ant", ID: "ant-commons-logging", Version: "1.6.5", Type: "pom"}
	assert.Equal(t,
		"https://repo1.maven.org/maven2/ant/ant-commons-logging/1.6.5/ant-commons-logging-1.6.5.pom",
		a.RemoteURL(cfg))

	// Missing trailing slash on the repository root must not change the result.
	cfg.RepositoryURL = "https://repo1.maven.org/maven2"
	assert.Equal(t,
		"https://repo1.maven.org/maven2/ant/ant-commons-logging/1.6.5/ant-commons-logging-1.6.5.pom",
		a.RemoteURL(cfg))
}

func TestRemoteURL_NoType(t *testing.T) {
	cfg := config.Config{RepositoryURL: "https://depot.depo.io/repository/releases/"}
	a := Artifact{RemotePath: "grp", ID: "LICENSE", Version: "1"}
	assert.Equal(t,
		"https://depot.depo.io/repository/releases/grp/LICENSE/1/LICENSE-1",
		a.RemoteURL(cfg))
}

func TestCachePath_Deterministic(t *testing.T) {
	a := New("data.nii.gz", "imaging", "4")
	b := New("data.nii.gz", "imaging", "4")

	assert.Equal(t, a.CachePath("/cache"), b.CachePath("/cache"))
	assert.Equal(t,
		filepath.Join("/cache", "imaging", "data.nii", "4", "data.nii-4.gz"),
		a.CachePath("/cache"))
}

func TestRoundTrip_IdentityMatchesURL(t *testing.T) {
	cfg := config.Config{RepositoryURL: "https://depot.depo.io/repository/releases/"}

	// The URL computed from a freshly identified file must equal the URL
	// computed independently from the explicit identity tuple.
	fromFile := New("widget.zip", "tools", "2")
	explicit := Artifact{RemotePath: "tools", ID: "widget", Version: "2", Type: "zip"}
	assert.Equal(t, explicit.RemoteURL(cfg), fromFile.RemoteURL(cfg))
}
