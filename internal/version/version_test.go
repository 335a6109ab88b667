package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuild(t *testing.T, version, commit string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origRead := Version, Commit, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, readBuildInfo = origVersion, origCommit, origRead
	})
	Version, Commit = version, commit
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestString(t *testing.T) {
	vcs := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	tests := []struct {
		name    string
		version string
		commit  string
		build   *debug.BuildInfo
		want    string
	}{
		{"development without build info", "development", "unknown", nil, "development"},
		{"ldflags win", "1.0.0", "abc1234", vcs, "1.0.0+abc1234-dirty"},
		{"release without commit", "2.0.0", "unknown", nil, "2.0.0"},
		{"module build info", "development", "unknown", vcs, "v0.3.1+0123456-dirty"},
		{"devel module keeps default", "development", "unknown", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "development"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.commit, tt.build)
			assert.Equal(t, tt.want, String())
		})
	}
}

func TestGetReportsGoVersion(t *testing.T) {
	withBuild(t, "1.0.0", "abc1234", nil)
	info := Get()
	assert.NotEmpty(t, info.GoVersion)
	assert.False(t, info.Dirty)
}
