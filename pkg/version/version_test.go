package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNewer(t *testing.T) {
	assert.True(t, isNewer("1.10.0", "1.9.3"))
	assert.True(t, isNewer("2.0.0", "1.99.99"))
	assert.False(t, isNewer("1.2.3", "1.2.3"))
	assert.False(t, isNewer("1.2.3", "1.2.3-dirty"))
	assert.False(t, isNewer("1.2.0", "1.10.0"))
}

func TestLatestRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v1.4.2"}`))
	}))
	defer server.Close()

	latest, err := latestRelease(server.Client(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", latest)
}

func TestLatestRelease_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := latestRelease(server.Client(), server.URL)
	assert.Error(t, err)
}

func TestFormatVersion(t *testing.T) {
	oldVersion, oldCommit, oldBuild := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuild }()

	Version, Commit, BuildTime = "1.0.0", "", ""
	assert.Equal(t, "1.0.0 (development)", FormatVersion())

	Version, Commit, BuildTime = "1.0.0", "abc1234", "2024-05-10T08:30:00Z"
	assert.Equal(t, "1.0.0 (commit: abc1234, built at: 2024-05-10T08:30:00Z)", FormatVersion())
}
