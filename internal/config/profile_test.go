package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aaraujo/ssbctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ssbctl.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
server {
    base_url = "https://ssb.example.com:18121"
    username = "admin"
    password = "supersecret1"
}
`)

	profile, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, profile.Server)
	assert.Equal(t, "https://ssb.example.com:18121", profile.Server.BaseURL)
	assert.Equal(t, "admin", profile.Server.Username)
	assert.Equal(t, "supersecret1", profile.Server.Password)
}

func TestLoadMissingFileYieldsEmptyProfile(t *testing.T) {
	profile, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Nil(t, profile.Server)
}

func TestLoadResolvesEnvIndirection(t *testing.T) {
	t.Setenv("SSB_PASSWORD", "hunter2")

	path := writeProfile(t, `
server {
    base_url = "https://ssb.example.com:18121"
    username = "admin"
    password = "ENV:SSB_PASSWORD"
}
`)

	profile, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, profile.Server)
	assert.Equal(t, "hunter2", profile.Server.Password)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := writeProfile(t, `server { base_url = `)

	_, err := config.Load(path)
	require.Error(t, err)
}
