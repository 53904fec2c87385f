package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"short key", "abc", "****"},
		{"boundary key", "12345678", "****"},
		{"long key", "vt_key_0123456789abcdef", "vt_key_0...cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskAPIKey(tt.key))
		})
	}
}

func TestCredentialsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, saveCredential("https://veritrace.example", "vt_key_secret"))

	assert.Equal(t, "vt_key_secret", getCredential("https://veritrace.example"))
	assert.Empty(t, getCredential("https://other.example"))

	// Credentials file should not be world readable
	info, err := os.Stat(credentialsFilePath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCredentialsMultipleServers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, saveCredential("https://a.example", "vt_key_a"))
	require.NoError(t, saveCredential("https://b.example", "vt_key_b"))

	assert.Equal(t, "vt_key_a", getCredential("https://a.example"))
	assert.Equal(t, "vt_key_b", getCredential("https://b.example"))

	creds, err := loadCredentials()
	require.NoError(t, err)
	assert.Len(t, creds.Servers, 2)
}

func TestLoadProjectConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "veritrace.toml")
	content := `server = "https://veritrace.example"
category = "Electronics"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := loadProjectConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "https://veritrace.example", config.Server)
	assert.Equal(t, "Electronics", config.Category)
}

func TestLoadProjectConfigFromPathBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "veritrace.toml")
	require.NoError(t, os.WriteFile(path, []byte("server = [broken"), 0644))

	_, err := loadProjectConfigFromPath(path)
	require.Error(t, err)
}

func TestGetServerPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VERITRACE_SERVER", "")

	// Default when nothing is configured
	server = ""
	cfgFile = filepath.Join(t.TempDir(), "missing.toml")
	t.Cleanup(func() {
		server = ""
		cfgFile = ""
	})

	// cfgFile points to a missing file, falls through to default
	assert.Equal(t, "http://localhost:8080", getServer())

	// Environment variable wins over default
	t.Setenv("VERITRACE_SERVER", "https://env.example")
	assert.Equal(t, "https://env.example", getServer())

	// Flag wins over environment
	server = "https://flag.example"
	assert.Equal(t, "https://flag.example", getServer())
}

func TestGetAPIKeyPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VERITRACE_SERVER", "https://veritrace.example")

	apiKey = ""
	t.Cleanup(func() { apiKey = "" })

	// Nothing configured
	t.Setenv("VERITRACE_API_KEY", "")
	assert.Empty(t, getAPIKey())

	// Credentials file
	require.NoError(t, saveCredential("https://veritrace.example", "vt_key_stored"))
	assert.Equal(t, "vt_key_stored", getAPIKey())

	// Environment wins over credentials
	t.Setenv("VERITRACE_API_KEY", "vt_key_env")
	assert.Equal(t, "vt_key_env", getAPIKey())

	// Flag wins over environment
	apiKey = "vt_key_flag"
	assert.Equal(t, "vt_key_flag", getAPIKey())
}
