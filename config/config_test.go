package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsesDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("POSTS_API_BASE_URL", "")
	t.Setenv("ADMIN_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, []int{10, 20, 30}, c.Pagination.LimitOptions)
}

func TestLoadReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CONFIG_FILE)
	yml := `
logging:
  level: debug
posts_api:
  base_url: http://from-file
  timeout_seconds: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv("POSTS_API_BASE_URL", "http://from-env")
	t.Setenv("ADMIN_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "http://from-env", c.PostsAPI.BaseURL)
	assert.Equal(t, 3, c.PostsAPI.TimeoutSeconds)
	// 파일에 없는 항목은 기본값을 유지한다.
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), CONFIG_FILE)
	require.NoError(t, os.WriteFile(path, []byte("logging: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
