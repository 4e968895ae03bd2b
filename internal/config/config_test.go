package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's own .tada files out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	t.Setenv("TADA_CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(home, ".tada"), cfg.Storage.Dir)
	assert.Equal(t, "todos", cfg.Storage.Key)
	assert.Equal(t, filepath.Join(home, ".tada", "tada.log"), cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.Empty(t, cfg.File)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, ".tada.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
storage:
  backend: diskv
  dir: /tmp/tada-data
  key: groceries
ui:
  theme: neon
`), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, BackendDiskv, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/tada-data", cfg.Storage.Dir)
	assert.Equal(t, "groceries", cfg.Storage.Key)
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.Equal(t, file, cfg.File)

	t.Setenv("TADA_BACKEND", "sqlite")
	t.Setenv("TADA_KEY", "work")
	cfg, err = Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "work", cfg.Storage.Key)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := isolate(t)
	_, err := Load(New(), filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tada.yaml"), []byte("storage: [\n"), 0o644))
	_, err := Load(New(), "")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		storage Storage
		wantErr bool
	}{
		{name: "file", storage: Storage{Backend: BackendFile, Dir: "/d", Key: "todos"}},
		{name: "sqlite", storage: Storage{Backend: BackendSQLite, Dir: "/d", Key: "todos"}},
		{name: "unknown backend", storage: Storage{Backend: "redis", Dir: "/d", Key: "todos"}, wantErr: true},
		{name: "empty key", storage: Storage{Backend: BackendFile, Dir: "/d"}, wantErr: true},
		{name: "empty dir", storage: Storage{Backend: BackendFile, Key: "todos"}, wantErr: true},
		{name: "key with slash", storage: Storage{Backend: BackendFile, Dir: "/d", Key: "a/b"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{Storage: tt.storage}).Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUnknownBackendSentinel(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_BACKEND", "redis")
	_, err := Load(New(), "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
