package diskvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/store"
)

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	_, err = s.Read("todos")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Write("todos", []byte(`[]`)))
	require.NoError(t, s.Write("todos", []byte(`[{"id":1}]`)))
	b, err := s.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(b))

	// flat layout: the key is the file name
	onDisk, err := os.ReadFile(filepath.Join(dir, "todos"))
	require.NoError(t, err)
	assert.Equal(t, b, onDisk)
	require.NoError(t, s.Close())
}

func TestCloseKeepsData(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.Write("todos", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Close())

	reopened, err := New(dir)
	require.NoError(t, err)
	b, err := reopened.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(b))
}
