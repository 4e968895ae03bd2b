package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/store"
)

func TestReadWriteUpsert(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Read("todos")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Write("todos", []byte("first")))
	require.NoError(t, s.Write("todos", []byte("second")))
	require.NoError(t, s.Write("other", []byte("x")))

	b, err := s.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM slots`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestOpenPersistsAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFileName)
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Write("todos", []byte("kept")))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	b, err := s2.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, "kept", string(b))
}
