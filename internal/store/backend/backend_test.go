package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
)

func TestOpenEachBackendRoundTrips(t *testing.T) {
	for _, name := range []string{config.BackendFile, config.BackendDiskv, config.BackendSQLite} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := config.Storage{Backend: name, Dir: dir, Key: "todos"}

			slot, err := Open(cfg)
			require.NoError(t, err)

			_, err = slot.Read("todos")
			assert.ErrorIs(t, err, store.ErrNotFound)

			a, err := store.NewAdapter(slot, cfg.Key, zap.NewNop())
			require.NoError(t, err)
			c := model.NewCollection([]model.Todo{
				{ID: 1, Text: "Buy milk", Completed: true},
				{ID: 2, Text: "Walk dog"},
			})
			require.NoError(t, a.Save(c))
			require.NoError(t, slot.Close())

			reopened, err := Open(cfg)
			require.NoError(t, err)
			defer reopened.Close()
			b, err := store.NewAdapter(reopened, cfg.Key, zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, c.Items(), b.Load().Items())
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(config.Storage{Backend: "redis", Dir: t.TempDir(), Key: "todos"})
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}
