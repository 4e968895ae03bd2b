// Package backend opens the store.Slot selected by configuration.
package backend

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/store/diskvstore"
	"github.com/idilsaglam/tada/internal/store/jsonstore"
	"github.com/idilsaglam/tada/internal/store/sqlitestore"
)

func Open(cfg config.Storage) (store.Slot, error) {
	var (
		slot store.Slot
		err  error
	)
	switch cfg.Backend {
	case config.BackendFile, "":
		slot, err = openAs(jsonstore.New(cfg.Dir))
	case config.BackendDiskv:
		slot, err = openAs(diskvstore.New(cfg.Dir))
	case config.BackendSQLite:
		slot, err = openAs(sqlitestore.New(cfg.Dir))
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Backend, err)
	}
	return slot, nil
}

func openAs[S store.Slot](s S, err error) (store.Slot, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
