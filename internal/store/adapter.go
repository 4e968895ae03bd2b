package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/idilsaglam/tada/internal/model"
)

//go:embed todos.schema.json
var collectionSchema string

const schemaURL = "https://tada.local/todos.schema.json"

// Adapter loads and saves a model.Collection through a Slot.
// It never fails loudly: bad or missing data loads as an empty collection and
// write errors are logged and handed back to the caller.
type Adapter struct {
	slot   Slot
	key    string
	schema *jsonschema.Schema
	log    *zap.Logger
}

// NewAdapter binds slot under key.
func NewAdapter(slot Slot, key string, log *zap.Logger) (*Adapter, error) {
	if slot == nil {
		return nil, errors.New("nil slot")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("empty slot key")
	}
	if log == nil {
		log = zap.NewNop()
	}
	schema, err := jsonschema.CompileString(schemaURL, collectionSchema)
	if err != nil {
		return nil, fmt.Errorf("compile collection schema: %w", err)
	}
	return &Adapter{slot: slot, key: key, schema: schema, log: log.Named("store")}, nil
}

// Load reads the slot once. Absent, unreadable or malformed data yields an
// empty collection.
func (a *Adapter) Load() model.Collection {
	b, err := a.slot.Read(a.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.log.Debug("no stored todos", zap.String("key", a.key))
		} else {
			a.log.Warn("read slot failed, starting empty", zap.String("key", a.key), zap.Error(err))
		}
		return model.Collection{}
	}
	c, err := a.decode(b)
	if err != nil {
		a.log.Warn("stored todos unusable, starting empty", zap.String("key", a.key), zap.Error(err))
		return model.Collection{}
	}
	a.log.Debug("loaded todos", zap.String("key", a.key), zap.Int("count", c.Len()))
	return c
}

// Save overwrites the slot with the full collection.
func (a *Adapter) Save(c model.Collection) error {
	b, err := Encode(c)
	if err != nil {
		a.log.Error("encode todos failed", zap.Error(err))
		return err
	}
	if err := a.slot.Write(a.key, b); err != nil {
		a.log.Error("write slot failed", zap.String("key", a.key), zap.Int("count", c.Len()), zap.Error(err))
		return fmt.Errorf("write slot %q: %w", a.key, err)
	}
	a.log.Debug("saved todos", zap.String("key", a.key), zap.Int("count", c.Len()))
	return nil
}

// Encode renders the collection as an indented JSON array with a trailing newline.
func Encode(c model.Collection) ([]byte, error) {
	b, err := json.MarshalIndent(c.Items(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return append(b, '\n'), nil
}

func (a *Adapter) decode(b []byte) (model.Collection, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return model.Collection{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := a.schema.Validate(doc); err != nil {
		return model.Collection{}, fmt.Errorf("shape: %w", err)
	}

	var items []model.Todo
	if err := json.Unmarshal(b, &items); err != nil {
		return model.Collection{}, fmt.Errorf("json unmarshal: %w", err)
	}
	seen := make(map[int]bool, len(items))
	for i, it := range items {
		if seen[it.ID] {
			return model.Collection{}, fmt.Errorf("item %d: duplicate id %d", i, it.ID)
		}
		seen[it.ID] = true
		if it.ID == math.MaxInt {
			// leaves no room for the next id
			return model.Collection{}, fmt.Errorf("item %d: id %d out of range", i, it.ID)
		}
		if strings.TrimSpace(it.Text) == "" {
			return model.Collection{}, fmt.Errorf("item %d: blank text", i)
		}
	}
	return model.NewCollection(items), nil
}
