package todo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
)

type fakePersister struct {
	initial model.Collection
	saved   []model.Collection
	err     error
}

func (f *fakePersister) Load() model.Collection { return f.initial }

func (f *fakePersister) Save(c model.Collection) error {
	f.saved = append(f.saved, c)
	return f.err
}

func ids(items []model.Todo) []int {
	out := []int{}
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestScenario(t *testing.T) {
	p := &fakePersister{}
	s := Open(p, nil)

	s.Add("Buy milk")
	s.Add("Walk dog")
	require.Equal(t, []model.Todo{
		{ID: 1, Text: "Buy milk"},
		{ID: 2, Text: "Walk dog"},
	}, s.Collection().Items())

	require.True(t, s.Toggle(1))
	active, completed := s.Partitions()
	assert.Equal(t, []int{2}, ids(active))
	assert.Equal(t, []int{1}, ids(completed))

	require.True(t, s.Delete(2))
	active, completed = s.Partitions()
	assert.Empty(t, active)
	assert.Equal(t, []int{1}, ids(completed))

	assert.Len(t, p.saved, 4, "every mutation persists")
	if diff := cmp.Diff(s.Collection().Items(), p.saved[3].Items()); diff != "" {
		t.Fatalf("last save differs from memory (-mem +saved):\n%s", diff)
	}
}

func TestNoOpsDoNotPersist(t *testing.T) {
	p := &fakePersister{initial: model.NewCollection([]model.Todo{
		{ID: 1, Text: "a"},
		{ID: 2, Text: "b", Completed: true},
	})}
	s := Open(p, nil)

	_, ok := s.Add("   ")
	assert.False(t, ok)
	assert.False(t, s.Toggle(9))
	assert.False(t, s.Delete(9))
	assert.False(t, s.Reorder(1, 1))
	assert.False(t, s.Reorder(1, 2), "cross-partition move")
	assert.False(t, s.Reorder(1, 9))

	assert.Empty(t, p.saved)
	assert.Equal(t, 2, s.Collection().Len())
}

func TestReorderPersists(t *testing.T) {
	p := &fakePersister{initial: model.NewCollection([]model.Todo{
		{ID: 1, Text: "a"}, {ID: 2, Text: "b"}, {ID: 3, Text: "c"},
	})}
	s := Open(p, nil)

	require.True(t, s.Reorder(3, 1))
	assert.Equal(t, []int{3, 1, 2}, ids(s.Collection().Items()))
	require.Len(t, p.saved, 1)
	assert.Equal(t, []int{3, 1, 2}, ids(p.saved[0].Items()))
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := &fakePersister{err: errors.New("quota exceeded")}
	s := Open(p, zap.New(core))

	td, ok := s.Add("Buy milk")
	require.True(t, ok)
	assert.Error(t, s.SaveErr())
	got, found := s.Get(td.ID)
	require.True(t, found)
	assert.Equal(t, "Buy milk", got.Text)
	assert.Equal(t, 1, logs.FilterMessage("mutation kept in memory only").Len())

	p.err = nil
	s.Toggle(td.ID)
	assert.NoError(t, s.SaveErr())
}

// memSlot lets the real adapter run under the store.
type memSlot map[string][]byte

func (m memSlot) Read(key string) ([]byte, error) {
	b, ok := m[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b, nil
}
func (m memSlot) Write(key string, b []byte) error { m[key] = b; return nil }
func (m memSlot) Close() error                     { return nil }

func TestReopenRestoresCollection(t *testing.T) {
	slot := memSlot{}
	a, err := store.NewAdapter(slot, "todos", nil)
	require.NoError(t, err)

	s := Open(a, nil)
	s.Add("one")
	s.Add("two")
	s.Add("three")
	s.Toggle(2)
	s.Reorder(3, 1)

	b, err := store.NewAdapter(slot, "todos", nil)
	require.NoError(t, err)
	reopened := Open(b, nil)
	if diff := cmp.Diff(s.Collection().Items(), reopened.Collection().Items()); diff != "" {
		t.Fatalf("reopen mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenWithMalformedSlot(t *testing.T) {
	slot := memSlot{"todos": []byte("{not json")}
	a, err := store.NewAdapter(slot, "todos", nil)
	require.NoError(t, err)

	var s *Store
	require.NotPanics(t, func() { s = Open(a, nil) })
	assert.Equal(t, 0, s.Collection().Len())

	td, ok := s.Add("fresh start")
	require.True(t, ok)
	assert.Equal(t, 1, td.ID)
}
