package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuttle/internal/cache"
	"shuttle/internal/domain"
	"shuttle/internal/eventbus"
	"shuttle/internal/provider"
)

// fakeProvider returns a fixed batch or a fixed error.
type fakeProvider struct {
	title string
	items []domain.Item
	err   error

	mu     sync.Mutex
	called bool
}

func (f *fakeProvider) Title() string { return f.title }

func (f *fakeProvider) Load(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	f.called = true
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeProvider) wasCalled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.called
}

// recordingBus captures published events in order.
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (r *recordingBus) Publish(e eventbus.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (r *recordingBus) Close() {}

func (r *recordingBus) types() []eventbus.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]eventbus.EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type()
	}
	return types
}

func item(label, value string) domain.Item {
	return domain.Item{Label: label, Value: value, Haystack: domain.Normalize(label)}
}

func TestAggregatorMergesAndSortsByLabel(t *testing.T) {
	aggregator := NewAggregator([]provider.Provider{
		&fakeProvider{title: "one", items: []domain.Item{item("delta", "d"), item("alpha", "a")}},
		&fakeProvider{title: "two", items: []domain.Item{item("charlie", "c"), item("bravo", "b")}},
	})

	items, err := aggregator.Load(context.Background())
	require.NoError(t, err)

	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, labels)
}

func TestAggregatorSortIsStableAcrossBatchOrder(t *testing.T) {
	// Equal labels keep provider-declaration order after the sort.
	aggregator := NewAggregator([]provider.Provider{
		&fakeProvider{title: "one", items: []domain.Item{item("same", "from-one")}},
		&fakeProvider{title: "two", items: []domain.Item{item("same", "from-two")}},
	})

	items, err := aggregator.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "from-one", items[0].Value)
	assert.Equal(t, "from-two", items[1].Value)
}

func TestAggregatorFailFast(t *testing.T) {
	boom := errors.New("boom")
	aggregator := NewAggregator([]provider.Provider{
		&fakeProvider{title: "good", items: []domain.Item{item("alpha", "a")}},
		&fakeProvider{title: "bad", err: boom},
		&fakeProvider{title: "also-good", items: []domain.Item{item("bravo", "b")}},
	})

	items, err := aggregator.Load(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Nil(t, items, "no partial list on failure")
}

func TestLoaderColdRunAggregatesAndStores(t *testing.T) {
	c := cache.New(filepath.Join(t.TempDir(), "items.json"))
	bus := &recordingBus{}
	p := &fakeProvider{title: "one", items: []domain.Item{item("alpha", "a")}}

	items, err := New(NewAggregator([]provider.Provider{p}), c, bus).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	stored, ok, err := c.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, items, stored)

	assert.Equal(t, []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventLoadCompleted,
	}, bus.types())
}

func TestLoaderWarmRunSkipsProviders(t *testing.T) {
	c := cache.New(filepath.Join(t.TempDir(), "items.json"))
	cached := []domain.Item{item("cached", "c")}
	require.NoError(t, c.Store(cached))

	p := &fakeProvider{title: "one", items: []domain.Item{item("fresh", "f")}}
	bus := &recordingBus{}

	items, err := New(NewAggregator([]provider.Provider{p}), c, bus).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cached, items)
	assert.False(t, p.wasCalled(), "providers are not invoked on a warm run")

	bus.mu.Lock()
	completed := bus.events[len(bus.events)-1].(eventbus.LoadCompletedEvent)
	bus.mu.Unlock()
	assert.True(t, completed.FromCache)
}

func TestLoaderCorruptCacheFallsBackToAggregation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0644))
	c := cache.New(path)

	p := &fakeProvider{title: "one", items: []domain.Item{item("fresh", "f")}}

	items, err := New(NewAggregator([]provider.Provider{p}), c, &recordingBus{}).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].Label)
	assert.True(t, p.wasCalled())
}

func TestLoaderPublishesFailure(t *testing.T) {
	c := cache.New(filepath.Join(t.TempDir(), "items.json"))
	bus := &recordingBus{}
	boom := errors.New("boom")

	_, err := New(NewAggregator([]provider.Provider{
		&fakeProvider{title: "bad", err: boom},
	}), c, bus).Load(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventLoadFailed,
	}, bus.types())

	_, ok, loadErr := c.Load()
	require.NoError(t, loadErr)
	assert.False(t, ok, "nothing is cached on failure")
}
