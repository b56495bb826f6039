// Package loader runs the load phase: every provider in parallel,
// fail-fast on the first error, with a read-through disk cache in
// front so warm starts never touch the network.
package loader

import (
	"context"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"shuttle/internal/cache"
	"shuttle/internal/domain"
	"shuttle/internal/eventbus"
	"shuttle/internal/provider"
)

// Aggregator fans out to all providers and joins their batches.
type Aggregator struct {
	providers []provider.Provider
}

// NewAggregator creates an aggregator over providers. Batch order in
// the merged result follows the declaration order given here.
func NewAggregator(providers []provider.Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// Titles returns the provider titles in declaration order.
func (a *Aggregator) Titles() []string {
	titles := make([]string, len(a.providers))
	for i, p := range a.providers {
		titles[i] = p.Title()
	}
	return titles
}

// Load runs every provider concurrently. The first provider error
// cancels the rest and fails the whole aggregation; no partial list is
// ever returned. On success the batches are concatenated in
// declaration order and sorted by label.
func (a *Aggregator) Load(ctx context.Context) ([]domain.Item, error) {
	group, ctx := errgroup.WithContext(ctx)

	batches := make([][]domain.Item, len(a.providers))
	for i, p := range a.providers {
		group.Go(func() error {
			batch, err := p.Load(ctx)
			if err != nil {
				return err
			}
			batches[i] = batch
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var merged []domain.Item
	for _, batch := range batches {
		merged = append(merged, batch...)
	}

	// Stable ordinal sort: the simple matcher preserves this order for
	// everything its filter lets through.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Label < merged[j].Label
	})

	return merged, nil
}

// Loader gates the aggregator behind the cache and reports progress on
// the event bus.
type Loader struct {
	aggregator *Aggregator
	cache      *cache.Cache
	bus        eventbus.EventBus
}

// New creates a loader.
func New(aggregator *Aggregator, c *cache.Cache, bus eventbus.EventBus) *Loader {
	return &Loader{aggregator: aggregator, cache: c, bus: bus}
}

// Load returns the cached snapshot when one exists, without invoking
// any provider. Otherwise it aggregates, stores the result, and
// returns it. Progress and the terminal result are published as
// LoadStarted / LoadCompleted / LoadFailed events.
func (l *Loader) Load(ctx context.Context) ([]domain.Item, error) {
	l.bus.Publish(eventbus.LoadStartedEvent{Sources: l.aggregator.Titles()})

	if items, ok, err := l.cache.Load(); ok {
		log.Printf("Loaded %d items from cache %s", len(items), l.cache.Path())
		l.bus.Publish(eventbus.LoadCompletedEvent{Items: items, FromCache: true})
		return items, nil
	} else if err != nil {
		// Corrupt snapshot: fall through to a fresh aggregation.
		log.Printf("Ignoring unreadable cache %s: %v", l.cache.Path(), err)
	}

	items, err := l.aggregator.Load(ctx)
	if err != nil {
		l.bus.Publish(eventbus.LoadFailedEvent{Err: err})
		return nil, err
	}

	if err := l.cache.Store(items); err != nil {
		// The session can still run from memory.
		log.Printf("Failed to store cache %s: %v", l.cache.Path(), err)
	}

	log.Printf("Aggregated %d items from %d providers", len(items), len(l.aggregator.providers))
	l.bus.Publish(eventbus.LoadCompletedEvent{Items: items, FromCache: false})
	return items, nil
}
