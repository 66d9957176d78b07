package aggregate

import (
	"fmt"
	"sort"
	"sync"
)

var registry = struct {
	sync.RWMutex
	aggs map[string]Aggregator
}{
	aggs: map[string]Aggregator{
		MinName: Min{},
		MaxName: Max{},
	},
}

// Register makes a available under name.
func Register(name string, a Aggregator) error {
	if name == "" || a == nil {
		return ErrNilAggregator
	}
	registry.Lock()
	defer registry.Unlock()
	if _, taken := registry.aggs[name]; taken {
		return fmt.Errorf("Register(%q): %w", name, ErrDuplicateAggregator)
	}
	registry.aggs[name] = a

	return nil
}

// Lookup returns the aggregator registered under name.
func Lookup(name string) (Aggregator, error) {
	registry.RLock()
	a, ok := registry.aggs[name]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownAggregator)
	}

	return a, nil
}

// Names returns the registered aggregator names in lexical order.
func Names() []string {
	registry.RLock()
	names := make([]string, 0, len(registry.aggs))
	for n := range registry.aggs {
		names = append(names, n)
	}
	registry.RUnlock()
	sort.Strings(names)

	return names
}
