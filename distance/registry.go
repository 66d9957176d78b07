package distance

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownMetric indicates a metric name with no registered kernel.
	ErrUnknownMetric = errors.New("distance: unknown metric")

	// ErrDuplicateMetric indicates an attempt to register a taken name.
	ErrDuplicateMetric = errors.New("distance: metric already registered")

	// ErrNilKernel indicates an attempt to register a nil kernel or an empty name.
	ErrNilKernel = errors.New("distance: nil kernel or empty name")
)

var registry = struct {
	sync.RWMutex
	kernels map[string]Kernel
}{
	kernels: map[string]Kernel{
		SqEuclideanName: SqEuclidean,
	},
}

// Register makes k available under name.
func Register(name string, k Kernel) error {
	if name == "" || k == nil {
		return ErrNilKernel
	}
	registry.Lock()
	defer registry.Unlock()
	if _, taken := registry.kernels[name]; taken {
		return fmt.Errorf("Register(%q): %w", name, ErrDuplicateMetric)
	}
	registry.kernels[name] = k

	return nil
}

// Lookup returns the kernel registered under name.
func Lookup(name string) (Kernel, error) {
	registry.RLock()
	k, ok := registry.kernels[name]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownMetric)
	}

	return k, nil
}

// Names returns the registered metric names in lexical order.
func Names() []string {
	registry.RLock()
	names := make([]string, 0, len(registry.kernels))
	for n := range registry.kernels {
		names = append(names, n)
	}
	registry.RUnlock()
	sort.Strings(names)

	return names
}
