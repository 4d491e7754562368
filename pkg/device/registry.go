// ABOUTME: Process-wide driver registry with explicit lifecycle
// ABOUTME: Lets applications register backends and tests substitute fakes
package device

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps driver names to implementations. The first driver
// registered becomes the default until SetDefault overrides it.
type Registry struct {
	mu      sync.Mutex
	drivers map[string]Driver
	def     string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{drivers: make(map[string]Driver)}
}

// Register adds drv under its own name. Registering the same name twice
// is an error; unregister the old driver first.
func (r *Registry) Register(drv Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := drv.Name()
	if _, ok := r.drivers[name]; ok {
		return fmt.Errorf("driver %q already registered", name)
	}
	r.drivers[name] = drv
	if r.def == "" {
		r.def = name
	}
	return nil
}

// Unregister removes the named driver. Removing the default clears the
// default; an arbitrary remaining driver becomes default on next use.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drivers, name)
	if r.def == name {
		r.def = ""
	}
}

// Lookup returns the named driver.
func (r *Registry) Lookup(name string) (Driver, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drv, ok := r.drivers[name]
	return drv, ok
}

// SetDefault marks the named driver as the default.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drivers[name]; !ok {
		return fmt.Errorf("driver %q not registered", name)
	}
	r.def = name
	return nil
}

// Default returns the default driver, or a NoSuitableDriver error when
// the registry is empty.
func (r *Registry) Default() (Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.def != "" {
		return r.drivers[r.def], nil
	}
	for name, drv := range r.drivers {
		r.def = name
		return drv, nil
	}
	return nil, &DeviceError{Code: NoSuitableDriver, Op: "default"}
}

// Names returns the registered driver names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset removes every driver. Intended for teardown and tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers = make(map[string]Driver)
	r.def = ""
}

// The package-level registry backs NewDefault and the helpers below.
var defaultRegistry = NewRegistry()

// Register adds drv to the process-wide registry.
func Register(drv Driver) error { return defaultRegistry.Register(drv) }

// Unregister removes the named driver from the process-wide registry.
func Unregister(name string) { defaultRegistry.Unregister(name) }

// Lookup returns a driver from the process-wide registry.
func Lookup(name string) (Driver, bool) { return defaultRegistry.Lookup(name) }

// SetDefault selects the process-wide default driver.
func SetDefault(name string) error { return defaultRegistry.SetDefault(name) }

// Default returns the process-wide default driver.
func Default() (Driver, error) { return defaultRegistry.Default() }

// Drivers returns the names registered process-wide, sorted.
func Drivers() []string { return defaultRegistry.Names() }

// ResetRegistry tears down the process-wide registry.
func ResetRegistry() { defaultRegistry.Reset() }
