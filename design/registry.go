package design

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownDesign is returned by Lookup for names that are not registered.
var ErrUnknownDesign = errors.New("design: unknown design")

// DefaultName is the design used when none is configured.
const DefaultName = "simple"

// Factory creates a new design instance.
type Factory func() Design

var (
	registryMu sync.RWMutex
	designs    = make(map[string]Factory)
)

// Register registers a design factory with the given name.
// This is typically called from init() functions.
// If a design with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	designs[name] = factory
}

// Unregister removes a design from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(designs, name)
}

// Names returns the registered design names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(designs))
	for name := range designs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a design with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := designs[name]
	return ok
}

// Lookup returns a new instance of the named design.
func Lookup(name string) (Design, error) {
	registryMu.RLock()
	factory, ok := designs[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownDesign, name, Names())
	}
	return factory(), nil
}

// Default returns the default design.
func Default() Design {
	d, err := Lookup(DefaultName)
	if err != nil {
		panic(err)
	}
	return d
}

func init() {
	Register("sv", func() Design { return SV{} })
	Register("logo", func() Design { return Logo{} })
	Register("simple", func() Design { return Simple{} })
	Register("white", func() Design { return White{} })
	Register("svg", func() Design { return DefaultSVG() })
}
