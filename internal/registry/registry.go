package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrEmptyName   = errors.New("descriptor name is empty")
	ErrEntryExists = errors.New("descriptor already registered")
)

// Registry stores descriptors by fully qualified name.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Descriptor)}
}

// Default is the registry demo packages register into from init().
var Default = NewRegistry()

// Register adds a descriptor to the registry.
func (r *Registry) Register(d Descriptor) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.Name]; ok {
		return fmt.Errorf("%w: %s", ErrEntryExists, d.Name)
	}
	r.items[d.Name] = d
	return nil
}

// MustRegister is Register for init() callers; it panics on error.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered under a fully qualified name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.items[name]
	return d, ok
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Register adds a descriptor to the Default registry.
func Register(d Descriptor) error { return Default.Register(d) }

// MustRegister adds a descriptor to the Default registry, panicking on error.
func MustRegister(d Descriptor) { Default.MustRegister(d) }

// Lookup finds a descriptor in the Default registry.
func Lookup(name string) (Descriptor, bool) { return Default.Lookup(name) }

// Scan lists the Default registry under a namespace.
func Scan(namespace string) []Entry { return Default.Scan(namespace) }
