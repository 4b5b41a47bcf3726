package civitai

import (
	"fmt"
	"sync"
)

// Registry is a bidirectional table between enum variants and the wire
// strings the Civitai API exchanges them as. Entries are keyed by enum type
// name plus variant, so distinct enum types may reuse the same wire string.
//
// Registration is idempotent: re-registering an identical (type, variant,
// wire) triple is a no-op, while re-registering with a different wire string
// fails with ErrDuplicateMapping. The table is safe for concurrent
// registration during startup and concurrent reads afterwards.
type Registry struct {
	mu     sync.RWMutex
	toWire map[string]map[string]string
	toVar  map[string]map[string]string
}

// RegistryEntry is a single (type, variant, wire) association in a Registry
// snapshot.
type RegistryEntry struct {
	EnumType string
	Variant  string
	Wire     string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		toWire: make(map[string]map[string]string),
		toVar:  make(map[string]map[string]string),
	}
}

// Register associates an enum variant with its wire string. It returns an
// error wrapping ErrDuplicateMapping if the variant (or the wire string) is
// already registered for this type with a different counterpart.
func (r *Registry) Register(enumType, variant, wire string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	forward, ok := r.toWire[enumType]
	if !ok {
		forward = make(map[string]string)
		r.toWire[enumType] = forward
	}

	reverse, ok := r.toVar[enumType]
	if !ok {
		reverse = make(map[string]string)
		r.toVar[enumType] = reverse
	}

	if existing, ok := forward[variant]; ok {
		if existing == wire {
			return nil
		}

		return fmt.Errorf("%w: %s.%s already maps to %q, refusing %q",
			ErrDuplicateMapping, enumType, variant, existing, wire)
	}

	if existing, ok := reverse[wire]; ok {
		return fmt.Errorf("%w: %s wire value %q already maps to variant %q, refusing %q",
			ErrDuplicateMapping, enumType, wire, existing, variant)
	}

	forward[variant] = wire
	reverse[wire] = variant

	return nil
}

// MustRegister is Register but panics on conflict. Built-in enum registration
// goes through this: a conflicting mapping is a programming error in a feature
// module and should fail loudly at startup rather than be swallowed.
func (r *Registry) MustRegister(enumType, variant, wire string) {
	err := r.Register(enumType, variant, wire)
	if err != nil {
		panic(err)
	}
}

// ToWire returns the wire string for a registered variant. It returns an
// error wrapping ErrUnmappedVariant if the variant is unknown.
func (r *Registry) ToWire(enumType, variant string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wire, ok := r.toWire[enumType][variant]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrUnmappedVariant, enumType, variant)
	}

	return wire, nil
}

// FromWire returns the variant for a wire string received from the API. It
// returns an error wrapping ErrUnknownWireValue if the string is not
// registered; callers on the decode path surface this as a recoverable decode
// failure, never as a fault.
func (r *Registry) FromWire(enumType, wire string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variant, ok := r.toVar[enumType][wire]
	if !ok {
		return "", fmt.Errorf("%w: %s %q", ErrUnknownWireValue, enumType, wire)
	}

	return variant, nil
}

// Entries returns a snapshot of all registered associations. Order is
// unspecified; intended for diagnostics.
func (r *Registry) Entries() []RegistryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []RegistryEntry

	for enumType, forward := range r.toWire {
		for variant, wire := range forward {
			entries = append(entries, RegistryEntry{EnumType: enumType, Variant: variant, Wire: wire})
		}
	}

	return entries
}

// Count returns the number of registered associations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, forward := range r.toWire {
		count += len(forward)
	}

	return count
}

//nolint:gochecknoglobals // process-wide registry, constructed once on first use
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry, populated with every
// built-in enum mapping on first use. Registration order across feature areas
// is commutative, so the population sequence carries no meaning.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		RegisterSharedEnums(defaultRegistry)
		RegisterModelEnums(defaultRegistry)
		RegisterImageEnums(defaultRegistry)
	})

	return defaultRegistry
}
