package variant

import "sync"

// unionRegistry is the package-level registry of named unions. Registering
// a union under a stable name lets code that receives a serialized
// single-key mapping tagged with that name recover the right parser without
// plumbing Union values through every layer.
var (
	unionRegistry = make(map[string]*Union)
	registryMu    sync.RWMutex
)

// Register stores a union under the given name, replacing any union
// previously registered under it. It is thread-safe and intended to be
// called at initialization time.
func Register(name string, u *Union) {
	registryMu.Lock()
	defer registryMu.Unlock()

	unionRegistry[name] = u
}

// Lookup returns the union registered under name, if any.
func Lookup(name string) (*Union, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	u, ok := unionRegistry[name]
	return u, ok
}

// Registered returns the names of all registered unions, in no particular
// order.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(unionRegistry))
	for name := range unionRegistry {
		names = append(names, name)
	}
	return names
}

// Clear resets the registry. This is primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()

	unionRegistry = make(map[string]*Union)
}
