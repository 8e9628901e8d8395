package assist

import (
	"fmt"
	"maps"
	"strings"
	"sync"
)

// Registry holds signed-up businesses for the lifetime of the process.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// BusinessID derives the registry key from a display name.
func BusinessID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// ParseOrders reads "id:status,id:status". Entries without ':' are
// skipped, a repeated id keeps the last status.
func ParseOrders(entries string) map[string]string {
	orders := make(map[string]string)
	for _, entry := range strings.Split(entries, ",") {
		id, status, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		orders[strings.TrimSpace(id)] = strings.TrimSpace(status)
	}
	return orders
}

// Register creates or replaces the profile for name and returns the
// confirmation shown to the caller.
func (r *Registry) Register(name string, trackOrders bool, entries string) (Profile, string, error) {
	if name == "" {
		return Profile{}, "", fmt.Errorf("%w: business_name is required", ErrValidation)
	}

	orders := map[string]string{}
	if trackOrders && entries != "" {
		orders = ParseOrders(entries)
	}

	p := Profile{
		ID:     BusinessID(name),
		Name:   name,
		Orders: orders,
		Trial:  true,
	}

	r.mu.Lock()
	r.profiles[p.ID] = p
	r.mu.Unlock()

	return clone(p), fmt.Sprintf("✅ %s is now on a free trial and ready to use AssistBot!", name), nil
}

func (r *Registry) IsRegistered(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.profiles[id]
	return ok
}

func (r *Registry) Get(id string) (Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, false
	}
	return clone(p), true
}

func clone(p Profile) Profile {
	p.Orders = maps.Clone(p.Orders)
	return p
}
