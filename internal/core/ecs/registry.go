package ecs

// Registry knows every component store in the world (transforms, velocities,
// bullets, hostiles, jerry cans and the rest) so a despawn can strip an
// entity from all of them at once.
type Registry struct {
	stores []Removable
}

func NewRegistry() *Registry {
	return &Registry{stores: make([]Removable, 0, 16)}
}

// Register adds a store. Stores are visited in registration order.
func (r *Registry) Register(store Removable) {
	r.stores = append(r.stores, store)
}

// RemoveAll drops id from every store. Stores that never held it ignore
// the call.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}
