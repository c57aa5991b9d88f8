package game

// EntityID is a stable entity identity: arena index in the low 32 bits,
// slot generation in the high 32. A freed slot bumps its generation, so a
// stale ID can never resolve to the slot's next occupant.
type EntityID uint64

func makeID(index, gen uint32) EntityID {
	return EntityID(gen)<<32 | EntityID(index)
}

func (id EntityID) index() uint32 { return uint32(id) }
func (id EntityID) gen() uint32   { return uint32(id >> 32) }

// KindAny matches every entity kind in ForEachActive.
const KindAny EntityKind = -1

// Registry owns the storage of every simulated entity. Slots are
// heap-allocated once and recycled through a free list, so a held
// *Entity stays valid while new entities are added mid-pass. Destroyed
// slots park on a pending list and are only recycled at Compact, so an
// ID handed out this frame stays resolvable for the whole frame even
// after removal.
type Registry struct {
	slots   []*Entity
	gens    []uint32
	free    []uint32
	pending []uint32

	counts [kindCount]int

	// hooks are invoked on removal, per kind. The registry knows nothing
	// about game rules; the run driver supplies these.
	hooks [kindCount]func(*Entity)
}

// NewRegistry creates an empty registry with room for capacity entities.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		slots:   make([]*Entity, 0, capacity),
		gens:    make([]uint32, 0, capacity),
		free:    make([]uint32, 0, capacity/4),
		pending: make([]uint32, 0, 64),
	}
}

// SetRemovalHook registers fn to run whenever an entity of the given kind
// is removed. The entity is still fully readable inside the hook.
func (r *Registry) SetRemovalHook(kind EntityKind, fn func(*Entity)) {
	r.hooks[kind] = fn
}

// Add allocates a slot for a new entity of the given kind and returns it
// for payload initialization. The returned entity already carries its ID;
// initializers must preserve it.
func (r *Registry) Add(kind EntityKind) *Entity {
	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, &Entity{})
		r.gens = append(r.gens, 0)
		index = uint32(len(r.slots) - 1)
	}

	e := r.slots[index]
	*e = Entity{
		ID:     makeID(index, r.gens[index]),
		Kind:   kind,
		Active: true,
	}
	r.counts[kind]++
	return e
}

// Get resolves an ID to its entity. Returns false for stale or unknown
// IDs and for entities already removed this frame.
func (r *Registry) Get(id EntityID) (*Entity, bool) {
	i := id.index()
	if int(i) >= len(r.slots) || r.gens[i] != id.gen() {
		return nil, false
	}
	e := r.slots[i]
	if !e.Active {
		return nil, false
	}
	return e, true
}

// Remove deactivates the entity and fires its kind's removal hook. The
// slot is not recycled until Compact, so other references held within the
// current frame stay valid.
func (r *Registry) Remove(id EntityID) {
	i := id.index()
	if int(i) >= len(r.slots) || r.gens[i] != id.gen() {
		return
	}
	e := r.slots[i]
	if !e.Active {
		return
	}
	e.Active = false
	r.counts[e.Kind]--
	if hook := r.hooks[e.Kind]; hook != nil {
		hook(e)
	}
	r.pending = append(r.pending, i)
}

// Compact recycles every slot removed since the last call. The run driver
// calls this once at the end of each frame, after all hooks have run.
func (r *Registry) Compact() {
	for _, i := range r.pending {
		r.gens[i]++
		r.free = append(r.free, i)
	}
	r.pending = r.pending[:0]
}

// ForEachActive visits every active entity of the given kind (or all
// kinds with KindAny) in arena order. Removing entities during the pass
// is safe: removal only deactivates the slot, so no other entity is
// skipped or visited twice. Entities added during the pass are not
// guaranteed a visit until the next pass.
func (r *Registry) ForEachActive(kind EntityKind, fn func(*Entity)) {
	n := len(r.slots)
	for i := 0; i < n; i++ {
		e := r.slots[i]
		if !e.Active {
			continue
		}
		if kind != KindAny && e.Kind != kind {
			continue
		}
		fn(e)
	}
}

// CountByKind returns the number of active entities of a kind. O(1);
// destroyed slots are never scanned.
func (r *Registry) CountByKind(kind EntityKind) int {
	return r.counts[kind]
}

// Len returns the total number of active entities.
func (r *Registry) Len() int {
	total := 0
	for _, c := range r.counts {
		total += c
	}
	return total
}
