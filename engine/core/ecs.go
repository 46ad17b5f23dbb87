package core

// EntityID is a unique identifier for simulation entities
type EntityID uint64

// Component is a marker interface for all components
type Component interface {
	Type() ComponentType
}

// ComponentType identifies the type of component
type ComponentType uint32

const (
	CompPosition ComponentType = iota
	CompHealth
	CompEnemy
	CompProjectile
	CompZone
	CompMark
	CompMax
)

// World holds all entities and their components
type World struct {
	entities  map[EntityID]map[ComponentType]Component
	systems   []System
	toRemove  []EntityID
	nextID    EntityID
	TickCount uint64
}

// System processes entities each simulation step
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]map[ComponentType]Component),
		nextID:   1,
	}
}

// Spawn creates a new entity and returns its ID
func (w *World) Spawn() EntityID {
	id := w.nextID
	w.nextID++
	w.entities[id] = make(map[ComponentType]Component)
	return id
}

// Attach adds a component to an entity
func (w *World) Attach(id EntityID, c Component) {
	if comps, ok := w.entities[id]; ok {
		comps[c.Type()] = c
	}
}

// Detach removes a component from an entity
func (w *World) Detach(id EntityID, ct ComponentType) {
	if comps, ok := w.entities[id]; ok {
		delete(comps, ct)
	}
}

// Get returns a component for an entity, or nil
func (w *World) Get(id EntityID, ct ComponentType) Component {
	if comps, ok := w.entities[id]; ok {
		return comps[ct]
	}
	return nil
}

// Has checks if an entity has a component
func (w *World) Has(id EntityID, ct ComponentType) bool {
	if comps, ok := w.entities[id]; ok {
		_, exists := comps[ct]
		return exists
	}
	return false
}

// Destroy marks an entity for removal at the end of the current tick
func (w *World) Destroy(id EntityID) {
	w.toRemove = append(w.toRemove, id)
}

// Query returns all entity IDs that have ALL specified component types
func (w *World) Query(types ...ComponentType) []EntityID {
	var result []EntityID
	for id, comps := range w.entities {
		match := true
		for _, t := range types {
			if _, ok := comps[t]; !ok {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}

// Count returns the number of entities carrying a component type
func (w *World) Count(ct ComponentType) int {
	n := 0
	for _, comps := range w.entities {
		if _, ok := comps[ct]; ok {
			n++
		}
	}
	return n
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick runs all systems once, then prunes destroyed entities.
// Systems run in ascending priority order. Entities destroyed mid-tick stay
// in the world (flagged on their components) until the prune here, so later
// systems must check those flags rather than entity existence.
func (w *World) Tick(dt float64) {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	for _, id := range w.toRemove {
		delete(w.entities, id)
	}
	w.toRemove = w.toRemove[:0]
	w.TickCount++
}

// EntityCount returns the number of alive entities
func (w *World) EntityCount() int {
	return len(w.entities)
}
