package entity

// Registry holds every entity of a level, keyed by ID, in creation order
type Registry struct {
	nextID   EntityID
	entities map[EntityID]Entity
	order    []EntityID

	// Singleton reference
	PlayerID EntityID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		nextID:   1, // 0 is "nil"
		entities: make(map[EntityID]Entity),
	}
}

// NewID returns a new unique entity ID
func (r *Registry) NewID() EntityID {
	id := r.nextID
	r.nextID++
	return id
}

// Add registers e. The first Player added becomes the singleton.
func (r *Registry) Add(e Entity) {
	if _, ok := r.entities[e.ID()]; !ok {
		r.order = append(r.order, e.ID())
	}
	r.entities[e.ID()] = e
	if e.Kind() == KindPlayer && r.PlayerID == 0 {
		r.PlayerID = e.ID()
	}
}

// Get looks up an entity by ID
func (r *Registry) Get(id EntityID) (Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Exists checks if an entity is registered
func (r *Registry) Exists(id EntityID) bool {
	_, ok := r.entities[id]
	return ok
}

// Player returns the player, or nil before one is added
func (r *Registry) Player() *Player {
	p, _ := r.entities[r.PlayerID].(*Player)
	return p
}

// Enemy returns the enemy with the given ID
func (r *Registry) Enemy(id EntityID) (*Enemy, bool) {
	e, ok := r.entities[id].(*Enemy)
	return e, ok
}

// All returns entities in creation order
func (r *Registry) All() []Entity {
	out := make([]Entity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entities[id])
	}
	return out
}

// Enemies returns every enemy in creation order
func (r *Registry) Enemies() []*Enemy {
	var out []*Enemy
	for _, id := range r.order {
		if e, ok := r.entities[id].(*Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}

// CountKind returns the number of entities of kind k
func (r *Registry) CountKind(k Kind) int {
	n := 0
	for _, e := range r.entities {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// Len returns the number of registered entities
func (r *Registry) Len() int {
	return len(r.entities)
}
