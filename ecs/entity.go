package ecs

// Entity is an opaque identifier for a logical object. It carries no data of
// its own; identifiers are recycled after destruction, so a held Entity is
// only valid between the Create and Destroy calls that bracket it.
type Entity uint32

// entityManager issues and recycles entity identifiers from a bounded FIFO
// pool and owns the per-entity component signature table.
type entityManager struct {
	// free is a ring buffer of recycled ids, sized to capacity.
	free      []Entity
	head      int
	tail      int
	available int

	signatures []Signature
	alive      []bool
	living     int
}

func newEntityManager(capacity int) *entityManager {
	em := &entityManager{
		free:       make([]Entity, capacity),
		available:  capacity,
		signatures: make([]Signature, capacity),
		alive:      make([]bool, capacity),
	}
	for i := range em.free {
		em.free[i] = Entity(i)
	}
	return em
}

func (em *entityManager) capacity() int {
	return len(em.alive)
}

func (em *entityManager) liveCount() int {
	return em.living
}

func (em *entityManager) isAlive(e Entity) bool {
	return int(e) < len(em.alive) && em.alive[e]
}

func (em *entityManager) validate(e Entity) error {
	if !em.isAlive(e) {
		return InvalidEntityError{Entity: e}
	}
	return nil
}

// create pops the oldest recycled id and resets its signature.
func (em *entityManager) create() (Entity, error) {
	if em.available == 0 {
		return 0, CapacityExceededError{Capacity: em.capacity()}
	}
	e := em.free[em.head]
	em.head = (em.head + 1) % len(em.free)
	em.available--

	em.signatures[e] = Signature{}
	em.alive[e] = true
	em.living++
	return e, nil
}

// destroy clears the signature and returns the id to the pool. It does not
// touch component stores or system sets; the Coordinator propagates the
// destruction to those before calling here.
func (em *entityManager) destroy(e Entity) error {
	if err := em.validate(e); err != nil {
		return err
	}
	em.signatures[e] = Signature{}
	em.alive[e] = false
	em.living--

	em.free[em.tail] = e
	em.tail = (em.tail + 1) % len(em.free)
	em.available++
	return nil
}

func (em *entityManager) signature(e Entity) (Signature, error) {
	if err := em.validate(e); err != nil {
		return Signature{}, err
	}
	return em.signatures[e], nil
}

func (em *entityManager) setSignature(e Entity, s Signature) error {
	if err := em.validate(e); err != nil {
		return err
	}
	em.signatures[e] = s
	return nil
}

func (em *entityManager) forEachAlive(fn func(Entity, Signature)) {
	for i, ok := range em.alive {
		if ok {
			fn(Entity(i), em.signatures[i])
		}
	}
}
