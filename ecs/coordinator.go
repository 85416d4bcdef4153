package ecs

import "reflect"

// Coordinator is the single entry point to the runtime: it owns the entity
// identity registry, the component stores and the system registry, and keeps
// the three consistent across every entity and component operation.
//
// The Coordinator performs no locking. It is built for single-threaded,
// synchronous use by a frame loop; an application that parallelizes system
// execution is responsible for keeping structural mutations out of the
// parallel section.
type Coordinator struct {
	entities   *entityManager
	components *componentManager
	systems    *systemManager
}

// NewCoordinator creates a runtime with a fixed entity capacity. The
// capacity and the MaxComponentTypes signature width are the only
// configuration and are fixed for the Coordinator's lifetime.
func NewCoordinator(maxEntities int) *Coordinator {
	if maxEntities <= 0 {
		panic("ecs: coordinator capacity must be positive")
	}
	return &Coordinator{
		entities:   newEntityManager(maxEntities),
		components: newComponentManager(),
		systems:    newSystemManager(),
	}
}

// CreateEntity issues a fresh entity with an all-zero signature.
func (c *Coordinator) CreateEntity() (Entity, error) {
	return c.entities.create()
}

// DestroyEntity purges the entity everywhere and recycles its id. Purge
// order matters: component stores first, then system sets, then the identity
// registry — freeing the id before purging would let it be reissued while
// stale state lingers. Destroying an already-dead entity fails with
// InvalidEntityError.
func (c *Coordinator) DestroyEntity(e Entity) error {
	if err := c.entities.validate(e); err != nil {
		return err
	}
	c.components.entityDestroyed(e)
	c.systems.entityDestroyed(e)
	return c.entities.destroy(e)
}

// Alive reports whether the entity id is currently issued.
func (c *Coordinator) Alive(e Entity) bool {
	return c.entities.isAlive(e)
}

// LiveEntities returns the number of currently-issued entities.
func (c *Coordinator) LiveEntities() int {
	return c.entities.liveCount()
}

// Capacity returns the maximum number of simultaneously live entities.
func (c *Coordinator) Capacity() int {
	return c.entities.capacity()
}

// Signature returns the entity's current component signature.
func (c *Coordinator) Signature(e Entity) (Signature, error) {
	return c.entities.signature(e)
}

// RegisterComponent registers T as a component type, creating its packed
// store and assigning its signature bit. Registration is idempotent per
// type and fails with TooManyComponentTypesError past the signature width.
func RegisterComponent[T any](c *Coordinator) (ComponentTypeID, error) {
	return c.components.register(reflect.TypeFor[T](), func() iComponentStore {
		return newPackedStore[T]()
	})
}

// ComponentTypeFor returns the id assigned to T, failing if T was never
// registered.
func ComponentTypeFor[T any](c *Coordinator) (ComponentTypeID, error) {
	return c.components.typeID(reflect.TypeFor[T]())
}

func storeFor[T any](c *Coordinator) (*packedStore[T], error) {
	store, err := c.components.storeOf(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return store.(*packedStore[T]), nil
}

// AddComponent attaches a component value to the entity, sets the type's
// signature bit and re-evaluates system membership. If the entity already
// has the component the call fails with DuplicateComponentError and no
// state changes.
func AddComponent[T any](c *Coordinator, e Entity, value T) error {
	store, err := storeFor[T](c)
	if err != nil {
		return err
	}
	sig, err := c.entities.signature(e)
	if err != nil {
		return err
	}
	if err := store.insert(e, value); err != nil {
		return err
	}
	id, _ := c.components.typeID(reflect.TypeFor[T]())
	sig.Mark(uint32(id))
	c.entities.setSignature(e, sig)
	c.systems.entitySignatureChanged(e, sig)
	return nil
}

// RemoveComponent detaches T from the entity, clears the signature bit and
// re-evaluates system membership. Fails with ComponentNotFoundError if the
// entity has no T; no signature mutation occurs on failure.
func RemoveComponent[T any](c *Coordinator, e Entity) error {
	return c.removeComponentType(e, reflect.TypeFor[T]())
}

// GetComponent returns a pointer to the entity's T component, valid until
// the component is removed or any entity's T component is removed (removal
// moves elements within the packed store).
func GetComponent[T any](c *Coordinator, e Entity) (*T, error) {
	store, err := storeFor[T](c)
	if err != nil {
		return nil, err
	}
	return store.get(e)
}

// HasComponent reports whether the entity currently has a T component.
func HasComponent[T any](c *Coordinator, e Entity) bool {
	store, err := storeFor[T](c)
	if err != nil {
		return false
	}
	return store.has(e)
}

// ComponentsOf iterates every (entity, component) pair in T's packed store.
// Intended for external iteration by the frame loop; structural mutations
// are forbidden while the iteration is in progress.
func ComponentsOf[T any](c *Coordinator) (func(yield func(Entity, *T) bool), error) {
	store, err := storeFor[T](c)
	if err != nil {
		return nil, err
	}
	return store.All(), nil
}

// AddComponentValue is the type-erased AddComponent: the component type is
// recovered from the value itself. Used by the deferred command buffer and
// by data-driven spawning where the concrete type is not known statically.
func (c *Coordinator) AddComponentValue(e Entity, component any) error {
	t := reflect.TypeOf(component)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	store, err := c.components.storeOf(t)
	if err != nil {
		return err
	}
	sig, err := c.entities.signature(e)
	if err != nil {
		return err
	}
	if err := store.insertAny(e, component); err != nil {
		return err
	}
	id, _ := c.components.typeID(t)
	sig.Mark(uint32(id))
	c.entities.setSignature(e, sig)
	c.systems.entitySignatureChanged(e, sig)
	return nil
}

func (c *Coordinator) removeComponentType(e Entity, t reflect.Type) error {
	store, err := c.components.storeOf(t)
	if err != nil {
		return err
	}
	sig, err := c.entities.signature(e)
	if err != nil {
		return err
	}
	if err := store.remove(e); err != nil {
		return err
	}
	id, _ := c.components.typeID(t)
	sig.Unmark(uint32(id))
	c.entities.setSignature(e, sig)
	c.systems.entitySignatureChanged(e, sig)
	return nil
}

// systemPointer constrains S to a struct type whose pointer implements
// System, letting RegisterSystem construct the instance itself.
type systemPointer[S any] interface {
	*S
	System
}

// RegisterSystem is construct-or-fetch for the singleton instance of system
// type S: the first call allocates, wires any Matched fields and registers
// the instance; later calls return the same instance.
func RegisterSystem[S any, PS systemPointer[S]](c *Coordinator) PS {
	key := reflect.TypeFor[S]()
	if entry, ok := c.systems.byType[key]; ok {
		return entry.system.(PS)
	}
	var sys PS = new(S)
	c.systems.register(sys)
	return sys
}

// AddSystem registers a caller-constructed system instance. Registration is
// idempotent per system type; a second instance of the same type is ignored.
func (c *Coordinator) AddSystem(sys System) {
	c.systems.register(sys)
}

// SetSystemSignature declares the required component set for system type S
// and immediately reconciles membership against all currently-live entities.
// Re-declaring the same signature is harmless; a different signature fails
// with ConflictingSystemError, and an unregistered S with
// UnregisteredSystemError.
func SetSystemSignature[S any](c *Coordinator, required Signature) error {
	entry, err := c.systems.setSignature(reflect.TypeFor[S](), required)
	if err != nil {
		return err
	}
	c.systems.reconcile(entry, c.entities)
	return nil
}

// SystemEntities returns the entities currently matching system type S, in
// unspecified order. The slice aliases internal storage; copy it before
// retaining it across structural changes.
func SystemEntities[S any](c *Coordinator) ([]Entity, error) {
	entry, err := c.systems.lookup(reflect.TypeFor[S]())
	if err != nil {
		return nil, err
	}
	return entry.matched.dense, nil
}
