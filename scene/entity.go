package scene

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Entity is a handle to an entity in a Scene. The zero Entity is invalid.
// Handles are plain values; copying one does not copy the entity.
type Entity struct {
	handle donburi.Entity
	scene  *Scene
}

// Handle returns the underlying donburi entity.
func (e Entity) Handle() donburi.Entity { return e.handle }

// Scene returns the scene the entity belongs to.
func (e Entity) Scene() *Scene { return e.scene }

// ID returns the entity's index in the world. Ids are reused after an entity
// is destroyed.
func (e Entity) ID() uint32 { return uint32(e.handle.Id()) }

// Valid reports whether the entity still exists.
func (e Entity) Valid() bool {
	return e.scene != nil && e.scene.world != nil && e.scene.world.Valid(e.handle)
}

// Name returns the entity's tag.
func (e Entity) Name() string {
	return Tag.Get(e.entry()).Tag
}

func (e Entity) String() string {
	if !e.Valid() {
		return "Entity(invalid)"
	}
	return fmt.Sprintf("Entity(%d %q)", e.ID(), e.Name())
}

func (e Entity) entry() *donburi.Entry {
	mustf(e.Valid(), "use of invalid entity %d", e.handle.Id())
	return e.scene.world.Entry(e.handle)
}

// AddComponent attaches value to e and returns a pointer to the stored copy.
// Adding a component the entity already has panics.
//
// The pointer stays valid until e gains or loses a component.
func AddComponent[T any](e Entity, ct *donburi.ComponentType[T], value T) *T {
	entry := e.entry()
	mustf(!entry.HasComponent(ct), "entity %d already has %s", e.ID(), ct.Name())
	entry.AddComponent(ct)
	p := ct.Get(entry)
	*p = value
	e.scene.onComponentAdded(entry, ct)
	return p
}

// GetComponent returns e's component of type ct. A missing component panics.
//
// The pointer stays valid until e gains or loses a component.
func GetComponent[T any](e Entity, ct *donburi.ComponentType[T]) *T {
	entry := e.entry()
	mustf(entry.HasComponent(ct), "entity %d has no %s", e.ID(), ct.Name())
	return ct.Get(entry)
}

// TryGetComponent returns e's component of type ct, or nil.
func TryGetComponent[T any](e Entity, ct *donburi.ComponentType[T]) *T {
	entry := e.entry()
	if !entry.HasComponent(ct) {
		return nil
	}
	return ct.Get(entry)
}

// HasComponent reports whether e has a component of type ct.
func HasComponent(e Entity, ct donburi.IComponentType) bool {
	return e.entry().HasComponent(ct)
}

// RemoveComponent detaches ct from e. A missing component panics, as does
// removing the tag. Removing a NativeScript destroys its instance first.
func RemoveComponent[T any](e Entity, ct *donburi.ComponentType[T]) {
	entry := e.entry()
	mustf(entry.HasComponent(ct), "entity %d has no %s", e.ID(), ct.Name())
	mustf(ct.Id() != Tag.Id(), "entity %d: the tag component cannot be removed", e.ID())
	if ct.Id() == NativeScript.Id() {
		destroyScript(NativeScript.Get(entry))
	}
	entry.RemoveComponent(ct)
}

func mustf(cond bool, format string, args ...any) {
	if !cond {
		panic("scene: " + fmt.Sprintf(format, args...))
	}
}
