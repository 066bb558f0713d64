package scene

import "github.com/phanxgames/sprig"

// ScriptableEntity is Go behavior attached to an entity through a
// NativeScriptComponent. Embed *ScriptBase (or ScriptBase) to satisfy the
// unexported bind method and inherit no-op hooks.
type ScriptableEntity interface {
	// OnCreate runs once, on the first update after the instance is created.
	OnCreate()
	// OnUpdate runs every scene update, after OnCreate.
	OnUpdate(ts sprig.Timestep)
	// OnDestroy runs when the script's component, entity or scene goes away.
	OnDestroy()

	bind(e Entity)
}

// ScriptBase gives a script access to its entity.
type ScriptBase struct {
	entity Entity
}

func (b *ScriptBase) bind(e Entity) { b.entity = e }

// Entity returns the entity the script is attached to.
func (b *ScriptBase) Entity() Entity { return b.entity }

func (b *ScriptBase) OnCreate()               {}
func (b *ScriptBase) OnUpdate(sprig.Timestep) {}
func (b *ScriptBase) OnDestroy()              {}

// Bind makes nsc instantiate a fresh T for its entity.
//
//	nsc := scene.AddComponent(e, scene.NativeScript, scene.NativeScriptComponent{})
//	scene.Bind[Spinner](nsc)
func Bind[T any, PT interface {
	*T
	ScriptableEntity
}](nsc *NativeScriptComponent) {
	BindFunc(nsc, func() ScriptableEntity { return PT(new(T)) })
}

// BindFunc makes nsc instantiate its script with factory. Use it when the
// script needs constructor arguments.
func BindFunc(nsc *NativeScriptComponent, factory func() ScriptableEntity) {
	nsc.InstantiateScript = factory
	nsc.DestroyScript = func(nsc *NativeScriptComponent) {
		nsc.Instance = nil
	}
}

// destroyScript runs OnDestroy on a live instance and releases it.
func destroyScript(nsc *NativeScriptComponent) {
	if nsc.Instance == nil {
		return
	}
	nsc.Instance.OnDestroy()
	if nsc.DestroyScript != nil {
		nsc.DestroyScript(nsc)
	}
	nsc.Instance = nil
}
