// Package scene is an entity-component scene for the sprig renderer, backed
// by a [Donburi] world.
//
// A [Scene] owns the world. Entities are small handles ([Entity]) that carry
// their scene; components are plain structs registered as donburi component
// types ([Transform], [Tag], [SpriteRenderer], [Camera], [NativeScript]).
// Typed accessors panic when a component is missing, so a wrong assumption
// about an entity fails at the call site.
//
// Each frame, [Scene.OnUpdate] runs native scripts, picks the primary camera
// and draws every sprite through a [sprig.Renderer2D]:
//
//	s := scene.NewScene()
//	square := s.CreateEntity("Square")
//	scene.AddComponent(square, scene.SpriteRenderer, scene.SpriteRendererComponent{
//		Color: sprig.Color{R: 0, G: 1, B: 0, A: 1},
//	})
//	cam := s.CreateEntity("Camera")
//	scene.AddComponent(cam, scene.Camera, scene.NewCameraComponent(true))
//
//	s.OnViewportResize(1280, 720)
//	s.OnUpdate(ts, renderer)
//
// Entity lifecycle is published as donburi events ([EntityCreated],
// [EntityDestroyed]) and delivered at the end of each OnUpdate.
//
// [Donburi]: https://github.com/yohamta/donburi
package scene
