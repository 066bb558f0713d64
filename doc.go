// Package sprig is a small 2D engine for [Ebitengine]: a batched quad
// renderer, an orthographic camera, a layered application loop and the
// plumbing an editor needs (framebuffers, input injection, screenshots).
//
// # Quick start
//
// An [Application] owns the window, the [Renderer2D] and a stack of
// [Layer] values. Push a layer and run:
//
//	cfg := sprig.DefaultConfig()
//	app, err := sprig.NewApplication(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	app.PushLayer(myLayer)
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Layers update bottom to top once per frame and receive events top to
// bottom; a layer that marks an event handled hides it from the layers below.
//
// # Rendering
//
// All drawing happens between [Renderer2D.BeginScene] (or
// [Renderer2D.BeginSceneOrtho]) and [Renderer2D.EndScene]:
//
//	r := app.Renderer()
//	r.BeginSceneOrtho(controller.Camera())
//	r.DrawColorQuad(mgl32.Vec3{0, 0, 0}, mgl32.Vec2{1, 1}, 0, sprig.Color{R: 1, A: 1})
//	r.DrawTexturedQuad(mgl32.Vec3{1, 0, 0}, mgl32.Vec2{1, 1}, sprig.Radians(45), tex, 1, sprig.Color{})
//	r.EndScene()
//
// Quads are accumulated into a batch and submitted as one draw call. A batch
// is flushed early when it reaches [RendererConfig.MaxQuads] or when a new
// texture would overflow its slot table; slot 0 always holds a 1x1 white
// texture, so flat colored quads never consume a slot. [Renderer2D.Stats]
// reports draw calls and quads since the last [Renderer2D.ResetStats].
//
// Rotations are radians throughout. A zero [Color] tint on a textured quad
// means opaque white.
//
// # Offscreen targets
//
// A [Framebuffer] binds through the [RendererAPI], so every draw made while
// it is bound lands in its color attachment:
//
//	fb.Bind()
//	api.Clear()
//	scene.OnUpdate(ts, renderer)
//	fb.Unbind()
//
// # Scripted input
//
// [InjectedInput] layers synthetic keys and events over the live input, and
// a [ScriptRunner] plays a YAML script of presses, waits and screenshots
// through it. Both exist so programs can be driven headlessly in CI.
//
// [Ebitengine]: https://ebitengine.org
package sprig
