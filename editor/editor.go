package editor

import (
	"context"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/scene"
	"go.uber.org/zap"
)

// Host is the part of sprig.Application the editor uses.
type Host interface {
	Renderer() *sprig.Renderer2D
	API() *sprig.EbitenAPI
	Input() sprig.Input
	Size() (width, height int)
	BlockEvents(block bool)
	Screenshot(label string)
	Close()
}

// Options configures an EditorLayer.
type Options struct {
	// TexturePaths are loaded at attach time and each placed in the scene
	// as a textured sprite.
	TexturePaths []string
	// ViewportPNG is where F12 saves the viewport.
	ViewportPNG string
}

// Layer is the editor shell. Its UI state lives in plain fields, set once
// at construction and toggled by shortcuts.
type Layer struct {
	host Host
	opts Options

	dockspaceOpen bool
	fullscreen    bool
	showSettings  bool

	viewportFocused bool
	viewportHovered bool
	viewportBounds  image.Rectangle

	framebuffer      *sprig.Framebuffer
	cameraController *sprig.OrthographicCameraController
	textures         *sprig.TextureLibrary
	checkerboard     *sprig.Texture2D

	// editMode renders through the editor camera and pauses scripts.
	editMode bool

	activeScene   *scene.Scene
	squareEntity  scene.Entity
	cameraEntity  scene.Entity
	secondCamera  scene.Entity
	primaryCamera bool
}

// New creates the editor layer. Push it with Application.PushLayer.
func New(host Host, opts Options) *Layer {
	if opts.ViewportPNG == "" {
		opts.ViewportPNG = "viewport.png"
	}
	return &Layer{
		host:            host,
		opts:            opts,
		dockspaceOpen:   true,
		showSettings:    true,
		viewportFocused: true,
		primaryCamera:   true,
	}
}

// OnAttach builds the framebuffer, the editor camera and the demo scene.
func (l *Layer) OnAttach() {
	w, h := l.host.Size()
	l.viewportBounds = l.layoutViewport(w, h)
	vw, vh := max(l.viewportBounds.Dx(), 1), max(l.viewportBounds.Dy(), 1)

	l.framebuffer = sprig.NewFramebuffer(l.host.API(), sprig.FramebufferSpec{Width: vw, Height: vh})
	l.cameraController = sprig.NewOrthographicCameraController(float32(vw)/float32(vh), true, l.host.Input())
	l.cameraController.SmoothZoom = true
	l.checkerboard = newCheckerboard(64, 8)

	l.textures = sprig.NewTextureLibrary()
	if len(l.opts.TexturePaths) > 0 {
		if err := l.textures.LoadAll(context.Background(), l.opts.TexturePaths); err != nil {
			sprig.ClientLogger().Error("loading textures", zap.Error(err))
		}
	}

	l.activeScene = l.buildScene()
	l.activeScene.OnViewportResize(uint32(vw), uint32(vh))
	sprig.ClientLogger().Info("editor attached", zap.Int("entities", l.activeScene.EntityCount()))
}

func (l *Layer) buildScene() *scene.Scene {
	s := scene.NewScene()

	bg := s.CreateEntity("Checkerboard")
	scene.GetComponent(bg, scene.Transform).Translation = mgl32.Vec3{0, 0, -0.1}
	scene.GetComponent(bg, scene.Transform).Scale = mgl32.Vec3{20, 20, 1}
	scene.AddComponent(bg, scene.SpriteRenderer, scene.SpriteRendererComponent{
		Color:   sprig.ColorWhite,
		Texture: l.checkerboard,
		Tiling:  10,
	})

	l.squareEntity = s.CreateEntity("Green Square")
	scene.AddComponent(l.squareEntity, scene.SpriteRenderer, scene.SpriteRendererComponent{
		Color: sprig.Color{R: 0, G: 1, B: 0, A: 1},
	})
	spin := scene.AddComponent(l.squareEntity, scene.NativeScript, scene.NativeScriptComponent{})
	scene.BindFunc(spin, func() scene.ScriptableEntity { return &spinScript{rate: sprig.Radians(45)} })

	red := s.CreateEntity("Red Square")
	scene.GetComponent(red, scene.Transform).Translation = mgl32.Vec3{2, 0, 0}
	scene.AddComponent(red, scene.SpriteRenderer, scene.SpriteRendererComponent{
		Color: sprig.Color{R: 1, G: 0, B: 0, A: 1},
	})

	for i, name := range textureNames(l.opts.TexturePaths) {
		tex, ok := l.textures.Get(name)
		if !ok {
			continue
		}
		e := s.CreateEntity(name)
		scene.GetComponent(e, scene.Transform).Translation = mgl32.Vec3{-3 + 1.5*float32(i), -3, 0}
		scene.AddComponent(e, scene.SpriteRenderer, scene.SpriteRendererComponent{Texture: tex})
	}

	l.cameraEntity = s.CreateEntity("Camera A")
	scene.AddComponent(l.cameraEntity, scene.Camera, scene.NewCameraComponent(true))
	nsc := scene.AddComponent(l.cameraEntity, scene.NativeScript, scene.NativeScriptComponent{})
	input := l.host.Input()
	scene.BindFunc(nsc, func() scene.ScriptableEntity { return newCameraScript(input) })

	l.secondCamera = s.CreateEntity("Camera B")
	cc := scene.NewCameraComponent(false)
	cc.Camera.SetOrthographicSize(4)
	scene.AddComponent(l.secondCamera, scene.Camera, cc)

	return s
}

func textureNames(paths []string) []string {
	names := make([]string, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		n := sprig.TextureName(p)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// OnDetach releases the scene and GPU resources.
func (l *Layer) OnDetach() {
	l.activeScene.Destroy()
	l.textures.Dispose()
	l.checkerboard.Dispose()
	l.framebuffer.Dispose()
}

// OnUpdate resizes the framebuffer to the viewport if needed, moves the
// editor camera and renders the scene into the framebuffer.
func (l *Layer) OnUpdate(ts sprig.Timestep) {
	w, h := l.host.Size()
	l.viewportBounds = l.layoutViewport(w, h)
	l.resizeViewport(l.viewportBounds.Dx(), l.viewportBounds.Dy())

	if l.viewportFocused && l.editMode {
		l.cameraController.OnUpdate(ts)
	}

	r := l.host.Renderer()
	api := l.host.API()

	l.framebuffer.Bind()
	defer l.framebuffer.Unbind()

	api.SetClearColor(sprig.Color{R: 0.1, G: 0.1, B: 0.1, A: 1})
	api.Clear()
	if l.editMode {
		l.activeScene.OnUpdateEditor(r, l.cameraController.Camera())
		return
	}
	l.activeScene.OnUpdate(ts, r)
}

// resizeViewport reallocates the framebuffer when the viewport panel size
// differs from it. Zero-area sizes are ignored.
func (l *Layer) resizeViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	spec := l.framebuffer.Specification()
	if spec.Width == width && spec.Height == height {
		return
	}
	if !l.framebuffer.Resize(width, height) {
		return
	}
	l.cameraController.OnResize(float32(width), float32(height))
	l.activeScene.OnViewportResize(uint32(width), uint32(height))
}

// OnEvent handles shortcuts and, in edit mode, forwards events to the
// editor camera.
func (l *Layer) OnEvent(e sprig.Event) {
	if l.editMode {
		l.cameraController.OnEvent(e)
	}
	sprig.Dispatch(e, l.onKeyPressed)
}

// EditMode reports whether the editor camera is active.
func (l *Layer) EditMode() bool { return l.editMode }

func (l *Layer) onKeyPressed(e *sprig.KeyPressedEvent) bool {
	switch e.Key {
	case sprig.KeyEscape:
		l.host.Close()
	case sprig.KeyC:
		l.editMode = !l.editMode
	case sprig.KeyTab:
		l.SetPrimaryCamera(!l.primaryCamera)
	case sprig.KeyF1:
		l.showSettings = !l.showSettings
	case sprig.KeyF11:
		l.fullscreen = !l.fullscreen
	case sprig.KeyF12:
		if e.Modifiers&sprig.ModShift != 0 {
			l.host.Screenshot("editor")
			return true
		}
		if err := l.framebuffer.SavePNG(l.opts.ViewportPNG); err != nil {
			sprig.ClientLogger().Error("saving viewport", zap.Error(err))
		} else {
			sprig.ClientLogger().Info("viewport saved", zap.String("path", l.opts.ViewportPNG))
		}
	default:
		return false
	}
	return true
}

// SetPrimaryCamera selects Camera A (true) or Camera B (false).
func (l *Layer) SetPrimaryCamera(a bool) {
	l.primaryCamera = a
	scene.GetComponent(l.cameraEntity, scene.Camera).Primary = a
	scene.GetComponent(l.secondCamera, scene.Camera).Primary = !a
}

// Scene returns the scene being edited.
func (l *Layer) Scene() *scene.Scene { return l.activeScene }

// Framebuffer returns the viewport framebuffer.
func (l *Layer) Framebuffer() *sprig.Framebuffer { return l.framebuffer }

// CameraController returns the editor camera controller.
func (l *Layer) CameraController() *sprig.OrthographicCameraController {
	return l.cameraController
}
