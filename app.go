package sprig

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Application owns the window loop, the renderer and the layer stack. It
// implements ebiten.Game; Run hands it to ebiten.RunGame.
//
// Events are polled in Update and dispatched top-down through the layers.
// Layers update and render in Draw, bottom-up, with the renderer's default
// target set to the frame's screen.
type Application struct {
	// ShowFPS draws FPS, TPS and renderer statistics in the top-left corner.
	ShowFPS bool
	// Debug logs frame timings and renderer statistics once a second.
	Debug bool

	cfg      Config
	api      *EbitenAPI
	renderer *Renderer2D
	input    *InjectedInput
	layers   LayerStack

	running     bool
	minimized   bool
	blockEvents bool
	width       int
	height      int

	lastFrame time.Time
	events    []Event
	keyBuf    []ebiten.Key

	script          *ScriptRunner
	screenshotQueue []string

	debug debugStats

	fpsImage   *ebiten.Image
	fpsElapsed float64
	fpsDrawn   bool
}

// NewApplication validates cfg, creates the renderer and initializes it.
func NewApplication(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	api := NewEbitenAPI()
	api.DepthSort = cfg.Renderer.DepthSort
	api.SetClearColor(cfg.Renderer.ClearColor)

	r := NewRenderer2D(api, cfg.Renderer)
	r.Init()

	return &Application{
		cfg:      cfg,
		api:      api,
		renderer: r,
		input:    NewInjectedInput(EbitenInput{}),
		running:  true,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}, nil
}

// Config returns the configuration the application was created with.
func (app *Application) Config() Config { return app.cfg }

// Renderer returns the batch renderer.
func (app *Application) Renderer() *Renderer2D { return app.renderer }

// API returns the command layer the renderer submits to.
func (app *Application) API() *EbitenAPI { return app.api }

// Input returns live input with any injected state layered on top.
func (app *Application) Input() Input { return app.input }

// Injector returns the synthetic input source.
func (app *Application) Injector() *InjectedInput { return app.input }

// Size returns the current window size in pixels.
func (app *Application) Size() (width, height int) { return app.width, app.height }

// SetScriptRunner attaches an input script, stepped once per Update.
func (app *Application) SetScriptRunner(r *ScriptRunner) { app.script = r }

// PushLayer adds l below all overlays and calls its OnAttach.
func (app *Application) PushLayer(l Layer) {
	app.layers.PushLayer(l)
	l.OnAttach()
}

// PushOverlay adds l on top of the stack and calls its OnAttach.
func (app *Application) PushOverlay(l Layer) {
	app.layers.PushOverlay(l)
	l.OnAttach()
}

// Layers returns the layer stack bottom to top.
func (app *Application) Layers() []Layer { return app.layers.Layers() }

// BlockEvents stops mouse events from reaching any layer while set. The
// editor blocks them while the cursor is outside its viewport.
func (app *Application) BlockEvents(block bool) { app.blockEvents = block }

// Close ends the loop after the current frame.
func (app *Application) Close() { app.running = false }

// Running reports whether Close has not been called.
func (app *Application) Running() bool { return app.running }

// Run opens the window and blocks until the application closes. Layers are
// detached and the renderer shut down before it returns.
func (app *Application) Run() error {
	w := app.cfg.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetVsyncEnabled(w.VSync)
	ebiten.SetFullscreen(w.Fullscreen)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)

	CoreLogger().Info("application starting",
		zap.String("title", w.Title),
		zap.Int("width", w.Width),
		zap.Int("height", w.Height))

	err := ebiten.RunGame(app)
	app.shutdown()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (app *Application) shutdown() {
	layers := app.layers.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		layers[i].OnDetach()
	}
	app.renderer.Shutdown()
	CoreLogger().Info("application stopped")
	SyncLogging()
}

// Update implements ebiten.Game. It polls window and input state and
// dispatches the resulting events.
func (app *Application) Update() error {
	if !app.running {
		return ebiten.Termination
	}

	if app.script != nil {
		app.script.step(app)
	}

	if ebiten.IsWindowBeingClosed() {
		app.events = append(app.events, &WindowCloseEvent{})
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		app.events = append(app.events, &MouseScrolledEvent{XOffset: dx, YOffset: dy})
	}
	mods := EbitenInput{}.Modifiers()
	app.keyBuf = inpututil.AppendJustPressedKeys(app.keyBuf[:0])
	for _, k := range app.keyBuf {
		app.events = append(app.events, &KeyPressedEvent{Key: k, Modifiers: mods})
	}
	app.keyBuf = inpututil.AppendJustReleasedKeys(app.keyBuf[:0])
	for _, k := range app.keyBuf {
		app.events = append(app.events, &KeyReleasedEvent{Key: k})
	}
	app.events = app.input.drain(app.events)

	for i, e := range app.events {
		app.OnEvent(e)
		app.events[i] = nil
	}
	app.events = app.events[:0]

	if !app.running {
		return ebiten.Termination
	}
	return nil
}

// OnEvent handles window events itself, then offers e to each layer from
// the top down until one marks it handled.
func (app *Application) OnEvent(e Event) {
	Dispatch(e, app.onWindowClose)
	Dispatch(e, app.onWindowResize)

	if app.blockEvents && InCategory(e, CategoryMouse) {
		return
	}
	layers := app.layers.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		if e.Handled() {
			break
		}
		layers[i].OnEvent(e)
	}
}

func (app *Application) onWindowClose(*WindowCloseEvent) bool {
	app.Close()
	return true
}

func (app *Application) onWindowResize(e *WindowResizeEvent) bool {
	if e.Width == 0 || e.Height == 0 {
		app.minimized = true
		return false
	}
	app.minimized = false
	app.width, app.height = e.Width, e.Height
	return false
}

// Draw implements ebiten.Game. It advances every layer by the elapsed time
// and lets each draw its UI.
func (app *Application) Draw(screen *ebiten.Image) {
	now := time.Now()
	ts := Timestep(1 / float32(ebiten.TPS()))
	if !app.lastFrame.IsZero() {
		ts = TimestepFromDuration(now.Sub(app.lastFrame))
	}
	app.lastFrame = now

	if app.minimized || ebiten.IsWindowMinimized() {
		return
	}

	app.api.SetScreen(screen)
	app.renderer.ResetStats()

	layers := app.layers.Layers()
	for _, l := range layers {
		l.OnUpdate(ts)
	}
	updated := time.Now()
	for _, l := range layers {
		l.OnUIRender(screen)
	}

	if app.ShowFPS {
		app.drawFPS(screen)
	}
	app.flushScreenshots(screen)

	if app.Debug {
		app.debug.record(ts, updated.Sub(now), time.Since(updated), app.renderer.Stats())
		app.debug.maybeLog(now)
	}
}

// Layout implements ebiten.Game. A change in the outside size is reported
// to the layers as a WindowResizeEvent on the next Update.
func (app *Application) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != app.width || outsideHeight != app.height {
		app.events = append(app.events, &WindowResizeEvent{Width: outsideWidth, Height: outsideHeight})
		app.width, app.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}
