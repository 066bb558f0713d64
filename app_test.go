package sprig

import "testing"

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	app, err := NewApplication(DefaultConfig())
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	t.Cleanup(app.renderer.Shutdown)
	return app
}

func TestNewApplicationRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Renderer.MaxQuads = 0
	if _, err := NewApplication(cfg); err == nil {
		t.Error("expected error for max_quads 0")
	}
}

func TestNewApplicationWiresConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Renderer.DepthSort = true
	app, err := NewApplication(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer app.renderer.Shutdown()

	if !app.API().DepthSort {
		t.Error("DepthSort not passed to the API")
	}
	if w, h := app.Size(); w != cfg.Window.Width || h != cfg.Window.Height {
		t.Errorf("Size = %dx%d, want %dx%d", w, h, cfg.Window.Width, cfg.Window.Height)
	}
	if app.Renderer().WhiteTexture() == nil {
		t.Error("renderer not initialized")
	}
	if !app.Running() {
		t.Error("new application should be running")
	}
}

func TestPushLayerAttaches(t *testing.T) {
	app := newTestApplication(t)
	var log []string
	app.PushOverlay(&recordingLayer{name: "overlay", log: &log})
	app.PushLayer(&recordingLayer{name: "base", log: &log})

	if !equalStrings(log, []string{"overlay.attach", "base.attach"}) {
		t.Errorf("log = %v", log)
	}
	if got := layerNames(app.Layers()); !equalStrings(got, []string{"base", "overlay"}) {
		t.Errorf("layers = %v, want [base overlay]", got)
	}
}

func TestOnEventTopDown(t *testing.T) {
	app := newTestApplication(t)
	var log []string
	app.PushLayer(&recordingLayer{name: "bottom", log: &log})
	app.PushLayer(&recordingLayer{name: "top", log: &log})
	log = log[:0]

	app.OnEvent(&KeyPressedEvent{Key: KeyA})
	if !equalStrings(log, []string{"top.event", "bottom.event"}) {
		t.Errorf("log = %v, want top first", log)
	}
}

func TestOnEventStopsWhenHandled(t *testing.T) {
	app := newTestApplication(t)
	var log []string
	bottom := &recordingLayer{name: "bottom", log: &log}
	app.PushLayer(bottom)
	app.PushLayer(&recordingLayer{name: "top", log: &log, handle: true})

	app.OnEvent(&KeyPressedEvent{Key: KeyA})
	if len(bottom.events) != 0 {
		t.Error("handled event reached the layer below")
	}
}

func TestBlockEventsDropsMouseOnly(t *testing.T) {
	app := newTestApplication(t)
	var log []string
	l := &recordingLayer{name: "l", log: &log}
	app.PushLayer(l)
	app.BlockEvents(true)

	app.OnEvent(&MouseScrolledEvent{YOffset: 1})
	app.OnEvent(&KeyPressedEvent{Key: KeyEscape})
	app.OnEvent(&WindowResizeEvent{Width: 100, Height: 100})
	if len(l.events) != 2 {
		t.Fatalf("layer saw %d events, want 2", len(l.events))
	}
	if _, ok := l.events[0].(*KeyPressedEvent); !ok {
		t.Errorf("first event = %v, want the key press", l.events[0])
	}

	app.BlockEvents(false)
	app.OnEvent(&MouseScrolledEvent{YOffset: 1})
	if len(l.events) != 3 {
		t.Error("scroll not delivered after unblocking")
	}
}

func TestWindowCloseEventCloses(t *testing.T) {
	app := newTestApplication(t)
	var log []string
	l := &recordingLayer{name: "l", log: &log}
	app.PushLayer(l)

	e := &WindowCloseEvent{}
	app.OnEvent(e)
	if app.Running() {
		t.Error("application still running after WindowClose")
	}
	if !e.Handled() || len(l.events) != 0 {
		t.Error("WindowClose should be handled by the application")
	}
}

func TestWindowResizeEvent(t *testing.T) {
	app := newTestApplication(t)
	var log []string
	l := &recordingLayer{name: "l", log: &log}
	app.PushLayer(l)

	app.OnEvent(&WindowResizeEvent{Width: 0, Height: 0})
	if !app.minimized {
		t.Error("zero-size resize should minimize")
	}
	app.OnEvent(&WindowResizeEvent{Width: 300, Height: 200})
	if app.minimized {
		t.Error("resize to a real size should restore")
	}
	if w, h := app.Size(); w != 300 || h != 200 {
		t.Errorf("Size = %dx%d, want 300x200", w, h)
	}
	if len(l.events) != 2 {
		t.Errorf("layer saw %d resize events, want 2", len(l.events))
	}
}

func TestLayoutQueuesResize(t *testing.T) {
	app := newTestApplication(t)
	w, h := app.Size()

	if gw, gh := app.Layout(w, h); gw != w || gh != h {
		t.Errorf("Layout = %dx%d, want %dx%d", gw, gh, w, h)
	}
	if len(app.events) != 0 {
		t.Fatal("unchanged layout queued an event")
	}
	app.Layout(640, 360)
	if len(app.events) != 1 {
		t.Fatalf("queued %d events, want 1", len(app.events))
	}
	if e, ok := app.events[0].(*WindowResizeEvent); !ok || e.Width != 640 || e.Height != 360 {
		t.Errorf("queued %v, want WindowResize 640x360", app.events[0])
	}
}

func TestCloseStopsRunning(t *testing.T) {
	app := newTestApplication(t)
	app.Close()
	if app.Running() {
		t.Error("Running after Close")
	}
}

func TestApplicationInputIsInjectable(t *testing.T) {
	app := newTestApplication(t)
	app.Injector().PressKey(KeySpace)
	if !app.Input().IsKeyPressed(KeySpace) {
		t.Error("injected key not visible through Input")
	}
}
