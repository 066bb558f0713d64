// quads10k moves 10,000 quads around the screen using 40 generated textures,
// more than one batch can bind, so every frame takes several draw calls. A
// stress test for the Renderer2D batching path.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/sprig"
	"go.uber.org/zap"
)

const (
	screenW  = 1280
	screenH  = 720
	count    = 10_000
	textures = 40
	texSize  = 16
)

type mover struct {
	x, y       float32
	dx, dy     float32
	rot        float32
	rotSpeed   float32
	size       float32
	depth      float32
	tex        *sprig.Texture2D
	tint       sprig.Color
	alphaSpeed float32
	phase      float32
}

type demo struct {
	sprig.BaseLayer

	app      *sprig.Application
	camera   *sprig.OrthographicCamera
	textures []*sprig.Texture2D
	movers   []mover

	frames    int
	maxFrames int
	elapsed   float32
}

func (d *demo) OnAttach() {
	d.camera = sprig.NewOrthographicCamera(0, screenW, 0, screenH)
	for i := 0; i < textures; i++ {
		t := sprig.NewTexture2D(texSize, texSize)
		t.SetData(disc(i))
		d.textures = append(d.textures, t)
	}
	d.movers = make([]mover, count)
	for i := range d.movers {
		d.movers[i] = mover{
			x:          rand.Float32() * screenW,
			y:          rand.Float32() * screenH,
			dx:         (rand.Float32() - 0.5) * 240,
			dy:         (rand.Float32() - 0.5) * 240,
			rotSpeed:   (rand.Float32() - 0.5) * 5,
			size:       8 + rand.Float32()*16,
			depth:      rand.Float32()*2 - 1,
			tex:        d.textures[rand.IntN(textures)],
			tint:       sprig.Color{R: 0.5 + rand.Float32()*0.5, G: 0.5 + rand.Float32()*0.5, B: 0.5 + rand.Float32()*0.5, A: 1},
			alphaSpeed: 0.5 + rand.Float32()*2,
			phase:      rand.Float32() * math.Pi * 2,
		}
	}
	sprig.ClientLogger().Info("quads10k ready",
		zap.Int("quads", count),
		zap.Int("textures", textures))
}

func (d *demo) OnDetach() {
	for _, t := range d.textures {
		t.Dispose()
	}
}

func (d *demo) OnUpdate(ts sprig.Timestep) {
	dt := ts.Seconds()
	d.elapsed += dt
	d.frames++
	if d.maxFrames > 0 {
		if d.frames == d.maxFrames-2 {
			d.app.Screenshot("quads10k")
		}
		if d.frames >= d.maxFrames {
			d.app.Close()
		}
	}

	api := d.app.API()
	api.Clear()

	r := d.app.Renderer()
	r.BeginSceneOrtho(d.camera)
	for i := range d.movers {
		m := &d.movers[i]
		m.x += m.dx * dt
		m.y += m.dy * dt
		if m.x < 0 || m.x > screenW {
			m.dx = -m.dx
			m.x = min(max(m.x, 0), screenW)
		}
		if m.y < 0 || m.y > screenH {
			m.dy = -m.dy
			m.y = min(max(m.y, 0), screenH)
		}
		m.rot += m.rotSpeed * dt

		tint := m.tint
		tint.A = 0.5 + 0.5*float32(math.Sin(float64(d.elapsed*m.alphaSpeed+m.phase)))
		r.DrawTexturedQuad(mgl32.Vec3{m.x, m.y, m.depth}, mgl32.Vec2{m.size, m.size}, m.rot, m.tex, 1, tint)
	}
	r.EndScene()
}

func (d *demo) OnUIRender(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, sprig.FormatStats(d.app.Renderer().Stats()), 8, screenH-40)
}

// disc returns RGBA pixels for a soft-edged disc whose hue depends on i.
func disc(i int) []byte {
	pix := make([]byte, 4*texSize*texSize)
	hue := float64(i) / textures * 2 * math.Pi
	r := byte(127 + 127*math.Cos(hue))
	g := byte(127 + 127*math.Cos(hue-2*math.Pi/3))
	b := byte(127 + 127*math.Cos(hue+2*math.Pi/3))
	c := float64(texSize-1) / 2
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			if d > 1 {
				continue
			}
			a := 1 - d*d
			p := 4 * (y*texSize + x)
			// Premultiplied, as ebiten expects.
			pix[p] = byte(float64(r) * a)
			pix[p+1] = byte(float64(g) * a)
			pix[p+2] = byte(float64(b) * a)
			pix[p+3] = byte(255 * a)
		}
	}
	return pix
}

func main() {
	depthSort := flag.Bool("depth", false, "sort quads by Z inside each batch")
	frames := flag.Int("frames", 0, "exit after this many frames, saving a screenshot just before")
	flag.Parse()

	cfg := sprig.DefaultConfig()
	cfg.Window.Title = "Sprig - 10k Quads"
	cfg.Window.Width, cfg.Window.Height = screenW, screenH
	cfg.Window.VSync = false
	cfg.Window.Resizable = false
	cfg.Renderer.DepthSort = *depthSort
	cfg.Renderer.ClearColor = sprig.Color{R: 0.06, G: 0.06, B: 0.09, A: 1}
	if err := sprig.InitLogging(cfg.Log); err != nil {
		log.Fatal(err)
	}

	app, err := sprig.NewApplication(cfg)
	if err != nil {
		log.Fatal(err)
	}
	app.ShowFPS = true
	app.PushLayer(&demo{app: app, maxFrames: *frames})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
