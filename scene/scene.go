package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/sprig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
)

const defaultEntityName = "Entity"

var (
	allQuery    = donburi.NewQuery(filter.Contains(Tag))
	scriptQuery = donburi.NewQuery(filter.Contains(NativeScript))
	cameraQuery = donburi.NewQuery(filter.Contains(Transform, Camera))
	spriteQuery = donburi.NewQuery(filter.Contains(Transform, SpriteRenderer))
)

// Scene owns a donburi world and renders it through a Renderer2D.
// It is not safe for concurrent use.
type Scene struct {
	world donburi.World

	viewportWidth  uint32
	viewportHeight uint32

	// scratch holds entities collected before running code that may mutate
	// the world.
	scratch []donburi.Entity
	// primaryCount is the number of primary cameras seen last frame, used to
	// warn once when it goes above one.
	primaryCount int
	// created counts CreateEntity calls.
	created uint64
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{world: donburi.NewWorld()}
}

// World returns the underlying donburi world.
func (s *Scene) World() donburi.World {
	s.mustLive()
	return s.world
}

// CreateEntity adds an entity with an identity transform and a tag. An empty
// name becomes "Entity".
func (s *Scene) CreateEntity(name string) Entity {
	s.mustLive()
	if name == "" {
		name = defaultEntityName
	}
	h := s.world.Create(Transform, Tag)
	entry := s.world.Entry(h)
	*Transform.Get(entry) = NewTransform()
	s.created++
	*Tag.Get(entry) = TagComponent{Tag: name, created: s.created}

	EntityCreated.Publish(s.world, EntityEvent{Entity: h, Name: name})
	sprig.CoreLogger().Debug("entity created", zap.Uint32("id", uint32(h.Id())), zap.String("name", name))
	return Entity{handle: h, scene: s}
}

// DestroyEntity destroys e's script instance, if any, and removes e.
func (s *Scene) DestroyEntity(e Entity) {
	s.mustLive()
	mustf(e.scene == s, "entity %d belongs to another scene", e.handle.Id())
	entry := e.entry()
	if entry.HasComponent(NativeScript) {
		destroyScript(NativeScript.Get(entry))
	}
	name := Tag.Get(entry).Tag
	EntityDestroyed.Publish(s.world, EntityEvent{Entity: e.handle, Name: name})
	s.world.Remove(e.handle)
	sprig.CoreLogger().Debug("entity destroyed", zap.Uint32("id", e.ID()), zap.String("name", name))
}

// Entities returns every entity in the scene.
func (s *Scene) Entities() []Entity {
	s.mustLive()
	var out []Entity
	allQuery.Each(s.world, func(entry *donburi.Entry) {
		out = append(out, Entity{handle: entry.Entity(), scene: s})
	})
	return out
}

// EntityCount returns the number of entities in the scene.
func (s *Scene) EntityCount() int {
	s.mustLive()
	return allQuery.Count(s.world)
}

// FindEntity returns the first entity tagged name.
func (s *Scene) FindEntity(name string) (Entity, bool) {
	for _, e := range s.Entities() {
		if e.Name() == name {
			return e, true
		}
	}
	return Entity{}, false
}

// ViewportSize returns the size last passed to OnViewportResize.
func (s *Scene) ViewportSize() (width, height uint32) {
	return s.viewportWidth, s.viewportHeight
}

// OnUpdate advances the scene by ts and renders it with r. Native scripts run
// first, creating their instances on demand. The scene is then drawn through
// the primary camera; without one, nothing is drawn. Queued scene events are
// delivered last.
func (s *Scene) OnUpdate(ts sprig.Timestep, r *sprig.Renderer2D) {
	s.mustLive()
	s.updateScripts(ts)

	if cam, ok := s.PrimaryCamera(); ok {
		cc := GetComponent(cam, Camera)
		transform := GetComponent(cam, Transform).Matrix()
		r.BeginScene(&cc.Camera, transform)
		s.drawSprites(r)
		r.EndScene()
	}

	events.ProcessAllEvents(s.world)
}

// OnUpdateEditor renders the scene through camera without running scripts
// or consulting the scene's own cameras.
func (s *Scene) OnUpdateEditor(r *sprig.Renderer2D, camera *sprig.OrthographicCamera) {
	s.mustLive()
	r.BeginSceneOrtho(camera)
	s.drawSprites(r)
	r.EndScene()

	events.ProcessAllEvents(s.world)
}

func (s *Scene) updateScripts(ts sprig.Timestep) {
	for _, h := range s.collect(scriptQuery) {
		// An earlier script may have destroyed this entity or its script.
		if !s.world.Valid(h) {
			continue
		}
		entry := s.world.Entry(h)
		if !entry.HasComponent(NativeScript) {
			continue
		}
		nsc := NativeScript.Get(entry)
		inst := nsc.Instance
		if inst == nil {
			if nsc.InstantiateScript == nil {
				continue
			}
			inst = nsc.InstantiateScript()
			nsc.Instance = inst
			inst.bind(Entity{handle: h, scene: s})
			inst.OnCreate()
		}
		inst.OnUpdate(ts)
	}
}

// collect returns the entities matching q in a buffer reused across calls.
func (s *Scene) collect(q *donburi.Query) []donburi.Entity {
	s.scratch = s.scratch[:0]
	q.Each(s.world, func(entry *donburi.Entry) {
		s.scratch = append(s.scratch, entry.Entity())
	})
	return s.scratch
}

func (s *Scene) drawSprites(r *sprig.Renderer2D) {
	spriteQuery.Each(s.world, func(entry *donburi.Entry) {
		m := Transform.Get(entry).Matrix()
		sprite := SpriteRenderer.Get(entry)
		if sprite.Texture != nil {
			r.DrawTexturedQuadTransform(m, sprite.Texture, sprite.Tiling, sprite.Color)
			return
		}
		r.DrawQuadTransform(m, sprite.Color)
	})
}

// PrimaryCamera returns the camera entity the scene renders through. When
// several cameras are marked primary the one created first wins, and a
// warning is logged the first frame that happens.
func (s *Scene) PrimaryCamera() (Entity, bool) {
	s.mustLive()
	var (
		best    donburi.Entity
		bestSeq uint64
		count   int
	)
	cameraQuery.Each(s.world, func(entry *donburi.Entry) {
		if !Camera.Get(entry).Primary {
			return
		}
		count++
		if seq := Tag.Get(entry).created; count == 1 || seq < bestSeq {
			best, bestSeq = entry.Entity(), seq
		}
	})
	if count > 1 && s.primaryCount <= 1 {
		sprig.CoreLogger().Warn("multiple primary cameras; using the oldest",
			zap.Int("count", count))
	}
	s.primaryCount = count
	if count == 0 {
		return Entity{}, false
	}
	return Entity{handle: best, scene: s}, true
}

// OnViewportResize resizes every camera without a fixed aspect ratio. A zero
// width or height is ignored. Cameras added later are sized to the last
// viewport.
func (s *Scene) OnViewportResize(width, height uint32) {
	s.mustLive()
	if width == 0 || height == 0 {
		return
	}
	s.viewportWidth, s.viewportHeight = width, height
	cameraQuery.Each(s.world, func(entry *donburi.Entry) {
		cc := Camera.Get(entry)
		if !cc.FixedAspectRatio {
			cc.Camera.SetViewportSize(width, height)
		}
	})
	ViewportResized.Publish(s.world, ViewportEvent{Width: width, Height: height})
}

// onComponentAdded sizes new cameras to the current viewport.
func (s *Scene) onComponentAdded(entry *donburi.Entry, ct donburi.IComponentType) {
	if ct.Id() != Camera.Id() || s.viewportWidth == 0 {
		return
	}
	if cc := Camera.Get(entry); !cc.FixedAspectRatio {
		cc.Camera.SetViewportSize(s.viewportWidth, s.viewportHeight)
	}
}

// ScreenToWorld converts a viewport pixel position to world space through
// the primary camera.
func (s *Scene) ScreenToWorld(x, y float32) (mgl32.Vec3, bool) {
	cam, ok := s.PrimaryCamera()
	if !ok || s.viewportWidth == 0 {
		return mgl32.Vec3{}, false
	}
	cc := GetComponent(cam, Camera)
	vp := cc.Camera.Projection().Mul4(GetComponent(cam, Transform).Matrix().Inv())
	ndc := mgl32.Vec4{
		2*x/float32(s.viewportWidth) - 1,
		1 - 2*y/float32(s.viewportHeight),
		0, 1,
	}
	return vp.Inv().Mul4x1(ndc).Vec3(), true
}

// Destroy destroys every script instance and releases the world. The scene
// cannot be used afterwards.
func (s *Scene) Destroy() {
	s.mustLive()
	for _, h := range s.collect(scriptQuery) {
		if s.world.Valid(h) {
			destroyScript(NativeScript.Get(s.world.Entry(h)))
		}
	}
	s.world = nil
}

func (s *Scene) mustLive() {
	mustf(s.world != nil, "use of destroyed scene")
}
