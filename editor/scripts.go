package editor

import (
	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/scene"
)

// cameraScript moves its entity with the arrow keys.
type cameraScript struct {
	scene.ScriptBase
	input sprig.Input
	speed float32
}

func newCameraScript(input sprig.Input) scene.ScriptableEntity {
	return &cameraScript{input: input, speed: 5}
}

func (c *cameraScript) OnCreate() {
	sprig.ClientLogger().Debug("camera script created")
}

func (c *cameraScript) OnUpdate(ts sprig.Timestep) {
	t := scene.GetComponent(c.Entity(), scene.Transform)
	step := c.speed * ts.Seconds()
	if c.input.IsKeyPressed(sprig.KeyLeft) {
		t.Translation[0] -= step
	}
	if c.input.IsKeyPressed(sprig.KeyRight) {
		t.Translation[0] += step
	}
	if c.input.IsKeyPressed(sprig.KeyUp) {
		t.Translation[1] += step
	}
	if c.input.IsKeyPressed(sprig.KeyDown) {
		t.Translation[1] -= step
	}
}

// spinScript rotates its entity around Z at a fixed rate in radians per second.
type spinScript struct {
	scene.ScriptBase
	rate float32
}

func (s *spinScript) OnUpdate(ts sprig.Timestep) {
	t := scene.GetComponent(s.Entity(), scene.Transform)
	t.Rotation[2] += s.rate * ts.Seconds()
}
