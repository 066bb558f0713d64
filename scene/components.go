package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/sprig"
	"github.com/yohamta/donburi"
)

// TransformComponent places an entity. Rotation holds Euler angles in radians.
type TransformComponent struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() TransformComponent {
	return TransformComponent{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix composes Translation * Rotation * Scale.
func (t TransformComponent) Matrix() mgl32.Mat4 {
	return sprig.TRS(t.Translation, t.Rotation, t.Scale)
}

// TagComponent names an entity. Every entity has one.
type TagComponent struct {
	Tag string

	// created orders entities by creation; donburi reuses ids after removal.
	created uint64
}

// SpriteRendererComponent draws the entity as a quad. Without a Texture the
// quad is a flat Color; with one, Color tints it.
type SpriteRendererComponent struct {
	Color   sprig.Color
	Texture *sprig.Texture2D
	// Tiling repeats Texture across the quad. Zero means 1.
	Tiling float32
}

// CameraComponent makes the entity a candidate view for rendering.
type CameraComponent struct {
	Camera SceneCamera
	// Primary marks the camera the scene renders through. When several are
	// primary, the entity created first wins.
	Primary bool
	// FixedAspectRatio keeps the camera's aspect ratio on viewport resize.
	FixedAspectRatio bool
}

// NewCameraComponent returns a camera with the default orthographic setup.
func NewCameraComponent(primary bool) CameraComponent {
	return CameraComponent{Camera: NewSceneCamera(), Primary: primary}
}

// NativeScriptComponent attaches Go behavior to an entity. Use Bind or
// BindFunc to fill it; the scene creates Instance lazily on its first update.
type NativeScriptComponent struct {
	Instance ScriptableEntity

	InstantiateScript func() ScriptableEntity
	DestroyScript     func(nsc *NativeScriptComponent)
}

// Component types registered with donburi.
var (
	Transform      = donburi.NewComponentType[TransformComponent]()
	Tag            = donburi.NewComponentType[TagComponent]()
	SpriteRenderer = donburi.NewComponentType[SpriteRendererComponent]()
	Camera         = donburi.NewComponentType[CameraComponent]()
	NativeScript   = donburi.NewComponentType[NativeScriptComponent]()
)
