package scene

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EntityEvent describes an entity lifecycle change. For EntityDestroyed the
// entity is no longer valid when the event is delivered; Name is captured
// beforehand.
type EntityEvent struct {
	Entity donburi.Entity
	Name   string
}

// ViewportEvent carries the size passed to Scene.OnViewportResize.
type ViewportEvent struct {
	Width, Height uint32
}

// Scene event types. Subscribe with, e.g., EntityCreated.Subscribe(s.World(), fn); the
// scene delivers queued events at the end of each OnUpdate.
var (
	EntityCreated   = events.NewEventType[EntityEvent]()
	EntityDestroyed = events.NewEventType[EntityEvent]()
	ViewportResized = events.NewEventType[ViewportEvent]()
)
