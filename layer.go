package sprig

import "github.com/hajimehoshi/ebiten/v2"

// Layer is a slice of per-frame behavior owned by the Application. Layers
// update bottom to top and receive events top to bottom.
type Layer interface {
	OnAttach()
	OnDetach()
	// OnUpdate runs once per rendered frame with the time since the last one.
	OnUpdate(ts Timestep)
	// OnUIRender draws panels and overlays directly onto the screen after
	// every layer has updated.
	OnUIRender(screen *ebiten.Image)
	OnEvent(e Event)
}

// BaseLayer implements Layer with no-ops, for embedding.
type BaseLayer struct{}

func (BaseLayer) OnAttach()                {}
func (BaseLayer) OnDetach()                {}
func (BaseLayer) OnUpdate(Timestep)        {}
func (BaseLayer) OnUIRender(*ebiten.Image) {}
func (BaseLayer) OnEvent(Event)            {}

// LayerStack keeps regular layers below overlays.
type LayerStack struct {
	layers []Layer
	insert int
}

// PushLayer adds l above the existing layers and below every overlay.
func (s *LayerStack) PushLayer(l Layer) {
	s.layers = append(s.layers, nil)
	copy(s.layers[s.insert+1:], s.layers[s.insert:])
	s.layers[s.insert] = l
	s.insert++
}

// PushOverlay adds l on top of the stack.
func (s *LayerStack) PushOverlay(l Layer) {
	s.layers = append(s.layers, l)
}

// PopLayer removes l if it is a regular layer and reports whether it was found.
func (s *LayerStack) PopLayer(l Layer) bool {
	for i := 0; i < s.insert; i++ {
		if s.layers[i] == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			s.insert--
			return true
		}
	}
	return false
}

// PopOverlay removes l if it is an overlay and reports whether it was found.
func (s *LayerStack) PopOverlay(l Layer) bool {
	for i := s.insert; i < len(s.layers); i++ {
		if s.layers[i] == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return true
		}
	}
	return false
}

// Layers returns the stack bottom to top. The slice must not be modified.
func (s *LayerStack) Layers() []Layer {
	return s.layers
}

// Len returns the number of layers and overlays.
func (s *LayerStack) Len() int {
	return len(s.layers)
}
