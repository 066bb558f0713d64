package sprig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Frames int     `yaml:"frames,omitempty"`

	key Key
}

type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// scriptHost is what a ScriptRunner drives. Application implements it.
type scriptHost interface {
	Injector() *InjectedInput
	Screenshot(label string)
	Close()
}

// ScriptRunner plays a sequence of injected key presses, scrolls, waits and
// screenshots across frames, for automated runs of a program. Attach with
// Application.SetScriptRunner.
//
//	steps:
//	  - {action: press, key: W}
//	  - {action: wait, frames: 30}
//	  - {action: release, key: W}
//	  - {action: scroll, y: -2}
//	  - {action: screenshot, label: zoomed}
//	  - {action: close}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("sprig: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("sprig: parse script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "press", "release", "tap":
			k, ok := ParseKey(st.Key)
			if !ok {
				return nil, fmt.Errorf("sprig: parse script: step %d: unknown key %q", i, st.Key)
			}
			st.key = k
		case "scroll", "resize", "wait", "screenshot", "close":
		default:
			return nil, fmt.Errorf("sprig: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprig: read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Application.Update
// before events are polled.
func (r *ScriptRunner) step(h scriptHost) {
	if r.done {
		return
	}
	in := h.Injector()
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		in.PressKey(st.key)
	case "release":
		in.ReleaseKey(st.key)
	case "tap":
		in.PressKey(st.key)
		// Release on the following frame so the key reads as held once.
		r.steps = append(r.steps[:r.cursor], append([]scriptStep{{Action: "release", key: st.key}}, r.steps[r.cursor:]...)...)
	case "scroll":
		in.Scroll(st.X, st.Y)
	case "resize":
		in.Post(&WindowResizeEvent{Width: st.Width, Height: st.Height})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		h.Screenshot(st.Label)
	case "close":
		h.Close()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
