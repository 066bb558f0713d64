package sprig

import (
	"fmt"

	"github.com/pkg/profile"
)

// Stopper ends a profiling session started with StartProfile.
type Stopper interface {
	Stop()
}

type noopStopper struct{}

func (noopStopper) Stop() {}

// StartProfile starts a pprof session writing into dir. mode is one of
// "cpu", "mem", "allocs", "block", "mutex", "trace" or "" (disabled).
func StartProfile(mode, dir string) (Stopper, error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return noopStopper{}, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "allocs":
		opt = profile.MemProfileAllocs
	case "block":
		opt = profile.BlockProfile
	case "mutex":
		opt = profile.MutexProfile
	case "trace":
		opt = profile.TraceProfile
	default:
		return nil, fmt.Errorf("sprig: unknown profile mode %q", mode)
	}
	if dir == "" {
		dir = "."
	}
	return profile.Start(opt, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet), nil
}
