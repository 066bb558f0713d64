package sprig

import (
	"time"

	"go.uber.org/zap"
)

// debugLogInterval is how often Application.Debug reports frame stats.
const debugLogInterval = time.Second

// debugStats accumulates per-frame timing and draw-call metrics between
// reports. Only populated when Application.Debug is true.
type debugStats struct {
	frames     int
	frameTime  time.Duration
	updateTime time.Duration
	uiTime     time.Duration
	drawCalls  uint32
	quads      uint32
	maxQuads   uint32
	lastLog    time.Time
}

// record adds one frame.
func (d *debugStats) record(ts Timestep, update, ui time.Duration, s Statistics) {
	d.frames++
	d.frameTime += time.Duration(float64(ts.Seconds()) * float64(time.Second))
	d.updateTime += update
	d.uiTime += ui
	d.drawCalls += s.DrawCalls
	d.quads += s.QuadCount
	d.maxQuads = max(d.maxQuads, s.QuadCount)
}

// maybeLog reports the averages once per debugLogInterval and resets.
func (d *debugStats) maybeLog(now time.Time) {
	if d.lastLog.IsZero() {
		d.lastLog = now
		return
	}
	if now.Sub(d.lastLog) < debugLogInterval || d.frames == 0 {
		return
	}
	n := time.Duration(d.frames)
	CoreLogger().Debug("frame stats",
		zap.Int("frames", d.frames),
		zap.Duration("avg_frame", d.frameTime/n),
		zap.Duration("avg_update", d.updateTime/n),
		zap.Duration("avg_ui", d.uiTime/n),
		zap.Uint32("avg_draw_calls", d.drawCalls/uint32(d.frames)),
		zap.Uint32("avg_quads", d.quads/uint32(d.frames)),
		zap.Uint32("peak_quads", d.maxQuads))
	*d = debugStats{lastLog: now}
}

// averages returns the mean draw calls and quads per recorded frame.
func (d *debugStats) averages() (drawCalls, quads float64) {
	if d.frames == 0 {
		return 0, 0
	}
	return float64(d.drawCalls) / float64(d.frames), float64(d.quads) / float64(d.frames)
}
