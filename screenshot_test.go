package sprig

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent orange
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // fully transparent
	}
	img := unpremultiply(pixels, 3, 1)

	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	app := &Application{}
	app.Screenshot("a")
	app.Screenshot("b")
	app.Screenshot("c")
	if len(app.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(app.screenshotQueue))
	}
	if app.screenshotQueue[0] != "a" || app.screenshotQueue[1] != "b" || app.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", app.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	if dir := DefaultConfig().ScreenshotDir; dir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", dir, "screenshots")
	}
}

func TestFlushScreenshotsEmptyQueue(t *testing.T) {
	app := &Application{cfg: Config{ScreenshotDir: t.TempDir()}}
	app.flushScreenshots(nil)
}
