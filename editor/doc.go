// Package editor is the sprig editor shell: a layer that renders a scene
// into an offscreen framebuffer, shows it in a viewport panel and lists the
// scene beside it.
//
// Panels are drawn with ebitenutil's debug font. Keyboard shortcuts:
//
//	Esc    exit
//	C      toggle edit mode (editor camera, scripts paused)
//	Tab    switch primary camera
//	F1     toggle the settings panel
//	F11    toggle fullscreen viewport
//	F12    save the viewport to a PNG (Shift+F12: whole window)
//	WASD   pan the editor camera (edit mode, viewport focused)
//	Q/E    rotate the editor camera
//	arrows move the scene camera entity
package editor
