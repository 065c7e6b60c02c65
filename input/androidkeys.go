package input

// Android KeyEvent codes the "h/b/s/m/p" and volume shortcuts synthesize
// and hand to the key processor, per spec.md §4.2. These are the standard
// AOSP android.view.KeyEvent.KEYCODE_* values, not a teacher invention.
const (
	androidKeycodeHome       = 3
	androidKeycodeBack       = 4
	androidKeycodeVolumeUp   = 24
	androidKeycodeVolumeDown = 25
	androidKeycodePower      = 26
	androidKeycodeMenu       = 82
	androidKeycodeAppSwitch  = 187
)
