package lattice

import (
	"runtime"

	"github.com/lattice-ui/lattice/render"
)

// Platform represents the operating system the application runs on.
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "js"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the app is running on.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformMacOS
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "js":
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}

// IsDesktop returns true if running on macOS, Linux, or Windows.
func IsDesktop() bool {
	p := CurrentPlatform()
	return p == PlatformMacOS || p == PlatformLinux || p == PlatformWindows
}

// IsWeb returns true if running in a web browser (WASM).
func IsWeb() bool {
	return CurrentPlatform() == PlatformWeb
}

// SupportsFileDialog returns true if the platform supports native file dialogs.
func SupportsFileDialog() bool {
	return IsDesktop()
}

// HasPhysicalKeyboard returns true if the platform typically has a physical keyboard.
func HasPhysicalKeyboard() bool {
	return IsDesktop()
}

// InputManager surfaces directional navigation input queued by the
// backend between frames.
type InputManager interface {
	// PollDirection returns the next queued focus move. ok is false when
	// the queue is empty.
	PollDirection() (dir FocusDirection, ok bool)
}

// Sound identifies an interface feedback sound.
type Sound string

const (
	SoundFocusChange Sound = "focus-change"
	SoundFocusError  Sound = "focus-error"
)

// AudioPlayer plays interface feedback sounds. Implementations may ignore
// sounds they do not ship.
type AudioPlayer interface {
	Play(sound Sound)
}

// Driver is the windowing and input backend an Application runs on. The
// toolkit itself is backend-agnostic; Run drives whatever implementation
// it is handed. The canvas returned by BeginFrame doubles as the video
// context: all drawing for the frame goes through it.
type Driver interface {
	// WindowSize reports the current drawable size in points.
	WindowSize() (w, h float32)

	// Input returns the backend's input queue, or nil for output-only
	// backends.
	Input() InputManager

	// BeginFrame prepares the next frame and returns the canvas to draw
	// into. The canvas is only valid until the matching EndFrame.
	BeginFrame() render.Canvas

	// EndFrame presents the frame drawn since BeginFrame.
	EndFrame() error

	// ShouldClose reports whether the host asked the main loop to exit.
	ShouldClose() bool
}
