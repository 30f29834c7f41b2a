// Package lattice is a retained-mode UI toolkit with flexbox layout and
// gamepad-style directional focus. The Application ties the pieces together:
// it owns the root container, the task scheduler and the current focus, and
// drives the per-frame tick.
package lattice

import (
	"log/slog"
	"time"

	"github.com/lattice-ui/lattice/internal/logging"
	"github.com/lattice-ui/lattice/render"
	"github.com/lattice-ui/lattice/sched"
	"github.com/lattice-ui/lattice/view"
)

// SetLogger installs the process-wide logger. Pass nil to silence all
// toolkit logging.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Application owns one view tree and everything that animates it. Create
// with New, populate the root container, then either call Run with a
// Driver or drive Frame manually.
type Application struct {
	cfg   AppConfig
	root  *view.View
	sched *sched.Scheduler
	focus *view.View
	style render.Style
	audio AudioPlayer

	winW, winH float32
}

// New creates an application with an empty column root container. If the
// config names a theme file it is loaded now; a broken theme is an error
// worth failing startup for.
func New(cfg AppConfig) (*Application, error) {
	a := &Application{
		cfg:   cfg,
		root:  view.NewBox(view.AxisColumn),
		sched: sched.New(sched.DefaultConfig()),
		style: render.DefaultStyle(),
		winW:  cfg.Width,
		winH:  cfg.Height,
	}
	a.root.SetID("root")
	if cfg.ThemePath != "" {
		st, err := LoadThemeFile(cfg.ThemePath)
		if err != nil {
			return nil, err
		}
		a.style = st
	}
	return a, nil
}

// Root returns the root container. Content goes in through AddView (or an
// inflated tree).
func (a *Application) Root() *view.View { return a.root }

// Scheduler returns the application's task scheduler.
func (a *Application) Scheduler() *sched.Scheduler { return a.sched }

// Style returns the active resolved theme.
func (a *Application) Style() render.Style { return a.style }

// SetStyle replaces the active theme.
func (a *Application) SetStyle(st render.Style) { a.style = st }

// FocusedView returns the view currently holding focus, or nil.
func (a *Application) FocusedView() *View { return a.focus }

// View is re-exported so application code can hold tree references without
// importing the view package for the common case.
type View = view.View

// FocusDirection re-exports the navigation directions.
type FocusDirection = view.FocusDirection

const (
	FocusUp    = view.FocusUp
	FocusDown  = view.FocusDown
	FocusLeft  = view.FocusLeft
	FocusRight = view.FocusRight
)

// GiveFocus resolves the default focus of the given subtree and moves
// focus there. At most one view holds focus; the previous holder is
// notified of the loss first. A subtree with nothing focusable leaves
// focus unchanged.
func (a *Application) GiveFocus(v *View) {
	if v == nil {
		return
	}
	target := v.DefaultFocus()
	if target == nil || target == a.focus {
		return
	}
	if a.focus != nil {
		a.focus.NotifyFocusLost()
	}
	a.focus = target
	target.NotifyFocusGained()
	logging.Logger().Debug("focus moved", "view", target.Describe())
}

// ClearFocus removes focus from the tree entirely.
func (a *Application) ClearFocus() {
	if a.focus == nil {
		return
	}
	a.focus.NotifyFocusLost()
	a.focus = nil
}

// SetAudioPlayer installs the feedback sound sink. Pass nil to silence
// navigation sounds.
func (a *Application) SetAudioPlayer(p AudioPlayer) { a.audio = p }

func (a *Application) playSound(s Sound) {
	if a.audio != nil {
		a.audio.Play(s)
	}
}

// NavigateFocus moves focus in the given direction. With no current focus
// it seeds focus from the root. Returns true when focus moved.
func (a *Application) NavigateFocus(dir FocusDirection) bool {
	if a.focus == nil {
		a.GiveFocus(a.root)
		return a.focus != nil
	}
	next := a.focus.NextFocus(dir, a.focus)
	if next == nil || next == a.focus {
		a.playSound(SoundFocusError)
		return false
	}
	a.focus.NotifyFocusLost()
	a.focus = next
	next.NotifyFocusGained()
	a.playSound(SoundFocusChange)
	return true
}

// SetWindowSize records a new window size and notifies the tree. Layout is
// recomputed on the next frame.
func (a *Application) SetWindowSize(w, h float32) {
	if w == a.winW && h == a.winH {
		return
	}
	a.winW, a.winH = w, h
	a.root.WindowSizeChanged()
	a.root.Invalidate()
}

// WindowSize returns the size the tree is laid out against.
func (a *Application) WindowSize() (float32, float32) {
	return a.winW, a.winH
}

// Frame runs one tick: drain scheduled tasks, recompute layout if anything
// invalidated it, then draw the tree and the focus ring. Must run on the
// render thread.
func (a *Application) Frame(canvas render.Canvas, delta float32) {
	a.sched.PerformSyncTasks()

	if a.root.Node().Dirty() {
		a.root.Node().ComputeLayout(a.winW, a.winH)
	}

	fc := &render.FrameContext{
		Canvas:       canvas,
		Style:        a.style,
		WindowWidth:  a.winW,
		WindowHeight: a.winH,
		DeltaSeconds: delta,
	}
	a.root.Draw(fc)

	if a.focus != nil && a.focus.Visibility() == view.VisibilityVisible && canvas != nil {
		f := a.focus.Frame()
		canvas.StrokeRect(f.X, f.Y, f.W, f.H, 2, a.style.FocusRing)
	}
}

// Run drives the main loop against a Driver until it asks to close. The
// background scheduler loop is started for the duration.
func (a *Application) Run(d Driver) error {
	a.sched.Start()
	defer a.sched.Stop()

	last := time.Now()
	for !d.ShouldClose() {
		now := time.Now()
		delta := float32(now.Sub(last).Seconds())
		last = now

		a.SetWindowSize(d.WindowSize())
		if in := d.Input(); in != nil {
			for dir, ok := in.PollDirection(); ok; dir, ok = in.PollDirection() {
				a.NavigateFocus(dir)
			}
		}
		a.Frame(d.BeginFrame(), delta)
		if err := d.EndFrame(); err != nil {
			return err
		}
	}
	return nil
}
