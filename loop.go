package clouds

import (
	"fmt"
	"log/slog"
)

// State is the render loop state.
type State int

const (
	StateRunning State = iota
	StateClosing
)

func (s State) String() string {
	if s == StateClosing {
		return "closing"
	}
	return "running"
}

// Window is the platform side of the loop: it yields the input events that
// arrived since the last poll and presents finished frames.
type Window interface {
	// PollEvents processes pending platform events without blocking and
	// returns them in arrival order.
	PollEvents() []Event
	// SwapBuffers presents the back buffer.
	SwapBuffers()
}

// FrameRenderer draws one frame into the back buffer.
type FrameRenderer interface {
	Render() error
}

// Loop drives a Window and a FrameRenderer until a close is requested.
type Loop struct {
	window   Window
	renderer FrameRenderer
	logger   *slog.Logger
	state    State
	frames   uint64
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the logger used for loop diagnostics.
func WithLogger(l *slog.Logger) LoopOption {
	return func(lp *Loop) { lp.logger = l }
}

// NewLoop creates a loop in the running state.
func NewLoop(window Window, renderer FrameRenderer, opts ...LoopOption) *Loop {
	l := &Loop{
		window:   window,
		renderer: renderer,
		logger:   Logger,
		state:    StateRunning,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Handle applies one input event and returns the resulting state.
// Escape presses and OS close requests move the loop to Closing; the loop
// never returns to Running.
func (l *Loop) Handle(e Event) State {
	switch e.Kind {
	case EventClose:
		l.requestClose("window close")
	case EventKey:
		if e.Action == ActionPress && e.Key == KeyEscape {
			l.requestClose("escape")
		}
	}
	return l.state
}

func (l *Loop) requestClose(reason string) {
	if l.state == StateClosing {
		return
	}
	l.logger.Debug("close requested", "reason", reason, "frame", l.frames)
	l.state = StateClosing
}

// Step runs one iteration: drain input, render, present.
// A close requested during the drain still lets the current frame finish;
// Run observes the new state at the next iteration boundary.
func (l *Loop) Step() error {
	for _, e := range l.window.PollEvents() {
		l.Handle(e)
	}

	if err := l.renderer.Render(); err != nil {
		return fmt.Errorf("render frame %d: %w", l.frames, err)
	}

	l.window.SwapBuffers()
	l.frames++
	return nil
}

// Run steps the loop until it is Closing. It returns nil on a normal close.
func (l *Loop) Run() error {
	for l.state == StateRunning {
		if err := l.Step(); err != nil {
			return err
		}
	}
	l.logger.Debug("render loop exited", "frames", l.frames)
	return nil
}
