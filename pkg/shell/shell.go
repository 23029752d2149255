// Package shell relays window-control signals to the focused window.
//
// Signals are one-way: no payload, no acknowledgement, no retry. A signal
// arriving while no window has focus is dropped.
package shell

import (
	"fmt"
	"log/slog"
)

// Signal is a window-control command.
type Signal int

const (
	SignalMinimize Signal = iota + 1
	// SignalMaximize maximizes the window, or restores it when already maximized.
	SignalMaximize
	SignalClose
)

func (s Signal) String() string {
	switch s {
	case SignalMinimize:
		return "window-minimize"
	case SignalMaximize:
		return "window-maximize"
	case SignalClose:
		return "window-close"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}

// Window is the surface a Relay controls.
type Window interface {
	Minimize()
	Maximize()
	Unmaximize()
	IsMaximized() bool
	Close()
}

// FocusFunc returns the focused window, or nil when none has focus.
type FocusFunc func() Window

// Relay dispatches signals to whichever window has focus at dispatch time.
type Relay struct {
	focus  FocusFunc
	logger *slog.Logger
}

// NewRelay creates a Relay. A nil logger discards output.
func NewRelay(focus FocusFunc, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Relay{focus: focus, logger: logger}
}

// Dispatch applies sig to the focused window.
func (r *Relay) Dispatch(sig Signal) {
	w := r.focus()
	if w == nil {
		r.logger.Debug("signal dropped, no focused window", "signal", sig)
		return
	}

	switch sig {
	case SignalMinimize:
		w.Minimize()
	case SignalMaximize:
		if w.IsMaximized() {
			w.Unmaximize()
		} else {
			w.Maximize()
		}
	case SignalClose:
		w.Close()
	default:
		r.logger.Debug("unknown signal ignored", "signal", sig)
		return
	}
	r.logger.Debug("signal relayed", "signal", sig)
}
