package shell

// Frame is the window state of a terminal application.
// Its zero value is a normal, visible window.
type Frame struct {
	minimized bool
	maximized bool
	closed    bool
}

// Minimize implements Window.
func (f *Frame) Minimize() { f.minimized = true }

// Maximize implements Window. It also restores a minimized frame.
func (f *Frame) Maximize() {
	f.maximized = true
	f.minimized = false
}

// Unmaximize implements Window.
func (f *Frame) Unmaximize() {
	f.maximized = false
	f.minimized = false
}

// Restore brings a minimized frame back.
func (f *Frame) Restore() { f.minimized = false }

// IsMaximized implements Window.
func (f *Frame) IsMaximized() bool { return f.maximized }

// IsMinimized reports whether the frame is minimized.
func (f *Frame) IsMinimized() bool { return f.minimized }

// Close implements Window.
func (f *Frame) Close() { f.closed = true }

// IsClosed reports whether the frame was closed.
func (f *Frame) IsClosed() bool { return f.closed }

var _ Window = (*Frame)(nil)
