// Package loop schedules per-frame systems: it measures frame time, runs
// systems in registration order, flushes deferred work and keeps timing
// statistics for every system.
package loop

// System is one step of a frame. Systems can keep their own state between
// frames in struct fields.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a function to System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
