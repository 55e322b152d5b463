// Package kernel defines the syscall boundary of the shim: the three
// primitive calls every peripheral handle is built from, plus the
// completion-event machinery used by the blocking helpers.
package kernel

// CallbackType identifies which asynchronous event category completed.
// Blocking helpers suspend on one of these tags and resume only when a
// callback returns the matching value.
type CallbackType int

const (
	CallbackNone CallbackType = iota

	// CallbackPutDone fires when a console print buffer has been consumed.
	CallbackPutDone

	// CallbackDelayDone fires when a one-shot delay timer expires.
	CallbackDelayDone

	// CallbackSPIBufDone fires when a buffered SPI transfer completes.
	CallbackSPIBufDone

	// CallbackAny marks caller-supplied callbacks that wake no blocked
	// helper; the dispatch loop skips over it.
	CallbackAny
)

// Callback is invoked by the kernel dispatch mechanism when a
// subscribed event completes. The three arguments are driver-specific.
// The returned tag wakes a task blocked in YieldFor on that tag.
type Callback func(arg1, arg2, arg3 int, userData any) CallbackType

// Syscalls is the interface that wraps the primitive kernel calls.
//
// Driver/slot assignments consumed by this module:
//
//	driver 0: console        allow 1 (print buf), subscribe 1 (done)
//	driver 3: timer          subscribe 0 (fired), command 0 (one-shot), 1 (repeating)
//	driver 4: spi            allow 0 (read buf), 1 (write buf), subscribe 0, command 0 (byte), 1 (buffer)
//	driver 5: nrf51822 ser.  allow 0 (rx buf), 1 (tx buf), subscribe 0, command 0 (write)
//
// The meaning of driver numbers and command codes is owned by the
// kernel; handles bake them in as private configuration.
type Syscalls interface {
	// Allow shares buf with the kernel. The caller must keep buf valid
	// and untouched until the matching completion callback fires.
	Allow(driver, slot int, buf []byte) Status

	// Subscribe registers cb for completions on (driver, sub). Only one
	// registration is active per slot; a new Subscribe replaces the
	// previous one (last-write-wins).
	Subscribe(driver, sub int, cb Callback, userData any) Status

	// Command issues an immediate driver command with one argument.
	Command(driver, cmd, arg int) Status

	// YieldFor suspends the calling task, dispatching completion
	// callbacks as they arrive, and returns once a callback returns t.
	YieldFor(t CallbackType)
}
