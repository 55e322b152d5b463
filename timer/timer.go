// Package timer wraps the kernel timer driver: one-shot and repeating
// alarms plus a blocking millisecond delay.
package timer

import "github.com/gustavonihei/tock/kernel"

const (
	driverNum        = 3
	subscribeFired   = 0
	commandOneshot   = 0
	commandRepeating = 1
)

// Timer is a handle to the kernel timer driver.
type Timer struct {
	sys kernel.Syscalls
}

func New(sys kernel.Syscalls) *Timer {
	return &Timer{sys: sys}
}

// Subscribe registers cb for timer expiry events. A new registration
// replaces the previous one.
func (t *Timer) Subscribe(cb kernel.Callback, userData any) error {
	return t.sys.Subscribe(driverNum, subscribeFired, cb, userData).Err()
}

// Oneshot arms the timer to fire once after interval ticks.
func (t *Timer) Oneshot(interval uint32) error {
	return t.sys.Command(driverNum, commandOneshot, int(interval)).Err()
}

// StartRepeating arms the timer to fire every interval ticks.
func (t *Timer) StartRepeating(interval uint32) error {
	return t.sys.Command(driverNum, commandRepeating, int(interval)).Err()
}

// Delay blocks the calling task for ms milliseconds. It claims the
// timer subscription slot, so it must not overlap other timer use.
func (t *Timer) Delay(ms uint32) error {
	if err := t.Subscribe(delayDone, nil); err != nil {
		return err
	}
	if err := t.Oneshot(ms); err != nil {
		return err
	}
	kernel.NewPending(t.sys, kernel.CallbackDelayDone).Wait()
	return nil
}

func delayDone(_, _, _ int, _ any) kernel.CallbackType {
	return kernel.CallbackDelayDone
}
