// Package console provides buffered output over the kernel console
// driver. The blocking helpers copy the caller's data, so the caller's
// memory is reusable as soon as they return.
package console

import (
	"sync"

	"github.com/gustavonihei/tock/kernel"
)

const (
	driverNum      = 0
	allowPrintBuf  = 1
	subscribeWrite = 1
)

// Console is a handle to the kernel console driver.
type Console struct {
	sys kernel.Syscalls

	mu    sync.Mutex
	spare [][]byte // released print copies kept for reuse
}

func New(sys kernel.Syscalls) *Console {
	return &Console{sys: sys}
}

// PutNAsync shares data with the console driver and registers cb for
// completion. data must stay valid and untouched until cb fires. The
// returned Pending resolves once the callback returns CallbackPutDone;
// callers whose callback returns a different tag wait on their own.
// Each step's failure short-circuits with that step's exact status.
func (c *Console) PutNAsync(data []byte, cb kernel.Callback, userData any) (kernel.Pending, error) {
	if st := c.sys.Allow(driverNum, allowPrintBuf, data); st.Failed() {
		return kernel.Pending{}, st.Err()
	}
	if st := c.sys.Subscribe(driverNum, subscribeWrite, cb, userData); st.Failed() {
		return kernel.Pending{}, st.Err()
	}
	return kernel.NewPending(c.sys, kernel.CallbackPutDone), nil
}

// PutN prints data, blocking until the kernel has consumed it. The
// data is copied first, so the caller may reuse it immediately.
func (c *Console) PutN(data []byte) error {
	buf := c.acquire(len(data))
	copy(buf, data)

	pending, err := c.PutNAsync(buf, c.putDone, buf)
	if err != nil {
		c.release(buf)
		return err
	}
	pending.Wait()
	return nil
}

// PutString prints s, blocking until the kernel has consumed it.
func (c *Console) PutString(s string) error {
	return c.PutN([]byte(s))
}

// putDone runs when the kernel finishes with a print copy. The only
// place a copy is handed back on the success path.
func (c *Console) putDone(_, _, _ int, userData any) kernel.CallbackType {
	c.release(userData.([]byte))
	return kernel.CallbackPutDone
}

// acquire returns a buffer of length n, reusing a released copy when
// one is large enough.
func (c *Console) acquire(n int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, b := range c.spare {
		if cap(b) >= n {
			c.spare = append(c.spare[:i], c.spare[i+1:]...)
			return b[:n]
		}
	}
	return make([]byte, n)
}

// release hands a print copy back to the free list. Called exactly once
// per copy: by putDone on completion, or by PutN when a step fails.
func (c *Console) release(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spare = append(c.spare, b)
}
