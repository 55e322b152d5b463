//go:build !tinygo && !baremetal

// Package stub implements a fake kernel for host-side testing. Tests
// script it: program rejection statuses, inject completion deliveries,
// then assert on the ordered syscall log.
package stub

import (
	"sync"
	"time"

	"github.com/gustavonihei/tock/kernel"
)

// CallKind discriminates entries in the syscall log.
type CallKind int

const (
	CallAllow CallKind = iota
	CallSubscribe
	CallCommand
)

// Call records one syscall issued against the fake kernel.
type Call struct {
	Kind   CallKind
	Driver int
	Slot   int // allow slot, subscription number or command number
	Arg    int // command argument
	Len    int // allowed buffer length
}

type slotKey struct{ driver, slot int }

type subscription struct {
	cb       kernel.Callback
	userData any
}

// Kernel implements kernel.Syscalls in memory.
type Kernel struct {
	mu      sync.Mutex
	subs    map[slotKey]subscription
	allowed map[slotKey][]byte
	calls   []Call
	queue   deliveryRing

	allowStatus     map[slotKey]kernel.Status
	subscribeStatus map[slotKey]kernel.Status
	commandStatus   map[slotKey]kernel.Status
}

func NewKernel() *Kernel {
	return &Kernel{
		subs:            make(map[slotKey]subscription),
		allowed:         make(map[slotKey][]byte),
		allowStatus:     make(map[slotKey]kernel.Status),
		subscribeStatus: make(map[slotKey]kernel.Status),
		commandStatus:   make(map[slotKey]kernel.Status),
	}
}

func (k *Kernel) Allow(driver, slot int, buf []byte) kernel.Status {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.calls = append(k.calls, Call{Kind: CallAllow, Driver: driver, Slot: slot, Len: len(buf)})
	if st, ok := k.allowStatus[slotKey{driver, slot}]; ok {
		return st
	}
	k.allowed[slotKey{driver, slot}] = buf
	return kernel.StatusSuccess
}

func (k *Kernel) Subscribe(driver, sub int, cb kernel.Callback, userData any) kernel.Status {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.calls = append(k.calls, Call{Kind: CallSubscribe, Driver: driver, Slot: sub})
	if st, ok := k.subscribeStatus[slotKey{driver, sub}]; ok {
		return st
	}
	// Last-write-wins: a new registration replaces the previous one.
	k.subs[slotKey{driver, sub}] = subscription{cb: cb, userData: userData}
	return kernel.StatusSuccess
}

func (k *Kernel) Command(driver, cmd, arg int) kernel.Status {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.calls = append(k.calls, Call{Kind: CallCommand, Driver: driver, Slot: cmd, Arg: arg})
	if st, ok := k.commandStatus[slotKey{driver, cmd}]; ok {
		return st
	}
	return kernel.StatusSuccess
}

// YieldFor dispatches queued deliveries until one of them reaches a
// callback that returns t. Deliveries without a live subscription are
// dropped, matching a kernel that has nowhere to send the upcall.
func (k *Kernel) YieldFor(t kernel.CallbackType) {
	for {
		k.mu.Lock()
		d, ok := k.queue.pop()
		var sub subscription
		if ok {
			sub = k.subs[slotKey{d.driver, d.sub}]
		}
		k.mu.Unlock()

		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		if sub.cb == nil {
			continue
		}
		if sub.cb(d.args[0], d.args[1], d.args[2], sub.userData) == t {
			return
		}
	}
}

// Inject queues a completion delivery for (driver, sub). It is
// dispatched by the next YieldFor.
func (k *Kernel) Inject(driver, sub, arg1, arg2, arg3 int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.queue.push(delivery{driver: driver, sub: sub, args: [3]int{arg1, arg2, arg3}})
}

// Fire invokes the subscribed callback synchronously and returns its
// tag, bypassing the dispatch queue. Useful for async-path tests.
func (k *Kernel) Fire(driver, sub, arg1, arg2, arg3 int) kernel.CallbackType {
	k.mu.Lock()
	s := k.subs[slotKey{driver, sub}]
	k.mu.Unlock()

	if s.cb == nil {
		return kernel.CallbackNone
	}
	return s.cb(arg1, arg2, arg3, s.userData)
}

// FailAllow makes every Allow on (driver, slot) return st.
func (k *Kernel) FailAllow(driver, slot int, st kernel.Status) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.allowStatus[slotKey{driver, slot}] = st
}

// FailSubscribe makes every Subscribe on (driver, sub) return st.
func (k *Kernel) FailSubscribe(driver, sub int, st kernel.Status) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.subscribeStatus[slotKey{driver, sub}] = st
}

// FailCommand makes every Command on (driver, cmd) return st.
func (k *Kernel) FailCommand(driver, cmd int, st kernel.Status) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.commandStatus[slotKey{driver, cmd}] = st
}

// Calls returns a copy of the syscall log in issue order.
func (k *Kernel) Calls() []Call {
	k.mu.Lock()
	defer k.mu.Unlock()

	out := make([]Call, len(k.calls))
	copy(out, k.calls)
	return out
}

// ClearCalls resets the syscall log.
func (k *Kernel) ClearCalls() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.calls = k.calls[:0]
}

// Allowed returns the buffer most recently shared on (driver, slot),
// or nil if none.
func (k *Kernel) Allowed(driver, slot int) []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.allowed[slotKey{driver, slot}]
}

// Subscribed reports whether a callback is registered on (driver, sub).
func (k *Kernel) Subscribed(driver, sub int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.subs[slotKey{driver, sub}].cb != nil
}

const ringCapacity = 64

type delivery struct {
	driver, sub int
	args        [3]int
}

type deliveryRing struct {
	data       [ringCapacity]delivery
	head, tail int // head = next pop, tail = next push
	count      int
}

func (r *deliveryRing) push(d delivery) {
	if r.count == ringCapacity {
		// Overwrite the oldest when the ring is full to keep memory bounded
		r.head = (r.head + 1) % ringCapacity
		r.count--
	}
	r.data[r.tail] = d
	r.tail = (r.tail + 1) % ringCapacity
	r.count++
}

func (r *deliveryRing) pop() (delivery, bool) {
	if r.count == 0 {
		return delivery{}, false
	}
	d := r.data[r.head]
	r.head = (r.head + 1) % ringCapacity
	r.count--
	return d, true
}
