//go:build tinygo || baremetal

// Package tock binds kernel.Syscalls to the real kernel syscall
// symbols exported by the userspace runtime.
package tock

import (
	"sync"
	"unsafe"

	"github.com/gustavonihei/tock/kernel"
)

// Syscall stubs provided by the userspace runtime (svc-based).
//
//export tock_allow
func sysAllow(driver, slot uint32, ptr unsafe.Pointer, size uint32) int32

//export tock_subscribe
func sysSubscribe(driver, sub uint32, upcall unsafe.Pointer, userData uintptr) int32

//export tock_command
func sysCommand(driver, cmd uint32, arg int32) int32

//export tock_yield
func sysYield()

// Runtime-side trampoline the kernel jumps to for every upcall; it
// forwards to tockUpcallDispatch below.
//
//go:extern tock_upcall_trampoline
var upcallTrampoline [0]byte

// Kernel dispatches syscalls to the running kernel. Callbacks cannot
// cross the ABI as Go values, so they are kept in a Go-side table keyed
// by (driver, sub) and the slot key rides along as the upcall userdata.
type Kernel struct{}

func New() *Kernel { return &Kernel{} }

var (
	subsMu  sync.Mutex
	subs    = make(map[uintptr]subscription)
	lastTag kernel.CallbackType
)

type subscription struct {
	cb       kernel.Callback
	userData any
}

func slotToken(driver, sub int) uintptr {
	return uintptr(driver)<<16 | uintptr(sub)
}

func (k *Kernel) Allow(driver, slot int, buf []byte) kernel.Status {
	var ptr unsafe.Pointer
	if len(buf) > 0 {
		ptr = unsafe.Pointer(&buf[0])
	}
	return kernel.Status(sysAllow(uint32(driver), uint32(slot), ptr, uint32(len(buf))))
}

func (k *Kernel) Subscribe(driver, sub int, cb kernel.Callback, userData any) kernel.Status {
	token := slotToken(driver, sub)

	subsMu.Lock()
	subs[token] = subscription{cb: cb, userData: userData}
	subsMu.Unlock()

	return kernel.Status(sysSubscribe(uint32(driver), uint32(sub),
		unsafe.Pointer(&upcallTrampoline), token))
}

func (k *Kernel) Command(driver, cmd, arg int) kernel.Status {
	return kernel.Status(sysCommand(uint32(driver), uint32(cmd), int32(arg)))
}

// YieldFor yields to the kernel until an upcall returns t. Upcalls for
// other tags run as a side effect, exactly once each.
func (k *Kernel) YieldFor(t kernel.CallbackType) {
	for {
		lastTag = kernel.CallbackNone
		sysYield()
		if lastTag == t {
			return
		}
	}
}

// tockUpcallDispatch is invoked by the trampoline during yield.
//
//export tock_upcall_dispatch
func tockUpcallDispatch(arg1, arg2, arg3 int32, token uintptr) {
	subsMu.Lock()
	s := subs[token]
	subsMu.Unlock()

	if s.cb == nil {
		return
	}
	lastTag = s.cb(int(arg1), int(arg2), int(arg3), s.userData)
}
