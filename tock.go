// Package tock provides typed userspace access to kernel peripherals:
// buffered console output, timers, SPI and the nRF51822 serialization
// bridge, all built over the allow/subscribe/command syscall
// primitives.
package tock

import (
	"github.com/gustavonihei/tock/console"
	"github.com/gustavonihei/tock/kernel"
	"github.com/gustavonihei/tock/nrf51822"
	"github.com/gustavonihei/tock/spi"
	"github.com/gustavonihei/tock/timer"
)

// The platform binding is split into build-tag specific files:
// - constructors_tock.go - for embedded targets (real kernel syscalls)
// - constructors_host.go - for development/testing (fake kernel)

// Re-export types for single-import use
type (
	Status       = kernel.Status
	Callback     = kernel.Callback
	CallbackType = kernel.CallbackType
	Pending      = kernel.Pending
	Syscalls     = kernel.Syscalls

	Console       = console.Console
	Timer         = timer.Timer
	SPI           = spi.SPI
	SPIBus        = spi.Bus
	Serialization = nrf51822.Serialization
)

// Completion-event tags exposed in the public API
const (
	CallbackNone       = kernel.CallbackNone
	CallbackPutDone    = kernel.CallbackPutDone
	CallbackDelayDone  = kernel.CallbackDelayDone
	CallbackSPIBufDone = kernel.CallbackSPIBufDone
	CallbackAny        = kernel.CallbackAny
)

// Kernel status codes exposed in the public API
const (
	StatusSuccess   = kernel.StatusSuccess
	StatusFail      = kernel.StatusFail
	StatusBusy      = kernel.StatusBusy
	StatusAlready   = kernel.StatusAlready
	StatusOff       = kernel.StatusOff
	StatusReserve   = kernel.StatusReserve
	StatusInvalid   = kernel.StatusInvalid
	StatusSize      = kernel.StatusSize
	StatusCancel    = kernel.StatusCancel
	StatusNoMem     = kernel.StatusNoMem
	StatusNoSupport = kernel.StatusNoSupport
	StatusNoDevice  = kernel.StatusNoDevice
)
