//go:build !tinygo && !baremetal

// This file is built only for non-embedded targets (host-based testing).
package tock

import (
	"sync"

	"github.com/gustavonihei/tock/console"
	"github.com/gustavonihei/tock/driver/stub"
	"github.com/gustavonihei/tock/nrf51822"
	"github.com/gustavonihei/tock/spi"
	"github.com/gustavonihei/tock/timer"
)

var (
	kernelOnce  sync.Once
	boardKernel *stub.Kernel
)

func platformKernel() *stub.Kernel {
	kernelOnce.Do(func() {
		boardKernel = stub.NewKernel()
	})
	return boardKernel
}

// StubKernel exposes the fake kernel backing host-built handles, so
// host programs can inject completions and inspect issued syscalls.
func StubKernel() *stub.Kernel { return platformKernel() }

func NewConsole() *console.Console { return console.New(platformKernel()) }

func NewTimer() *timer.Timer { return timer.New(platformKernel()) }

func NewSPI() *spi.SPI { return spi.New(platformKernel()) }

func NewSPIBus() *spi.Bus { return spi.NewBus(NewSPI()) }

func NewSerialization() *nrf51822.Serialization { return nrf51822.New(platformKernel()) }
