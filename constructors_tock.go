//go:build tinygo || baremetal

// This file is built only for embedded targets (real kernel syscalls).
package tock

import (
	"github.com/gustavonihei/tock/console"
	tockdrv "github.com/gustavonihei/tock/driver/tock"
	"github.com/gustavonihei/tock/nrf51822"
	"github.com/gustavonihei/tock/spi"
	"github.com/gustavonihei/tock/timer"
)

var boardKernel = tockdrv.New()

func NewConsole() *console.Console { return console.New(boardKernel) }

func NewTimer() *timer.Timer { return timer.New(boardKernel) }

func NewSPI() *spi.SPI { return spi.New(boardKernel) }

func NewSPIBus() *spi.Bus { return spi.NewBus(NewSPI()) }

func NewSerialization() *nrf51822.Serialization { return nrf51822.New(boardKernel) }
