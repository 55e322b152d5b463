package spi

import "tinygo.org/x/drivers"

// Bus adapts a kernel SPI port to the drivers.SPI interface, so chip
// drivers from tinygo.org/x/drivers (flash, displays, sdcard) can run
// over the kernel's SPI syscalls. Transfers block until the kernel
// signals completion.
type Bus struct {
	port *SPI
}

var _ drivers.SPI = (*Bus)(nil)

func NewBus(port *SPI) *Bus {
	return &Bus{port: port}
}

// Tx clocks out w while filling r. Either side may be nil for a
// write-only or read-only transfer.
func (b *Bus) Tx(w, r []byte) error {
	switch {
	case len(w) == 0 && len(r) == 0:
		return nil
	case len(r) == 0:
		pending, err := b.port.WriteAsync(w, xferDone)
		if err != nil {
			return err
		}
		pending.Wait()
		return nil
	}

	tx := w
	if len(tx) < len(r) {
		// Pad the write side with zeroes to clock the full read.
		tx = make([]byte, len(r))
		copy(tx, w)
	}
	pending, err := b.port.ReadWriteAsync(tx, r, xferDone)
	if err != nil {
		return err
	}
	pending.Wait()
	return nil
}

// Transfer exchanges a single byte.
func (b *Bus) Transfer(out byte) (byte, error) {
	tx := [1]byte{out}
	var rx [1]byte
	pending, err := b.port.ReadWriteAsync(tx[:], rx[:], xferDone)
	if err != nil {
		return 0, err
	}
	pending.Wait()
	return rx[0], nil
}
