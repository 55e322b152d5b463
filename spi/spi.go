// Package spi wraps the kernel SPI master driver: immediate byte
// writes and buffered, callback-completed transfers.
package spi

import "github.com/gustavonihei/tock/kernel"

const (
	driverNum        = 4
	allowReadBuf     = 0
	allowWriteBuf    = 1
	subscribeXfer    = 0
	commandWriteByte = 0
	commandXfer      = 1
)

// SPI is a handle to the kernel SPI master driver.
type SPI struct {
	sys kernel.Syscalls
}

func New(sys kernel.Syscalls) *SPI {
	return &SPI{sys: sys}
}

// WriteByte clocks out a single byte immediately. No buffer or
// callback is involved.
func (s *SPI) WriteByte(b byte) error {
	return s.sys.Command(driverNum, commandWriteByte, int(b)).Err()
}

// SetReadBuffer shares buf with the driver to be filled by the read
// side of subsequent transfers.
func (s *SPI) SetReadBuffer(buf []byte) error {
	return s.sys.Allow(driverNum, allowReadBuf, buf).Err()
}

// WriteAsync shares buf as the transmit buffer, registers cb for
// completion and starts a buffered write of len(buf) bytes. A failing
// step returns that step's exact status and later steps are not
// issued. buf must stay untouched until cb fires.
func (s *SPI) WriteAsync(buf []byte, cb kernel.Callback) (kernel.Pending, error) {
	if st := s.sys.Allow(driverNum, allowWriteBuf, buf); st.Failed() {
		return kernel.Pending{}, st.Err()
	}
	if st := s.sys.Subscribe(driverNum, subscribeXfer, cb, nil); st.Failed() {
		return kernel.Pending{}, st.Err()
	}
	if st := s.sys.Command(driverNum, commandXfer, len(buf)); st.Failed() {
		return kernel.Pending{}, st.Err()
	}
	return kernel.NewPending(s.sys, kernel.CallbackSPIBufDone), nil
}

// ReadWriteAsync runs a full-duplex transfer: tx is clocked out while
// rx fills. The read buffer is shared first; on failure the write path
// is not touched.
func (s *SPI) ReadWriteAsync(tx, rx []byte, cb kernel.Callback) (kernel.Pending, error) {
	if st := s.sys.Allow(driverNum, allowReadBuf, rx); st.Failed() {
		return kernel.Pending{}, st.Err()
	}
	return s.WriteAsync(tx, cb)
}

// BlockWrite issues a buffered write with an internal completion
// callback and returns once the command is accepted, not when the
// transfer finishes. Callers must not reuse buf until the transfer
// completes.
//
// TODO: wait on CallbackSPIBufDone before returning so the behaviour
// matches the name.
func (s *SPI) BlockWrite(buf []byte) error {
	_, err := s.WriteAsync(buf, xferDone)
	return err
}

func xferDone(_, _, _ int, _ any) kernel.CallbackType {
	return kernel.CallbackSPIBufDone
}
