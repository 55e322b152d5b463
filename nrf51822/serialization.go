// Package nrf51822 drives the BLE serialization bridge: a UART link to
// the nRF51822 network processor carried over the kernel's
// serialization driver.
package nrf51822

import "github.com/gustavonihei/tock/kernel"

const (
	driverNum       = 5
	allowRxBuf      = 0
	allowTxBuf      = 1
	subscribeEvents = 0
	commandWrite    = 0
)

// Serialization is a handle to the kernel serialization driver.
type Serialization struct {
	sys kernel.Syscalls
}

func New(sys kernel.Syscalls) *Serialization {
	return &Serialization{sys: sys}
}

// Subscribe registers cb for bridge events (received data, completed
// writes).
func (s *Serialization) Subscribe(cb kernel.Callback) error {
	return s.sys.Subscribe(driverNum, subscribeEvents, cb, nil).Err()
}

// SetRxBuffer shares buf with the bridge to be filled with incoming
// data. The buffer stays kernel-owned until replaced.
func (s *Serialization) SetRxBuffer(buf []byte) error {
	return s.sys.Allow(driverNum, allowRxBuf, buf).Err()
}

// Write shares buf as the transmit buffer, then starts the write. buf
// must stay untouched until the completion event fires. A failing
// share returns that status without issuing the write.
func (s *Serialization) Write(buf []byte) error {
	if st := s.sys.Allow(driverNum, allowTxBuf, buf); st.Failed() {
		return st.Err()
	}
	return s.sys.Command(driverNum, commandWrite, 0).Err()
}
