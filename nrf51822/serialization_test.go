package nrf51822

import (
	"errors"
	"testing"

	"github.com/gustavonihei/tock/driver/stub"
	"github.com/gustavonihei/tock/kernel"
)

func TestWriteSharesBufferBeforeCommand(t *testing.T) {
	k := stub.NewKernel()
	s := New(k)

	if err := s.Write([]byte{0xDE, 0xAD}); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	calls := k.Calls()
	if len(calls) != 2 {
		t.Fatalf("syscall count = %d, want 2", len(calls))
	}
	if calls[0].Kind != stub.CallAllow || calls[0].Driver != 5 || calls[0].Slot != 1 || calls[0].Len != 2 {
		t.Errorf("first call = %+v, want allow(5, 1) with length 2", calls[0])
	}
	if calls[1].Kind != stub.CallCommand || calls[1].Driver != 5 || calls[1].Slot != 0 || calls[1].Arg != 0 {
		t.Errorf("second call = %+v, want command(5, 0, 0)", calls[1])
	}
}

func TestWriteSkipsCommandOnAllowFailure(t *testing.T) {
	k := stub.NewKernel()
	s := New(k)
	k.FailAllow(5, 1, kernel.StatusSize)

	err := s.Write(make([]byte, 600))
	if !errors.Is(err, kernel.StatusSize) {
		t.Fatalf("Write() error = %v, want %v", err, kernel.StatusSize)
	}
	if got := len(k.Calls()); got != 1 {
		t.Errorf("syscall count = %d, want 1 (no command after failed allow)", got)
	}
}

func TestSetRxBufferUsesReceiveSlot(t *testing.T) {
	k := stub.NewKernel()
	s := New(k)

	rx := make([]byte, 64)
	if err := s.SetRxBuffer(rx); err != nil {
		t.Fatalf("SetRxBuffer() error = %v, want nil", err)
	}

	if buf := k.Allowed(5, 0); len(buf) != 64 {
		t.Errorf("rx buffer length on slot 0 = %d, want 64", len(buf))
	}
}

func TestSubscribeRegistersEventCallback(t *testing.T) {
	k := stub.NewKernel()
	s := New(k)

	received := 0
	err := s.Subscribe(func(n, _, _ int, _ any) kernel.CallbackType {
		received = n
		return kernel.CallbackAny
	})
	if err != nil {
		t.Fatalf("Subscribe() error = %v, want nil", err)
	}

	k.Fire(5, 0, 17, 0, 0)
	if received != 17 {
		t.Errorf("callback arg = %d, want 17", received)
	}
}
