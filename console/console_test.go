package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gustavonihei/tock/driver/stub"
	"github.com/gustavonihei/tock/kernel"
)

func TestPutStringBlocksUntilPrintDone(t *testing.T) {
	k := stub.NewKernel()
	c := New(k)

	// Queue the completion up front so the blocking wait resolves.
	k.Inject(0, 1, 2, 0, 0)

	if err := c.PutString("ok"); err != nil {
		t.Fatalf("PutString() error = %v, want nil", err)
	}

	calls := k.Calls()
	if len(calls) != 2 {
		t.Fatalf("syscall count = %d, want 2 (allow, subscribe)", len(calls))
	}
	if calls[0].Kind != stub.CallAllow || calls[0].Driver != 0 || calls[0].Slot != 1 || calls[0].Len != 2 {
		t.Errorf("first call = %+v, want allow(0, 1) with length 2", calls[0])
	}
	if calls[1].Kind != stub.CallSubscribe || calls[1].Driver != 0 || calls[1].Slot != 1 {
		t.Errorf("second call = %+v, want subscribe(0, 1)", calls[1])
	}

	// The kernel saw the internal copy, not the caller's string.
	if got := k.Allowed(0, 1); !bytes.Equal(got, []byte("ok")) {
		t.Errorf("allowed buffer = %q, want %q", got, "ok")
	}

	// The copy was released exactly once.
	if len(c.spare) != 1 {
		t.Errorf("free list length = %d, want 1", len(c.spare))
	}
}

func TestCopyNotReleasedBeforeCompletion(t *testing.T) {
	k := stub.NewKernel()
	c := New(k)

	buf := c.acquire(3)
	copy(buf, "abc")

	if _, err := c.PutNAsync(buf, c.putDone, buf); err != nil {
		t.Fatalf("PutNAsync() error = %v, want nil", err)
	}

	if len(c.spare) != 0 {
		t.Fatalf("copy released before completion: free list length = %d, want 0", len(c.spare))
	}

	if tag := k.Fire(0, 1, 3, 0, 0); tag != kernel.CallbackPutDone {
		t.Fatalf("completion tag = %v, want CallbackPutDone", tag)
	}

	if len(c.spare) != 1 {
		t.Errorf("free list length after completion = %d, want 1", len(c.spare))
	}
}

func TestPutNAsyncShortCircuits(t *testing.T) {
	tests := []struct {
		name      string
		program   func(*stub.Kernel)
		wantCode  kernel.Status
		wantCalls int
	}{
		{
			name:      "allow failure skips subscribe",
			program:   func(k *stub.Kernel) { k.FailAllow(0, 1, kernel.StatusFail) },
			wantCode:  kernel.StatusFail,
			wantCalls: 1,
		},
		{
			name:      "subscribe failure propagates",
			program:   func(k *stub.Kernel) { k.FailSubscribe(0, 1, kernel.StatusBusy) },
			wantCode:  kernel.StatusBusy,
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := stub.NewKernel()
			c := New(k)
			tt.program(k)

			_, err := c.PutNAsync([]byte("x"), c.putDone, nil)
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("PutNAsync() error = %v, want %v", err, tt.wantCode)
			}
			if got := len(k.Calls()); got != tt.wantCalls {
				t.Errorf("syscall count = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestPutNReleasesCopyOnError(t *testing.T) {
	k := stub.NewKernel()
	c := New(k)
	k.FailSubscribe(0, 1, kernel.StatusNoMem)

	err := c.PutN([]byte("hello"))
	if !errors.Is(err, kernel.StatusNoMem) {
		t.Fatalf("PutN() error = %v, want %v", err, kernel.StatusNoMem)
	}

	// No completion will ever fire, so the error path owns the release.
	if len(c.spare) != 1 {
		t.Errorf("free list length = %d, want 1", len(c.spare))
	}
}

func TestAcquireReusesReleasedCopies(t *testing.T) {
	c := New(stub.NewKernel())

	first := c.acquire(8)
	c.release(first)

	second := c.acquire(4)
	if &first[0] != &second[0] {
		t.Error("acquire() allocated a fresh buffer, want reuse of released copy")
	}
	if len(second) != 4 {
		t.Errorf("reused buffer length = %d, want 4", len(second))
	}
}
