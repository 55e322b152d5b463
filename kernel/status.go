package kernel

import "strconv"

// Status is the raw return value of a kernel syscall. Non-negative
// values signal acceptance of the request (not completion); negative
// values are kernel rejection codes and double as errors. Codes pass
// through the shim untranslated, so callers can compare with errors.Is
// against the named statuses below.
type Status int

const (
	StatusSuccess   Status = 0
	StatusFail      Status = -1
	StatusBusy      Status = -2
	StatusAlready   Status = -3
	StatusOff       Status = -4
	StatusReserve   Status = -5
	StatusInvalid   Status = -6
	StatusSize      Status = -7
	StatusCancel    Status = -8
	StatusNoMem     Status = -9
	StatusNoSupport Status = -10
	StatusNoDevice  Status = -11
)

// Failed reports whether the kernel rejected the syscall.
func (s Status) Failed() bool { return s < 0 }

// Err converts a status to an error: nil on acceptance, the status
// itself on rejection. The original negative code is preserved exactly
// and recoverable via Code.
func (s Status) Err() error {
	if s >= 0 {
		return nil
	}
	return s
}

// Code returns the raw kernel status code.
func (s Status) Code() int { return int(s) }

func (s Status) Error() string {
	switch s {
	case StatusFail:
		return "kernel: unspecified failure"
	case StatusBusy:
		return "kernel: driver busy"
	case StatusAlready:
		return "kernel: operation already in progress"
	case StatusOff:
		return "kernel: device powered off"
	case StatusReserve:
		return "kernel: reservation required"
	case StatusInvalid:
		return "kernel: invalid argument"
	case StatusSize:
		return "kernel: size out of range"
	case StatusCancel:
		return "kernel: operation cancelled"
	case StatusNoMem:
		return "kernel: out of memory"
	case StatusNoSupport:
		return "kernel: operation not supported"
	case StatusNoDevice:
		return "kernel: no such device"
	}
	return "kernel: status " + strconv.Itoa(int(s))
}
