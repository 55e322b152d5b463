package kernel

// Pending represents an in-flight asynchronous operation. Async
// primitives return one; blocking wrappers are the composition of the
// async issue and Wait, which lets tests drive completion from a fake
// kernel instead of real hardware.
type Pending struct {
	sys Syscalls
	tag CallbackType
}

// NewPending binds a completion tag to its syscall source.
func NewPending(sys Syscalls, tag CallbackType) Pending {
	return Pending{sys: sys, tag: tag}
}

// Tag returns the completion tag this operation resolves with.
func (p Pending) Tag() CallbackType { return p.tag }

// Wait suspends the calling task until the operation's completion
// callback has fired.
func (p Pending) Wait() { p.sys.YieldFor(p.tag) }
