package simkernel

// Coroutine is a stackful-coroutine primitive built on Go's own
// host-native green thread, the goroutine: two unbuffered channels give a
// strict switch_to/switch_to_main handshake, meaning exactly one side (the
// Simulator driving CProcess.Trigger, or the CProcess body between two
// blocking calls) ever runs at a time. The channel send/receive pair forms
// a happens-before edge, so no additional synchronization is needed even
// though two goroutines exist.
type Coroutine struct {
	toCoroutine chan struct{}
	toMain      chan struct{}
	finished    bool
	started     bool
	panicValue  any
}

// NewCoroutine starts body in its own goroutine, immediately parked waiting
// for the first SwitchTo. body must call co.SwitchToMain whenever it wants
// to yield control back to the caller of SwitchTo (typically after
// scheduling its own reactivation).
//
// A panic inside body (e.g. a *KernelError from a fatal scheduling or
// resource violation) is recovered here and re-raised by SwitchTo on the
// driving goroutine instead of crashing the process outright: a panic
// raised in one goroutine is never visible to another goroutine's recover,
// so without this the Simulator.Run recover in simulator.go could never
// catch an error a CProcess body raises.
func NewCoroutine(body func(co *Coroutine)) *Coroutine {
	co := &Coroutine{
		toCoroutine: make(chan struct{}),
		toMain:      make(chan struct{}),
	}
	go func() {
		<-co.toCoroutine
		func() {
			defer func() {
				if r := recover(); r != nil {
					co.panicValue = r
				}
			}()
			body(co)
		}()
		co.finished = true
		co.toMain <- struct{}{}
	}()
	return co
}

// SwitchTo resumes the coroutine and blocks until it yields back (via
// SwitchToMain) or returns. If the coroutine's body panicked since the last
// SwitchTo, the panic is re-raised here, on the caller's goroutine.
func (co *Coroutine) SwitchTo() {
	co.started = true
	co.toCoroutine <- struct{}{}
	<-co.toMain
	if co.panicValue != nil {
		p := co.panicValue
		co.panicValue = nil
		panic(p)
	}
}

// SwitchToMain suspends the running coroutine and resumes whoever called
// SwitchTo. Must only be called from inside the coroutine's own body.
func (co *Coroutine) SwitchToMain() {
	co.toMain <- struct{}{}
	<-co.toCoroutine
}

// Finished reports whether the coroutine's body has returned.
func (co *Coroutine) Finished() bool { return co.finished }

// Started reports whether the coroutine has been resumed at least once.
func (co *Coroutine) Started() bool { return co.started }
