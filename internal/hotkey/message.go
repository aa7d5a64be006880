package hotkey

// The facade and the event thread talk over a single buffered channel of
// tagged messages. Commands flow facade -> thread; each round-trip command
// carries its own reply channel, so replies always pair with the command
// that created them regardless of how calls interleave.

type msgKind int

const (
	// msgRegister asks the event thread to perform the native registration
	// and insert the registry entry once the OS confirms the grab.
	msgRegister msgKind = iota
	// msgUnregister asks the event thread to release the native grab and
	// remove the registry entry after the OS confirms.
	msgUnregister
	// msgFired reports a hotkey press forwarded by a native callback
	// (macOS trampoline); other platforms dispatch from their own queues.
	msgFired
	// msgShutdown is always the last message the event thread processes.
	msgShutdown
)

type message struct {
	kind msgKind
	id   ID
	mods uint32
	key  uint32
	cb   Callback
	// reply is non-nil for register/unregister; buffered, written exactly once.
	reply chan result
}

type result struct {
	id  ID
	err error
}

// commandBuffer sizes the command channel. Sends from the facade never
// block in practice; the buffer also lets the macOS trampoline forward
// fired ids without blocking the run loop it is called from.
const commandBuffer = 16
