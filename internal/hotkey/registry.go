package hotkey

import "sync"

// entry is one active registration: the hotkey it was created from, the
// user callback, and on platforms that need it the opaque native handle
// returned by the OS.
type entry struct {
	hotkey Hotkey
	cb     Callback
	ref    nativeRef
}

// registry is the callback map shared between the Listener facade and the
// event thread. It is the only state touched from two threads; every access
// holds the lock for a single map operation, or for the duration of a
// callback invocation in fire.
type registry struct {
	mu sync.Mutex
	m  map[ID]entry
}

func newRegistry() *registry {
	return &registry{m: make(map[ID]entry)}
}

func (r *registry) insert(id ID, e entry) {
	r.mu.Lock()
	r.m[id] = e
	r.mu.Unlock()
}

func (r *registry) remove(id ID) {
	r.mu.Lock()
	delete(r.m, id)
	r.mu.Unlock()
}

func (r *registry) lookup(id ID) (entry, bool) {
	r.mu.Lock()
	e, ok := r.m[id]
	r.mu.Unlock()
	return e, ok
}

// fire invokes the callback registered under id, if any. The lock is held
// across the invocation; callbacks must not re-enter the listener.
func (r *registry) fire(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.m[id]
	if !ok {
		return false
	}
	e.cb()
	return true
}

// hotkeys returns a snapshot of the registered hotkey values.
func (r *registry) hotkeys() []Hotkey {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Hotkey, 0, len(r.m))
	for _, e := range r.m {
		out = append(out, e.hotkey)
	}
	return out
}

// clear removes and returns every entry. Used on shutdown so the event
// thread can release each native grab exactly once.
func (r *registry) clear() map[ID]entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.m
	r.m = make(map[ID]entry)
	return old
}
