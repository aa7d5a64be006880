package hotkey

import (
	"io"
	"log"
	"sort"
	"sync"
)

// backend is the platform listener surface the Manager drives. *Listener
// satisfies it on every platform; tests substitute a fake.
type backend interface {
	Register(mods, key uint32, cb Callback) (ID, error)
	Unregister(id ID) error
	Registered() []Hotkey
	Close() error
}

// Manager tracks registrations by hotkey value on top of a Listener. It
// rejects duplicates before touching the OS and can drop every binding at
// once by replacing the whole listener.
type Manager struct {
	mu      sync.Mutex
	ids     map[Hotkey]ID
	b       backend
	factory func(*log.Logger) (backend, error)
	logger  *log.Logger
}

// NewManager starts a platform listener and wraps it. dbg may be nil.
func NewManager(dbg *log.Logger) (*Manager, error) {
	if dbg == nil {
		dbg = log.New(io.Discard, "", 0)
	}
	factory := func(l *log.Logger) (backend, error) {
		return NewListener(l)
	}
	b, err := factory(dbg)
	if err != nil {
		return nil, err
	}
	return &Manager{
		ids:     make(map[Hotkey]ID),
		b:       b,
		factory: factory,
		logger:  dbg,
	}, nil
}

// Register binds cb to h. Registering a hotkey that is already bound fails
// with AlreadyRegisteredError without calling into the OS.
func (m *Manager) Register(h Hotkey, cb Callback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.ids[h]; exists {
		return AlreadyRegisteredError{h}
	}
	id, err := m.b.Register(h.Mods, h.Key, cb)
	if err != nil {
		return err
	}
	m.ids[h] = id
	m.logger.Printf("hotkey: registered %s", h)
	return nil
}

// Unregister removes the binding for h. Unregistering a hotkey that is not
// bound fails with NotRegisteredError.
func (m *Manager) Unregister(h Hotkey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, exists := m.ids[h]
	if !exists {
		return NotRegisteredError{h}
	}
	if err := m.b.Unregister(id); err != nil {
		return err
	}
	delete(m.ids, h)
	m.logger.Printf("hotkey: unregistered %s", h)
	return nil
}

// UnregisterAll drops every binding by shutting the listener down and
// starting a fresh one. Cheaper and more reliable than unregistering one
// at a time, and it also recovers a listener whose event thread died.
func (m *Manager) UnregisterAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.b.Close(); err != nil {
		return err
	}
	b, err := m.factory(m.logger)
	if err != nil {
		return err
	}
	m.b = b
	m.ids = make(map[Hotkey]ID)
	m.logger.Print("hotkey: unregistered all")
	return nil
}

// Registered returns the bound hotkeys sorted by their string form.
func (m *Manager) Registered() []Hotkey {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Hotkey, 0, len(m.ids))
	for h := range m.ids {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// IsRegistered reports whether h is currently bound.
func (m *Manager) IsRegistered(h Hotkey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[h]
	return ok
}

// Close shuts the listener down. The Manager is unusable afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = nil
	return m.b.Close()
}
