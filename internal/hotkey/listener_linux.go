//go:build linux

package hotkey

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ID identifies an active registration. On X11 it is derived from the
// hotkey itself: the grabbed keycode plus the modifier mask. No OS
// allocation is involved.
type ID struct {
	keycode xproto.Keycode
	mods    uint16
}

type nativeRef = struct{}

// pollInterval is the cadence of the event loop: pending X events are
// drained, then pending commands, then the thread sleeps. Human keypresses
// are low-frequency, so tens of milliseconds is plenty.
const pollInterval = 50 * time.Millisecond

// Listener registers global hotkeys through X11 key grabs. One background
// goroutine, locked to nothing in particular but sole owner of the X
// connection, polls events and commands until Close.
type Listener struct {
	cmds   chan message
	reg    *registry
	logger *log.Logger

	mu     sync.Mutex
	closed bool
}

// NewListener opens a connection to the X display on a new event goroutine
// and returns once that goroutine is ready to accept commands.
func NewListener(dbg *log.Logger) (*Listener, error) {
	if dbg == nil {
		dbg = log.New(io.Discard, "", 0)
	}
	l := &Listener{
		cmds:   make(chan message, commandBuffer),
		reg:    newRegistry(),
		logger: dbg,
	}
	ready := make(chan error, 1)
	go l.run(ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return l, nil
}

// Register grabs the key+modifier combination globally and installs cb.
// It blocks until the event thread has confirmed the grab with the X
// server; a grab held by another client surfaces as an APIError.
func (l *Listener) Register(mods, key uint32, cb Callback) (ID, error) {
	if cb == nil {
		return ID{}, errors.New("hotkey: nil callback")
	}
	reply := make(chan result, 1)
	if err := l.send(message{kind: msgRegister, mods: mods, key: key, cb: cb, reply: reply}); err != nil {
		return ID{}, err
	}
	res := <-reply
	return res.id, res.err
}

// Unregister releases the grab identified by id. The registry entry is
// removed only after the X server has confirmed the ungrab.
func (l *Listener) Unregister(id ID) error {
	reply := make(chan result, 1)
	if err := l.send(message{kind: msgUnregister, id: id, reply: reply}); err != nil {
		return err
	}
	return (<-reply).err
}

// Registered returns a snapshot of the currently registered hotkeys. No
// channel round trip is involved.
func (l *Listener) Registered() []Hotkey {
	return l.reg.hotkeys()
}

// Close asks the event thread to release all remaining grabs and the X
// connection, then exit. It does not wait for the thread to finish; the
// Listener is unusable afterwards.
func (l *Listener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	l.cmds <- message{kind: msgShutdown}
	return nil
}

func (l *Listener) send(m message) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrChannelClosed
	}
	l.cmds <- m
	return nil
}

// lockVariants are the extra modifier combinations grabbed alongside the
// requested one so the binding works with CapsLock/NumLock engaged.
var lockVariants = []uint16{0, capsLockMask, numLockMask, capsLockMask | numLockMask}

func (l *Listener) run(ready chan<- error) {
	conn, err := xgb.NewConn()
	if err != nil {
		ready <- fmt.Errorf("hotkey: open X display: %w", err)
		return
	}
	setup := xproto.Setup(conn)
	root := setup.DefaultScreen(conn).Root
	ready <- nil

	// Held between loop iterations: an event read while checking for an
	// auto-repeat pair that turned out to be unrelated.
	var pending xgb.Event

	for {
		pending = l.drainEvents(conn, pending)
		if !l.drainCommands(conn, setup, root) {
			return
		}
		time.Sleep(pollInterval)
	}
}

// drainEvents dispatches all pending X events. KeyRelease is the trigger:
// grabbing with GrabModeAsync delivers press and release, and firing on
// release matches how a human expects a one-shot hotkey to behave.
func (l *Listener) drainEvents(conn *xgb.Conn, pending xgb.Event) xgb.Event {
	for {
		var ev xgb.Event
		var xerr xgb.Error
		if pending != nil {
			ev, pending = pending, nil
		} else {
			ev, xerr = conn.PollForEvent()
		}
		if ev == nil && xerr == nil {
			return nil
		}
		if xerr != nil {
			l.logger.Printf("hotkey: X event error: %v", xerr)
			continue
		}
		kr, ok := ev.(xproto.KeyReleaseEvent)
		if !ok {
			continue
		}

		// Without detectable auto-repeat, a held key produces synthetic
		// release+press pairs. Peek the next event: if it is a press of
		// the same keycode, swallow both so a press-and-hold fires once.
		next, _ := conn.PollForEvent()
		if kp, isPress := next.(xproto.KeyPressEvent); isPress && kp.Detail == kr.Detail {
			continue
		}
		if next != nil {
			pending = next
		}

		id := ID{keycode: kr.Detail, mods: cleanState(kr.State)}
		if !l.reg.fire(id) {
			l.logger.Printf("hotkey: release for unregistered combination (keycode=%d state=%#x)", kr.Detail, kr.State)
		}
	}
}

// cleanState strips the lock-key bits from an event's modifier state so it
// matches the mask the hotkey was registered under.
func cleanState(state uint16) uint16 {
	return state &^ (capsLockMask | numLockMask)
}

// drainCommands processes all pending channel commands. Returns false once
// shutdown has been handled and the connection closed.
func (l *Listener) drainCommands(conn *xgb.Conn, setup *xproto.SetupInfo, root xproto.Window) bool {
	for {
		select {
		case m := <-l.cmds:
			switch m.kind {
			case msgRegister:
				id, err := l.grab(conn, setup, root, m.mods, m.key)
				if err == nil {
					l.reg.insert(id, entry{hotkey: Hotkey{Mods: m.mods, Key: m.key}, cb: m.cb})
				}
				m.reply <- result{id: id, err: err}
			case msgUnregister:
				err := l.ungrab(conn, root, m.id)
				if err == nil {
					l.reg.remove(m.id)
				}
				m.reply <- result{err: err}
			case msgShutdown:
				for id := range l.reg.clear() {
					if err := l.ungrab(conn, root, id); err != nil {
						l.logger.Printf("hotkey: ungrab on shutdown: %v", err)
					}
				}
				conn.Close()
				return false
			default:
				l.logger.Printf("hotkey: event thread ignoring message kind %d", m.kind)
			}
		default:
			return true
		}
	}
}

func (l *Listener) grab(conn *xgb.Conn, setup *xproto.SetupInfo, root xproto.Window, mods, key uint32) (ID, error) {
	keycode, err := keysymToKeycode(conn, setup, key)
	if err != nil {
		return ID{}, err
	}
	id := ID{keycode: keycode, mods: uint16(mods)}
	if _, exists := l.reg.lookup(id); exists {
		return ID{}, AlreadyRegisteredError{Hotkey{Mods: mods, Key: key}}
	}
	for i, variant := range lockVariants {
		err := xproto.GrabKeyChecked(conn, false, root, id.mods|variant, keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
		if err != nil {
			// Roll back the variants grabbed so far; a failed register
			// must not leave a partial grab behind.
			for _, v := range lockVariants[:i] {
				_ = xproto.UngrabKeyChecked(conn, keycode, root, id.mods|v).Check()
			}
			return ID{}, &APIError{Op: "GrabKey", Err: err}
		}
	}
	return id, nil
}

func (l *Listener) ungrab(conn *xgb.Conn, root xproto.Window, id ID) error {
	for _, variant := range lockVariants {
		if err := xproto.UngrabKeyChecked(conn, id.keycode, root, id.mods|variant).Check(); err != nil {
			return &APIError{Op: "UngrabKey", Err: err}
		}
	}
	return nil
}

// keysymToKeycode resolves a keysym to the keycode currently mapped to it,
// querying the server's keyboard mapping. Letters live in the shifted
// column of the mapping, which is why every column is searched.
func keysymToKeycode(conn *xgb.Conn, setup *xproto.SetupInfo, keysym uint32) (xproto.Keycode, error) {
	first := setup.MinKeycode
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(conn, first, count).Reply()
	if err != nil {
		return 0, fmt.Errorf("hotkey: get keyboard mapping: %w", err)
	}
	per := int(reply.KeysymsPerKeycode)
	for i := 0; i < int(count); i++ {
		for j := 0; j < per; j++ {
			if uint32(reply.Keysyms[i*per+j]) == keysym {
				return first + xproto.Keycode(i), nil
			}
		}
	}
	return 0, fmt.Errorf("hotkey: no keycode maps to keysym %#x", keysym)
}
