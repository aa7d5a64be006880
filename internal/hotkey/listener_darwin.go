//go:build darwin

package hotkey

/*
#cgo LDFLAGS: -framework Carbon -framework CoreFoundation
#include "carbon_darwin.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"runtime/cgo"
	"sync"
)

// ID identifies an active registration. On macOS it is the id embedded in
// the EventHotKeyID passed to RegisterEventHotKey.
type ID int32

type nativeRef = C.EventHotKeyRef

// pumpSlice is how long each CFRunLoopRunInMode call may block before the
// event thread checks its command channel again.
const pumpSlice = C.double(0.05)

// Listener registers global hotkeys through the Carbon hotkey API. One
// goroutine, locked to its OS thread, installs the event handler, pumps
// that thread's run loop, and processes channel commands until Close.
type Listener struct {
	cmds   chan message
	reg    *registry
	logger *log.Logger

	mu     sync.Mutex
	closed bool
	nextID ID
}

// NewListener spawns the event goroutine and returns once the Carbon
// handler is installed and commands are accepted.
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

// Register installs cb for the key+modifier combination. It blocks until
// the event thread has called RegisterEventHotKey; a failing call surfaces
// as an APIError carrying the OSStatus.
func (l *Listener) Register(mods, key uint32, cb Callback) (ID, error) {
	if cb == nil {
		return 0, errors.New("hotkey: nil callback")
	}
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.mu.Unlock()

	reply := make(chan result, 1)
	if err := l.send(message{kind: msgRegister, id: id, mods: mods, key: key, cb: cb, reply: reply}); err != nil {
		return 0, err
	}
	res := <-reply
	return res.id, res.err
}

// Unregister removes the registration identified by id, blocking until the
// event thread has called UnregisterEventHotKey.
func (l *Listener) Unregister(id ID) error {
	reply := make(chan result, 1)
	if err := l.send(message{kind: msgUnregister, id: id, reply: reply}); err != nil {
		return err
	}
	return (<-reply).err
}

// Registered returns a snapshot of the currently registered hotkeys.
func (l *Listener) Registered() []Hotkey {
	return l.reg.hotkeys()
}

// Close asks the event thread to unregister everything, remove the Carbon
// handler and exit. It does not wait; the Listener is unusable afterwards.
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

//export klangHotkeyFired
func klangHotkeyFired(handle C.uintptr_t, id C.int) {
	l, ok := cgo.Handle(handle).Value().(*Listener)
	if !ok {
		return
	}
	// Called from the Carbon handler while the event thread pumps its run
	// loop. Queue the event and let the thread dispatch it between pumps;
	// drop it rather than deadlock if the channel is full.
	select {
	case l.cmds <- message{kind: msgFired, id: ID(int32(id))}:
	default:
	}
}

func (l *Listener) run(ready chan<- error) {
	// The Carbon handler and run loop belong to the installing thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// The handler resources live here so every Listener owns its own
	// installation; concurrent listeners never touch each other's handler.
	var handler C.KlangHandler
	handle := cgo.NewHandle(l)
	if status := C.klangInstallHandler(C.uintptr_t(handle), &handler); status != 0 {
		handle.Delete()
		ready <- &APIError{Op: "InstallApplicationEventHandler", Code: int64(status)}
		return
	}
	ready <- nil

	for {
		C.klangPumpEvents(pumpSlice)
		if !l.drainCommands() {
			C.klangRemoveHandler(&handler)
			handle.Delete()
			return
		}
	}
}

func (l *Listener) drainCommands() bool {
	for {
		select {
		case m := <-l.cmds:
			switch m.kind {
			case msgRegister:
				var ref nativeRef
				status := C.klangRegisterHotkey(C.int(m.id), C.uint32_t(m.mods), C.uint32_t(m.key), &ref)
				if status != 0 {
					m.reply <- result{err: &APIError{Op: "RegisterEventHotKey", Code: int64(status)}}
					continue
				}
				l.reg.insert(m.id, entry{hotkey: Hotkey{Mods: m.mods, Key: m.key}, cb: m.cb, ref: ref})
				m.reply <- result{id: m.id}
			case msgUnregister:
				e, ok := l.reg.lookup(m.id)
				if !ok {
					m.reply <- result{err: fmt.Errorf("hotkey: no registration with id %d", int32(m.id))}
					continue
				}
				if status := C.klangUnregisterHotkey(e.ref); status != 0 {
					m.reply <- result{err: &APIError{Op: "UnregisterEventHotKey", Code: int64(status)}}
					continue
				}
				l.reg.remove(m.id)
				m.reply <- result{}
			case msgFired:
				if !l.reg.fire(m.id) {
					l.logger.Printf("hotkey: event for unregistered id %d", m.id)
				}
			case msgShutdown:
				for _, e := range l.reg.clear() {
					if status := C.klangUnregisterHotkey(e.ref); status != 0 {
						l.logger.Printf("hotkey: unregister on shutdown: OSStatus %d", int32(status))
					}
				}
				return false
			}
		default:
			return true
		}
	}
}
