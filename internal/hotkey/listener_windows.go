//go:build windows

package hotkey

import (
	"errors"
	"io"
	"log"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"
)

// ID identifies an active registration. On Windows it is the
// application-defined id passed to RegisterHotKey.
type ID int32

type nativeRef = struct{}

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
)

const (
	wmHotkey = 0x0312

	pmNoRemove = 0x0000
	pmRemove   = 0x0001
)

const pollInterval = 50 * time.Millisecond

// point mirrors the Win32 POINT struct.
type point struct {
	x int32
	y int32
}

// winMsg mirrors the Win32 MSG struct (tagMSG from winuser.h). Field order
// and types must match the binary layout exactly.
type winMsg struct {
	hWnd     uintptr
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32 // reserved by Windows; required for correct struct size
}

// Listener registers global hotkeys through RegisterHotKey. One goroutine,
// locked to its OS thread because hotkey registrations are thread-affine,
// owns the thread message queue and processes both WM_HOTKEY messages and
// channel commands until Close.
type Listener struct {
	cmds   chan message
	reg    *registry
	logger *log.Logger

	mu     sync.Mutex
	closed bool
	nextID ID
}

// NewListener spawns the message loop goroutine and returns once its
// message queue exists and it is ready to accept commands.
func NewListener(dbg *log.Logger) (*Listener, error) {
	if dbg == nil {
		dbg = log.New(io.Discard, "", 0)
	}
	if err := user32.Load(); err != nil {
		return nil, &APIError{Op: "LoadLibrary", Err: err}
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
// the message thread has called RegisterHotKey; a combination held by
// another application surfaces as an APIError carrying the Win32 errno.
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
// message thread has called UnregisterHotKey.
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

// Close asks the message thread to unregister everything and exit. It does
// not wait; the Listener is unusable afterwards.
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

func (l *Listener) run(ready chan<- error) {
	// RegisterHotKey binds registrations to the calling thread; every
	// native call below must happen on this one.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// A thread gets a message queue only after its first message call.
	// PeekMessageW creates the queue as a side effect; the return value
	// is irrelevant here.
	var qmsg winMsg
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&qmsg)), 0, 0, 0, pmNoRemove)
	ready <- nil

	for {
		l.drainMessages()
		if !l.drainCommands() {
			return
		}
		time.Sleep(pollInterval)
	}
}

func (l *Listener) drainMessages() {
	for {
		var msg winMsg
		ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, pmRemove)
		if ret == 0 {
			return
		}
		if msg.message != wmHotkey {
			continue
		}
		id := ID(int32(msg.wParam))
		if !l.reg.fire(id) {
			l.logger.Printf("hotkey: WM_HOTKEY for unregistered id %d", id)
		}
	}
}

func (l *Listener) drainCommands() bool {
	for {
		select {
		case m := <-l.cmds:
			switch m.kind {
			case msgRegister:
				err := registerHotKey(m.id, m.mods, m.key)
				if err == nil {
					l.reg.insert(m.id, entry{hotkey: Hotkey{Mods: m.mods, Key: m.key}, cb: m.cb})
				}
				m.reply <- result{id: m.id, err: err}
			case msgUnregister:
				err := unregisterHotKey(m.id)
				if err == nil {
					l.reg.remove(m.id)
				}
				m.reply <- result{err: err}
			case msgShutdown:
				for id := range l.reg.clear() {
					if err := unregisterHotKey(id); err != nil {
						l.logger.Printf("hotkey: unregister on shutdown: %v", err)
					}
				}
				return false
			default:
				l.logger.Printf("hotkey: message thread ignoring message kind %d", m.kind)
			}
		default:
			return true
		}
	}
}

func registerHotKey(id ID, mods, key uint32) error {
	res, _, errno := procRegisterHotKey.Call(0, uintptr(id), uintptr(mods|modNoRepeat), uintptr(key))
	if res != 0 {
		return nil
	}
	return apiError("RegisterHotKey", errno)
}

func unregisterHotKey(id ID) error {
	res, _, errno := procUnregisterHotKey.Call(0, uintptr(id))
	if res != 0 {
		return nil
	}
	return apiError("UnregisterHotKey", errno)
}

func apiError(op string, errno error) error {
	e := &APIError{Op: op, Err: errno}
	if code, ok := errno.(syscall.Errno); ok {
		e.Code = int64(code)
		if code == 0 {
			e.Err = errors.New("call failed with no error code")
		}
	}
	return e
}
