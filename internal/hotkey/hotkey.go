// Package hotkey registers system-wide keyboard shortcuts and dispatches
// callbacks when they fire, even while the application has no input focus.
//
// Each Listener owns one background OS thread running the platform event
// loop (X11 key grabs on Linux, a thread message queue with RegisterHotKey
// on Windows, a Carbon event handler on macOS). Register and Unregister are
// round trips: they block until the event thread has confirmed the native
// call, so a successful return always means the OS holds the grab.
// Callbacks run on the event thread and must be short; a callback must not
// call back into the same Listener.
package hotkey

import "fmt"

// Callback is invoked on the event thread when a registered hotkey fires.
type Callback func()

// Hotkey is a modifier bitmask plus a platform key code. The zero value is
// not a valid hotkey. Values are comparable and usable as map keys.
type Hotkey struct {
	Mods uint32
	Key  uint32
}

// String renders the hotkey in config notation, e.g. "CTRL-ALT-P".
// Modifiers appear in the fixed order CTRL, SHIFT, ALT, SUPER.
func (h Hotkey) String() string {
	var s string
	for _, m := range modTable {
		if h.Mods&m.mask != 0 {
			s += m.name + "-"
		}
	}
	if name, ok := keyNameByCode[h.Key]; ok {
		return s + name
	}
	return s + fmt.Sprintf("KEY(%#x)", h.Key)
}

var keyNameByCode = func() map[uint32]string {
	m := make(map[uint32]string, len(keyNames))
	for name, code := range keyNames {
		m[code] = name
	}
	return m
}()

// KeyFromName resolves a symbolic key name ("A", "KEY_1", "SPACEBAR") to
// the platform key code.
func KeyFromName(name string) (uint32, bool) {
	code, ok := keyNames[name]
	return code, ok
}

// ModifierFromName resolves a modifier name ("CTRL", "ALT", "SHIFT",
// "SUPER") to the platform modifier mask.
func ModifierFromName(name string) (uint32, bool) {
	mask, ok := modifierNames[name]
	return mask, ok
}
