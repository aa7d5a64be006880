//go:build linux

package hotkey

// X11 modifier masks (X11/X.h).
const (
	ModShift   uint32 = 1 << 0
	ModControl uint32 = 1 << 2
	ModAlt     uint32 = 1 << 3 // Mod1
	ModSuper   uint32 = 1 << 6 // Mod4
)

// Lock-key masks. These are stripped from event state before registry
// lookup and expanded into extra grab combinations at registration, so a
// binding fires regardless of CapsLock/NumLock.
const (
	capsLockMask uint16 = 1 << 1 // Lock
	numLockMask  uint16 = 1 << 4 // Mod2
)

// X11 keysyms (X11/keysymdef.h).
const (
	KeyBackspace   uint32 = 0xff08
	KeyTab         uint32 = 0xff09
	KeyEnter       uint32 = 0xff0d
	KeyCapsLock    uint32 = 0xffe5
	KeyEscape      uint32 = 0xff1b
	KeySpace       uint32 = 0x0020
	KeyPageUp      uint32 = 0xff55
	KeyPageDown    uint32 = 0xff56
	KeyEnd         uint32 = 0xff57
	KeyHome        uint32 = 0xff50
	KeyLeft        uint32 = 0xff51
	KeyUp          uint32 = 0xff52
	KeyRight       uint32 = 0xff53
	KeyDown        uint32 = 0xff54
	KeyPrintScreen uint32 = 0xff61
	KeyInsert      uint32 = 0xff63
	KeyDelete      uint32 = 0xffff

	Key0 uint32 = 0x30
	Key1 uint32 = 0x31
	Key2 uint32 = 0x32
	Key3 uint32 = 0x33
	Key4 uint32 = 0x34
	Key5 uint32 = 0x35
	Key6 uint32 = 0x36
	Key7 uint32 = 0x37
	Key8 uint32 = 0x38
	Key9 uint32 = 0x39

	KeyA uint32 = 0x41
	KeyB uint32 = 0x42
	KeyC uint32 = 0x43
	KeyD uint32 = 0x44
	KeyE uint32 = 0x45
	KeyF uint32 = 0x46
	KeyG uint32 = 0x47
	KeyH uint32 = 0x48
	KeyI uint32 = 0x49
	KeyJ uint32 = 0x4a
	KeyK uint32 = 0x4b
	KeyL uint32 = 0x4c
	KeyM uint32 = 0x4d
	KeyN uint32 = 0x4e
	KeyO uint32 = 0x4f
	KeyP uint32 = 0x50
	KeyQ uint32 = 0x51
	KeyR uint32 = 0x52
	KeyS uint32 = 0x53
	KeyT uint32 = 0x54
	KeyU uint32 = 0x55
	KeyV uint32 = 0x56
	KeyW uint32 = 0x57
	KeyX uint32 = 0x58
	KeyY uint32 = 0x59
	KeyZ uint32 = 0x5a

	KeyF1  uint32 = 0xffbe
	KeyF2  uint32 = 0xffbf
	KeyF3  uint32 = 0xffc0
	KeyF4  uint32 = 0xffc1
	KeyF5  uint32 = 0xffc2
	KeyF6  uint32 = 0xffc3
	KeyF7  uint32 = 0xffc4
	KeyF8  uint32 = 0xffc5
	KeyF9  uint32 = 0xffc6
	KeyF10 uint32 = 0xffc7
	KeyF11 uint32 = 0xffc8
	KeyF12 uint32 = 0xffc9
)

var modTable = []struct {
	mask uint32
	name string
}{
	{ModControl, "CTRL"},
	{ModShift, "SHIFT"},
	{ModAlt, "ALT"},
	{ModSuper, "SUPER"},
}

var modifierNames = map[string]uint32{
	"ALT":     ModAlt,
	"CTRL":    ModControl,
	"CONTROL": ModControl,
	"SHIFT":   ModShift,
	"SUPER":   ModSuper,
}

// keyNames maps symbolic key names to keysyms. The name set is identical on
// every platform; only the codes differ.
var keyNames = map[string]uint32{
	"BACKSPACE":    KeyBackspace,
	"TAB":          KeyTab,
	"ENTER":        KeyEnter,
	"CAPS_LOCK":    KeyCapsLock,
	"ESCAPE":       KeyEscape,
	"SPACEBAR":     KeySpace,
	"PAGE_UP":      KeyPageUp,
	"PAGE_DOWN":    KeyPageDown,
	"END":          KeyEnd,
	"HOME":         KeyHome,
	"ARROW_LEFT":   KeyLeft,
	"ARROW_RIGHT":  KeyRight,
	"ARROW_UP":     KeyUp,
	"ARROW_DOWN":   KeyDown,
	"PRINT_SCREEN": KeyPrintScreen,
	"INSERT":       KeyInsert,
	"DELETE":       KeyDelete,
	"KEY_0":        Key0,
	"KEY_1":        Key1,
	"KEY_2":        Key2,
	"KEY_3":        Key3,
	"KEY_4":        Key4,
	"KEY_5":        Key5,
	"KEY_6":        Key6,
	"KEY_7":        Key7,
	"KEY_8":        Key8,
	"KEY_9":        Key9,
	"A":            KeyA,
	"B":            KeyB,
	"C":            KeyC,
	"D":            KeyD,
	"E":            KeyE,
	"F":            KeyF,
	"G":            KeyG,
	"H":            KeyH,
	"I":            KeyI,
	"J":            KeyJ,
	"K":            KeyK,
	"L":            KeyL,
	"M":            KeyM,
	"N":            KeyN,
	"O":            KeyO,
	"P":            KeyP,
	"Q":            KeyQ,
	"R":            KeyR,
	"S":            KeyS,
	"T":            KeyT,
	"U":            KeyU,
	"V":            KeyV,
	"W":            KeyW,
	"X":            KeyX,
	"Y":            KeyY,
	"Z":            KeyZ,
	"F1":           KeyF1,
	"F2":           KeyF2,
	"F3":           KeyF3,
	"F4":           KeyF4,
	"F5":           KeyF5,
	"F6":           KeyF6,
	"F7":           KeyF7,
	"F8":           KeyF8,
	"F9":           KeyF9,
	"F10":          KeyF10,
	"F11":          KeyF11,
	"F12":          KeyF12,
}
