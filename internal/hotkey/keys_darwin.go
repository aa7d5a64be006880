//go:build darwin

package hotkey

// Carbon modifier flags (Events.h).
const (
	ModSuper   uint32 = 0x0100 // cmdKey
	ModShift   uint32 = 0x0200 // shiftKey
	ModAlt     uint32 = 0x0800 // optionKey
	ModControl uint32 = 0x1000 // controlKey
)

// Carbon virtual key codes for the ANSI layout (Events.h kVK_*).
const (
	KeyBackspace   uint32 = 0x33 // kVK_Delete
	KeyTab         uint32 = 0x30
	KeyEnter       uint32 = 0x24 // kVK_Return
	KeyCapsLock    uint32 = 0x39
	KeyEscape      uint32 = 0x35
	KeySpace       uint32 = 0x31
	KeyPageUp      uint32 = 0x74
	KeyPageDown    uint32 = 0x79
	KeyEnd         uint32 = 0x77
	KeyHome        uint32 = 0x73
	KeyLeft        uint32 = 0x7b
	KeyUp          uint32 = 0x7e
	KeyRight       uint32 = 0x7c
	KeyDown        uint32 = 0x7d
	KeyPrintScreen uint32 = 0x69 // kVK_F13, the PrintScreen slot on Apple keyboards
	KeyInsert      uint32 = 0x72 // kVK_Help
	KeyDelete      uint32 = 0x75 // kVK_ForwardDelete

	Key0 uint32 = 0x1d
	Key1 uint32 = 0x12
	Key2 uint32 = 0x13
	Key3 uint32 = 0x14
	Key4 uint32 = 0x15
	Key5 uint32 = 0x17
	Key6 uint32 = 0x16
	Key7 uint32 = 0x1a
	Key8 uint32 = 0x1c
	Key9 uint32 = 0x19

	KeyA uint32 = 0x00
	KeyB uint32 = 0x0b
	KeyC uint32 = 0x08
	KeyD uint32 = 0x02
	KeyE uint32 = 0x0e
	KeyF uint32 = 0x03
	KeyG uint32 = 0x05
	KeyH uint32 = 0x04
	KeyI uint32 = 0x22
	KeyJ uint32 = 0x26
	KeyK uint32 = 0x28
	KeyL uint32 = 0x25
	KeyM uint32 = 0x2e
	KeyN uint32 = 0x2d
	KeyO uint32 = 0x1f
	KeyP uint32 = 0x23
	KeyQ uint32 = 0x0c
	KeyR uint32 = 0x0f
	KeyS uint32 = 0x01
	KeyT uint32 = 0x11
	KeyU uint32 = 0x20
	KeyV uint32 = 0x09
	KeyW uint32 = 0x0d
	KeyX uint32 = 0x07
	KeyY uint32 = 0x10
	KeyZ uint32 = 0x06

	KeyF1  uint32 = 0x7a
	KeyF2  uint32 = 0x78
	KeyF3  uint32 = 0x63
	KeyF4  uint32 = 0x76
	KeyF5  uint32 = 0x60
	KeyF6  uint32 = 0x61
	KeyF7  uint32 = 0x62
	KeyF8  uint32 = 0x64
	KeyF9  uint32 = 0x65
	KeyF10 uint32 = 0x6d
	KeyF11 uint32 = 0x67
	KeyF12 uint32 = 0x6f
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

// keyNames maps symbolic key names to virtual key codes. The name set is
// identical on every platform; only the codes differ.
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
