package hotkey

import "testing"

func TestHotkeyString(t *testing.T) {
	ctrl, _ := ModifierFromName("CTRL")
	shift, _ := ModifierFromName("SHIFT")
	alt, _ := ModifierFromName("ALT")
	super, _ := ModifierFromName("SUPER")
	keyA, _ := KeyFromName("A")
	keyP, _ := KeyFromName("P")
	key1, _ := KeyFromName("KEY_1")
	space, _ := KeyFromName("SPACEBAR")

	tests := []struct {
		name     string
		hotkey   Hotkey
		expected string
	}{
		{"bare key", Hotkey{Key: keyA}, "A"},
		{"single modifier", Hotkey{Mods: ctrl, Key: keyP}, "CTRL-P"},
		{"two modifiers", Hotkey{Mods: ctrl | shift, Key: keyP}, "CTRL-SHIFT-P"},
		{"all modifiers", Hotkey{Mods: ctrl | shift | alt | super, Key: space}, "CTRL-SHIFT-ALT-SUPER-SPACEBAR"},
		{"modifier order is fixed", Hotkey{Mods: super | ctrl, Key: key1}, "CTRL-SUPER-KEY_1"},
		{"unknown key code", Hotkey{Mods: ctrl, Key: 0xfffffff}, "CTRL-KEY(0xfffffff)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hotkey.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{"letter", "A", true},
		{"last letter", "Z", true},
		{"digit", "KEY_9", true},
		{"function key", "F12", true},
		{"named key", "BACKSPACE", true},
		{"arrow", "ARROW_RIGHT", true},
		{"unknown", "HYPER", false},
		{"empty", "", false},
		{"lowercase not accepted", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := KeyFromName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("KeyFromName(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			name, found := keyNameByCode[code]
			if !found || name != tt.input {
				t.Errorf("reverse lookup of %q gave %q", tt.input, name)
			}
		})
	}
}

func TestModifierFromName(t *testing.T) {
	ctrl, ok := ModifierFromName("CTRL")
	if !ok {
		t.Fatal("CTRL not resolvable")
	}
	control, ok := ModifierFromName("CONTROL")
	if !ok {
		t.Fatal("CONTROL alias not resolvable")
	}
	if ctrl != control {
		t.Errorf("CTRL (%#x) and CONTROL (%#x) differ", ctrl, control)
	}
	if _, ok := ModifierFromName("META"); ok {
		t.Error("META should not resolve")
	}

	seen := map[uint32]string{}
	for _, name := range []string{"CTRL", "SHIFT", "ALT", "SUPER"} {
		mask, ok := ModifierFromName(name)
		if !ok {
			t.Fatalf("%s not resolvable", name)
		}
		if other, dup := seen[mask]; dup {
			t.Errorf("%s and %s share mask %#x", name, other, mask)
		}
		seen[mask] = name
	}
}

func TestKeyNamesHaveUniqueCodes(t *testing.T) {
	if len(keyNames) != len(keyNameByCode) {
		t.Fatalf("keyNames has %d entries but only %d distinct codes", len(keyNames), len(keyNameByCode))
	}
}
