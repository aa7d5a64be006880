//go:build linux

package hotkey

import "testing"

func TestCleanState(t *testing.T) {
	tests := []struct {
		name     string
		state    uint16
		expected uint16
	}{
		{"no locks", 0x0c, 0x0c},
		{"caps lock engaged", 0x0c | capsLockMask, 0x0c},
		{"num lock engaged", 0x0c | numLockMask, 0x0c},
		{"both locks engaged", 0x0c | capsLockMask | numLockMask, 0x0c},
		{"locks only", capsLockMask | numLockMask, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanState(tt.state); got != tt.expected {
				t.Errorf("cleanState(%#x) = %#x, want %#x", tt.state, got, tt.expected)
			}
		})
	}
}

func TestLockVariantsCoverAllCombinations(t *testing.T) {
	seen := map[uint16]bool{}
	for _, v := range lockVariants {
		if seen[v] {
			t.Fatalf("duplicate lock variant %#x", v)
		}
		seen[v] = true
		if cleanState(v) != 0 {
			t.Errorf("variant %#x contains non-lock bits", v)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("%d lock variants, want 4", len(seen))
	}
}

func TestRegistryFireByCompositeID(t *testing.T) {
	reg := newRegistry()

	var fired int
	id := ID{keycode: 33, mods: uint16(ModControl)}
	reg.insert(id, entry{hotkey: Hotkey{Mods: ModControl, Key: KeyP}, cb: func() { fired++ }})

	if !reg.fire(id) {
		t.Fatal("fire on registered id returned false")
	}
	if fired != 1 {
		t.Fatalf("callback ran %d times, want 1", fired)
	}

	// Same keycode under a different modifier mask is a different binding.
	other := ID{keycode: 33, mods: uint16(ModControl | ModShift)}
	if reg.fire(other) {
		t.Error("fire on unregistered modifier mask returned true")
	}
	if fired != 1 {
		t.Errorf("callback ran %d times after miss, want 1", fired)
	}

	reg.remove(id)
	if reg.fire(id) {
		t.Error("fire after remove returned true")
	}
}

func TestRegistryClearReturnsAllEntries(t *testing.T) {
	reg := newRegistry()
	reg.insert(ID{keycode: 10, mods: 0}, entry{hotkey: Hotkey{Key: KeyA}})
	reg.insert(ID{keycode: 11, mods: uint16(ModShift)}, entry{hotkey: Hotkey{Mods: ModShift, Key: KeyB}})

	cleared := reg.clear()
	if len(cleared) != 2 {
		t.Fatalf("clear returned %d entries, want 2", len(cleared))
	}
	if got := len(reg.hotkeys()); got != 0 {
		t.Errorf("registry holds %d hotkeys after clear, want 0", got)
	}
}

func TestKeysymConstants(t *testing.T) {
	tests := []struct {
		name     string
		expected uint32
	}{
		{"A", 0x41},
		{"Z", 0x5a},
		{"KEY_0", 0x30},
		{"KEY_9", 0x39},
		{"F1", 0xffbe},
		{"F12", 0xffc9},
		{"BACKSPACE", 0xff08},
		{"ESCAPE", 0xff1b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := KeyFromName(tt.name)
			if !ok {
				t.Fatalf("%s not resolvable", tt.name)
			}
			if code != tt.expected {
				t.Errorf("KeyFromName(%s) = %#x, want %#x", tt.name, code, tt.expected)
			}
		})
	}
}
