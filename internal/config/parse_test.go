package config

import (
	"testing"

	"github.com/klangapp/klang/internal/hotkey"
)

func TestParseHotkey(t *testing.T) {
	mod := func(name string) uint32 {
		t.Helper()
		m, ok := hotkey.ModifierFromName(name)
		if !ok {
			t.Fatalf("modifier %s not resolvable", name)
		}
		return m
	}
	key := func(name string) uint32 {
		t.Helper()
		k, ok := hotkey.KeyFromName(name)
		if !ok {
			t.Fatalf("key %s not resolvable", name)
		}
		return k
	}

	tests := []struct {
		name     string
		input    string
		expected hotkey.Hotkey
		wantErr  bool
	}{
		{"modifier and key", "CTRL-P", hotkey.Hotkey{Mods: mod("CTRL"), Key: key("P")}, false},
		{"two modifiers", "CTRL-SHIFT-P", hotkey.Hotkey{Mods: mod("CTRL") | mod("SHIFT"), Key: key("P")}, false},
		{"bare key", "S", hotkey.Hotkey{Key: key("S")}, false},
		{"named key", "ALT-BACKSPACE", hotkey.Hotkey{Mods: mod("ALT"), Key: key("BACKSPACE")}, false},
		{"super modifier", "SHIFT-SUPER-A", hotkey.Hotkey{Mods: mod("SHIFT") | mod("SUPER"), Key: key("A")}, false},
		{"arrow key", "SUPER-ARROW_RIGHT", hotkey.Hotkey{Mods: mod("SUPER"), Key: key("ARROW_RIGHT")}, false},
		{"bare digit shorthand", "1", hotkey.Hotkey{Key: key("KEY_1")}, false},
		{"digit with modifier", "CTRL-7", hotkey.Hotkey{Mods: mod("CTRL"), Key: key("KEY_7")}, false},
		{"lowercase accepted", "ctrl-alt-p", hotkey.Hotkey{Mods: mod("CTRL") | mod("ALT"), Key: key("P")}, false},
		{"control alias", "CONTROL-P", hotkey.Hotkey{Mods: mod("CTRL"), Key: key("P")}, false},
		{"surrounding whitespace", "  CTRL-P  ", hotkey.Hotkey{Mods: mod("CTRL"), Key: key("P")}, false},
		{"unknown modifier", "META-P", hotkey.Hotkey{}, true},
		{"unknown key", "CTRL-BANANA", hotkey.Hotkey{}, true},
		{"modifier in key position", "CTRL-SHIFT", hotkey.Hotkey{}, true},
		{"trailing separator", "CTRL-", hotkey.Hotkey{}, true},
		{"empty string", "", hotkey.Hotkey{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHotkey(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %v", tt.input, h)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if h != tt.expected {
				t.Errorf("ParseHotkey(%q) = %+v, want %+v", tt.input, h, tt.expected)
			}
		})
	}
}

func TestParseHotkeyRoundTrip(t *testing.T) {
	for _, s := range []string{"CTRL-P", "CTRL-SHIFT-ALT-SUPER-SPACEBAR", "ALT-F4", "A"} {
		h, err := ParseHotkey(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if got := h.String(); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}
