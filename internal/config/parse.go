package config

import (
	"fmt"
	"strings"

	"github.com/klangapp/klang/internal/hotkey"
)

// ParseHotkey parses a combination string like "CTRL-ALT-P" into a hotkey
// value. Tokens are separated by "-"; every token except the last must be
// a modifier (CTRL, CONTROL, SHIFT, ALT, SUPER) and the last must be a key
// name. Matching is case-insensitive. A bare digit is shorthand for the
// corresponding KEY_<digit> name, so "1" means the 1 key.
func ParseHotkey(s string) (hotkey.Hotkey, error) {
	tokens := strings.Split(strings.TrimSpace(s), "-")
	if len(tokens) == 0 || tokens[len(tokens)-1] == "" {
		return hotkey.Hotkey{}, fmt.Errorf("empty hotkey string %q", s)
	}

	var h hotkey.Hotkey
	for _, tok := range tokens[:len(tokens)-1] {
		name := strings.ToUpper(strings.TrimSpace(tok))
		mask, ok := hotkey.ModifierFromName(name)
		if !ok {
			return hotkey.Hotkey{}, fmt.Errorf("unknown modifier %q in %q", tok, s)
		}
		h.Mods |= mask
	}

	name := strings.ToUpper(strings.TrimSpace(tokens[len(tokens)-1]))
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		name = "KEY_" + name
	}
	key, ok := hotkey.KeyFromName(name)
	if !ok {
		return hotkey.Hotkey{}, fmt.Errorf("unknown key %q in %q", tokens[len(tokens)-1], s)
	}
	h.Key = key
	return h, nil
}
