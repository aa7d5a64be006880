package sound

import (
	"fmt"
	"os"
	"path/filepath"
)

// StarterSound describes one synthesized sound written by WriteStarterSounds.
type StarterSound struct {
	Name string
	File string

	startFreq float64
	endFreq   float64
	duration  float64
}

// StarterSounds is the set written on first-run setup: short recognizable
// tones so the application makes noise before the user adds real files.
var StarterSounds = []StarterSound{
	{Name: "rise", File: "rise.wav", startFreq: 440, endFreq: 880, duration: 0.3},
	{Name: "fall", File: "fall.wav", startFreq: 880, endFreq: 440, duration: 0.3},
	{Name: "ping", File: "ping.wav", startFreq: 1047, endFreq: 1047, duration: 0.15},
}

// WriteStarterSounds synthesizes the starter set into dir, creating it if
// needed. Existing files are left untouched.
func WriteStarterSounds(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sound dir: %w", err)
	}
	for _, s := range StarterSounds {
		path := filepath.Join(dir, s.File)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		data, err := EncodeTone(44100, s.duration, s.startFreq, s.endFreq)
		if err != nil {
			return fmt.Errorf("synthesize %s: %w", s.Name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
