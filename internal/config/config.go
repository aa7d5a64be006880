// Package config loads and saves the TOML configuration file and parses
// hotkey combination strings like "CTRL-ALT-P".
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SoundConfig binds one sound file to one hotkey.
type SoundConfig struct {
	Name   string `toml:"name"`
	Hotkey string `toml:"hotkey"`
	File   string `toml:"file"`
}

// StopConfig holds the stop-all-playback settings.
type StopConfig struct {
	Hotkey string `toml:"hotkey"`
}

// Config is the top-level configuration.
type Config struct {
	Theme    string        `toml:"theme"`
	SoundDir string        `toml:"sound_dir"`
	Stop     StopConfig    `toml:"stop"`
	Sounds   []SoundConfig `toml:"sounds"`
}

// Default returns a Config populated with all default values. It carries
// no sound bindings; those come from the config file or `klang setup`.
func Default() *Config {
	return &Config{
		Theme:    "synthwave",
		SoundDir: DefaultSoundDir(),
		Stop: StopConfig{
			Hotkey: "CTRL-ALT-S",
		},
	}
}

// DefaultPath returns the default config file path (~/.config/klang/config.toml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "klang", "config.toml")
}

// DefaultSoundDir returns the default sound directory (~/.local/share/klang/sounds).
func DefaultSoundDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "klang", "sounds")
}

// Resolve returns the absolute path of a sound file reference. Relative
// references are resolved against the configured sound directory.
func (c *Config) Resolve(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.SoundDir, file)
}

// Save writes the config as TOML to the given path, creating parent
// directories if needed. The write is atomic: data is written to a
// temporary file and renamed into place so a crash mid-write cannot
// corrupt the existing config.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".klang-config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// Load reads the TOML config from path. If the file does not exist,
// it returns the default config without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	_, err = toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
