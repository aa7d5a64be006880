package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/klangapp/klang/internal/config"
	"github.com/klangapp/klang/internal/hotkey"
	"github.com/klangapp/klang/internal/sound"
	"github.com/klangapp/klang/internal/tui"
)

// starterBindings maps the synthesized starter sounds to hotkeys. Written
// into the config by `klang setup` when no bindings exist yet.
var starterBindings = []config.SoundConfig{
	{Name: "rise", Hotkey: "CTRL-ALT-1", File: "rise.wav"},
	{Name: "fall", Hotkey: "CTRL-ALT-2", File: "fall.wav"},
	{Name: "ping", Hotkey: "CTRL-ALT-3", File: "ping.wav"},
}

func handleSetup(cfgPath string) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	fmt.Println("=== klang Setup ===")
	fmt.Println()

	if cfg.SoundDir == "" {
		cfg.SoundDir = config.DefaultSoundDir()
	}
	fmt.Printf("Writing starter sounds to %s\n", cfg.SoundDir)
	if err := sound.WriteStarterSounds(cfg.SoundDir); err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.Sounds) == 0 {
		cfg.Sounds = starterBindings
		fmt.Println("Added starter hotkey bindings:")
		for _, s := range cfg.Sounds {
			fmt.Printf("  %-12s %s\n", s.Hotkey, s.Name)
		}
	} else {
		fmt.Println("Keeping existing hotkey bindings.")
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", cfgPath)
	fmt.Println()
	fmt.Println("Setup complete. Run 'klang' to start.")
}

func run() {
	// Handle setup subcommand before flag parsing
	if len(os.Args) > 1 && os.Args[1] == "setup" {
		handleSetup(config.DefaultPath())
		return
	}

	debug := flag.Bool("debug", false, "enable debug logging")
	cfgPath := flag.String("config", config.DefaultPath(), "path to config file")
	flag.Parse()

	var dbg *log.Logger
	if *debug {
		dbg = log.New(os.Stderr, "[DEBUG] ", log.Ltime|log.Lmicroseconds)
	} else {
		dbg = log.New(io.Discard, "", 0)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if len(cfg.Sounds) == 0 {
		log.Fatalf("no sound bindings in %s (run 'klang setup' to create a starter set)", *cfgPath)
	}

	player := sound.NewPlayer(dbg)

	mgr, err := hotkey.NewManager(dbg)
	if err != nil {
		log.Fatalf("start hotkey listener: %v", err)
	}
	defer mgr.Close()

	// Parse the configured combinations up front so the TUI table only
	// lists bindings that parse cleanly.
	type binding struct {
		cfg config.SoundConfig
		h   hotkey.Hotkey
	}
	var parsed []binding
	for _, sc := range cfg.Sounds {
		h, err := config.ParseHotkey(sc.Hotkey)
		if err != nil {
			log.Printf("skipping %q: %v", sc.Name, err)
			continue
		}
		parsed = append(parsed, binding{cfg: sc, h: h})
	}
	if len(parsed) == 0 {
		log.Fatal("no valid hotkey bindings in config")
	}

	var rows []tui.Binding
	for _, b := range parsed {
		rows = append(rows, tui.Binding{Name: b.cfg.Name, Combo: b.h.String(), File: b.cfg.File})
	}

	model := tui.NewModel(rows, cfg.Stop.Hotkey, cfg.Theme, player, *debug)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Register the bindings. A grab held by another application skips
	// that binding rather than aborting.
	registered := 0
	for _, b := range parsed {
		name := b.cfg.Name
		path := cfg.Resolve(b.cfg.File)
		cb := func() {
			if err := player.Play(path); err != nil {
				dbg.Printf("sound: %v", err)
				return
			}
			p.Send(tui.FiredMsg{Name: name})
		}
		if err := mgr.Register(b.h, cb); err != nil {
			log.Printf("skipping %q: %v", name, err)
			continue
		}
		registered++
	}
	if registered == 0 {
		log.Fatal("no hotkey bindings could be registered")
	}

	if cfg.Stop.Hotkey != "" {
		h, err := config.ParseHotkey(cfg.Stop.Hotkey)
		if err != nil {
			log.Printf("skipping stop hotkey: %v", err)
		} else if err := mgr.Register(h, func() {
			player.StopAll()
			p.Send(tui.StoppedMsg{})
		}); err != nil {
			log.Printf("skipping stop hotkey: %v", err)
		}
	}

	// When debug is enabled, redirect logger output into the TUI debug panel
	if *debug {
		dbg.SetOutput(tui.NewLogWriter(p))
	}

	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}

func main() {
	run()
}
