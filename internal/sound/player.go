// Package sound plays sound files through the system audio device and
// synthesizes the starter sound set.
package sound

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// mixerRate is the fixed sample rate of the speaker mixer. Files with a
// different native rate are resampled on the fly.
const mixerRate = beep.SampleRate(44100)

// Player plays sound files. Playback is asynchronous and overlapping:
// triggering a second sound while the first is playing mixes them.
type Player struct {
	logger   *log.Logger
	initOnce sync.Once
	initErr  error

	mu      sync.Mutex
	started bool
}

// NewPlayer returns a Player. The audio device is opened lazily on the
// first Play call. dbg may be nil.
func NewPlayer(dbg *log.Logger) *Player {
	if dbg == nil {
		dbg = log.New(io.Discard, "", 0)
	}
	return &Player{logger: dbg}
}

func (p *Player) initSpeaker() error {
	p.initOnce.Do(func() {
		p.initErr = speaker.Init(mixerRate, mixerRate.N(time.Second/10))
		if p.initErr == nil {
			p.mu.Lock()
			p.started = true
			p.mu.Unlock()
		}
	})
	return p.initErr
}

// Play decodes the file and starts playing it, returning as soon as
// playback has been handed to the mixer. The format is chosen by file
// extension: .wav, .mp3, .ogg and .flac are supported.
func (p *Player) Play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sound %s: %w", path, err)
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return err
	}

	if err := p.initSpeaker(); err != nil {
		streamer.Close()
		return fmt.Errorf("speaker init: %w", err)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != mixerRate {
		s = beep.Resample(4, format.SampleRate, mixerRate, streamer)
	}

	p.logger.Printf("sound: playing %s", filepath.Base(path))
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		streamer.Close()
	})))
	return nil
}

// StopAll cuts every currently playing sound. A no-op before the first
// successful Play.
func (p *Player) StopAll() {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		return
	}
	speaker.Clear()
	p.logger.Print("sound: stopped all playback")
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
}
