package sound

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	beepwav "github.com/gopxl/beep/wav"
)

func TestEncodeToneProducesValidWAV(t *testing.T) {
	data, err := EncodeTone(44100, 0.15, 440, 523)
	if err != nil {
		t.Fatalf("encode tone: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty wav data")
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode wav: %v", err)
	}
	if dec.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", dec.SampleRate)
	}
	if dec.NumChans != 1 {
		t.Errorf("channels = %d, want 1", dec.NumChans)
	}
	want := int(44100 * 0.15)
	if len(buf.Data) != want {
		t.Errorf("sample count = %d, want %d", len(buf.Data), want)
	}

	// The envelope must fade in and out so tones do not click.
	if buf.Data[0] != 0 {
		t.Errorf("first sample = %d, want 0", buf.Data[0])
	}
	var peak int
	for _, s := range buf.Data {
		if s > peak {
			peak = s
		}
	}
	if peak < 8000 {
		t.Errorf("peak amplitude = %d, want an audible tone", peak)
	}
}

func TestEncodeToneRejectsZeroDuration(t *testing.T) {
	if _, err := EncodeTone(44100, 0, 440, 440); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestEncodeToneDecodableByPlaybackStack(t *testing.T) {
	data, err := EncodeTone(44100, 0.1, 523, 440)
	if err != nil {
		t.Fatalf("encode tone: %v", err)
	}
	streamer, format, err := beepwav.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("playback decode: %v", err)
	}
	defer streamer.Close()
	if format.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", format.SampleRate)
	}
}

func TestWriteStarterSounds(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sounds")

	if err := WriteStarterSounds(dir); err != nil {
		t.Fatalf("write starter sounds: %v", err)
	}
	for _, s := range StarterSounds {
		path := filepath.Join(dir, s.File)
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("missing starter sound %s: %v", s.File, err)
		}
		if info.Size() == 0 {
			t.Errorf("starter sound %s is empty", s.File)
		}
	}
}

func TestWriteStarterSoundsPreservesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, StarterSounds[0].File)
	if err := os.WriteFile(path, []byte("user content"), 0o644); err != nil {
		t.Fatalf("write placeholder: %v", err)
	}

	if err := WriteStarterSounds(dir); err != nil {
		t.Fatalf("write starter sounds: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "user content" {
		t.Error("existing file was overwritten")
	}
}

func TestWriteSeeker(t *testing.T) {
	ws := &writeSeeker{}
	if _, err := ws.Write([]byte("hello world")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ws.Seek(0, 0); err != nil {
		t.Fatalf("seek: %v", err)
	}
	if _, err := ws.Write([]byte("HELLO")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := string(ws.buf); got != "HELLO world" {
		t.Errorf("buffer = %q, want %q", got, "HELLO world")
	}
	if _, err := ws.Seek(-1, 0); err == nil {
		t.Error("expected error seeking before start")
	}
}

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "*.xyz")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	defer f.Close()
	if _, _, err := decode(f, f.Name()); err == nil {
		t.Fatal("expected error for unknown extension")
	}
}
