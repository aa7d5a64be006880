package sound

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeSeeker is an in-memory io.WriteSeeker for WAV encoding.
type writeSeeker struct {
	buf []byte
	pos int
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.pos + len(p)
	if end > len(ws.buf) {
		ws.buf = append(ws.buf, make([]byte, end-len(ws.buf))...)
	}
	copy(ws.buf[ws.pos:], p)
	ws.pos = end
	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var newPos int
	switch whence {
	case 0: // io.SeekStart
		newPos = int(offset)
	case 1: // io.SeekCurrent
		newPos = ws.pos + int(offset)
	case 2: // io.SeekEnd
		newPos = len(ws.buf) + int(offset)
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if newPos < 0 || newPos > len(ws.buf) {
		return 0, fmt.Errorf("seek position %d out of bounds [0, %d]", newPos, len(ws.buf))
	}
	ws.pos = newPos
	return int64(ws.pos), nil
}

// EncodeWAV encodes mono int16 PCM samples to WAV format in memory.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	ws := &writeSeeker{}

	intBuf := &audio.IntBuffer{
		Data: make([]int, len(samples)),
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		intBuf.Data[i] = int(s)
	}

	enc := wav.NewEncoder(ws, sampleRate, 16, 1, 1)
	if err := enc.Write(intBuf); err != nil {
		return nil, fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close wav encoder: %w", err)
	}

	return ws.buf, nil
}

// EncodeTone synthesizes a sine sweep from startFreq to endFreq with a
// fade-in/fade-out envelope and returns it as an in-memory WAV file.
func EncodeTone(sampleRate int, duration, startFreq, endFreq float64) ([]byte, error) {
	numSamples := int(float64(sampleRate) * duration)
	if numSamples <= 0 {
		return nil, fmt.Errorf("tone duration %v too short", duration)
	}
	samples := make([]int16, numSamples)
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(numSamples)
		freq := startFreq + (endFreq-startFreq)*progress
		envelope := math.Sin(math.Pi * progress)
		val := math.Sin(2*math.Pi*freq*t) * envelope * 16000
		samples[i] = int16(val)
	}
	return EncodeWAV(samples, sampleRate)
}
