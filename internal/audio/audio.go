// Package audio plays the game's sound effects through gopxl/beep. When no
// audio device is available, or sound is disabled, a silent player is used.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Effect identifies a sound effect.
type Effect int

const (
	EffectEat Effect = iota
)

func (e Effect) String() string {
	switch e {
	case EffectEat:
		return "eat"
	default:
		return "unknown"
	}
}

// Player plays effects without blocking.
type Player interface {
	Play(e Effect)
	Close() error
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Play(Effect) {}

func (Silent) Close() error { return nil }

// Options configures a speaker player.
type Options struct {
	Enabled    bool
	SampleRate int
	Sounds     map[Effect][]byte // Raw WAV files
	Logger     *log.Logger
}

// Open returns a speaker-backed player, or Silent when audio is disabled or
// the device cannot be opened. Sounds that fail to decode are skipped.
func Open(opts Options) Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !opts.Enabled {
		return Silent{}
	}

	sr := beep.SampleRate(opts.SampleRate)
	if sr <= 0 {
		sr = 44100
	}

	buffers := make(map[Effect]*beep.Buffer, len(opts.Sounds))
	for effect, data := range opts.Sounds {
		if data == nil {
			continue
		}
		buf, err := Decode(data, sr)
		if err != nil {
			logger.Warn("could not decode sound", "effect", effect, "error", err)
			continue
		}
		buffers[effect] = buf
	}
	if len(buffers) == 0 {
		logger.Warn("no sounds loaded, audio disabled")
		return Silent{}
	}

	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio device unavailable, audio disabled", "error", err)
		return Silent{}
	}

	p := &Speaker{
		mixer:   &beep.Mixer{},
		buffers: buffers,
	}
	speaker.Play(p.mixer)
	return p
}

// Speaker mixes effects onto the system audio device.
type Speaker struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	buffers map[Effect]*beep.Buffer
	closed  bool
}

// Play queues an effect. Unknown effects are ignored.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.buffers[e]
	if !ok || s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// Decode reads a WAV file into memory, resampled to sr.
func Decode(data []byte, sr beep.SampleRate) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode wav: %w", err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(4, format.SampleRate, sr, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
