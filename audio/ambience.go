package audio

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/lilypad/config"
)

// Output receives the finished ambience chain. The default initialises the
// speaker and plays through a mixer.
type Output interface {
	Play(rate beep.SampleRate, s beep.Streamer) error
	Close()
}

// Ambience starts the ambient pad at most once, after an optional delay.
type Ambience struct {
	cfg config.AudioConfig
	out Output
	rng *rand.Rand

	once   sync.Once
	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewAmbience creates an ambience player. A nil out uses the speaker.
func NewAmbience(cfg config.AudioConfig, seed int64, out Output) *Ambience {
	if out == nil {
		out = &speakerOutput{}
	}
	return &Ambience{
		cfg: cfg,
		out: out,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Start schedules the fade-in. It returns immediately; later calls do nothing.
func (a *Ambience) Start() {
	if !a.cfg.Enabled {
		return
	}
	a.once.Do(func() {
		delay := time.Duration(a.rng.Float64() * a.cfg.StartDelayMax * float64(time.Second))
		slog.Info("ambience_scheduled", "delay", delay)

		a.mu.Lock()
		a.timer = time.AfterFunc(delay, a.play)
		a.mu.Unlock()
	})
}

// play holds a.mu so Close cannot close the output mid-start.
func (a *Ambience) play() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	rate := beep.SampleRate(a.cfg.SampleRate)
	if err := a.out.Play(rate, a.Streamer()); err != nil {
		// Audio is optional; the game keeps running silent
		slog.Warn("ambience unavailable", "error", err)
		return
	}
	slog.Info("ambience_started", "volume", a.cfg.Volume, "fade_seconds", a.cfg.FadeSeconds)
}

// Streamer builds the pad, fade and volume chain.
func (a *Ambience) Streamer() beep.Streamer {
	rate := beep.SampleRate(a.cfg.SampleRate)
	fade := time.Duration(a.cfg.FadeSeconds * float64(time.Second))
	return newVolume(NewFadeIn(NewPad(rate), fade, rate), a.cfg.Volume)
}

// Close cancels a pending start and silences the output. A start already
// in flight finishes first; none begins afterwards.
func (a *Ambience) Close() {
	a.mu.Lock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	a.out.Close()
}

// speakerOutput plays through the system speaker.
type speakerOutput struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func (o *speakerOutput) Play(rate beep.SampleRate, s beep.Streamer) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
			return fmt.Errorf("initializing speaker: %w", err)
		}
		o.mixer = &beep.Mixer{}
		speaker.Play(o.mixer)
		o.initialized = true
	}

	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
	return nil
}

func (o *speakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	o.initialized = false
}
