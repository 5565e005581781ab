package audio

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/lilypad/config"
)

const testRate = beep.SampleRate(44100)

func TestPadInRangeAndEndless(t *testing.T) {
	pad := NewPad(testRate)
	buf := make([][2]float64, 4096)

	for round := 0; round < 3; round++ {
		n, ok := pad.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("round %d: Stream = (%d, %v), want (%d, true)", round, n, ok, len(buf))
		}
	}

	nonzero := false
	for i := range buf {
		if buf[i][0] < -1 || buf[i][0] > 1 {
			t.Fatalf("sample %d out of range: %v", i, buf[i][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d: channels differ", i)
		}
		if buf[i][0] != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		t.Error("pad produced only silence")
	}
	if pad.Err() != nil {
		t.Errorf("Err() = %v", pad.Err())
	}
}

// constStreamer emits a constant value forever.
type constStreamer float64

func (c constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = float64(c)
		samples[i][1] = float64(c)
	}
	return len(samples), true
}

func (c constStreamer) Err() error { return nil }

func TestFadeInRamp(t *testing.T) {
	rate := beep.SampleRate(100)
	f := NewFadeIn(constStreamer(1), time.Second, rate) // 100 samples

	buf := make([][2]float64, 150)
	f.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
	if math.Abs(buf[50][0]-0.5) > 1e-9 {
		t.Errorf("midpoint = %v, want 0.5", buf[50][0])
	}
	for i := 1; i < 100; i++ {
		if buf[i][0] < buf[i-1][0] {
			t.Fatalf("ramp not monotonic at %d", i)
		}
	}
	for i := 100; i < 150; i++ {
		if buf[i][0] != 1 {
			t.Fatalf("sample %d after fade = %v, want 1", i, buf[i][0])
		}
	}
}

func TestVolumeGain(t *testing.T) {
	buf := make([][2]float64, 8)

	newVolume(constStreamer(1), 0.1).Stream(buf)
	if math.Abs(buf[0][0]-0.1) > 1e-9 {
		t.Errorf("gain 0.1 sample = %v, want 0.1", buf[0][0])
	}

	newVolume(constStreamer(1), 0).Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("gain 0 sample = %v, want 0", buf[0][0])
	}
}

// fakeOutput records plays without touching a device.
type fakeOutput struct {
	mu     sync.Mutex
	plays  int
	closed bool
	err    error
	done   chan struct{}
}

func (f *fakeOutput) Play(rate beep.SampleRate, s beep.Streamer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays++
	if f.done != nil {
		close(f.done)
		f.done = nil
	}
	return f.err
}

func (f *fakeOutput) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{
		Enabled:     true,
		SampleRate:  44100,
		Volume:      0.1,
		FadeSeconds: 4,
	}
}

func TestAmbienceStartsOnce(t *testing.T) {
	done := make(chan struct{})
	out := &fakeOutput{done: done}
	a := NewAmbience(testAudioConfig(), 1, out)

	for i := 0; i < 5; i++ {
		a.Start()
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ambience never played")
	}
	time.Sleep(20 * time.Millisecond)

	out.mu.Lock()
	plays := out.plays
	out.mu.Unlock()
	if plays != 1 {
		t.Errorf("played %d times, want 1", plays)
	}

	a.Close()
	if !out.closed {
		t.Error("Close did not close the output")
	}
}

func TestAmbienceDisabled(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = false
	out := &fakeOutput{}
	a := NewAmbience(cfg, 1, out)

	a.Start()
	time.Sleep(20 * time.Millisecond)

	if out.plays != 0 {
		t.Errorf("disabled ambience played %d times", out.plays)
	}
}

func TestAmbienceCloseCancelsDelayedStart(t *testing.T) {
	cfg := testAudioConfig()
	cfg.StartDelayMax = 3600
	out := &fakeOutput{}
	a := NewAmbience(cfg, 1, out)

	a.Start()
	a.Close()
	time.Sleep(20 * time.Millisecond)

	out.mu.Lock()
	defer out.mu.Unlock()
	if out.plays != 0 {
		t.Errorf("played %d times after Close, want 0", out.plays)
	}
}

func TestAmbienceOutputErrorIsNotFatal(t *testing.T) {
	done := make(chan struct{})
	out := &fakeOutput{err: errors.New("no audio device"), done: done}
	a := NewAmbience(testAudioConfig(), 1, out)

	a.Start()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ambience never attempted to play")
	}
}

func TestAmbienceStreamerStartsSilent(t *testing.T) {
	a := NewAmbience(testAudioConfig(), 1, &fakeOutput{})
	buf := make([][2]float64, 16)

	a.Streamer().Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want silence", buf[0][0])
	}
}

func TestAmbienceNoPlayAfterClose(t *testing.T) {
	out := &fakeOutput{}
	a := NewAmbience(testAudioConfig(), 1, out)

	a.Close()
	// A timer that fired just before Close runs play afterwards.
	a.play()

	out.mu.Lock()
	defer out.mu.Unlock()
	if out.plays != 0 {
		t.Errorf("played %d times after Close, want 0", out.plays)
	}
}
