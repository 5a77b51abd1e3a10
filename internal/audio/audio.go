// Package audio synthesizes the short stereo tones used for spatial
// navigation cues and provides the output sink port.
package audio

import (
	"fmt"
	"time"
)

// ToneSpec describes one sine tone. Tones passed to a single Play call
// sound simultaneously (chords); the envelope is a linear ~10ms attack
// with the release ramping over the remaining duration, which avoids
// audible clicks at tone edges.
type ToneSpec struct {
	Frequency float64       // Hz
	Pan       float64       // stereo position, -1 (left) .. 1 (right)
	Volume    float64       // 0..1 peak amplitude
	Duration  time.Duration // total tone length
}

// Validate checks the spec is renderable.
func (t ToneSpec) Validate() error {
	if t.Frequency <= 0 {
		return fmt.Errorf("tone frequency must be positive, got %g", t.Frequency)
	}
	if t.Pan < -1 || t.Pan > 1 {
		return fmt.Errorf("tone pan must be in [-1, 1], got %g", t.Pan)
	}
	if t.Volume < 0 || t.Volume > 1 {
		return fmt.Errorf("tone volume must be in [0, 1], got %g", t.Volume)
	}
	if t.Duration <= 0 {
		return fmt.Errorf("tone duration must be positive, got %s", t.Duration)
	}
	return nil
}

// Sink plays tone cues. Implementations are short-lived per call: render,
// play, done. No persistent oscillator pool.
type Sink interface {
	// Play sounds all tones simultaneously and returns once the cue has
	// been handed to the output. It does not block for playback.
	Play(tones ...ToneSpec) error
}

// NopSink discards all cues. Used when audio output is unavailable or
// disabled.
type NopSink struct{}

func (NopSink) Play(...ToneSpec) error { return nil }
