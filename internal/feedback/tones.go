package feedback

import (
	"time"

	"github.com/lcereceda/accessnav/internal/audio"
)

// Direction is the spatial side a navigation cue pans toward: left for
// backward moves, right for forward, center for jumps and repeats.
type Direction int

const (
	Center Direction = iota
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "center"
	}
}

// ToneConfig holds the cue synthesis parameters.
type ToneConfig struct {
	MinFreq  float64       // tone frequency at index 0
	MaxFreq  float64       // tone frequency at the last index
	PanRange float64       // magnitude of left/right pan, 0..1
	Duration time.Duration // position cue length
	Volume   float64
}

// DefaultToneConfig spans two octaves, a comfortable pitch ladder for
// judging position by ear.
func DefaultToneConfig() ToneConfig {
	return ToneConfig{
		MinFreq:  220,
		MaxFreq:  880,
		PanRange: 0.8,
		Duration: 150 * time.Millisecond,
		Volume:   0.5,
	}
}

// PositionTone maps a 0-based index position to a spatial cue: frequency
// interpolates linearly from MinFreq to MaxFreq across the index, and the
// pan follows the movement direction. A single-element index always
// sounds at MinFreq.
func (c ToneConfig) PositionTone(pos, total int, dir Direction) audio.ToneSpec {
	freq := c.MinFreq
	if total > 1 {
		freq = c.MinFreq + (c.MaxFreq-c.MinFreq)*float64(pos)/float64(total-1)
	}
	return audio.ToneSpec{
		Frequency: freq,
		Pan:       c.pan(dir),
		Volume:    c.Volume,
		Duration:  c.Duration,
	}
}

func (c ToneConfig) pan(dir Direction) float64 {
	switch dir {
	case Left:
		return -c.PanRange
	case Right:
		return c.PanRange
	default:
		return 0
	}
}

// ActivationChord returns the confirmation cue: two simultaneous tones a
// major third apart, short and centered.
func (c ToneConfig) ActivationChord() []audio.ToneSpec {
	const (
		rootFreq  = 523.25 // C5
		thirdFreq = 659.25 // E5
	)
	return []audio.ToneSpec{
		{Frequency: rootFreq, Volume: c.Volume, Duration: 120 * time.Millisecond},
		{Frequency: thirdFreq, Volume: c.Volume, Duration: 120 * time.Millisecond},
	}
}
