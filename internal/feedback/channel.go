package feedback

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lcereceda/accessnav/internal/audio"
	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/settings"
	"github.com/lcereceda/accessnav/internal/speech"
)

// Channel delivers feedback for navigation events across the three
// surfaces: screen-reader text (OnText), synthesized speech, and spatial
// tone cues. The speech queue and the audio output are a single shared
// resource, so the channel arbitrates: announcements preempt cues, and a
// cue requested while an utterance is in flight is dropped rather than
// queued.
type Channel struct {
	Settings *settings.Store
	Synth    speech.Synthesizer
	Sink     audio.Sink
	Tones    ToneConfig
	// OnText receives the rendered announcement text when the screen
	// reader flag is on. Nil disables the surface.
	OnText func(string)
	Logger *zap.Logger

	mu sync.Mutex
}

// NewChannel wires a feedback channel with default tone parameters.
func NewChannel(store *settings.Store, synth speech.Synthesizer, sink audio.Sink, logger *zap.Logger) *Channel {
	if synth == nil {
		synth = speech.NopSynthesizer{}
	}
	if sink == nil {
		sink = audio.NopSink{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Channel{
		Settings: store,
		Synth:    synth,
		Sink:     sink,
		Tones:    DefaultToneConfig(),
		Logger:   logger,
	}
}

// Announce renders and emits the announcement for the element at 0-based
// position pos of total.
func (c *Channel) Announce(e index.Entry, pos, total int) {
	s := c.Settings.Get()
	text := Announce(e, pos, total, s.Locale)
	c.Say(text)
}

// Say emits an arbitrary announcement through the enabled surfaces.
func (c *Channel) Say(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.Settings.Get()
	if s.ScreenReaderEnabled && c.OnText != nil {
		c.OnText(text)
	}
	if s.VoiceOutputEnabled {
		u := speech.NewUtterance(text, s.Locale)
		if err := c.Synth.Speak(u); err != nil {
			c.Logger.Warn("speech synthesis failed", zap.Error(err))
		}
	}
}

// PlayCue emits the spatial tone for a position, unless an utterance is
// in flight (announcements own the shared output).
func (c *Channel) PlayCue(pos, total int, dir Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Synth.Speaking() {
		c.Logger.Debug("dropping cue, utterance in flight",
			zap.Int("pos", pos), zap.Int("total", total))
		return
	}
	spec := c.Tones.PositionTone(pos, total, dir)
	if err := c.Sink.Play(spec); err != nil {
		c.Logger.Warn("cue playback failed", zap.Error(err))
	}
}

// ActivationCue emits the two-tone confirmation chord, under the same
// arbitration rule as position cues.
func (c *Channel) ActivationCue() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Synth.Speaking() {
		return
	}
	if err := c.Sink.Play(c.Tones.ActivationChord()...); err != nil {
		c.Logger.Warn("activation cue playback failed", zap.Error(err))
	}
}

// Silence synchronously halts any in-flight speech. Pending cues never
// queue, so there is nothing else to cancel.
func (c *Channel) Silence() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Synth.Stop()
}
