// Package speech defines the ports for the platform speech services:
// continuous recognition (voice control input) and synthesis (spoken
// feedback). The engine only ever sees these interfaces; platform wiring
// lives in adapters.
package speech

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnsupported is returned when the platform has no speech services.
// Detected once at initialization; the engine degrades to keyboard-only.
var ErrUnsupported = errors.New("speech services not available on this platform")

// ErrExhausted is returned by Start when the recognizer's input source is
// fully consumed and cannot produce another session. The engine treats it
// as a quiet degrade to keyboard-only input.
var ErrExhausted = errors.New("recognizer input exhausted")

// ErrorKind classifies recognition failures. Transient kinds are retried
// after a delay; fatal kinds stop the session until the user retries
// explicitly.
type ErrorKind int

const (
	ErrOther ErrorKind = iota
	ErrNoSpeech
	ErrAudioCapture
	ErrNetwork
	ErrPermissionDenied
)

// String returns the wire name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrNoSpeech:
		return "no-speech"
	case ErrAudioCapture:
		return "audio-capture"
	case ErrNetwork:
		return "network"
	case ErrPermissionDenied:
		return "permission-denied"
	default:
		return "other"
	}
}

// Transient reports whether the session may auto-restart after this kind.
// Only no-speech qualifies; everything else needs an explicit user retry.
func (k ErrorKind) Transient() bool {
	return k == ErrNoSpeech
}

// RecognitionError is a classified recognition failure.
type RecognitionError struct {
	Kind    ErrorKind
	Message string
}

func (e *RecognitionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("recognition error: %s", e.Kind)
	}
	return fmt.Sprintf("recognition error (%s): %s", e.Kind, e.Message)
}

// Result is one event from a recognition session: either a transcript or
// an error. Interim (non-final) transcripts are delivered but the engine
// ignores them.
type Result struct {
	Text         string
	Final        bool
	Alternatives []string
	Err          *RecognitionError
}

// Recognizer is a continuous speech recognition session source.
type Recognizer interface {
	// Start begins a session and returns its event channel. The channel
	// closes when the session ends, whether from Stop, a fatal error, or
	// input exhaustion. Only one session runs at a time.
	Start(ctx context.Context) (<-chan Result, error)

	// Stop synchronously halts the session. Safe to call when idle; no
	// results are delivered after Stop returns.
	Stop()
}

// Utterance is one synthesis request.
type Utterance struct {
	Text   string
	Locale string
	Rate   float64 // speaking rate multiplier
	Pitch  float64
	Volume float64 // 0..1
}

// NewUtterance returns an utterance with the fixed announcement voice
// parameters: slightly slowed rate, neutral pitch, slightly under full
// volume.
func NewUtterance(text, locale string) Utterance {
	return Utterance{Text: text, Locale: locale, Rate: 0.9, Pitch: 1.0, Volume: 0.8}
}

// Synthesizer speaks announcements. At most one utterance is in flight:
// Speak cancels whatever is still playing before starting.
type Synthesizer interface {
	Speak(u Utterance) error
	// Stop synchronously halts any in-flight utterance.
	Stop()
	// Speaking reports whether an utterance is still playing.
	Speaking() bool
}

// PermissionChecker requests microphone access. Implementations keep at
// most one outstanding request; concurrent calls wait for the first.
type PermissionChecker interface {
	RequestMicrophone(ctx context.Context) (bool, error)
}

// GrantedPermission is a PermissionChecker that always grants, for
// environments where the OS handles permission out of band.
type GrantedPermission struct{}

func (GrantedPermission) RequestMicrophone(context.Context) (bool, error) { return true, nil }

// NopSynthesizer discards utterances. Used when voice output is disabled
// or the platform has no synthesis service.
type NopSynthesizer struct{}

func (NopSynthesizer) Speak(Utterance) error { return nil }
func (NopSynthesizer) Stop()                 {}
func (NopSynthesizer) Speaking() bool        { return false }
