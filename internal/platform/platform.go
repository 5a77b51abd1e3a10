// Package platform bundles the ports the engine needs from its
// surroundings: a container reader for UI snapshots, speech services, the
// audio output, and settings persistence. The engine never talks to the
// OS directly; everything arrives through a Provider.
package platform

import (
	"github.com/lcereceda/accessnav/internal/audio"
	"github.com/lcereceda/accessnav/internal/model"
	"github.com/lcereceda/accessnav/internal/settings"
	"github.com/lcereceda/accessnav/internal/speech"
)

// Reader produces the element tree of the container being navigated. The
// container is bound at construction; ReadElements re-reads it in full,
// so a rescan after a container change is just another call.
type Reader interface {
	ReadElements() ([]model.Element, error)
}

// Provider bundles all platform backends for one navigation session.
type Provider struct {
	Reader     Reader
	Recognizer speech.Recognizer
	Synth      speech.Synthesizer
	Sink       audio.Sink
	Permission speech.PermissionChecker
	Storage    settings.Storage
}

// NewSynthesizerFunc is set by platform-specific files via init().
// See synth_darwin.go and synth_linux.go.
var NewSynthesizerFunc func() speech.Synthesizer

// NewSynthesizer returns the platform synthesizer, or a no-op and false
// when the platform has none. The false result is reported to the user
// once at startup (degrade to keyboard-only, never crash).
func NewSynthesizer() (speech.Synthesizer, bool) {
	if NewSynthesizerFunc == nil {
		return speech.NopSynthesizer{}, false
	}
	return NewSynthesizerFunc(), true
}
