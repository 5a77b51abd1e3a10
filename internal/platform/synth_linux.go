//go:build linux

package platform

import (
	"os/exec"

	"github.com/lcereceda/accessnav/internal/speech"
)

func init() {
	// espeak-ng is the common synthesis binary on Linux desktops; without
	// it the platform has no synthesizer and the engine degrades to
	// keyboard-only mode.
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return
	}
	NewSynthesizerFunc = func() speech.Synthesizer {
		return speech.NewEspeakSynthesizer()
	}
}
