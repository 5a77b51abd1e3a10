//go:build darwin

package platform

import "github.com/lcereceda/accessnav/internal/speech"

func init() {
	NewSynthesizerFunc = func() speech.Synthesizer {
		return speech.NewSaySynthesizer()
	}
}
