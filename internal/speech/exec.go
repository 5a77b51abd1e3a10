package speech

import (
	"fmt"
	"math"
	"os/exec"
	"sync"
)

// ExecSynthesizer speaks by running an external synthesis command per
// utterance (macOS `say`, espeak-ng on Linux). At most one child process
// is alive: Speak kills the previous one before starting, and Stop kills
// it synchronously.
type ExecSynthesizer struct {
	// Args builds the command line for an utterance. First element is the
	// binary name.
	Args func(u Utterance) []string

	mu      sync.Mutex
	current *exec.Cmd
}

// NewSaySynthesizer targets the macOS `say` command.
func NewSaySynthesizer() *ExecSynthesizer {
	return &ExecSynthesizer{Args: func(u Utterance) []string {
		// say rates are words per minute; ~180 wpm is its default voice rate.
		wpm := int(math.Round(180 * u.Rate))
		return []string{"say", "-r", fmt.Sprintf("%d", wpm), u.Text}
	}}
}

// NewEspeakSynthesizer targets espeak-ng.
func NewEspeakSynthesizer() *ExecSynthesizer {
	return &ExecSynthesizer{Args: func(u Utterance) []string {
		wpm := int(math.Round(175 * u.Rate))
		amp := int(math.Round(200 * u.Volume))
		args := []string{"espeak-ng", "-s", fmt.Sprintf("%d", wpm), "-a", fmt.Sprintf("%d", amp)}
		if u.Locale != "" {
			args = append(args, "-v", voiceForLocale(u.Locale))
		}
		return append(args, u.Text)
	}}
}

// voiceForLocale maps a BCP-47 tag to an espeak voice name.
func voiceForLocale(locale string) string {
	if len(locale) >= 2 {
		return locale[:2]
	}
	return "es"
}

// Speak cancels any in-flight utterance and starts the new one. The child
// process runs in the background; playback completion is not awaited.
func (s *ExecSynthesizer) Speak(u Utterance) error {
	if s.Args == nil {
		return ErrUnsupported
	}
	args := s.Args(u)
	if len(args) == 0 {
		return ErrUnsupported
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.killLocked()

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start synthesizer %q: %w", args[0], err)
	}
	s.current = cmd
	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		if s.current == cmd {
			s.current = nil
		}
		s.mu.Unlock()
	}()
	return nil
}

// Speaking reports whether a synthesis process is still running.
func (s *ExecSynthesizer) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Stop synchronously halts the in-flight utterance, if any.
func (s *ExecSynthesizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.killLocked()
}

func (s *ExecSynthesizer) killLocked() {
	if s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
	}
	s.current = nil
}
