package speech

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// ScriptRecognizer delivers transcripts from an io.Reader, one per line.
// It is the CLI and test adapter: typed lines stand in for voice
// transcripts. Line conventions:
//
//	plain text     final transcript
//	~text          interim (non-final) transcript
//	!kind[:msg]    recognition error, e.g. "!no-speech" or "!network:down"
//	# comment      ignored
//
// The result channel closes at EOF or Stop. A script read to its end is
// spent: Start then returns ErrExhausted, so session drivers settle into
// keyboard-only input instead of restarting over an empty reader.
type ScriptRecognizer struct {
	R io.Reader

	mu        sync.Mutex
	cancel    context.CancelFunc
	exhausted bool
}

// Start begins reading lines. Only one session runs at a time; starting
// over an active session stops the previous one first.
func (s *ScriptRecognizer) Start(ctx context.Context) (<-chan Result, error) {
	s.Stop()

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	if s.exhausted {
		s.mu.Unlock()
		cancel()
		return nil, ErrExhausted
	}
	s.cancel = cancel
	s.mu.Unlock()

	out := make(chan Result)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(s.R)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			var res Result
			switch {
			case strings.HasPrefix(line, "!"):
				res = Result{Err: parseErrorLine(line[1:])}
			case strings.HasPrefix(line, "~"):
				res = Result{Text: strings.TrimSpace(line[1:]), Final: false}
			default:
				res = Result{Text: line, Final: true}
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
		// Natural end of input. A Stop mid-stream takes the ctx.Done
		// path above and leaves the script restartable.
		s.mu.Lock()
		s.exhausted = true
		s.mu.Unlock()
	}()
	return out, nil
}

// Stop halts the active session, if any.
func (s *ScriptRecognizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// parseErrorLine parses "kind" or "kind:message" into a RecognitionError.
func parseErrorLine(s string) *RecognitionError {
	kind, msg := s, ""
	if i := strings.Index(s, ":"); i >= 0 {
		kind, msg = s[:i], strings.TrimSpace(s[i+1:])
	}
	e := &RecognitionError{Message: msg}
	switch strings.TrimSpace(kind) {
	case "no-speech":
		e.Kind = ErrNoSpeech
	case "audio-capture":
		e.Kind = ErrAudioCapture
	case "network":
		e.Kind = ErrNetwork
	case "permission-denied":
		e.Kind = ErrPermissionDenied
	default:
		e.Kind = ErrOther
	}
	return e
}
