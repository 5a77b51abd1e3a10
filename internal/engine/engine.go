// Package engine runs the accessible navigation pipeline: input events
// from keyboard or speech recognition are interpreted into actions,
// applied to the navigation cursor, and answered through the feedback
// channel. The engine owns the session lifecycle: permission requests,
// recognition restarts, and synchronous teardown on cancel.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lcereceda/accessnav/internal/command"
	"github.com/lcereceda/accessnav/internal/cursor"
	"github.com/lcereceda/accessnav/internal/feedback"
	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/platform"
	"github.com/lcereceda/accessnav/internal/settings"
	"github.com/lcereceda/accessnav/internal/speech"
)

// Event is one input message into the engine. Exactly one field is set.
type Event struct {
	Key        string // key name, e.g. "down", "enter"
	Transcript string // final voice transcript
}

const (
	// transcriptDebounce is the re-entrancy guard window: a transcript
	// arriving this soon after the previous one is dropped.
	transcriptDebounce = 300 * time.Millisecond

	// restartDelay debounces recognition auto-restart. Restarting
	// immediately after certain errors loops the session.
	restartDelay = 500 * time.Millisecond
)

// Engine wires the navigation components over a platform provider.
type Engine struct {
	Settings *settings.Store
	Feedback *feedback.Channel
	Cursor   *cursor.Cursor

	provider *platform.Provider
	interp   *command.Interpreter
	table    *command.PhraseTable
	logger   *zap.Logger

	events chan Event
	rescan chan struct{}

	mu             sync.Mutex
	sessionID      string
	results        <-chan speech.Result
	lastTranscript time.Time
	permDenied     bool // permission denial reported; no automatic retry
	voiceReported  bool // platform-unsupported reported once
}

// Option tweaks engine construction.
type Option func(*Engine)

// WithActivator sets the element activation port.
func WithActivator(a cursor.Activator) Option {
	return func(e *Engine) {
		e.Cursor = cursor.New(e.Feedback, a, e.logger)
	}
}

// WithPhraseTable replaces the built-in phrase table.
func WithPhraseTable(t *command.PhraseTable) Option {
	return func(e *Engine) {
		e.table = t
		e.interp = command.NewInterpreter(t)
	}
}

// New creates an engine over the provider. The phrase table follows the
// stored locale unless overridden.
func New(p *platform.Provider, store *settings.Store, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	fb := feedback.NewChannel(store, p.Synth, p.Sink, logger)
	table := command.NewPhraseTable(store.Get().Locale)
	e := &Engine{
		Settings:  store,
		Feedback:  fb,
		Cursor:    cursor.New(fb, nil, logger),
		provider:  p,
		interp:    command.NewInterpreter(table),
		table:     table,
		logger:    logger,
		events:    make(chan Event, 16),
		rescan:    make(chan struct{}, 1),
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit queues an input event. Non-blocking; events are dropped when the
// engine is saturated, which matches the debounce policy anyway.
func (e *Engine) Submit(ev Event) {
	select {
	case e.events <- ev:
	default:
		e.logger.Debug("event dropped, engine saturated")
	}
}

// Rescan requests a full index rebuild from the container reader.
func (e *Engine) Rescan() {
	select {
	case e.rescan <- struct{}{}:
	default:
	}
}

// Run starts navigation and processes events until the context is
// cancelled or the user cancels navigation. All failures surface as
// feedback; the returned error only reports a broken container reader.
func (e *Engine) Run(ctx context.Context) error {
	ix, err := e.buildIndex()
	if err != nil {
		return err
	}
	e.logger.Info("session starting",
		zap.String("session", e.sessionID), zap.Int("elements", ix.Len()))
	e.Cursor.Start(ix)

	if e.Settings.Get().VoiceControlEnabled {
		e.startListening(ctx)
	}

	var restart <-chan time.Time
	for {
		results := e.currentResults()
		select {
		case <-ctx.Done():
			e.Stop()
			return nil

		case ev := <-e.events:
			e.handleEvent(ev)
			if e.Cursor.State() == cursor.Idle {
				e.Stop()
				return nil
			}

		case res, ok := <-results:
			if !ok {
				// Session ended. Restart after a delay if voice control
				// is still wanted and permitted.
				e.clearResults()
				if e.shouldListen() {
					restart = time.After(restartDelay)
				}
				continue
			}
			e.handleRecognition(latestFinal(res, results))
			if e.Cursor.State() == cursor.Idle {
				e.Stop()
				return nil
			}

		case <-restart:
			restart = nil
			if e.shouldListen() {
				e.startListening(ctx)
			}

		case <-e.rescan:
			ix, err := e.buildIndex()
			if err != nil {
				e.logger.Warn("rescan failed", zap.Error(err))
				continue
			}
			e.Cursor.Rebuild(ix)
		}
	}
}

// Stop synchronously tears the session down: recognition stops, in-flight
// speech is cancelled, and the cursor goes idle. Nothing runs after Stop
// returns.
func (e *Engine) Stop() {
	e.stopListening()
	e.Feedback.Silence()
	e.Cursor.Stop()
}

// SetVoiceControl toggles voice control, handling the microphone
// permission flow. Turning it off while listening stops the session and
// prevents auto-restart.
func (e *Engine) SetVoiceControl(ctx context.Context, enabled bool) {
	on := enabled
	if !enabled {
		e.Settings.Update(settings.Partial{VoiceControlEnabled: &on})
		e.stopListening()
		return
	}

	if !e.ensurePermission(ctx) {
		return
	}
	e.Settings.Update(settings.Partial{VoiceControlEnabled: &on})
	e.startListening(ctx)
}

// ensurePermission requests microphone access when not yet granted. A
// denial is reported once through feedback and not retried automatically.
func (e *Engine) ensurePermission(ctx context.Context) bool {
	if e.Settings.Get().MicrophonePermissionGranted {
		return true
	}
	if e.provider.Permission == nil {
		return false
	}
	granted, err := e.provider.Permission.RequestMicrophone(ctx)
	if err != nil {
		e.logger.Warn("permission request failed", zap.Error(err))
		granted = false
	}
	g := granted
	e.Settings.Update(settings.Partial{MicrophonePermissionGranted: &g})
	if !granted {
		e.mu.Lock()
		alreadyReported := e.permDenied
		e.permDenied = true
		e.mu.Unlock()
		if !alreadyReported {
			e.Feedback.Say(e.messages().PermissionDenied())
		}
		off := false
		e.Settings.Update(settings.Partial{VoiceControlEnabled: &off})
	}
	return granted
}

// startListening opens a recognition session. Reports a missing
// recognizer once and degrades to keyboard-only.
func (e *Engine) startListening(ctx context.Context) {
	if e.provider.Recognizer == nil {
		e.mu.Lock()
		alreadyReported := e.voiceReported
		e.voiceReported = true
		e.mu.Unlock()
		if !alreadyReported {
			e.Feedback.Say(e.messages().PlatformUnsupported())
		}
		return
	}
	if !e.ensurePermission(ctx) {
		return
	}

	results, err := e.provider.Recognizer.Start(ctx)
	if err != nil {
		if errors.Is(err, speech.ErrExhausted) {
			e.logger.Info("recognizer input exhausted, keyboard only",
				zap.String("session", e.sessionID))
			return
		}
		e.logger.Warn("recognition start failed", zap.Error(err))
		e.Feedback.Say(e.messages().RecognitionError(speech.ErrOther))
		return
	}
	e.mu.Lock()
	e.results = results
	e.mu.Unlock()
	e.logger.Info("listening", zap.String("session", e.sessionID))
}

func (e *Engine) stopListening() {
	if e.provider.Recognizer != nil {
		e.provider.Recognizer.Stop()
	}
	e.clearResults()
}

func (e *Engine) currentResults() <-chan speech.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.results
}

func (e *Engine) clearResults() {
	e.mu.Lock()
	e.results = nil
	e.mu.Unlock()
}

// shouldListen reports whether a recognition session should be (re)open.
func (e *Engine) shouldListen() bool {
	s := e.Settings.Get()
	return s.VoiceControlEnabled && s.MicrophonePermissionGranted
}

// handleEvent dispatches one input message.
func (e *Engine) handleEvent(ev Event) {
	switch {
	case ev.Key != "":
		if !e.Settings.Get().KeyboardNavigationEnabled {
			return
		}
		action, ok := command.MapKey(ev.Key)
		if !ok {
			e.Cursor.Apply(command.Unrecognized(ev.Key))
			return
		}
		e.dispatch(action)
	case ev.Transcript != "":
		e.acceptTranscript(ev.Transcript)
	}
}

// handleRecognition processes one recognition result. Interim results are
// ignored; errors map to per-kind feedback. Fatal errors close the
// session on the recognizer side; the engine does not restart them.
func (e *Engine) handleRecognition(res speech.Result) {
	if res.Err != nil {
		e.logger.Warn("recognition error",
			zap.String("kind", res.Err.Kind.String()), zap.String("msg", res.Err.Message))
		e.Feedback.Say(e.messages().RecognitionError(res.Err.Kind))
		if !res.Err.Kind.Transient() {
			e.stopListening()
		}
		return
	}
	if !res.Final {
		return
	}
	e.acceptTranscript(res.Text)
}

// acceptTranscript applies the debounce window before interpreting.
func (e *Engine) acceptTranscript(text string) {
	now := time.Now()
	e.mu.Lock()
	if now.Sub(e.lastTranscript) < transcriptDebounce {
		e.mu.Unlock()
		e.logger.Debug("transcript dropped by debounce", zap.String("text", text))
		return
	}
	e.lastTranscript = now
	e.mu.Unlock()

	action := e.interp.Interpret(text)
	e.logger.Debug("transcript interpreted",
		zap.String("text", text), zap.Stringer("action", action))
	e.dispatch(action)
}

// dispatch routes an action: help is answered by the engine (it owns the
// phrase table), cancel tears down voice first so no callback outlives
// it, and everything else goes to the cursor.
func (e *Engine) dispatch(a command.Action) {
	switch a.Kind {
	case command.KindHelp:
		e.Feedback.Say(e.messages().Help(e.table.Phrases()))
	case command.KindCancel:
		e.stopListening()
		e.Cursor.Apply(a)
	default:
		e.Cursor.Apply(a)
	}
}

// latestFinal drains results already queued behind res so a burst of
// final transcripts collapses to the newest one. An error stops the
// drain and takes priority.
func latestFinal(res speech.Result, results <-chan speech.Result) speech.Result {
	for res.Err == nil {
		select {
		case next, ok := <-results:
			if !ok {
				return res
			}
			if next.Err != nil {
				return next
			}
			if next.Final {
				res = next
			}
		default:
			return res
		}
	}
	return res
}

func (e *Engine) buildIndex() (*index.Index, error) {
	tree, err := e.provider.Reader.ReadElements()
	if err != nil {
		return nil, err
	}
	return index.Build(tree), nil
}

func (e *Engine) messages() feedback.Messages {
	return feedback.MessagesFor(e.Settings.Get().Locale)
}
