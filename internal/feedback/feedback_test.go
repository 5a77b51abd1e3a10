package feedback

import (
	"math"
	"sync"
	"testing"

	"github.com/lcereceda/accessnav/internal/audio"
	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/model"
	"github.com/lcereceda/accessnav/internal/settings"
	"github.com/lcereceda/accessnav/internal/speech"
)

func TestAnnounce_FormatExact(t *testing.T) {
	e := index.Entry{Role: model.RoleButton, Label: "Guardar"}
	got := Announce(e, 2, 7, "es-ES")
	want := "Botón: Guardar. Posición 3 de 7."
	if got != want {
		t.Errorf("Announce = %q, want %q", got, want)
	}
}

func TestAnnounce_WithDescription(t *testing.T) {
	e := index.Entry{Role: model.RoleInput, Label: "Correo", Description: "Dirección de contacto"}
	got := Announce(e, 0, 4, "es-ES")
	want := "Campo de texto: Correo. Dirección de contacto. Posición 1 de 4."
	if got != want {
		t.Errorf("Announce = %q, want %q", got, want)
	}
}

func TestAnnounce_English(t *testing.T) {
	e := index.Entry{Role: model.RoleLink, Label: "Home"}
	got := Announce(e, 0, 2, "en-US")
	want := "Link: Home. Position 1 of 2."
	if got != want {
		t.Errorf("Announce = %q, want %q", got, want)
	}
}

func TestAnnounce_UnlabeledFallback(t *testing.T) {
	e := index.Entry{Role: model.RoleButton}
	got := Announce(e, 0, 1, "es")
	want := "Botón: sin etiqueta. Posición 1 de 1."
	if got != want {
		t.Errorf("Announce = %q, want %q", got, want)
	}
}

func TestRoleLabel_AllRolesCovered(t *testing.T) {
	roles := []model.Role{
		model.RoleButton, model.RoleLink, model.RoleInput, model.RoleTextArea,
		model.RoleSelect, model.RoleCheckbox, model.RoleRadio, model.RoleMenuItem,
		model.RoleTab, model.RoleOption, model.RoleText, model.RoleHeading,
		model.RoleImage, model.RoleGroup, model.RoleOther,
	}
	for _, r := range roles {
		for _, locale := range []string{"es-ES", "en-US"} {
			if RoleLabel(r, locale) == "" {
				t.Errorf("RoleLabel(%q, %q) is empty", r, locale)
			}
		}
	}
	if got := RoleLabel(model.Role("bogus"), "es"); got != "Elemento" {
		t.Errorf("unknown role label = %q, want Elemento", got)
	}
}

func TestPositionTone_FrequencyInterpolation(t *testing.T) {
	cfg := DefaultToneConfig()

	first := cfg.PositionTone(0, 5, Center)
	if first.Frequency != cfg.MinFreq {
		t.Errorf("tone at index 0 = %g Hz, want min %g", first.Frequency, cfg.MinFreq)
	}
	last := cfg.PositionTone(4, 5, Center)
	if last.Frequency != cfg.MaxFreq {
		t.Errorf("tone at last index = %g Hz, want max %g", last.Frequency, cfg.MaxFreq)
	}
	mid := cfg.PositionTone(2, 5, Center)
	want := cfg.MinFreq + (cfg.MaxFreq-cfg.MinFreq)/2
	if math.Abs(mid.Frequency-want) > 1e-9 {
		t.Errorf("tone at middle = %g Hz, want %g", mid.Frequency, want)
	}
}

func TestPositionTone_SingleElementGuard(t *testing.T) {
	cfg := DefaultToneConfig()
	tone := cfg.PositionTone(0, 1, Center)
	if tone.Frequency != cfg.MinFreq {
		t.Errorf("single-element tone = %g Hz, want min %g", tone.Frequency, cfg.MinFreq)
	}
}

func TestPositionTone_Pan(t *testing.T) {
	cfg := DefaultToneConfig()
	if got := cfg.PositionTone(0, 3, Left).Pan; got != -cfg.PanRange {
		t.Errorf("left pan = %g, want %g", got, -cfg.PanRange)
	}
	if got := cfg.PositionTone(0, 3, Right).Pan; got != cfg.PanRange {
		t.Errorf("right pan = %g, want %g", got, cfg.PanRange)
	}
	if got := cfg.PositionTone(0, 3, Center).Pan; got != 0 {
		t.Errorf("center pan = %g, want 0", got)
	}
}

func TestActivationChord_MajorThird(t *testing.T) {
	chord := DefaultToneConfig().ActivationChord()
	if len(chord) != 2 {
		t.Fatalf("chord has %d tones, want 2", len(chord))
	}
	ratio := chord[1].Frequency / chord[0].Frequency
	if math.Abs(ratio-1.26) > 0.01 {
		t.Errorf("chord interval ratio = %g, want ~1.26 (major third)", ratio)
	}
	if chord[0].Duration != chord[1].Duration {
		t.Error("chord tones must share one duration")
	}
}

// fakeSynth records utterances and simulates an in-flight utterance.
type fakeSynth struct {
	mu       sync.Mutex
	spoken   []speech.Utterance
	speaking bool
	stopped  int
}

func (f *fakeSynth) Speak(u speech.Utterance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, u)
	f.speaking = true
	return nil
}

func (f *fakeSynth) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.speaking = false
	f.stopped++
}

func (f *fakeSynth) Speaking() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.speaking
}

// fakeSink records played cues.
type fakeSink struct {
	mu    sync.Mutex
	plays [][]audio.ToneSpec
}

func (f *fakeSink) Play(tones ...audio.ToneSpec) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays = append(f.plays, tones)
	return nil
}

func voiceStore(t *testing.T) *settings.Store {
	t.Helper()
	s := settings.NewStore(nil, nil)
	on := true
	s.Update(settings.Partial{VoiceOutputEnabled: &on, ScreenReaderEnabled: &on})
	return s
}

func TestChannel_AnnounceSpeaksWithFixedParameters(t *testing.T) {
	synth := &fakeSynth{}
	sink := &fakeSink{}
	ch := NewChannel(voiceStore(t), synth, sink, nil)

	var texts []string
	ch.OnText = func(s string) { texts = append(texts, s) }

	ch.Announce(index.Entry{Role: model.RoleButton, Label: "Guardar"}, 2, 7)

	if len(texts) != 1 || texts[0] != "Botón: Guardar. Posición 3 de 7." {
		t.Errorf("OnText got %v", texts)
	}
	if len(synth.spoken) != 1 {
		t.Fatalf("spoke %d utterances, want 1", len(synth.spoken))
	}
	u := synth.spoken[0]
	if u.Rate != 0.9 || u.Pitch != 1.0 || u.Volume != 0.8 {
		t.Errorf("utterance parameters = %g/%g/%g, want 0.9/1.0/0.8", u.Rate, u.Pitch, u.Volume)
	}
	if u.Locale != "es-ES" {
		t.Errorf("utterance locale = %q, want es-ES", u.Locale)
	}
}

func TestChannel_GatingBySettings(t *testing.T) {
	synth := &fakeSynth{}
	ch := NewChannel(settings.NewStore(nil, nil), synth, &fakeSink{}, nil)
	var texts []string
	ch.OnText = func(s string) { texts = append(texts, s) }

	// Both flags default off: nothing is emitted.
	ch.Say("hola")
	if len(texts) != 0 {
		t.Errorf("screen-reader text emitted while disabled: %v", texts)
	}
	if len(synth.spoken) != 0 {
		t.Errorf("speech emitted while disabled: %v", synth.spoken)
	}
}

func TestChannel_CueDroppedWhileSpeaking(t *testing.T) {
	synth := &fakeSynth{}
	sink := &fakeSink{}
	ch := NewChannel(voiceStore(t), synth, sink, nil)

	ch.Say("hablando")
	ch.PlayCue(1, 5, Right)
	if len(sink.plays) != 0 {
		t.Errorf("cue played while utterance in flight: %v", sink.plays)
	}
	ch.ActivationCue()
	if len(sink.plays) != 0 {
		t.Error("activation cue played while utterance in flight")
	}

	// Once speech ends, cues flow again.
	synth.Stop()
	ch.PlayCue(1, 5, Right)
	if len(sink.plays) != 1 {
		t.Fatalf("cue not played after speech ended: %d plays", len(sink.plays))
	}
	if len(sink.plays[0]) != 1 || sink.plays[0][0].Pan <= 0 {
		t.Errorf("cue = %+v, want single right-panned tone", sink.plays[0])
	}
}

func TestChannel_SilenceStopsSpeech(t *testing.T) {
	synth := &fakeSynth{}
	ch := NewChannel(voiceStore(t), synth, &fakeSink{}, nil)

	ch.Say("hablando")
	ch.Silence()
	if synth.stopped != 1 {
		t.Errorf("Stop called %d times, want 1", synth.stopped)
	}
	if synth.Speaking() {
		t.Error("synthesizer still speaking after Silence")
	}
}

func TestMessages_Distinct(t *testing.T) {
	m := MessagesFor("es-ES")
	kinds := []speech.ErrorKind{speech.ErrNoSpeech, speech.ErrAudioCapture, speech.ErrNetwork, speech.ErrOther}
	seen := map[string]speech.ErrorKind{}
	for _, k := range kinds {
		msg := m.RecognitionError(k)
		if msg == "" {
			t.Errorf("empty message for %s", k)
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("kinds %s and %s share message %q", prev, k, msg)
		}
		seen[msg] = k
	}
}

func TestMessages_UnrecognizedEchoesInput(t *testing.T) {
	m := MessagesFor("es")
	got := m.Unrecognized("xyz-not-a-command")
	if want := "Comando no reconocido: xyz-not-a-command. Diga 'ayuda' para escuchar los comandos."; got != want {
		t.Errorf("Unrecognized = %q, want %q", got, want)
	}
}
