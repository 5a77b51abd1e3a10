package settings

import (
	"errors"
	"path/filepath"
	"testing"
)

func boolPtr(b bool) *bool          { return &b }
func fontPtr(f FontSize) *FontSize  { return &f }
func strPtr(s string) *string       { return &s }

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.FontSize != FontMedium {
		t.Errorf("default FontSize = %q, want %q", d.FontSize, FontMedium)
	}
	if !d.KeyboardNavigationEnabled {
		t.Error("keyboard navigation should default to enabled")
	}
	if d.VoiceControlEnabled || d.ScreenReaderEnabled || d.HighContrast {
		t.Error("voice control, screen reader, and high contrast should default to off")
	}
	if d.Locale != "es-ES" {
		t.Errorf("default Locale = %q, want %q", d.Locale, "es-ES")
	}
}

func TestFontSizePx(t *testing.T) {
	tests := []struct {
		size FontSize
		want int
	}{
		{FontSmall, 14},
		{FontMedium, 16},
		{FontLarge, 18},
		{FontExtraLarge, 20},
		{FontSize("bogus"), 16},
	}
	for _, tt := range tests {
		if got := tt.size.Px(); got != tt.want {
			t.Errorf("FontSize(%q).Px() = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestStore_UpdateMergesPartial(t *testing.T) {
	s := NewStore(nil, nil)

	got := s.Update(Partial{VoiceControlEnabled: boolPtr(true), FontSize: fontPtr(FontLarge)})
	if !got.VoiceControlEnabled {
		t.Error("VoiceControlEnabled should be true after update")
	}
	if got.FontSize != FontLarge {
		t.Errorf("FontSize = %q, want %q", got.FontSize, FontLarge)
	}
	// Untouched fields keep their values.
	if !got.KeyboardNavigationEnabled {
		t.Error("KeyboardNavigationEnabled should survive an unrelated update")
	}

	// A second partial does not clobber the first.
	got = s.Update(Partial{HighContrast: boolPtr(true)})
	if !got.VoiceControlEnabled || got.FontSize != FontLarge {
		t.Error("previous update lost after unrelated merge")
	}
	if !got.HighContrast {
		t.Error("HighContrast should be true")
	}
}

func TestStore_Apply(t *testing.T) {
	s := NewStore(nil, nil)
	s.Update(Partial{FontSize: fontPtr(FontExtraLarge), HighContrast: boolPtr(true), ReducedMotion: boolPtr(true)})

	a := s.Get().Apply()
	if a.FontSizePx != 20 {
		t.Errorf("FontSizePx = %d, want 20", a.FontSizePx)
	}
	if !a.HighContrast || !a.ReducedMotion || !a.KeyboardNavigation {
		t.Errorf("ApplyResult flags wrong: %+v", a)
	}
}

func TestStore_FilePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	storage := &FileStorage{Path: path}

	s := NewStore(storage, nil)
	s.Update(Partial{ScreenReaderEnabled: boolPtr(true), Locale: strPtr("en-US")})

	// A second store over the same file sees the persisted value.
	s2 := NewStore(storage, nil)
	got := s2.Get()
	if !got.ScreenReaderEnabled {
		t.Error("ScreenReaderEnabled not persisted")
	}
	if got.Locale != "en-US" {
		t.Errorf("Locale = %q, want %q", got.Locale, "en-US")
	}
}

func TestStore_ResetClearsPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	storage := &FileStorage{Path: path}

	s := NewStore(storage, nil)
	s.Update(Partial{VoiceOutputEnabled: boolPtr(true)})
	got := s.Reset()
	if got.VoiceOutputEnabled {
		t.Error("Reset should restore defaults")
	}

	if _, ok, err := storage.Load(); err != nil {
		t.Fatalf("Load after Reset: %v", err)
	} else if ok {
		t.Error("persisted settings should be cleared after Reset")
	}
}

// Session stores carry the persisted values but keep their own mutations
// in memory: running a navigation session must not rewrite preferences.
func TestSessionStore_DoesNotPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	storage := &FileStorage{Path: path}
	NewStore(storage, nil).Update(Partial{Locale: strPtr("en-US")})

	session := NewSessionStore(NewStore(storage, nil).Get(), nil)
	if session.Get().Locale != "en-US" {
		t.Errorf("session Locale = %q, want seeded %q", session.Get().Locale, "en-US")
	}

	got := session.Update(Partial{
		ScreenReaderEnabled: boolPtr(true),
		VoiceControlEnabled: boolPtr(true),
	})
	if !got.ScreenReaderEnabled || !got.VoiceControlEnabled {
		t.Error("session toggles should apply in memory")
	}

	persisted, ok, err := storage.Load()
	if err != nil || !ok {
		t.Fatalf("Load persisted settings: ok=%v err=%v", ok, err)
	}
	if persisted.ScreenReaderEnabled || persisted.VoiceControlEnabled {
		t.Errorf("session toggles leaked into persisted settings: %+v", persisted)
	}
}

type failingStorage struct{}

func (failingStorage) Load() (Settings, bool, error) { return Settings{}, false, errors.New("io error") }
func (failingStorage) Save(Settings) error           { return errors.New("io error") }
func (failingStorage) Clear() error                  { return errors.New("io error") }

// Storage failures are silent at the API boundary: the store works from
// memory and callers see nothing.
func TestStore_StorageUnavailableFallsBack(t *testing.T) {
	s := NewStore(failingStorage{}, nil)
	if s.Get() != Defaults() {
		t.Error("store should fall back to defaults when storage is unavailable")
	}
	got := s.Update(Partial{HighContrast: boolPtr(true)})
	if !got.HighContrast {
		t.Error("in-memory update should still apply when persistence fails")
	}
}

func TestParseFontSize(t *testing.T) {
	if got, err := ParseFontSize(" Extra-Large "); err != nil || got != FontExtraLarge {
		t.Errorf("ParseFontSize(extra-large) = %q, %v", got, err)
	}
	if _, err := ParseFontSize("huge"); err == nil {
		t.Error("expected error for unknown font size")
	}
}
