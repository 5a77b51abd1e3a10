// Package settings holds the accessibility preferences that gate the
// navigation pipeline and persists them across runs.
package settings

import (
	"fmt"
	"strings"
)

// FontSize is the preferred base font size.
type FontSize string

const (
	FontSmall      FontSize = "small"
	FontMedium     FontSize = "medium"
	FontLarge      FontSize = "large"
	FontExtraLarge FontSize = "extra-large"
)

// fontSizePx maps each font size to its pixel-equivalent value.
var fontSizePx = map[FontSize]int{
	FontSmall:      14,
	FontMedium:     16,
	FontLarge:      18,
	FontExtraLarge: 20,
}

// Px returns the pixel-equivalent value for the font size. Unknown values
// fall back to medium.
func (f FontSize) Px() int {
	if px, ok := fontSizePx[f]; ok {
		return px
	}
	return fontSizePx[FontMedium]
}

// ParseFontSize converts a string flag value to a FontSize.
func ParseFontSize(s string) (FontSize, error) {
	switch FontSize(strings.ToLower(strings.TrimSpace(s))) {
	case FontSmall:
		return FontSmall, nil
	case FontMedium:
		return FontMedium, nil
	case FontLarge:
		return FontLarge, nil
	case FontExtraLarge:
		return FontExtraLarge, nil
	default:
		return "", fmt.Errorf("unknown font size: %q (expected small, medium, large, or extra-large)", s)
	}
}

// Settings is the full accessibility preference set.
type Settings struct {
	FontSize                    FontSize `json:"font_size"`
	HighContrast                bool     `json:"high_contrast"`
	ReducedMotion               bool     `json:"reduced_motion"`
	ScreenReaderEnabled         bool     `json:"screen_reader_enabled"`
	KeyboardNavigationEnabled   bool     `json:"keyboard_navigation_enabled"`
	VoiceOutputEnabled          bool     `json:"voice_output_enabled"`
	VoiceControlEnabled         bool     `json:"voice_control_enabled"`
	MicrophonePermissionGranted bool     `json:"microphone_permission_granted"`
	Locale                      string   `json:"locale"`
}

// Defaults returns the settings applied on first load or after a reset.
func Defaults() Settings {
	return Settings{
		FontSize:                  FontMedium,
		KeyboardNavigationEnabled: true,
		Locale:                    "es-ES",
	}
}

// Partial is a settings delta: nil fields are left untouched by Update.
type Partial struct {
	FontSize                    *FontSize `json:"font_size,omitempty"`
	HighContrast                *bool     `json:"high_contrast,omitempty"`
	ReducedMotion               *bool     `json:"reduced_motion,omitempty"`
	ScreenReaderEnabled         *bool     `json:"screen_reader_enabled,omitempty"`
	KeyboardNavigationEnabled   *bool     `json:"keyboard_navigation_enabled,omitempty"`
	VoiceOutputEnabled          *bool     `json:"voice_output_enabled,omitempty"`
	VoiceControlEnabled         *bool     `json:"voice_control_enabled,omitempty"`
	MicrophonePermissionGranted *bool     `json:"microphone_permission_granted,omitempty"`
	Locale                      *string   `json:"locale,omitempty"`
}

// merge applies the partial onto s and returns the result.
func merge(s Settings, p Partial) Settings {
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.HighContrast != nil {
		s.HighContrast = *p.HighContrast
	}
	if p.ReducedMotion != nil {
		s.ReducedMotion = *p.ReducedMotion
	}
	if p.ScreenReaderEnabled != nil {
		s.ScreenReaderEnabled = *p.ScreenReaderEnabled
	}
	if p.KeyboardNavigationEnabled != nil {
		s.KeyboardNavigationEnabled = *p.KeyboardNavigationEnabled
	}
	if p.VoiceOutputEnabled != nil {
		s.VoiceOutputEnabled = *p.VoiceOutputEnabled
	}
	if p.VoiceControlEnabled != nil {
		s.VoiceControlEnabled = *p.VoiceControlEnabled
	}
	if p.MicrophonePermissionGranted != nil {
		s.MicrophonePermissionGranted = *p.MicrophonePermissionGranted
	}
	if p.Locale != nil {
		s.Locale = *p.Locale
	}
	return s
}

// ApplyResult describes the presentation side effects of the current
// settings. Callers apply these to whatever document they render into.
type ApplyResult struct {
	FontSizePx         int  `yaml:"font_size_px"        json:"font_size_px"`
	HighContrast       bool `yaml:"high_contrast"       json:"high_contrast"`
	ReducedMotion      bool `yaml:"reduced_motion"      json:"reduced_motion"`
	KeyboardNavigation bool `yaml:"keyboard_navigation" json:"keyboard_navigation"`
	ScreenReader       bool `yaml:"screen_reader"       json:"screen_reader"`
}

// Apply computes the presentation flags for the settings.
func (s Settings) Apply() ApplyResult {
	return ApplyResult{
		FontSizePx:         s.FontSize.Px(),
		HighContrast:       s.HighContrast,
		ReducedMotion:      s.ReducedMotion,
		KeyboardNavigation: s.KeyboardNavigationEnabled,
		ScreenReader:       s.ScreenReaderEnabled,
	}
}
