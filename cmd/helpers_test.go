package cmd

import (
	"strings"
	"testing"

	"github.com/lcereceda/accessnav/internal/command"
	"github.com/lcereceda/accessnav/internal/cursor"
	"github.com/lcereceda/accessnav/internal/feedback"
	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/model"
	"github.com/lcereceda/accessnav/internal/settings"
)

// Batch and MCP sessions drive the cursor directly, so the help action
// has to be answered on that path too, not only inside the engine loop.
func TestApplyAction_HelpSpeaksCommandList(t *testing.T) {
	store := settings.NewStore(nil, nil)
	on := true
	store.Update(settings.Partial{ScreenReaderEnabled: &on})

	fb := feedback.NewChannel(store, nil, nil, nil)
	var texts []string
	fb.OnText = func(s string) { texts = append(texts, s) }

	cur := cursor.New(fb, nil, nil)
	cur.Start(index.Build([]model.Element{
		{ID: 1, Role: model.RoleButton, Label: "Guardar"},
		{ID: 2, Role: model.RoleLink, Label: "Inicio"},
	}))
	texts = nil

	table := command.NewPhraseTable("es-ES")
	applyAction(cur, fb, table, command.Help)

	joined := strings.Join(texts, "\n")
	if !strings.Contains(joined, "Comandos disponibles") {
		t.Errorf("help produced no command listing, feedback: %q", joined)
	}
	if !strings.Contains(joined, "siguiente") {
		t.Errorf("listing should include the vocabulary, feedback: %q", joined)
	}
	if cur.State() != cursor.Active || cur.Position() != 0 {
		t.Errorf("help must not move or stop the cursor: state=%v pos=%d", cur.State(), cur.Position())
	}
}

func TestParseSettingsArgs(t *testing.T) {
	p, err := parseSettingsArgs([]string{"font_size=large", "screen_reader_enabled=true", "locale=en-US"})
	if err != nil {
		t.Fatal(err)
	}
	if p.FontSize == nil || *p.FontSize != settings.FontLarge {
		t.Errorf("font_size = %v, want large", p.FontSize)
	}
	if p.ScreenReaderEnabled == nil || !*p.ScreenReaderEnabled {
		t.Error("screen_reader_enabled should be true")
	}
	if p.Locale == nil || *p.Locale != "en-US" {
		t.Errorf("locale = %v, want en-US", p.Locale)
	}
	if p.HighContrast != nil {
		t.Error("high_contrast should be untouched")
	}
}

func TestParseSettingsArgs_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"missing equals", []string{"font_size"}},
		{"unknown key", []string{"volume=11"}},
		{"bad bool", []string{"high_contrast=yes please"}},
		{"bad font size", []string{"font_size=enormous"}},
		{"empty locale", []string{"locale="}},
		{"permission not settable", []string{"microphone_permission_granted=true"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseSettingsArgs(tc.args); err == nil {
				t.Errorf("parseSettingsArgs(%v) should fail", tc.args)
			}
		})
	}
}
