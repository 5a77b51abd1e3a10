package command

import (
	"strings"
	"testing"

	"github.com/lcereceda/accessnav/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Siguiente", "siguiente"},
		{"  BOTÓN  ", "boton"},
		{"último elemento", "ultimo elemento"},
		{"ir  al   menú", "ir al menu"},
		{"Página Principal", "pagina principal"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestInterpret_ExactSpanish(t *testing.T) {
	in := NewInterpreter(NewPhraseTable("es-ES"))

	tests := []struct {
		input string
		want  Action
	}{
		{"siguiente", Next},
		{"anterior", Previous},
		{"primero", First},
		{"último", Last},
		{"activar", Activate},
		{"repetir", Repeat},
		{"ayuda", Help},
		{"cancelar", Cancel},
		{"ir al formulario", GoTo(model.CategoryForm)},
		{"ir al menú", GoTo(model.CategoryMenu)},
		{"botón", GoTo(model.CategoryButton)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := in.Interpret(tt.input)
			if got != tt.want {
				t.Errorf("Interpret(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInterpret_SubstringRecall(t *testing.T) {
	in := NewInterpreter(NewPhraseTable("es"))

	// Noisy transcripts around a known phrase still resolve.
	tests := []struct {
		input string
		want  Action
	}{
		{"por favor siguiente elemento", Next},
		{"quiero ir al formulario ahora", GoTo(model.CategoryForm)},
		{"eh cancelar eso", Cancel},
		{"seleccionar este", Activate},
	}
	for _, tt := range tests {
		got := in.Interpret(tt.input)
		if got != tt.want {
			t.Errorf("Interpret(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInterpret_SynonymFallback(t *testing.T) {
	in := NewInterpreter(NewPhraseTable("es"))

	if got := in.Interpret("adelante"); got != Next {
		t.Errorf("Interpret(%q) = %v, want Next", "adelante", got)
	}
	if got := in.Interpret("siguiente"); got != Next {
		t.Errorf("Interpret(%q) = %v, want Next", "siguiente", got)
	}
	if got := in.Interpret("vamos atrás"); got != Previous {
		t.Errorf("Interpret(%q) = %v, want Previous", "vamos atrás", got)
	}
}

func TestInterpret_Unrecognized(t *testing.T) {
	in := NewInterpreter(NewPhraseTable("es"))

	got := in.Interpret("xyz-not-a-command")
	if got.Kind != KindUnrecognized {
		t.Fatalf("Interpret(%q).Kind = %v, want KindUnrecognized", "xyz-not-a-command", got.Kind)
	}
	if got.Input != "xyz-not-a-command" {
		t.Errorf("Interpret preserved input = %q, want %q", got.Input, "xyz-not-a-command")
	}

	if got := in.Interpret("   "); got.Kind != KindUnrecognized {
		t.Errorf("Interpret(blank).Kind = %v, want KindUnrecognized", got.Kind)
	}
}

// A long phrase that embeds a shorter unrelated phrase as a substring must
// resolve to its own action. Longest-first ordering makes the specific
// phrase win before the generic fragment can collide.
func TestInterpret_NoCrossActionCollisions(t *testing.T) {
	in := NewInterpreter(NewPhraseTable("es"))

	tests := []struct {
		input string
		want  Action
	}{
		{"siguiente elemento", Next},   // contains neither previous nor goto fragments
		{"elemento anterior", Previous}, // "elemento" also appears in Next/First/Last phrases
		{"ultimo elemento", Last},
		{"primer elemento", First},
		{"ir al menu", GoTo(model.CategoryMenu)},     // contains "menu"
		{"ir al boton", GoTo(model.CategoryButton)},  // contains "boton"
		{"pagina principal", GoTo(model.CategoryHome)},
	}
	for _, tt := range tests {
		got := in.Interpret(tt.input)
		if got != tt.want {
			t.Errorf("Interpret(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInterpret_English(t *testing.T) {
	in := NewInterpreter(NewPhraseTable("en-US"))

	tests := []struct {
		input string
		want  Action
	}{
		{"next", Next},
		{"go to form", GoTo(model.CategoryForm)},
		{"where am I", Repeat},
		{"stop", Cancel},
	}
	for _, tt := range tests {
		got := in.Interpret(tt.input)
		if got != tt.want {
			t.Errorf("Interpret(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadPhrases_MergesOverBuiltin(t *testing.T) {
	yamlSrc := `
siguiente ficha: next
ir a la tabla: "goto:form"
`
	table, err := LoadPhrases(strings.NewReader(yamlSrc), "es")
	if err != nil {
		t.Fatalf("LoadPhrases failed: %v", err)
	}
	in := NewInterpreter(table)

	if got := in.Interpret("siguiente ficha"); got != Next {
		t.Errorf("custom phrase = %v, want Next", got)
	}
	if got := in.Interpret("ir a la tabla"); got != GoTo(model.CategoryForm) {
		t.Errorf("custom goto phrase = %v, want goto(form)", got)
	}
	// Built-ins survive the merge.
	if got := in.Interpret("cancelar"); got != Cancel {
		t.Errorf("builtin phrase = %v, want Cancel", got)
	}
}

func TestLoadPhrases_RejectsBadAction(t *testing.T) {
	if _, err := LoadPhrases(strings.NewReader("frase: teleport\n"), "es"); err == nil {
		t.Error("expected error for unknown action name")
	}
	if _, err := LoadPhrases(strings.NewReader("frase: goto\n"), "es"); err == nil {
		t.Error("expected error for goto without category")
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"down", Next},
		{"Tab", Next},
		{"up", Previous},
		{"shift+tab", Previous},
		{"home", First},
		{"end", Last},
		{"Enter", Activate},
		{"Escape", Cancel},
		{"f1", Help},
	}
	for _, tt := range tests {
		got, ok := MapKey(tt.key)
		if !ok {
			t.Errorf("MapKey(%q) not found", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
	if _, ok := MapKey("f12"); ok {
		t.Error("MapKey(f12) should not match")
	}
}
