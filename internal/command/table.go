package command

import (
	"fmt"
	"io"
	"sort"

	"github.com/lcereceda/accessnav/internal/model"
	"gopkg.in/yaml.v3"
)

// PhraseTable maps normalized locale-specific phrases to navigation
// actions. The table is built once and read-only at runtime. Substring
// matching iterates keys longest-first (ties broken lexicographically) so
// results are deterministic and the most specific phrase always wins.
type PhraseTable struct {
	phrases map[string]Action
	ordered []string // keys sorted longest-first for substring passes
}

// spanishPhrases is the built-in es-ES table. Keys are stored already
// normalized (lowercase, no diacritics).
var spanishPhrases = map[string]Action{
	"siguiente":          Next,
	"siguiente elemento": Next,
	"avanzar":            Next,
	"anterior":           Previous,
	"elemento anterior":  Previous,
	"retroceder":         Previous,
	"primero":            First,
	"primer elemento":    First,
	"ultimo":             Last,
	"ultimo elemento":    Last,
	"activar":            Activate,
	"seleccionar":        Activate,
	"pulsar":             Activate,
	"hacer clic":         Activate,
	"repetir":            Repeat,
	"donde estoy":        Repeat,
	"ayuda":              Help,
	"comandos":           Help,
	"cancelar":           Cancel,
	"salir":              Cancel,
	"detener":            Cancel,
	"ir al menu":         GoTo(model.CategoryMenu),
	"menu":               GoTo(model.CategoryMenu),
	"ir al inicio":       GoTo(model.CategoryHome),
	"pagina principal":   GoTo(model.CategoryHome),
	"ir al formulario":   GoTo(model.CategoryForm),
	"formulario":         GoTo(model.CategoryForm),
	"ir al boton":        GoTo(model.CategoryButton),
	"boton":              GoTo(model.CategoryButton),
	"ir al enlace":       GoTo(model.CategoryLink),
	"enlace":             GoTo(model.CategoryLink),
	"ir al campo":        GoTo(model.CategoryField),
	"campo":              GoTo(model.CategoryField),
	"leer texto":         GoTo(model.CategoryText),
	"texto":              GoTo(model.CategoryText),
}

// englishPhrases is the built-in en table.
var englishPhrases = map[string]Action{
	"next":             Next,
	"next element":     Next,
	"previous":         Previous,
	"previous element": Previous,
	"go back":          Previous,
	"first":            First,
	"first element":    First,
	"last":             Last,
	"last element":     Last,
	"activate":         Activate,
	"select":           Activate,
	"press":            Activate,
	"click":            Activate,
	"repeat":           Repeat,
	"where am i":       Repeat,
	"help":             Help,
	"commands":         Help,
	"cancel":           Cancel,
	"stop":             Cancel,
	"exit":             Cancel,
	"go to menu":       GoTo(model.CategoryMenu),
	"menu":             GoTo(model.CategoryMenu),
	"go home":          GoTo(model.CategoryHome),
	"home page":        GoTo(model.CategoryHome),
	"go to form":       GoTo(model.CategoryForm),
	"form":             GoTo(model.CategoryForm),
	"go to button":     GoTo(model.CategoryButton),
	"button":           GoTo(model.CategoryButton),
	"go to link":       GoTo(model.CategoryLink),
	"link":             GoTo(model.CategoryLink),
	"go to field":      GoTo(model.CategoryField),
	"field":            GoTo(model.CategoryField),
	"read text":        GoTo(model.CategoryText),
	"text":             GoTo(model.CategoryText),
}

// NewPhraseTable returns the built-in table for a locale. Locale "en" (or
// any "en-*") selects the English table; everything else gets Spanish,
// the system's primary locale.
func NewPhraseTable(locale string) *PhraseTable {
	src := spanishPhrases
	if len(locale) >= 2 && locale[:2] == "en" {
		src = englishPhrases
	}
	return buildTable(src)
}

func buildTable(src map[string]Action) *PhraseTable {
	t := &PhraseTable{phrases: make(map[string]Action, len(src))}
	for phrase, action := range src {
		key := Normalize(phrase)
		t.phrases[key] = action
		t.ordered = append(t.ordered, key)
	}
	sort.Slice(t.ordered, func(i, j int) bool {
		if len(t.ordered[i]) != len(t.ordered[j]) {
			return len(t.ordered[i]) > len(t.ordered[j])
		}
		return t.ordered[i] < t.ordered[j]
	})
	return t
}

// phraseFile is the YAML shape for user-supplied phrase tables: a flat
// mapping from phrase to canonical action name, with "goto:<category>"
// for jumps.
//
//	siguiente ficha: next
//	ir a la tabla: "goto:form"
type phraseFile map[string]string

// LoadPhrases reads a YAML phrase table and merges it over the built-in
// table for the locale. User phrases win on conflict.
func LoadPhrases(r io.Reader, locale string) (*PhraseTable, error) {
	var file phraseFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse phrase table: %w", err)
	}

	merged := make(map[string]Action)
	base := spanishPhrases
	if len(locale) >= 2 && locale[:2] == "en" {
		base = englishPhrases
	}
	for phrase, action := range base {
		merged[phrase] = action
	}
	for phrase, name := range file {
		action, err := parseActionSpec(name)
		if err != nil {
			return nil, fmt.Errorf("phrase %q: %w", phrase, err)
		}
		merged[Normalize(phrase)] = action
	}
	return buildTable(merged), nil
}

// parseActionSpec parses "next", "activate", or "goto:form" into an Action.
func parseActionSpec(s string) (Action, error) {
	if len(s) > 5 && s[:5] == "goto:" {
		cat, err := model.ParseCategory(s[5:])
		if err != nil {
			return Action{}, err
		}
		return GoTo(cat), nil
	}
	kind, err := ParseKind(s)
	if err != nil {
		return Action{}, err
	}
	if kind == KindGoTo {
		return Action{}, fmt.Errorf("goto requires a category, e.g. %q", "goto:form")
	}
	return Action{Kind: kind}, nil
}

// Lookup returns the action for an exact normalized phrase.
func (t *PhraseTable) Lookup(normalized string) (Action, bool) {
	a, ok := t.phrases[normalized]
	return a, ok
}

// Phrases returns the table's phrase keys grouped by the action they map
// to, for help listings. Groups and phrases are in deterministic order.
func (t *PhraseTable) Phrases() map[string][]string {
	groups := make(map[string][]string)
	for _, key := range t.ordered {
		name := t.phrases[key].String()
		groups[name] = append(groups[name], key)
	}
	for _, phrases := range groups {
		sort.Strings(phrases)
	}
	return groups
}
