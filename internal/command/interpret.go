package command

import "strings"

// Interpreter matches normalized input against a phrase table with layered
// fallbacks. Matching precedence:
//
//  1. exact match
//  2. substring match, longest phrase first: input contains phrase, or
//     phrase contains input
//  3. hard-coded high-frequency synonyms
//  4. Unrecognized, echoing the original text
type Interpreter struct {
	table *PhraseTable
}

// NewInterpreter creates an interpreter over the given phrase table.
func NewInterpreter(table *PhraseTable) *Interpreter {
	return &Interpreter{table: table}
}

// minReverseLen guards the phrase-contains-input direction: very short
// fragments ("a", "el") would otherwise match half the table.
const minReverseLen = 3

// Interpret converts raw input into a navigation action.
func (in *Interpreter) Interpret(raw string) Action {
	normalized := Normalize(raw)
	if normalized == "" {
		return Unrecognized(raw)
	}

	if action, ok := in.table.Lookup(normalized); ok {
		return action
	}

	for _, phrase := range in.table.ordered {
		if strings.Contains(normalized, phrase) {
			return in.table.phrases[phrase]
		}
		if len(normalized) >= minReverseLen && strings.Contains(phrase, normalized) {
			return in.table.phrases[phrase]
		}
	}

	if action, ok := synonymFallback(normalized); ok {
		return action
	}

	return Unrecognized(raw)
}

// synonymFallback catches high-frequency phrasings that slip past the
// table, e.g. transcripts where the recognizer picked a synonym the table
// does not carry. Checked after the generic table so the table always has
// first say.
func synonymFallback(normalized string) (Action, bool) {
	switch {
	case strings.Contains(normalized, "siguiente"), strings.Contains(normalized, "adelante"),
		strings.Contains(normalized, "forward"):
		return Next, true
	case strings.Contains(normalized, "atras"), strings.Contains(normalized, "back"):
		return Previous, true
	case strings.Contains(normalized, "empezar"), strings.Contains(normalized, "comienzo"):
		return First, true
	case strings.Contains(normalized, "final"):
		return Last, true
	case strings.Contains(normalized, "entrar"), strings.Contains(normalized, "abrir"):
		return Activate, true
	case strings.Contains(normalized, "otra vez"), strings.Contains(normalized, "again"):
		return Repeat, true
	case strings.Contains(normalized, "terminar"), strings.Contains(normalized, "quit"):
		return Cancel, true
	default:
		return Action{}, false
	}
}
