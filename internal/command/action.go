// Package command turns free-form input (voice transcripts, key names,
// typed text) into canonical navigation actions. Transcripts are noisy,
// so matching is deliberately biased toward recall: an exact table lookup
// is followed by substring matching in both directions and a last layer of
// hard-coded synonyms.
package command

import (
	"fmt"

	"github.com/lcereceda/accessnav/internal/model"
)

// Kind identifies a navigation action.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindNext
	KindPrevious
	KindFirst
	KindLast
	KindActivate
	KindRepeat
	KindHelp
	KindCancel
	KindGoTo
)

// String returns the canonical name of the action kind.
func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindPrevious:
		return "previous"
	case KindFirst:
		return "first"
	case KindLast:
		return "last"
	case KindActivate:
		return "activate"
	case KindRepeat:
		return "repeat"
	case KindHelp:
		return "help"
	case KindCancel:
		return "cancel"
	case KindGoTo:
		return "goto"
	case KindUnrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a canonical action name ("next", "goto") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "next":
		return KindNext, nil
	case "previous":
		return KindPrevious, nil
	case "first":
		return KindFirst, nil
	case "last":
		return KindLast, nil
	case "activate":
		return KindActivate, nil
	case "repeat":
		return KindRepeat, nil
	case "help":
		return KindHelp, nil
	case "cancel":
		return KindCancel, nil
	case "goto":
		return KindGoTo, nil
	default:
		return KindUnrecognized, fmt.Errorf("unknown action kind: %q", s)
	}
}

// Action is the result of interpreting one input event.
type Action struct {
	Kind     Kind
	Category model.Category // set when Kind == KindGoTo
	Input    string         // original input text when Kind == KindUnrecognized
}

// Next, Previous and friends are the fixed singleton actions.
var (
	Next      = Action{Kind: KindNext}
	Previous  = Action{Kind: KindPrevious}
	First     = Action{Kind: KindFirst}
	Last      = Action{Kind: KindLast}
	Activate  = Action{Kind: KindActivate}
	Repeat    = Action{Kind: KindRepeat}
	Help      = Action{Kind: KindHelp}
	Cancel    = Action{Kind: KindCancel}
)

// GoTo returns a jump action for the given category.
func GoTo(cat model.Category) Action {
	return Action{Kind: KindGoTo, Category: cat}
}

// Unrecognized returns the failure action carrying the original input so
// feedback can echo it back verbatim.
func Unrecognized(input string) Action {
	return Action{Kind: KindUnrecognized, Input: input}
}

// String returns a readable form, e.g. "goto(form)".
func (a Action) String() string {
	switch a.Kind {
	case KindGoTo:
		return fmt.Sprintf("goto(%s)", a.Category)
	case KindUnrecognized:
		return fmt.Sprintf("unrecognized(%q)", a.Input)
	default:
		return a.Kind.String()
	}
}
