package feedback

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lcereceda/accessnav/internal/model"
	"github.com/lcereceda/accessnav/internal/speech"
)

// Messages is the locale-specific phrasing for every non-element
// announcement the engine can make. Failures are always spoken to the
// user, never propagated upward.
type Messages struct {
	locale string
}

// MessagesFor returns the message set for a locale.
func MessagesFor(locale string) Messages {
	return Messages{locale: locale}
}

func (m Messages) english() bool { return isEnglish(m.locale) }

// NothingToNavigate is spoken for any action on an empty index.
func (m Messages) NothingToNavigate() string {
	if m.english() {
		return "Nothing to navigate."
	}
	return "No hay nada que navegar."
}

// NotFound is spoken when a category jump finds no matching element.
func (m Messages) NotFound(cat model.Category) string {
	label := categoryLabel(cat, m.locale)
	if m.english() {
		return fmt.Sprintf("No %s found.", label)
	}
	return fmt.Sprintf("No se encontró %s.", label)
}

// Unrecognized echoes an unmatched command back with a help hint.
func (m Messages) Unrecognized(input string) string {
	if m.english() {
		return fmt.Sprintf("Command not recognized: %s. Say 'help' to list commands.", input)
	}
	return fmt.Sprintf("Comando no reconocido: %s. Diga 'ayuda' para escuchar los comandos.", input)
}

// PermissionDenied is spoken once when microphone access is refused.
func (m Messages) PermissionDenied() string {
	if m.english() {
		return "Microphone permission denied. Voice control is off until you enable it again."
	}
	return "Permiso de micrófono denegado. El control por voz queda desactivado hasta que lo active de nuevo."
}

// RecognitionError maps each failure kind to a distinct message.
func (m Messages) RecognitionError(kind speech.ErrorKind) string {
	if m.english() {
		switch kind {
		case speech.ErrNoSpeech:
			return "I didn't hear anything. Still listening."
		case speech.ErrAudioCapture:
			return "Microphone is not available."
		case speech.ErrNetwork:
			return "Speech recognition lost its connection."
		case speech.ErrPermissionDenied:
			return m.PermissionDenied()
		default:
			return "Speech recognition failed."
		}
	}
	switch kind {
	case speech.ErrNoSpeech:
		return "No escuché nada. Sigo escuchando."
	case speech.ErrAudioCapture:
		return "El micrófono no está disponible."
	case speech.ErrNetwork:
		return "Se perdió la conexión del reconocimiento de voz."
	case speech.ErrPermissionDenied:
		return m.PermissionDenied()
	default:
		return "Falló el reconocimiento de voz."
	}
}

// PlatformUnsupported is spoken once when the platform has no speech
// services and the engine degrades to keyboard-only mode.
func (m Messages) PlatformUnsupported() string {
	if m.english() {
		return "Voice services are not available. Keyboard navigation stays on."
	}
	return "Los servicios de voz no están disponibles. La navegación por teclado sigue activa."
}

// Started is spoken when navigation activates.
func (m Messages) Started(total int) string {
	if m.english() {
		return fmt.Sprintf("Navigation started. %d elements.", total)
	}
	return fmt.Sprintf("Navegación iniciada. %d elementos.", total)
}

// Stopped is spoken when navigation ends.
func (m Messages) Stopped() string {
	if m.english() {
		return "Navigation stopped."
	}
	return "Navegación detenida."
}

// Activated confirms an element activation.
func (m Messages) Activated(label string) string {
	if label == "" {
		if m.english() {
			return "Activated."
		}
		return "Activado."
	}
	if m.english() {
		return fmt.Sprintf("Activated: %s.", label)
	}
	return fmt.Sprintf("Activado: %s.", label)
}

// ActivationFailed reports that an element's action could not run.
func (m Messages) ActivationFailed(label string) string {
	if m.english() {
		if label == "" {
			return "Could not activate the element."
		}
		return fmt.Sprintf("Could not activate %s.", label)
	}
	if label == "" {
		return "No se pudo activar el elemento."
	}
	return fmt.Sprintf("No se pudo activar %s.", label)
}

// Help renders the command list grouped by action, one group per line.
// Groups are sorted by action name so the listing is stable.
func (m Messages) Help(phrasesByAction map[string][]string) string {
	var b strings.Builder
	if m.english() {
		b.WriteString("Available commands.\n")
	} else {
		b.WriteString("Comandos disponibles.\n")
	}
	actions := make([]string, 0, len(phrasesByAction))
	for name := range phrasesByAction {
		actions = append(actions, name)
	}
	sort.Strings(actions)
	for _, name := range actions {
		fmt.Fprintf(&b, "%s: %s\n", name, strings.Join(phrasesByAction[name], ", "))
	}
	return b.String()
}

// categoryLabel names a category in announcements.
func categoryLabel(cat model.Category, locale string) string {
	if isEnglish(locale) {
		switch cat {
		case model.CategoryMenu:
			return "menu"
		case model.CategoryHome:
			return "home link"
		case model.CategoryForm:
			return "form field"
		case model.CategoryButton:
			return "button"
		case model.CategoryLink:
			return "link"
		case model.CategoryField:
			return "input field"
		case model.CategoryText:
			return "text"
		default:
			return "element"
		}
	}
	switch cat {
	case model.CategoryMenu:
		return "ningún menú"
	case model.CategoryHome:
		return "ningún enlace de inicio"
	case model.CategoryForm:
		return "ningún campo de formulario"
	case model.CategoryButton:
		return "ningún botón"
	case model.CategoryLink:
		return "ningún enlace"
	case model.CategoryField:
		return "ningún campo"
	case model.CategoryText:
		return "ningún texto"
	default:
		return "ningún elemento"
	}
}
