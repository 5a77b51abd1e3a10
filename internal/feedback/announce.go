// Package feedback produces the user-facing output for navigation events:
// screen-reader announcement text, spoken descriptions, and stereo-panned
// tone cues. It also arbitrates the single shared audio/speech output
// between the two cue channels.
package feedback

import (
	"fmt"
	"strings"

	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/model"
)

// roleLabelsES is the Spanish spoken-role vocabulary. The lookup is
// exhaustive over the model.Role constants so an unlisted role is a
// compile-review smell, not a silent "Elemento".
var roleLabelsES = map[model.Role]string{
	model.RoleButton:   "Botón",
	model.RoleLink:     "Enlace",
	model.RoleInput:    "Campo de texto",
	model.RoleTextArea: "Área de texto",
	model.RoleSelect:   "Lista desplegable",
	model.RoleCheckbox: "Casilla de verificación",
	model.RoleRadio:    "Botón de opción",
	model.RoleMenuItem: "Elemento de menú",
	model.RoleTab:      "Pestaña",
	model.RoleOption:   "Opción",
	model.RoleText:     "Texto",
	model.RoleHeading:  "Encabezado",
	model.RoleImage:    "Imagen",
	model.RoleGroup:    "Grupo",
	model.RoleOther:    "Elemento",
}

var roleLabelsEN = map[model.Role]string{
	model.RoleButton:   "Button",
	model.RoleLink:     "Link",
	model.RoleInput:    "Text field",
	model.RoleTextArea: "Text area",
	model.RoleSelect:   "Dropdown",
	model.RoleCheckbox: "Checkbox",
	model.RoleRadio:    "Radio button",
	model.RoleMenuItem: "Menu item",
	model.RoleTab:      "Tab",
	model.RoleOption:   "Option",
	model.RoleText:     "Text",
	model.RoleHeading:  "Heading",
	model.RoleImage:    "Image",
	model.RoleGroup:    "Group",
	model.RoleOther:    "Element",
}

// RoleLabel returns the spoken label for a role in the given locale.
func RoleLabel(role model.Role, locale string) string {
	labels := roleLabelsES
	if isEnglish(locale) {
		labels = roleLabelsEN
	}
	if label, ok := labels[role]; ok {
		return label
	}
	return labels[model.RoleOther]
}

func isEnglish(locale string) bool {
	return strings.HasPrefix(strings.ToLower(locale), "en")
}

// Announce renders the announcement text for an element at 0-based
// position pos of total:
//
//	"Botón: Guardar. Posición 3 de 7."
//	"Campo de texto: Correo. Dirección de contacto. Posición 1 de 4."
//
// The description sentence is omitted when the element has none.
func Announce(e index.Entry, pos, total int, locale string) string {
	var b strings.Builder
	b.WriteString(RoleLabel(e.Role, locale))
	b.WriteString(": ")
	b.WriteString(labelOrFallback(e.Label, locale))
	b.WriteString(". ")
	if e.Description != "" {
		b.WriteString(e.Description)
		b.WriteString(". ")
	}
	if isEnglish(locale) {
		fmt.Fprintf(&b, "Position %d of %d.", pos+1, total)
	} else {
		fmt.Fprintf(&b, "Posición %d de %d.", pos+1, total)
	}
	return b.String()
}

func labelOrFallback(label, locale string) string {
	if label != "" {
		return label
	}
	if isEnglish(locale) {
		return "unlabeled"
	}
	return "sin etiqueta"
}
