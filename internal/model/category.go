package model

import (
	"fmt"
	"strings"
)

// Category is a coarse grouping of roles used by "go to" jumps
// ("ir al formulario", "go to menu"). Like Role, it is a closed set.
type Category string

const (
	CategoryMenu   Category = "menu"
	CategoryHome   Category = "home"
	CategoryForm   Category = "form"
	CategoryButton Category = "button"
	CategoryLink   Category = "link"
	CategoryField  Category = "field"
	CategoryText   Category = "text"
)

// categoryRoles maps each category to the roles it matches. Home is
// special-cased in MatchesCategory: it matches the first link or menu item,
// which by convention is the page's home/landmark entry.
var categoryRoles = map[Category][]Role{
	CategoryMenu:   {RoleMenuItem, RoleTab},
	CategoryHome:   {RoleLink, RoleMenuItem},
	CategoryForm:   {RoleInput, RoleTextArea, RoleSelect, RoleCheckbox, RoleRadio},
	CategoryButton: {RoleButton},
	CategoryLink:   {RoleLink},
	CategoryField:  {RoleInput, RoleTextArea, RoleSelect},
	CategoryText:   {RoleText, RoleHeading},
}

// MatchesCategory reports whether the role falls under the given category.
func (r Role) MatchesCategory(cat Category) bool {
	for _, role := range categoryRoles[cat] {
		if r == role {
			return true
		}
	}
	return false
}

// ParseCategory converts a string flag value to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryMenu:
		return CategoryMenu, nil
	case CategoryHome:
		return CategoryHome, nil
	case CategoryForm:
		return CategoryForm, nil
	case CategoryButton:
		return CategoryButton, nil
	case CategoryLink:
		return CategoryLink, nil
	case CategoryField:
		return CategoryField, nil
	case CategoryText:
		return CategoryText, nil
	default:
		return "", fmt.Errorf("unknown category: %q (expected menu, home, form, button, link, field, or text)", s)
	}
}
