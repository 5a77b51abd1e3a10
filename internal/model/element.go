package model

// Element represents a node in a UI snapshot tree.
type Element struct {
	ID          int       `yaml:"i"             json:"i"`                      // Sequential integer ID
	Role        Role      `yaml:"r"             json:"r"`                      // Compact role code
	Label       string    `yaml:"l,omitempty"   json:"l,omitempty"`            // Explicit accessible label
	Title       string    `yaml:"t,omitempty"   json:"t,omitempty"`            // Visible text / title
	Placeholder string    `yaml:"ph,omitempty"  json:"ph,omitempty"`           // Placeholder text
	Value       string    `yaml:"v,omitempty"   json:"v,omitempty"`            // Current value
	Description string    `yaml:"d,omitempty"   json:"d,omitempty"`            // Accessibility description
	Focused     bool      `yaml:"f,omitempty"   json:"f,omitempty"`            // Has keyboard focus
	Enabled     *bool     `yaml:"e,omitempty"   json:"e,omitempty"`            // nil or true = enabled; false = disabled
	Children    []Element `yaml:"c,omitempty"   json:"c,omitempty"`            // Child elements
	Actions     []string  `yaml:"a,omitempty"   json:"a,omitempty"`            // Available actions (e.g. "press")
}

// AccessibleLabel returns the best spoken label for an element, in
// precedence order: explicit label, visible title, placeholder, value.
// Returns "" when the element carries no usable text.
func (el Element) AccessibleLabel() string {
	if el.Label != "" {
		return el.Label
	}
	if el.Title != "" {
		return el.Title
	}
	if el.Placeholder != "" {
		return el.Placeholder
	}
	return el.Value
}

// IsEnabled reports whether the element accepts interaction. An absent
// Enabled field means enabled.
func (el Element) IsEnabled() bool {
	return el.Enabled == nil || *el.Enabled
}

// FindByID searches the element tree recursively for an element with the given ID.
func FindByID(elements []Element, id int) *Element {
	for i := range elements {
		if elements[i].ID == id {
			return &elements[i]
		}
		if found := FindByID(elements[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}
