package model

// Role is a compact role code for a UI element. It is a closed set: every
// role the engine understands has a constant below, and anything else maps
// to RoleOther. Keeping the set closed means a new role has to be added
// here (and to the feedback vocabulary) before it can silently fall
// through to "element".
type Role string

const (
	RoleButton   Role = "btn"
	RoleLink     Role = "lnk"
	RoleInput    Role = "input"
	RoleTextArea Role = "textarea"
	RoleSelect   Role = "select"
	RoleCheckbox Role = "chk"
	RoleRadio    Role = "radio"
	RoleMenuItem Role = "menuitem"
	RoleTab      Role = "tab"
	RoleOption   Role = "option"
	RoleText     Role = "txt"
	RoleHeading  Role = "heading"
	RoleImage    Role = "img"
	RoleGroup    Role = "group"
	RoleOther    Role = "other"
)

// roleMap maps raw markup roles and tag names to compact role codes.
// Keys cover both ARIA role attributes ("button", "menuitem") and tag
// names ("a", "input") so snapshots from either source normalize the
// same way.
var roleMap = map[string]Role{
	"button":    RoleButton,
	"submit":    RoleButton,
	"a":         RoleLink,
	"link":      RoleLink,
	"input":     RoleInput,
	"textbox":   RoleInput,
	"searchbox": RoleInput,
	"textarea":  RoleTextArea,
	"select":    RoleSelect,
	"combobox":  RoleSelect,
	"listbox":   RoleSelect,
	"checkbox":  RoleCheckbox,
	"radio":     RoleRadio,
	"menuitem":  RoleMenuItem,
	"tab":       RoleTab,
	"option":    RoleOption,
	"text":      RoleText,
	"label":     RoleText,
	"heading":   RoleHeading,
	"img":       RoleImage,
	"image":     RoleImage,
	"group":     RoleGroup,
	"div":       RoleGroup,
	"section":   RoleGroup,
}

// MapRole converts a raw role or tag name to a compact role code.
func MapRole(raw string) Role {
	if r, ok := roleMap[raw]; ok {
		return r
	}
	return RoleOther
}

// allRoles is the closed set of valid compact codes.
var allRoles = map[Role]bool{
	RoleButton: true, RoleLink: true, RoleInput: true, RoleTextArea: true,
	RoleSelect: true, RoleCheckbox: true, RoleRadio: true, RoleMenuItem: true,
	RoleTab: true, RoleOption: true, RoleText: true, RoleHeading: true,
	RoleImage: true, RoleGroup: true, RoleOther: true,
}

// Known reports whether r is one of the compact role codes.
func (r Role) Known() bool {
	return allRoles[r]
}

// NormalizeRoles rewrites raw markup roles in a snapshot tree to compact
// codes. Snapshots may carry either form; after normalization every role
// is a member of the closed set.
func NormalizeRoles(elements []Element) {
	for i := range elements {
		if !elements[i].Role.Known() {
			elements[i].Role = MapRole(string(elements[i].Role))
		}
		NormalizeRoles(elements[i].Children)
	}
}

// interactiveRoles is the allow-list of roles the navigation index includes.
// Static text, images and structural groups are excluded: they can be read
// via GoTo(Text) style jumps but are not part of the traversal ring.
var interactiveRoles = map[Role]bool{
	RoleButton:   true,
	RoleLink:     true,
	RoleInput:    true,
	RoleTextArea: true,
	RoleSelect:   true,
	RoleCheckbox: true,
	RoleRadio:    true,
	RoleMenuItem: true,
	RoleTab:      true,
	RoleOption:   true,
}

// IsInteractive reports whether the role belongs to the navigation allow-list.
func (r Role) IsInteractive() bool {
	return interactiveRoles[r]
}
