package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID          int    `yaml:"i"            json:"i"`
	Role        Role   `yaml:"r"            json:"r"`
	Label       string `yaml:"l,omitempty"  json:"l,omitempty"`
	Description string `yaml:"d,omitempty"  json:"d,omitempty"`
	Focused     bool   `yaml:"f,omitempty"  json:"f,omitempty"`
	Path        string `yaml:"p,omitempty"  json:"p,omitempty"`
}

// FlattenElements converts a tree of elements into a flat list in document
// order. Each element gets a path string showing its location in the tree
// using role codes joined with " > ". Document order is depth-first,
// which matches visual/tab order for snapshot trees.
func FlattenElements(elements []Element) []FlatElement {
	var result []FlatElement
	for _, el := range elements {
		flattenRecursive(el, "", &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	currentPath := string(el.Role)
	if parentPath != "" {
		currentPath = parentPath + " > " + string(el.Role)
	}

	*result = append(*result, FlatElement{
		ID:          el.ID,
		Role:        el.Role,
		Label:       el.AccessibleLabel(),
		Description: el.Description,
		Focused:     el.Focused,
		Path:        currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}
