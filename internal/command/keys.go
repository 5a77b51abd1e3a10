package command

// keyMap maps normalized key names to actions. Keyboard events go through
// the same action vocabulary as voice phrases so the cursor never sees two
// kinds of input.
var keyMap = map[string]Action{
	"down":      Next,
	"right":     Next,
	"tab":       Next,
	"up":        Previous,
	"left":      Previous,
	"shift+tab": Previous,
	"home":      First,
	"end":       Last,
	"enter":     Activate,
	"return":    Activate,
	"space":     Activate,
	"r":         Repeat,
	"f1":        Help,
	"h":         Help,
	"escape":    Cancel,
	"esc":       Cancel,
}

// MapKey converts a key name ("down", "shift+tab") to an action. The name
// is normalized the same way phrases are, so "Escape" and "escape" match.
func MapKey(name string) (Action, bool) {
	a, ok := keyMap[Normalize(name)]
	return a, ok
}
