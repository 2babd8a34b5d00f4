package icons

// ID is a symbolic icon token.
type ID string

// Icon tokens referenced by landing content and chrome.
const (
	Zap      ID = "zap"
	Shield   ID = "shield"
	Globe    ID = "globe"
	Rocket   ID = "rocket"
	Terminal ID = "terminal"
	Send     ID = "send"
	GitHub   ID = "github"
	Check    ID = "check"
)

// Definition describes a catalog icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Zap, Name: "Zap", Description: "Speed and routing performance."},
	{ID: Shield, Name: "Shield", Description: "Security features."},
	{ID: Globe, Name: "Globe", Description: "Global edge distribution."},
	{ID: Rocket, Name: "Rocket", Description: "Brand mark."},
	{ID: Terminal, Name: "Terminal", Description: "Documentation and CLI entry points."},
	{ID: Send, Name: "Send", Description: "Deploy actions."},
	{ID: GitHub, Name: "GitHub", Description: "Source repository links."},
	{ID: Check, Name: "Check", Description: "Verified status badges."},
}

// Catalog returns all icon definitions in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// Known reports whether id is in the catalog.
func Known(id ID) bool {
	_, ok := Lookup(id)
	return ok
}
