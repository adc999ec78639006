// ABOUTME: Caller display preferences carried through to renderers
// ABOUTME: Values come from cookies and are not interpreted by the search core

package domain

// Preferences holds the caller's display settings
type Preferences struct {
	Theme     string
	FrontPage string
	Layout    string
	Wide      string
	ShowNSFW  string
}

// NSFWEnabled reports whether the caller opted in to adult content
func (p Preferences) NSFWEnabled() bool {
	return p.ShowNSFW == "on"
}
