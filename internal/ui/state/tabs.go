package state

import "fmt"

// Tab names.
const (
	TabHome     = "home"
	TabShaders  = "shaders"
	TabSettings = "settings"
)

// TabNames lists the tabs in display order.
var TabNames = []string{TabHome, TabShaders, TabSettings}

// UnknownTabError is returned when selecting a tab that does not exist.
type UnknownTabError struct {
	Name string
}

func (e *UnknownTabError) Error() string {
	return fmt.Sprintf("unknown tab %q", e.Name)
}

// Tabs tracks which single tab is active.
type Tabs struct {
	active string
}

// NewTabs starts on the home tab.
func NewTabs() Tabs {
	return Tabs{active: TabHome}
}

// Active returns the active tab name.
func (t Tabs) Active() string {
	if t.active == "" {
		return TabHome
	}
	return t.active
}

// IsActive reports whether name is the active tab.
func (t Tabs) IsActive(name string) bool {
	return t.Active() == name
}

// Select activates name. Reselecting the active tab reports no change and
// unknown names leave the state untouched.
func (t *Tabs) Select(name string) (bool, error) {
	if !ValidTab(name) {
		return false, &UnknownTabError{Name: name}
	}
	if t.Active() == name {
		return false, nil
	}
	t.active = name
	return true, nil
}

// Cycle moves delta tabs along TabNames, wrapping at both ends.
func (t *Tabs) Cycle(delta int) string {
	idx := 0
	for i, name := range TabNames {
		if name == t.Active() {
			idx = i
			break
		}
	}
	n := len(TabNames)
	idx = ((idx+delta)%n + n) % n
	t.active = TabNames[idx]
	return t.active
}

// ValidTab reports whether name is a known tab.
func ValidTab(name string) bool {
	for _, candidate := range TabNames {
		if candidate == name {
			return true
		}
	}
	return false
}
