package actions

import "sort"

// Node is one entry in the dispatch table.
type Node struct {
	ID     string
	Label  string
	Action Action
}

// Registry maps trigger identifiers to exactly one action each.
type Registry struct {
	nodes map[string]*Node
}

// BuildRegistry constructs the dispatch table from the handler and label maps.
func BuildRegistry() *Registry {
	nodes := make(map[string]*Node)
	labels := Labels()
	for id, action := range Handlers() {
		nodes[id] = &Node{ID: id, Label: labels[id], Action: action}
	}
	return &Registry{nodes: nodes}
}

// Find locates a node by trigger ID.
func (r *Registry) Find(id string) (*Node, bool) {
	if r == nil {
		return nil, false
	}
	node, ok := r.nodes[id]
	return node, ok
}

// Triggers returns the registered trigger IDs in sorted order.
func (r *Registry) Triggers() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Handlers returns the action for every bindable trigger.
func Handlers() map[string]Action {
	return map[string]Action{
		TriggerRefreshShaders: RefreshShaders,
		TriggerImportShader:   ImportShader,
		TriggerApplyShader:    ApplyShader,
		TriggerLoadSettings:   LoadSettings,
		TriggerSaveSettings:   SaveSettings,
		TriggerBrowsePath:     BrowsePath,
		TriggerLaunch:         Launch,
		TriggerLoaderStatus:   CheckLoaderStatus,
		TriggerInstallLoader:  InstallLoader,
	}
}

// Labels returns the human readable name for every bindable trigger.
func Labels() map[string]string {
	return map[string]string{
		TriggerRefreshShaders: "Refresh",
		TriggerImportShader:   "Import shader",
		TriggerApplyShader:    "Apply shader",
		TriggerLoadSettings:   "Reload settings",
		TriggerSaveSettings:   "Save settings",
		TriggerBrowsePath:     "Browse",
		TriggerLaunch:         "Launch Minecraft",
		TriggerLoaderStatus:   "Check loader status",
		TriggerInstallLoader:  "Install MaterialBinLoader",
	}
}
