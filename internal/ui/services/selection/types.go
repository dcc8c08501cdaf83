package selection

// State holds selection state
type State struct {
	SelectedEngines map[string]bool
}
