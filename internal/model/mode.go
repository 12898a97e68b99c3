package model

// SubmitMode tells the record editor whether the next submission adds a new
// entry or replaces the selected one
type SubmitMode int

const (
	// SubmitAdd is used while no entry is selected
	SubmitAdd SubmitMode = iota

	// SubmitUpdate is used while an entry is selected for editing
	SubmitUpdate
)

// String returns the submit button label for the mode
func (m SubmitMode) String() string {
	switch m {
	case SubmitAdd:
		return "Add"
	case SubmitUpdate:
		return "Update"
	default:
		return "Unknown"
	}
}

// ModeForSelection maps the list selection state to a submit mode
func ModeForSelection(selected bool) SubmitMode {
	if selected {
		return SubmitUpdate
	}
	return SubmitAdd
}
