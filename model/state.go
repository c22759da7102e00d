package model

// State is the page lifecycle. The form is shown until a submission
// resolves, and the success panel is terminal for the page's lifetime:
// there is no edit-and-resubmit transition. A single two-valued type keeps
// combinations like "submitted but still showing the form" unrepresentable.
type State int

const (
	StateForm State = iota
	StateSubmitted
)

func (s State) String() string {
	if s == StateSubmitted {
		return "submitted"
	}
	return "form"
}
