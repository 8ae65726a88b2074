package types

// Prompter asks the user to confirm or acknowledge a step.
// Implementations block until the user answers.
type Prompter interface {
	// Confirm asks a yes/no question. An empty answer selects defaultYes.
	Confirm(question string, defaultYes bool) (bool, error)

	// WaitForEnter shows message and returns once the user presses Enter
	WaitForEnter(message string) error
}
