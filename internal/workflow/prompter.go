package workflow

// Prompter asks the user to confirm a destructive action. Declining
// means no network call happens at all.
type Prompter interface {
	Confirm(question string) bool
}
