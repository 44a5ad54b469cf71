package form

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Answer is a Confirmer with a fixed reply. The terminal UI collects the
// reply asynchronously and passes it in as an Answer.
type Answer bool

func (a Answer) Confirm(string) bool { return bool(a) }
