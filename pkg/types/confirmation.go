package types

// ConfirmationRequest asks the user whether an existing mark may be
// overwritten.
type ConfirmationRequest struct {
	// Key is the mark being changed
	Key string

	// Project is the canonical root owning the mark
	Project string

	// Current is the absolute path the mark points to now
	Current string

	// Proposed is the absolute path it would point to after the change
	Proposed string

	// Title is a short, user-facing summary
	Title string

	// Default is the answer used when the user just presses enter
	Default bool
}
