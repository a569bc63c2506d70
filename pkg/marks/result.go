package marks

import (
	"fmt"

	"github.com/arthur-debert/projmarks/pkg/paths"
)

// AddStatus is the outcome of an add.
type AddStatus int

const (
	// Applied means the mark was set.
	Applied AddStatus = iota
	// AlreadySet means the mark already pointed at the target.
	AlreadySet
	// ConflictPending means the mark points elsewhere and the change waits
	// for ResolveConflict.
	ConflictPending
	// Declined means a pending overwrite was rejected.
	Declined
)

func (s AddStatus) String() string {
	switch s {
	case Applied:
		return "applied"
	case AlreadySet:
		return "already-set"
	case ConflictPending:
		return "conflict-pending"
	case Declined:
		return "declined"
	default:
		return "unknown"
	}
}

// AddResult describes what an add did or would do.
type AddResult struct {
	Status  AddStatus
	Project string
	Key     string

	// Current is the absolute path the mark pointed to before the add,
	// empty when the key was unused.
	Current string

	// Target is the absolute path being added.
	Target string

	// Stored is the storage form of Target.
	Stored string
}

// Message returns human-readable status text.
func (r AddResult) Message() string {
	target := paths.Relativize(r.Target, r.Project)
	current := paths.Relativize(r.Current, r.Project)
	switch r.Status {
	case Applied:
		return fmt.Sprintf("mark %q set to %s", r.Key, target)
	case AlreadySet:
		return fmt.Sprintf("mark %q already points to %s", r.Key, target)
	case ConflictPending:
		return fmt.Sprintf("mark %q points to %s, overwrite with %s?", r.Key, current, target)
	case Declined:
		return fmt.Sprintf("mark %q left pointing to %s", r.Key, current)
	default:
		return ""
	}
}
