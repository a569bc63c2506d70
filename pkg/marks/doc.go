// Package marks implements the project scoped mark store.
//
// A Store maps canonical project roots to named marks. Paths are kept in
// storage form, relative to the owning project whenever the target lives
// inside it, and resolved back to absolute paths on lookup.
//
// The store is loaded lazily from its DataStore on first access. Loading
// runs a canonicalization pass that rewrites legacy or non-canonical
// entries and persists the result right away when anything changed.
// Every mutation writes the whole store back. Write failures are returned
// to the caller but the in-memory state is kept, so the session can go on
// and the next mutation retries the write.
//
// Adding a mark that would overwrite a different target is two-phase:
// ProposeAdd reports ConflictPending and ResolveConflict applies or
// discards the pending change. Add wraps both around a Confirmer.
//
// A keybind.Registry, when given, is kept in sync with the global key set.
// The Store is meant to be driven from a single goroutine.
package marks
