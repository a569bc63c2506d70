package keybind

import (
	stderrors "errors"
	"sort"

	"github.com/arthur-debert/projmarks/pkg/logging"
)

// Binder registers jump triggers with a host.
type Binder interface {
	// Bind installs a trigger named lhs that jumps to the mark key.
	Bind(lhs, key string) error

	// Unbind removes the trigger named lhs.
	Unbind(lhs string) error
}

// Registry tracks which keys currently have a binding.
type Registry struct {
	prefix string
	binder Binder
	active map[string]string // key -> lhs
}

// NewRegistry creates a registry that binds "<prefix><key>" through binder.
func NewRegistry(prefix string, binder Binder) *Registry {
	return &Registry{
		prefix: prefix,
		binder: binder,
		active: make(map[string]string),
	}
}

// Enabled reports whether bindings are created at all.
func (r *Registry) Enabled() bool {
	return r != nil && r.prefix != "" && r.binder != nil
}

// Prefix returns the jump prefix.
func (r *Registry) Prefix() string {
	return r.prefix
}

// LHS returns the trigger name for key.
func (r *Registry) LHS(key string) string {
	return r.prefix + key
}

// Ensure makes sure key has a binding.
func (r *Registry) Ensure(key string) error {
	if !r.Enabled() {
		return nil
	}
	if _, ok := r.active[key]; ok {
		return nil
	}

	lhs := r.LHS(key)
	if err := r.binder.Bind(lhs, key); err != nil {
		return err
	}
	r.active[key] = lhs
	logger := logging.GetLogger("keybind")
	logger.Trace().Str("key", key).Str("lhs", lhs).Msg("binding created")
	return nil
}

// Clear removes the binding for key, if any.
func (r *Registry) Clear(key string) error {
	if !r.Enabled() {
		return nil
	}
	lhs, ok := r.active[key]
	if !ok {
		return nil
	}

	if err := r.binder.Unbind(lhs); err != nil {
		return err
	}
	delete(r.active, key)
	logger := logging.GetLogger("keybind")
	logger.Trace().Str("key", key).Str("lhs", lhs).Msg("binding removed")
	return nil
}

// Rebuild makes the active bindings match keys exactly. It keeps going
// after individual failures and returns them joined.
func (r *Registry) Rebuild(keys []string) error {
	if !r.Enabled() {
		return nil
	}

	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	var errs []error
	for _, k := range r.Keys() {
		if _, ok := wanted[k]; !ok {
			if err := r.Clear(k); err != nil {
				errs = append(errs, err)
			}
		}
	}

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	for _, k := range sorted {
		if err := r.Ensure(k); err != nil {
			errs = append(errs, err)
		}
	}

	return stderrors.Join(errs...)
}

// Keys returns the keys that currently have a binding, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.active))
	for k := range r.active {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bindings returns a copy of the active bindings, keyed by mark key.
func (r *Registry) Bindings() map[string]string {
	out := make(map[string]string, len(r.active))
	for k, lhs := range r.active {
		out[k] = lhs
	}
	return out
}
