package marks

import (
	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/types"
)

func (s *Store) resolveTarget(path string) (string, error) {
	return s.resolver.Normalize(s.resolver.ExpandHome(path))
}

// ProposeAdd starts adding key -> path in the project path belongs to.
// When key already points somewhere else the change is held back and the
// result has status ConflictPending; call ResolveConflict to finish it.
// A new proposal replaces any earlier pending one.
func (s *Store) ProposeAdd(key, path string) (AddResult, error) {
	s.Load()
	s.pending = nil

	if err := ValidateKey(key); err != nil {
		return AddResult{}, err
	}
	abs, err := s.resolveTarget(path)
	if err != nil {
		return AddResult{}, err
	}
	root, err := s.ProjectRoot(abs)
	if err != nil {
		return AddResult{}, err
	}

	res := AddResult{
		Project: root,
		Key:     key,
		Target:  abs,
		Stored:  paths.Relativize(abs, root),
	}

	if cur, ok := s.data[root][key]; ok {
		curAbs, err := s.resolver.ResolveProjectPath(cur, root)
		if err != nil {
			curAbs = cur
		}
		res.Current = curAbs
		if curAbs == abs {
			res.Status = AlreadySet
			s.logger.Debug().Str("project", root).Str("key", key).Str("path", abs).Msg("mark unchanged")
			return res, nil
		}
		res.Status = ConflictPending
		pending := res
		s.pending = &pending
		return res, nil
	}

	return s.apply(res)
}

// ResolveConflict applies (approve) or discards the pending overwrite.
func (s *Store) ResolveConflict(approve bool) (AddResult, error) {
	if s.pending == nil {
		return AddResult{}, errors.New(errors.ErrInvalidInput, "no pending mark change")
	}
	res := *s.pending
	s.pending = nil

	if !approve {
		res.Status = Declined
		s.logger.Debug().Str("project", res.Project).Str("key", res.Key).Msg("overwrite declined")
		return res, nil
	}
	return s.apply(res)
}

// Pending returns the held back change, if any.
func (s *Store) Pending() (AddResult, bool) {
	if s.pending == nil {
		return AddResult{}, false
	}
	return *s.pending, true
}

func (s *Store) apply(res AddResult) (AddResult, error) {
	marks := s.GetOrCreateMarks(res.Project)
	marks[res.Key] = res.Stored
	res.Status = Applied

	s.logger.Info().
		Str("project", res.Project).
		Str("key", res.Key).
		Str("path", res.Stored).
		Msg("mark set")

	err := s.persist()
	s.ensureBinding(res.Key)
	return res, err
}

// Add sets key -> path, asking confirm before overwriting a mark that
// points elsewhere. A nil confirm declines every overwrite.
func (s *Store) Add(key, path string, confirm Confirmer) (AddResult, error) {
	res, err := s.ProposeAdd(key, path)
	if err != nil || res.Status != ConflictPending {
		return res, err
	}

	approve := false
	if confirm != nil {
		approve, err = confirm.Confirm(types.ConfirmationRequest{
			Key:      res.Key,
			Project:  res.Project,
			Current:  res.Current,
			Proposed: res.Target,
			Title:    res.Message(),
		})
		if err != nil {
			_, _ = s.ResolveConflict(false)
			return res, err
		}
	}
	return s.ResolveConflict(approve)
}

// AddDirectory is Add restricted to directory targets.
func (s *Store) AddDirectory(key, dir string, confirm Confirmer) (AddResult, error) {
	abs, err := s.resolveTarget(dir)
	if err != nil {
		return AddResult{}, err
	}
	if !s.resolver.IsDir(abs) {
		return AddResult{}, errors.Newf(errors.ErrInvalidPath, "%s is not a directory", abs)
	}
	return s.Add(key, abs, confirm)
}

// Remove deletes key from the project hint belongs to. The project entry
// goes away with its last mark, and the binding goes away once no project
// uses the key.
func (s *Store) Remove(key, hint string) error {
	s.Load()

	root, err := s.ProjectRoot(hint)
	if err != nil {
		return err
	}
	marks, ok := s.data[root]
	if _, found := marks[key]; !ok || !found {
		return errors.Newf(errors.ErrNotFound, "no mark %q in %s", key, root).
			WithDetail("key", key).
			WithDetail("project", root)
	}

	delete(marks, key)
	if len(marks) == 0 {
		delete(s.data, root)
	}
	s.logger.Info().Str("project", root).Str("key", key).Msg("mark removed")

	err = s.persist()
	if !s.data.UsesKey(key, "") {
		if cerr := s.registry.Clear(key); cerr != nil {
			s.logger.Debug().Err(cerr).Str("key", key).Msg("binding not removed")
		}
	}
	return err
}

// Lookup returns the stored path of key in the project hint belongs to.
func (s *Store) Lookup(key, hint string) (string, error) {
	s.Load()

	root, err := s.ProjectRoot(hint)
	if err != nil {
		return "", err
	}
	stored, ok := s.data[root][key]
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "no mark %q in %s", key, root).
			WithDetail("key", key).
			WithDetail("project", root)
	}
	return stored, nil
}

// Open resolves key to an absolute target for a host to display.
func (s *Store) Open(key, hint string) (types.Target, error) {
	stored, err := s.Lookup(key, hint)
	if err != nil {
		return types.Target{}, err
	}
	root, _ := s.ProjectRoot(hint)

	abs, err := s.resolver.ResolveProjectPath(stored, root)
	if err != nil {
		return types.Target{}, errors.Wrapf(err, errors.ErrInvalidPath, "mark %q cannot be resolved", key)
	}
	return types.Target{
		Key:     key,
		Project: root,
		Stored:  stored,
		Path:    abs,
		IsDir:   s.resolver.IsDir(abs),
	}, nil
}

// ReplaceProject swaps the marks of root for marks wholesale. An empty
// mapping removes the project.
func (s *Store) ReplaceProject(root string, marks types.ProjectMarks) error {
	s.Load()

	if len(marks) == 0 {
		delete(s.data, root)
	} else {
		s.data[root] = marks.Clone()
	}
	s.logger.Info().Str("project", root).Int("marks", len(marks)).Msg("project marks replaced")

	err := s.persist()
	s.rebuildBindings()
	return err
}
