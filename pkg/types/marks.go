package types

import "sort"

// ProjectMarks maps a mark key to its stored path. Stored paths are relative
// to the owning project root when the target lives inside it.
type ProjectMarks map[string]string

// MarkStore maps a canonical project root to that project's marks.
type MarkStore map[string]ProjectMarks

// Keys returns the mark keys of a project in ascending order.
func (pm ProjectMarks) Keys() []string {
	keys := make([]string, 0, len(pm))
	for k := range pm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy.
func (pm ProjectMarks) Clone() ProjectMarks {
	out := make(ProjectMarks, len(pm))
	for k, v := range pm {
		out[k] = v
	}
	return out
}

// Projects returns the project roots in ascending order.
func (ms MarkStore) Projects() []string {
	roots := make([]string, 0, len(ms))
	for root := range ms {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}

// Keys returns the union of mark keys across all projects, sorted.
func (ms MarkStore) Keys() []string {
	seen := make(map[string]struct{})
	for _, marks := range ms {
		for k := range marks {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UsesKey reports whether any project other than except has a mark named key.
func (ms MarkStore) UsesKey(key, except string) bool {
	for root, marks := range ms {
		if root == except {
			continue
		}
		if _, ok := marks[key]; ok {
			return true
		}
	}
	return false
}

// Target is a resolved mark, ready for a host to open.
type Target struct {
	Key     string
	Project string
	Stored  string
	Path    string
	IsDir   bool
}
