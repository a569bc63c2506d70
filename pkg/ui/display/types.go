// Package display holds the format independent results rendered by the
// ui renderers.
package display

import "strings"

// Mark is one line of a listing.
type Mark struct {
	Key string `json:"key"`
	// Path is the display form: relative to the project when possible,
	// with a trailing "/" for directories.
	Path     string `json:"path"`
	Absolute string `json:"absolute"`
	IsDir    bool   `json:"isDir,omitempty"`
}

// Listing is the marks of a single project.
type Listing struct {
	Project string `json:"project"`
	Marks   []Mark `json:"marks"`
}

// Overview lists every project in the store.
type Overview struct {
	Projects []Listing `json:"projects"`
}

// KeySet is the global set of keys in use.
type KeySet struct {
	Keys []string `json:"keys"`
}

// ActionResult reports the outcome of a command that changes marks.
// Message may carry style markup.
type ActionResult struct {
	Command string `json:"command"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Project string `json:"project,omitempty"`
	Key     string `json:"key,omitempty"`
}

// KeyWidth returns the width of the longest key, for column alignment.
func (l Listing) KeyWidth() int {
	w := 0
	for _, m := range l.Marks {
		if len(m.Key) > w {
			w = len(m.Key)
		}
	}
	return w
}

// IsEmpty reports whether the listing has no marks.
func (l Listing) IsEmpty() bool {
	return len(l.Marks) == 0
}

// Joined returns the keys separated by sep.
func (k KeySet) Joined(sep string) string {
	return strings.Join(k.Keys, sep)
}
