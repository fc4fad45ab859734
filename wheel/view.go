package wheel

import (
	"fmt"

	"github.com/gobwas/glob"
)

// ViewOptions selects which entries of an EntrySet take part in a view.
// The wheel keeps two views: the selection view offered to the sector map
// and the display view handed to the renderer.
type ViewOptions struct {
	// Limit keeps only the first Limit entries; 0 keeps all
	Limit int
	// MergeDuplicates folds entries with the same name into one sector
	// carrying the summed weight
	MergeDuplicates bool
	// Exclude holds glob patterns; matching names are left out
	Exclude []string
}

// View is a derived entry list. Sources[i] lists the EntrySet indices folded
// into Entries[i], first occurrence first.
type View struct {
	Entries []Entry
	Sources [][]int
}

// Len returns the number of view entries
func (v View) Len() int { return len(v.Entries) }

// Source returns the EntrySet index a view index maps back to
func (v View) Source(i int) int {
	if i < 0 || i >= len(v.Sources) || len(v.Sources[i]) == 0 {
		return -1
	}
	return v.Sources[i][0]
}

// Viewer applies compiled ViewOptions. A nil Viewer passes every entry through.
type Viewer struct {
	opts    ViewOptions
	exclude []glob.Glob
}

// NewViewer compiles the exclude patterns
func NewViewer(opts ViewOptions) (*Viewer, error) {
	if opts.Limit < 0 {
		return nil, fmt.Errorf("%w: view limit must not be negative", ErrInvalidInput)
	}
	v := &Viewer{opts: opts}
	for _, p := range opts.Exclude {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: exclude pattern %q: %v", ErrInvalidInput, p, err)
		}
		v.exclude = append(v.exclude, g)
	}
	return v, nil
}

// Options returns the options the viewer was built from
func (v *Viewer) Options() ViewOptions {
	if v == nil {
		return ViewOptions{}
	}
	return v.opts
}

func (v *Viewer) excluded(name string) bool {
	for _, g := range v.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Apply derives the view: exclusion first, then duplicate folding, then the limit
func (v *Viewer) Apply(s *EntrySet) View {
	var view View
	if s == nil {
		return view
	}
	byName := make(map[string]int)
	for i, e := range s.entries {
		if v != nil && v.excluded(e.Name) {
			continue
		}
		if v != nil && v.opts.MergeDuplicates {
			if at, ok := byName[e.Name]; ok {
				view.Entries[at].Weight += e.Weight
				view.Sources[at] = append(view.Sources[at], i)
				continue
			}
			byName[e.Name] = len(view.Entries)
		}
		view.Entries = append(view.Entries, e)
		view.Sources = append(view.Sources, []int{i})
	}
	if v != nil && v.opts.Limit > 0 && len(view.Entries) > v.opts.Limit {
		view.Entries = view.Entries[:v.opts.Limit]
		view.Sources = view.Sources[:v.opts.Limit]
	}
	return view
}
