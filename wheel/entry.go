package wheel

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/wheel-of-names/constants"
)

// Entry is one wheel participant. Color and Image are opaque to the engine.
type Entry struct {
	Name   string
	Weight float64
	Color  string
	Image  string
}

// EntrySet is the ordered entry collection. Order defines sector order around
// the wheel; names need not be unique. The total weight is recomputed on every
// mutation.
type EntrySet struct {
	entries []Entry
	total   float64
}

// NewEntrySet validates and copies entries. Names are trimmed; a zero,
// negative or non-finite weight is rejected.
func NewEntrySet(entries ...Entry) (*EntrySet, error) {
	s := &EntrySet{entries: make([]Entry, 0, len(entries))}
	for i, e := range entries {
		clean, err := validateEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		s.entries = append(s.entries, clean)
	}
	s.recompute()
	return s, nil
}

// FromNames builds an entry set with default weight and palette colors.
// Blank lines are skipped.
func FromNames(names []string, palette []string) (*EntrySet, error) {
	if len(palette) == 0 {
		palette = constants.DefaultPalette
	}
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		entries = append(entries, Entry{
			Name:   n,
			Weight: constants.DefaultWeight,
			Color:  palette[len(entries)%len(palette)],
		})
	}
	return NewEntrySet(entries...)
}

func validateEntry(e Entry) (Entry, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return e, fmt.Errorf("%w: name is blank", ErrInvalidInput)
	}
	if err := validateWeight(e.Weight); err != nil {
		return e, err
	}
	return e, nil
}

func validateWeight(w float64) error {
	if !isFinite(w) || w <= 0 {
		return fmt.Errorf("%w: weight must be a positive number, got %v", ErrInvalidInput, w)
	}
	return nil
}

func (s *EntrySet) recompute() {
	total := 0.0
	for _, e := range s.entries {
		total += e.Weight
	}
	s.total = total
}

func (s *EntrySet) checkIndex(i int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidInput, i, len(s.entries))
	}
	return nil
}

// Len returns the number of entries
func (s *EntrySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// TotalWeight returns the sum of all weights
func (s *EntrySet) TotalWeight() float64 {
	if s == nil {
		return 0
	}
	return s.total
}

// At returns a copy of entry i
func (s *EntrySet) At(i int) (Entry, error) {
	if err := s.checkIndex(i); err != nil {
		return Entry{}, err
	}
	return s.entries[i], nil
}

// Entries returns a copy of all entries in order
func (s *EntrySet) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Names returns entry names in order
func (s *EntrySet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Name
	}
	return out
}

// Share returns entry i's fraction of the total weight
func (s *EntrySet) Share(i int) float64 {
	if s.checkIndex(i) != nil || s.total <= 0 {
		return 0
	}
	return s.entries[i].Weight / s.total
}

// Add appends an entry
func (s *EntrySet) Add(e Entry) error {
	return s.Insert(len(s.entries), e)
}

// Insert places an entry at index i, shifting later entries
func (s *EntrySet) Insert(i int, e Entry) error {
	if i < 0 || i > len(s.entries) {
		return fmt.Errorf("%w: insert index %d out of range [0, %d]", ErrInvalidInput, i, len(s.entries))
	}
	clean, err := validateEntry(e)
	if err != nil {
		return err
	}
	s.entries = append(s.entries, Entry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = clean
	s.recompute()
	return nil
}

// Remove deletes entry i and returns it
func (s *EntrySet) Remove(i int) (Entry, error) {
	if err := s.checkIndex(i); err != nil {
		return Entry{}, err
	}
	removed := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.recompute()
	return removed, nil
}

// Rename changes the name of entry i
func (s *EntrySet) Rename(i int, name string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is blank", ErrInvalidInput)
	}
	s.entries[i].Name = name
	return nil
}

// SetWeight changes the weight of entry i
func (s *EntrySet) SetWeight(i int, w float64) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if err := validateWeight(w); err != nil {
		return err
	}
	s.entries[i].Weight = w
	s.recompute()
	return nil
}

// SetColor changes the display color of entry i
func (s *EntrySet) SetColor(i int, color string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.entries[i].Color = color
	return nil
}

// SetImage changes the display asset reference of entry i
func (s *EntrySet) SetImage(i int, image string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.entries[i].Image = image
	return nil
}

// Replace swaps the whole membership, as a document reload does
func (s *EntrySet) Replace(other *EntrySet) {
	s.entries = other.Entries()
	s.recompute()
}

// Merge rebuilds the set from a list of names. Entries whose name already
// exists keep their weight, color and image; new names get the default weight
// and the palette color of their position. At least one non-blank name is required.
func (s *EntrySet) Merge(names []string, palette []string) error {
	if len(palette) == 0 {
		palette = constants.DefaultPalette
	}
	existing := make(map[string]Entry, len(s.entries))
	for _, e := range s.entries {
		if _, ok := existing[e.Name]; !ok {
			existing[e.Name] = e
		}
	}

	merged := make([]Entry, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if e, ok := existing[n]; ok {
			merged = append(merged, e)
			continue
		}
		merged = append(merged, Entry{
			Name:   n,
			Weight: constants.DefaultWeight,
			Color:  palette[len(merged)%len(palette)],
		})
	}
	if len(merged) == 0 {
		return fmt.Errorf("%w: at least one name is required", ErrInvalidInput)
	}

	s.entries = merged
	s.recompute()
	return nil
}
