package document

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

// CurrentVersion is written by Encode. Version 1 documents carried only names.
const CurrentVersion = 2

// DefaultExtension is added to save paths that have none
const DefaultExtension = ".spinnyboi"

const schemaURL = "https://wheel-of-names.local/document.schema.json"

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft7
		if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Document is the saved wheel: entries plus the UI option flags. Options are
// pointers so a document only overrides the settings it carries.
type Document struct {
	ID      string  `json:"id,omitempty"`
	Version int     `json:"version,omitempty"`
	Entries []Entry `json:"entries,omitempty"`

	// Names is the legacy version 1 shape; read but never written
	Names []string `json:"names,omitempty"`

	Options
}

// Entry is the stored form of wheel.Entry. Image is kept raw because older
// editors serialized in-memory image objects as {}.
type Entry struct {
	Name   string          `json:"name"`
	Weight float64         `json:"weight,omitempty"`
	Color  string          `json:"color,omitempty"`
	Image  json.RawMessage `json:"image,omitempty"`
}

// Options are the UI flags saved alongside the entries
type Options struct {
	DisplayDuplicates *bool       `json:"displayDuplicates,omitempty"`
	SpinSlowly        *bool       `json:"spinSlowly,omitempty"`
	ShowTitle         *bool       `json:"showTitle,omitempty"`
	SpinDuration      *FlexNumber `json:"spinDuration,omitempty"`
	MaxNames          *FlexNumber `json:"maxNames,omitempty"`
	RemoveWinner      *bool       `json:"removeWinner,omitempty"`
	PlaySound         *bool       `json:"playSound,omitempty"`
	Confetti          *bool       `json:"confetti,omitempty"`
	DarkMode          *bool       `json:"darkMode,omitempty"`
	ShowBorders       *bool       `json:"showBorders,omitempty"`
	WheelTitle        *string     `json:"wheelTitle,omitempty"`
}

// FlexNumber accepts a JSON number or a numeric string; slider values were
// saved as strings
type FlexNumber float64

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = FlexNumber(f)
	return nil
}

// Float returns the value, or fallback when n is nil
func (n *FlexNumber) Float(fallback float64) float64 {
	if n == nil {
		return fallback
	}
	return float64(*n)
}

// Bool returns *b, or fallback when b is nil
func Bool(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

// String returns *s, or fallback when s is nil
func String(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T { return &v }

// New builds a current-version document from an entry set
func New(set *wheel.EntrySet, opts Options) *Document {
	d := &Document{
		ID:      uuid.NewString(),
		Version: CurrentVersion,
		Options: opts,
	}
	for _, e := range set.Entries() {
		stored := Entry{Name: e.Name, Weight: e.Weight, Color: e.Color}
		if e.Image != "" {
			stored.Image, _ = json.Marshal(e.Image)
		}
		d.Entries = append(d.Entries, stored)
	}
	return d
}

// Decode validates r against the document schema and decodes it. Any
// failure wraps wheel.ErrInvalidInput.
func Decode(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}
	var generic any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %v", wheel.ErrInvalidInput, err)
	}
	if err := sch.Validate(generic); err != nil {
		return nil, fmt.Errorf("%w: document does not match schema: %v", wheel.ErrInvalidInput, err)
	}

	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %v", wheel.ErrInvalidInput, err)
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Version == 0 {
		d.Version = 1
		if len(d.Entries) > 0 {
			d.Version = CurrentVersion
		}
	}
	return &d, nil
}

// Encode writes d as indented JSON in the current version. Legacy names are
// dropped in favour of entries.
func Encode(w io.Writer, d *Document) error {
	out := *d
	out.Version = CurrentVersion
	if len(out.Entries) == 0 && len(out.Names) > 0 {
		for _, n := range out.Names {
			out.Entries = append(out.Entries, Entry{Name: n, Weight: constants.DefaultWeight})
		}
	}
	out.Names = nil

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// EntrySet converts the stored entries into a live set. Missing weights
// default to 1, colors that are not hex tokens fall back to the palette, and
// a names-only document becomes default-weight entries.
func (d *Document) EntrySet(palette []string) (*wheel.EntrySet, error) {
	if len(palette) == 0 {
		palette = constants.DefaultPalette
	}
	if len(d.Entries) == 0 {
		set, err := wheel.FromNames(d.Names, palette)
		if err != nil {
			return nil, fmt.Errorf("legacy names: %w", err)
		}
		return set, nil
	}

	entries := make([]wheel.Entry, 0, len(d.Entries))
	for i, e := range d.Entries {
		w := e.Weight
		if w == 0 {
			w = constants.DefaultWeight
		}
		color := e.Color
		if !govalidator.IsHexcolor(color) {
			color = palette[i%len(palette)]
		} else if !strings.HasPrefix(color, "#") {
			color = "#" + color
		}
		entries = append(entries, wheel.Entry{
			Name:   e.Name,
			Weight: w,
			Color:  color,
			Image:  imageRef(e.Image),
		})
	}
	set, err := wheel.NewEntrySet(entries...)
	if err != nil {
		return nil, fmt.Errorf("document entries: %w", err)
	}
	return set, nil
}

// imageRef keeps string references and drops serialized objects
func imageRef(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
