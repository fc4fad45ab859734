package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

func TestDecode_CurrentShape(t *testing.T) {
	src := `{
	  "id": "abc",
	  "version": 2,
	  "entries": [
	    {"name": "Alice", "weight": 3, "color": "#ff0000"},
	    {"name": "Bob"},
	    {"name": "Carol", "color": "not-a-color", "image": {}},
	    {"name": "Dave", "color": "00ff00", "image": "dave.png"}
	  ],
	  "spinDuration": "6",
	  "maxNames": 50,
	  "spinSlowly": true,
	  "wheelTitle": "Lunch"
	}`
	d, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "abc", d.ID)
	assert.Equal(t, 6.0, d.SpinDuration.Float(0))
	assert.Equal(t, 50.0, d.MaxNames.Float(0))
	assert.True(t, Bool(d.SpinSlowly, false))
	assert.False(t, Bool(d.Confetti, false))
	assert.Equal(t, "Lunch", String(d.WheelTitle, ""))

	set, err := d.EntrySet(nil)
	require.NoError(t, err)
	es := set.Entries()
	require.Len(t, es, 4)
	assert.Equal(t, 3.0, es[0].Weight)
	assert.Equal(t, "#ff0000", es[0].Color)
	assert.Equal(t, constants.DefaultWeight, es[1].Weight)
	assert.Equal(t, constants.DefaultPalette[2], es[2].Color)
	assert.Equal(t, "", es[2].Image)
	assert.Equal(t, "#00ff00", es[3].Color)
	assert.Equal(t, "dave.png", es[3].Image)
}

func TestDecode_LegacyNames(t *testing.T) {
	d, err := Decode(strings.NewReader(`{"names": ["x", "y", "z"]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Version)
	assert.NotEmpty(t, d.ID)

	set, err := d.EntrySet(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, set.Names())
	assert.InDelta(t, 3.0, set.TotalWeight(), 1e-12)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":        `{`,
		"no entries":      `{"wheelTitle": "x"}`,
		"negative weight": `{"entries": [{"name": "a", "weight": -1}]}`,
		"missing name":    `{"entries": [{"weight": 1}]}`,
		"bad flag":        `{"names": ["a"], "confetti": "yes"}`,
		"fractional max":  `{"names": ["a"], "maxNames": 2.5}`,
		"zero weight":     `{"entries": [{"name": "a", "weight": 0.0}]}`,
		"trailing data":   `{"names": ["a"]} {"names": ["b"]}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			assert.ErrorIs(t, err, wheel.ErrInvalidInput)
		})
	}
}

func TestDecode_BlankNameRejectedByEntrySet(t *testing.T) {
	d, err := Decode(strings.NewReader(`{"entries": [{"name": "  "}]}`))
	require.NoError(t, err)
	_, err = d.EntrySet(nil)
	assert.ErrorIs(t, err, wheel.ErrInvalidInput)
}

func TestEncode_RoundTripsEntriesAndOptions(t *testing.T) {
	set, err := wheel.NewEntrySet(
		wheel.Entry{Name: "A", Weight: 2.5, Color: "#123456", Image: "a.png"},
		wheel.Entry{Name: "B", Weight: 1, Color: "#abcdef"},
	)
	require.NoError(t, err)
	d := New(set, Options{RemoveWinner: Ptr(true), SpinDuration: Ptr(FlexNumber(7))})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, d))
	assert.Contains(t, buf.String(), `"version": 2`)

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.ID, back.ID)
	assert.True(t, Bool(back.RemoveWinner, false))
	assert.Nil(t, back.PlaySound)
	assert.Equal(t, 7.0, back.SpinDuration.Float(0))

	got, err := back.EntrySet(nil)
	require.NoError(t, err)
	assert.Equal(t, set.Entries(), got.Entries())
}

func TestEncode_UpgradesLegacy(t *testing.T) {
	d := &Document{Names: []string{"a", "b"}}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, d))
	assert.NotContains(t, buf.String(), `"names"`)
	assert.Contains(t, buf.String(), `"entries"`)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	set, _ := wheel.FromNames([]string{"one", "two"}, nil)
	d := New(set, Options{WheelTitle: Ptr("Team")})

	path, err := Save(filepath.Join(dir, "nested", "team"), d)
	require.NoError(t, err)
	assert.Equal(t, ".spinnyboi", filepath.Ext(path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Team", String(back.WheelTitle, ""))

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatParseNames(t *testing.T) {
	entries := []wheel.Entry{
		{Name: "Alice", Weight: 1},
		{Name: "Bob", Weight: 2.5},
		{Name: "C: the third", Weight: 1},
	}
	text := FormatNames(entries)
	assert.Equal(t, "Alice\nBob:2.5\nC: the third", text)

	back, err := ParseNames(text + "\n\n")
	require.NoError(t, err)
	require.Len(t, back, 3)
	assert.Equal(t, "Bob", back[1].Name)
	assert.Equal(t, 2.5, back[1].Weight)
	assert.Equal(t, "C: the third", back[2].Name)

	clamped, err := ParseNames("big:1000\nsmall:0.01")
	require.NoError(t, err)
	assert.Equal(t, constants.MaxWeight, clamped[0].Weight)
	assert.Equal(t, constants.MinWeight, clamped[1].Weight)

	_, err = ParseNames("x:-3")
	assert.ErrorIs(t, err, wheel.ErrInvalidInput)
	_, err = ParseNames(":4")
	assert.ErrorIs(t, err, wheel.ErrInvalidInput)
}
