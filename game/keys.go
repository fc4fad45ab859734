package game

import "github.com/gdamore/tcell/v2"

// Intent is the semantic action a key maps to
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit
	IntentEscape // cancel spin, close prompt, dismiss winner

	// Wheel
	IntentSpin

	// Entry list
	IntentCursorUp
	IntentCursorDown
	IntentWeightUp
	IntentWeightDown
	IntentDelete
	IntentAdd // open the names prompt
	IntentSave

	// Settings toggles
	IntentToggleBorders
	IntentToggleTitle
	IntentToggleDark
	IntentToggleRemoveWinner
	IntentToggleSound
	IntentToggleConfetti
	IntentToggleSlow
	IntentToggleDuplicates
	IntentDurationDown
	IntentDurationUp
)

// KeyTable maps keys to intents in normal mode. The names prompt consumes
// keys directly and does not consult the table.
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentEscape,
			tcell.KeyEnter:  IntentSpin,
			tcell.KeyUp:     IntentCursorUp,
			tcell.KeyDown:   IntentCursorDown,
			tcell.KeyDelete: IntentDelete,
			tcell.KeyCtrlS:  IntentSave,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			' ': IntentSpin,
			'k': IntentCursorUp,
			'j': IntentCursorDown,
			'+': IntentWeightUp,
			'=': IntentWeightUp,
			'-': IntentWeightDown,
			'x': IntentDelete,
			'a': IntentAdd,
			's': IntentSave,
			'b': IntentToggleBorders,
			't': IntentToggleTitle,
			'd': IntentToggleDark,
			'r': IntentToggleRemoveWinner,
			'm': IntentToggleSound,
			'c': IntentToggleConfetti,
			'w': IntentToggleSlow,
			'u': IntentToggleDuplicates,
			'[': IntentDurationDown,
			']': IntentDurationUp,
		},
	}
}

// Lookup returns the intent for a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}

// helpText is shown on the right of the status bar
const helpText = "space spin  a add  x del  +/- weight  s save  q quit"
