package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes the intent bound to a key
type KeyEntry struct {
	Type IntentType
	Lane string
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
			tcell.KeyEnter:  {Type: IntentRestart},
			tcell.KeyLeft:   {Type: IntentLane, Lane: "left"},
			tcell.KeyDown:   {Type: IntentLane, Lane: "center"},
			tcell.KeyUp:     {Type: IntentLane, Lane: "center"},
			tcell.KeyRight:  {Type: IntentLane, Lane: "right"},
		},

		Runes: map[rune]KeyEntry{
			'q': {Type: IntentQuit},
			'r': {Type: IntentRestart},
			'm': {Type: IntentToggleMute},

			// Home row
			'a': {Type: IntentLane, Lane: "left"},
			's': {Type: IntentLane, Lane: "center"},
			'd': {Type: IntentLane, Lane: "right"},

			// Vi keys
			'h': {Type: IntentLane, Lane: "left"},
			'j': {Type: IntentLane, Lane: "center"},
			'l': {Type: IntentLane, Lane: "right"},

			// Number row
			'1': {Type: IntentLane, Lane: "left"},
			'2': {Type: IntentLane, Lane: "center"},
			'3': {Type: IntentLane, Lane: "right"},
		},
	}
}

// Map resolves a key event to an intent
// Runes are matched case-insensitively
func (kt *KeyTable) Map(ev *tcell.EventKey) Intent {
	if ev == nil {
		return Intent{}
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if e, ok := kt.Runes[r]; ok {
			return Intent{Type: e.Type, Lane: e.Lane}
		}
		return Intent{}
	}

	if e, ok := kt.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: e.Type, Lane: e.Lane}
	}
	return Intent{}
}

var defaultTable = DefaultKeyTable()

// LaneForKey returns the lane name bound to ev in the default table
func LaneForKey(ev *tcell.EventKey) (string, bool) {
	in := defaultTable.Map(ev)
	return in.Lane, in.Type == IntentLane
}

// IsQuit reports whether ev quits in the default table
func IsQuit(ev *tcell.EventKey) bool {
	return defaultTable.Map(ev).Type == IntentQuit
}

// IsRestart reports whether ev restarts in the default table
func IsRestart(ev *tcell.EventKey) bool {
	return defaultTable.Map(ev).Type == IntentRestart
}
