package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C, Ctrl+Q
	IntentRestart    // r, Enter
	IntentToggleMute // m, Ctrl+S

	// Basket control
	IntentLane // Arrows, a/s/d, h/j/l, 1/2/3
)

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	Lane string // Lane name for IntentLane
}
