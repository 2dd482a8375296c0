package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // terminal resize event

	// Time control
	IntentTogglePause // space, p
	IntentSpeedUp     // +, =, ]
	IntentSpeedDown   // -, [

	// Selection
	IntentSelect   // left mouse press, carries screen coordinates
	IntentDeselect // d
)

// Intent is one translated user action. X and Y are screen cell
// coordinates, meaningful only for IntentSelect.
type Intent struct {
	Type IntentType
	X, Y int
}
