package input

import "github.com/gdamore/tcell/v2"

// Translate maps a raw terminal event to a semantic intent. Everything
// unrecognized collapses to IntentNone so the frame loop can ignore it.
func Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			return Intent{Type: IntentSelect, X: x, Y: y}
		}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}

	return Intent{}
}

func translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyRune:
		// handled below
	default:
		return Intent{}
	}

	switch ev.Rune() {
	case 'q':
		return Intent{Type: IntentQuit}
	case ' ', 'p':
		return Intent{Type: IntentTogglePause}
	case '+', '=', ']':
		return Intent{Type: IntentSpeedUp}
	case '-', '[':
		return Intent{Type: IntentSpeedDown}
	case 'd':
		return Intent{Type: IntentDeselect}
	}

	return Intent{}
}
