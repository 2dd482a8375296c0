package constant

// Main Loop
const (
	// DefaultFPS is the target rendering frame rate
	DefaultFPS = 60

	// EventChanSize buffers terminal events between the poll goroutine
	// and the frame loop
	EventChanSize = 100
)
