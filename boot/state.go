// Package boot drives the startup sequence and owns the terminal state.
// There is no operating system to return to, so every ending, clean or
// fatal, is an explicit transition from Running to Halted followed by
// parking the single execution context forever.
package boot

// State is the lifecycle of the boot image. There is one transition,
// Running to Halted, and nothing ever resumes a halted image.
type State uint32

const (
	Running State = iota
	Halted
)

var (
	state       State
	fatalReason string

	// park executes one halt instruction; tests swap it out to observe
	// the transition instead of stopping the test process.
	park = hlt
)

// Current reports the lifecycle state.
func Current() State { return state }

// FatalReason reports what took the image down, empty for a clean halt.
func FatalReason() string { return fatalReason }

// Halt transitions to Halted and parks the CPU. It never returns.
func Halt() {
	state = Halted
	for {
		park()
	}
}

// Fatal records the reason and halts. Startup failures land here: a
// missing display capability has no retry, the platform is simply
// unusable for graphics.
func Fatal(reason string) {
	fatalReason = reason
	Halt()
}

// hlt executes one architecture halt instruction (halt_*.s).
func hlt()
