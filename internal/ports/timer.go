// Package ports defines the interfaces between the zenspace session layer
// and the outside world: the terminal front-end drives the session through
// commands, and the session reaches out through a notifier.
package ports

// TimerCommand is a parameterless user action on the screen.
type TimerCommand string

const (
	// CmdToggle starts or pauses the countdown.
	CmdToggle TimerCommand = "toggle"

	// CmdStart starts the countdown.
	CmdStart TimerCommand = "start"

	// CmdPause pauses the countdown.
	CmdPause TimerCommand = "pause"

	// CmdReset restores the countdown to its full length.
	CmdReset TimerCommand = "reset"

	// CmdBreathe switches the breathing exercise on or off.
	CmdBreathe TimerCommand = "breathe"
)

// Commands lists every TimerCommand.
func Commands() []TimerCommand {
	return []TimerCommand{CmdToggle, CmdStart, CmdPause, CmdReset, CmdBreathe}
}
