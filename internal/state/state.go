// Package state defines the state labels of a distro so that both backends can use them.
package state

import "strings"

// State is the state of a particular distro as seen in `wsl.exe -l -v`.
//
// The set is open: WSL prints localised labels on some hosts and new labels
// appear across releases, so any non-blank label is a valid State.
type State string

// The states here reported are the ones printed by an English `wsl.exe -l -v`,
// with the addition of Unknown.
const (
	Stopped      State = "Stopped"
	Running      State = "Running"
	Installing   State = "Installing"
	Uninstalling State = "Uninstalling"
	Converting   State = "Converting"

	// Unknown is used when the state column is blank or missing.
	Unknown State = "(unknown)"
)

// New builds a State from the label found in the state column.
// A blank label yields Unknown.
func New(label string) State {
	label = strings.TrimSpace(label)
	if label == "" {
		return Unknown
	}
	return State(label)
}

// IsKnown returns true if the state is one of the labels printed by an English wsl.exe.
func (s State) IsKnown() bool {
	switch s {
	case Stopped, Running, Installing, Uninstalling, Converting:
		return true
	}
	return false
}

func (s State) String() string {
	if s == "" {
		return string(Unknown)
	}
	return string(s)
}
