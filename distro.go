package wslutils

// This file contains the record of a distro as seen in one listing.

import (
	"fmt"

	"github.com/crispd/wsl-utils/internal/state"
)

// State is the state of a distro as printed by wsl.exe. Any non-blank label is
// valid; StateUnknown is used when the listing did not carry one.
type State = state.State

// States printed by an English wsl.exe.
const (
	StateStopped      = state.Stopped
	StateRunning      = state.Running
	StateInstalling   = state.Installing
	StateUninstalling = state.Uninstalling
	StateConverting   = state.Converting
	StateUnknown      = state.Unknown
)

// Record is a WSL distro as reported by one listing of wsl.exe.
// It is a snapshot: it is never updated after the listing.
type Record struct {
	name       string
	state      State
	version    int
	hasVersion bool
}

// NewRecord declares a record with no known WSL version.
// The name is trusted as is: it must not be empty. ParseVerbose and ParseQuiet never
// produce a record with an empty name.
func NewRecord(name string, s State) Record {
	return Record{name: name, state: s}
}

// NewRecordWithVersion declares a record running under the given WSL version.
// As with NewRecord, the name must not be empty.
func NewRecordWithVersion(name string, s State, version int) Record {
	return Record{name: name, state: s, version: version, hasVersion: true}
}

// Name is the DistroName as shown in "wsl.exe --list".
func (r Record) Name() string {
	return r.name
}

// State is the state of the distro at the time of the listing.
func (r Record) State() State {
	if r.state == "" {
		return StateUnknown
	}
	return r.state
}

// Version returns the WSL version (1 or 2) the distro runs under. ok is false
// when the listing did not carry it.
func (r Record) Version() (version int, ok bool) {
	return r.version, r.hasVersion
}

// String shows the record as tab-separated name, state and version.
// The version is left blank when unknown.
func (r Record) String() string {
	v := ""
	if r.hasVersion {
		v = fmt.Sprint(r.version)
	}
	return fmt.Sprintf("%s\t%s\t%s", r.name, r.State(), v)
}
