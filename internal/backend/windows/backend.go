// Package windows contains the production backend. It is the
// one used in production code, and subprocesses wsl.exe.
//
// On Linux it only works from inside a WSL distro with Windows
// interoperability enabled, where wsl.exe is on the PATH.
package windows

// Backend implements the Backend interface.
type Backend struct {
	// Executable overrides the wsl.exe binary. Leave empty to look it up in the PATH.
	Executable string
}

func (b Backend) executable() string {
	if b.Executable != "" {
		return b.Executable
	}
	return "wsl.exe"
}
