package wslutils

import "errors"

var (
	// ErrNoDistributionsFound is returned when neither the verbose nor the quiet
	// listing of wsl.exe yields a single distro.
	ErrNoDistributionsFound = errors.New("no WSL distributions found")

	// ErrSelectionCancelled is returned when the user cancels the interactive
	// selection, or when the input ends before a choice is made.
	ErrSelectionCancelled = errors.New("distribution selection cancelled")

	// ErrDistroNotFound is returned in non-interactive mode when the requested
	// name matches no distro.
	ErrDistroNotFound = errors.New("distribution not found")
)
