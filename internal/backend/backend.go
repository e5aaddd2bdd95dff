// Package backend defines all the actions that a back-end to wsl-utils must
// be able to perform in order to run, or otherwise mock WSL.
package backend

import "context"

// Backend defines what a back-end to wsl-utils must be able to do or mock.
//
// Both listings return the raw bytes written to stdout, undecoded: depending on
// the WSL release they may be UTF-8 or UTF-16LE.
type Backend interface {
	// wsl.exe
	ListVerbose(ctx context.Context) ([]byte, error)
	ListQuiet(ctx context.Context) ([]byte, error)
}
