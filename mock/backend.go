// Package mock mocks the wsl.exe listings, useful for tests as it allows parallelism,
// decoupling, and execution speed.
package mock

import (
	"sync"
)

// Backend implements the Backend interface.
type Backend struct {
	distros []Distro

	// RawVerbose and RawQuiet, when not nil, are returned verbatim instead of
	// the listing rendered from the registered distros. Use them to replay
	// recorded wsl.exe output.
	RawVerbose []byte
	RawQuiet   []byte

	// UTF16 makes the rendered listings UTF-16LE encoded, the way wsl.exe
	// writes them when WSL_UTF8 is not honoured.
	UTF16 bool

	// Error injectors. These all have the form of:
	//
	// NameOfTheFunctionError
	//
	// Their effect is to make the relevant function return an error of type mock.Error
	// instantly upon being called.
	ListVerboseError bool
	ListQuietError   bool

	verboseCalls int
	quietCalls   int

	mu sync.Mutex
}

// Distro is a distro registered in the mock.
type Distro struct {
	Name    string
	State   string
	Version int // Not printed when zero.
	Default bool
}

// New constructs a new mocked back-end for WSL with the given distros registered, in order.
func New(distros ...Distro) *Backend {
	return &Backend{
		distros: distros,
	}
}

// Register appends a distro to the listing.
func (b *Backend) Register(d Distro) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.distros = append(b.distros, d)
}

// ResetErrors sets all the error flags to false.
func (b *Backend) ResetErrors() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ListVerboseError = false
	b.ListQuietError = false
}

// Calls returns how many times each listing has been requested.
func (b *Backend) Calls() (verbose, quiet int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.verboseCalls, b.quietCalls
}

// Error is an error triggered by the mock, and not a real problem.
type Error struct{}

func (err Error) Error() string {
	return "error triggered by mock"
}
