package wslutils

// This file contains the resolution of a single distro, by name or from an interactive menu.

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/0xrawsec/golang-utils/log"
	"github.com/ubuntu/decorate"
)

// Source provides a snapshot of the registered distros. *Lister is the production Source.
type Source interface {
	List(ctx context.Context) ([]Record, error)
}

// Selector resolves one distro out of a snapshot.
type Selector struct {
	source Source
	in     *bufio.Reader
	out    io.Writer

	nonInteractive bool
	maxAttempts    int
}

// SelectOption customises a Selector.
type SelectOption func(*Selector)

// WithNonInteractive makes Select fail with ErrDistroNotFound instead of
// prompting when the requested name does not match any distro.
func WithNonInteractive() SelectOption {
	return func(s *Selector) {
		s.nonInteractive = true
	}
}

// WithMaxAttempts limits how many invalid answers the menu accepts before
// giving up with ErrSelectionCancelled. Zero, the default, means no limit.
func WithMaxAttempts(n int) SelectOption {
	return func(s *Selector) {
		if n < 0 {
			n = 0
		}
		s.maxAttempts = n
	}
}

// NewSelector creates a Selector reading answers from in and writing the menu to out.
func NewSelector(source Source, in io.Reader, out io.Writer, opts ...SelectOption) *Selector {
	s := &Selector{
		source: source,
		in:     bufio.NewReader(in),
		out:    out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select takes one snapshot of the distros and returns the one called name.
//
// If name is empty or matches no distro exactly, a numbered menu is shown and the
// user is prompted until they answer with a valid number or an exact name. Cancelling,
// or reaching the end of the input, returns ErrSelectionCancelled.
func (s *Selector) Select(ctx context.Context, name string) (r Record, err error) {
	defer decorate.OnError(&err, "could not select a distro")

	records, err := s.source.List(ctx)
	if err != nil {
		return r, err
	}
	if len(records) == 0 {
		return r, ErrNoDistributionsFound
	}

	if name != "" {
		if r, ok := Find(records, name); ok {
			return r, nil
		}
		log.Warnf("no distro is called %q", name)
		fmt.Fprintf(s.out, "Warning: no distribution is called %q.\n", name)
	}

	if s.nonInteractive {
		if name == "" {
			return r, fmt.Errorf("%w: no name was given", ErrDistroNotFound)
		}
		return r, fmt.Errorf("%w: %q", ErrDistroNotFound, name)
	}

	return s.prompt(ctx, records)
}

// Find returns the record called exactly name. Comparison is case-sensitive.
func Find(records []Record, name string) (Record, bool) {
	for _, r := range records {
		if r.Name() == name {
			return r, true
		}
	}
	return Record{}, false
}

// prompt shows the menu and reads answers until one of them resolves to a record.
func (s *Selector) prompt(ctx context.Context, records []Record) (Record, error) {
	WriteMenu(s.out, records)

	for attempt := 1; s.maxAttempts == 0 || attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}

		fmt.Fprintf(s.out, "Select a distribution [1-%d] by number or name, or q to cancel: ", len(records))
		line, readErr := s.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return Record{}, fmt.Errorf("could not read answer: %v", readErr)
		}

		answer := strings.TrimSpace(line)
		if answer != "" || readErr == nil {
			r, c := choose(records, answer)
			switch c {
			case chosen:
				return r, nil
			case cancelled:
				return Record{}, ErrSelectionCancelled
			}
			fmt.Fprintf(s.out, "Invalid selection %q.\n", answer)
		}

		if readErr != nil {
			fmt.Fprintln(s.out)
			return Record{}, fmt.Errorf("%w: end of input", ErrSelectionCancelled)
		}
	}

	return Record{}, fmt.Errorf("%w: too many invalid answers", ErrSelectionCancelled)
}

// WriteMenu writes the records as a numbered list, starting at 1.
func WriteMenu(w io.Writer, records []Record) {
	nameWidth, stateWidth := 0, 0
	for _, r := range records {
		nameWidth = max(nameWidth, len(r.Name()))
		stateWidth = max(stateWidth, len(r.State().String()))
	}

	fmt.Fprintln(w, "Available WSL distributions:")
	for i, r := range records {
		v := ""
		if version, ok := r.Version(); ok {
			v = strconv.Itoa(version)
		}
		line := fmt.Sprintf("%3d) %-*s  %-*s  %s", i+1, nameWidth, r.Name(), stateWidth, r.State(), v)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// choice is the outcome of one answer to the menu.
type choice int

const (
	invalid choice = iota
	chosen
	cancelled
)

// choose interprets one answer: a cancellation token, a 1-based index, or an exact name.
func choose(records []Record, answer string) (Record, choice) {
	switch answer {
	case "q", "Q", "quit", "exit":
		return Record{}, cancelled
	}

	if isDigits(answer) {
		if i, err := strconv.Atoi(answer); err == nil && i >= 1 && i <= len(records) {
			return records[i-1], chosen
		}
	}

	if r, ok := Find(records, answer); ok {
		return r, chosen
	}

	return Record{}, invalid
}

// isDigits returns true for non-empty strings made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
