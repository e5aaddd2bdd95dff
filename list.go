package wslutils

// This file contains utilities to obtain and parse the listing of registered distros.

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/0xrawsec/golang-utils/log"
	"github.com/crispd/wsl-utils/internal/backend"
	"github.com/crispd/wsl-utils/internal/state"
	"github.com/crispd/wsl-utils/internal/wsltext"
	"github.com/ubuntu/decorate"
)

// wide is the set of whitespace characters wsl.exe pads its columns with: space,
// tab, no-break space, figure space and narrow no-break space.
const wide = ` \t\x{00A0}\x{2007}\x{202F}`

var (
	bannerRe = regexp.MustCompile(`(?i)^[\s` + wide + `]*windows subsystem for linux distributions:[\s` + wide + `]*$`)

	// A header row carries NAME and VERSION, in this order. Most translations
	// keep VERSION as the last column label, so a row ending in it is also a header.
	headerRe       = regexp.MustCompile(`(?i)^[\s*` + wide + `]*NAME\b.*\bVERSION\b`)
	headerSuffixRe = regexp.MustCompile(`(?i)[` + wide + `]VERSION$`)

	markerRe    = regexp.MustCompile(`^[\s` + wide + `]*\*?[\s` + wide + `]*`)
	separatorRe = regexp.MustCompile(`[` + wide + `]{2,}`)
	versionRe   = regexp.MustCompile(`^\d+$`)
)

// Config is the configuration of a Lister.
type Config struct {
	// Debug logs every parsed line, its fields and the record it produced.
	Debug bool
}

// Lister takes snapshots of the registered distros.
type Lister struct {
	backend backend.Backend
	debug   bool
	debugf  func(format string, args ...any)
}

// NewLister creates a Lister on the back-end found in the context.
func NewLister(ctx context.Context, c Config) *Lister {
	return &Lister{
		backend: selectBackend(ctx),
		debug:   c.Debug,
		debugf:  log.Debugf,
	}
}

// List returns the registered distros, in the order wsl.exe prints them.
//
// The verbose listing is tried first. If it yields nothing, the quiet listing is
// used instead, in which case no record has a state or a version. If neither
// yields a distro, the error is ErrNoDistributionsFound.
func (l *Lister) List(ctx context.Context) (records []Record, err error) {
	defer decorate.OnError(&err, "could not list distros")

	out, verboseErr := l.backend.ListVerbose(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if verboseErr == nil {
		records = parseVerbose(out, l.tracef)
		if len(records) > 0 {
			return records, nil
		}
	}
	l.tracef("verbose listing yielded no distro (error: %v), falling back to the quiet listing", verboseErr)

	out, quietErr := l.backend.ListQuiet(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if quietErr == nil {
		records = ParseQuiet(out)
		if len(records) > 0 {
			return records, nil
		}
	}

	if cause := errors.Join(verboseErr, quietErr); cause != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDistributionsFound, cause)
	}
	return nil, ErrNoDistributionsFound
}

func (l *Lister) tracef(format string, args ...any) {
	if !l.debug {
		return
	}
	l.debugf(format, args...)
}

// ParseVerbose parses the output of `wsl.exe --list --all --verbose`.
//
// Lines that are not distro rows are skipped. The output may be UTF-8 or UTF-16LE,
// and may contain stray NUL characters.
func ParseVerbose(raw []byte) []Record {
	return parseVerbose(raw, nil)
}

func parseVerbose(raw []byte, tracef func(format string, args ...any)) (records []Record) {
	if tracef == nil {
		tracef = func(string, ...any) {}
	}

	for i, line := range wsltext.Lines(wsltext.Normalize(raw)) {
		r, ok := parseRow(line)
		if !ok {
			tracef("line %d: %q skipped", i+1, line)
			continue
		}
		tracef("line %d: %q parsed as %q", i+1, line, r.String())
		if !r.State().IsKnown() {
			tracef("line %d: state %q is not an English label, kept verbatim", i+1, r.State())
		}
		records = append(records, r)
	}

	return records
}

// parseRow parses one row of the verbose listing. Its columns are, from the right,
// version and state; everything before them is the name, which may contain single spaces.
func parseRow(line string) (r Record, ok bool) {
	line = wsltext.StripNUL(line)
	if strings.TrimFunc(line, unicode.IsSpace) == "" {
		return r, false
	}
	if bannerRe.MatchString(line) || headerRe.MatchString(line) {
		return r, false
	}

	line = markerRe.ReplaceAllString(line, "")
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if headerSuffixRe.MatchString(line) {
		return r, false
	}

	var fields []string
	for _, f := range separatorRe.Split(line, -1) {
		if f == "" {
			continue
		}
		fields = append(fields, f)
	}
	if len(fields) < 3 {
		return r, false
	}

	last := len(fields) - 1
	name := strings.Join(fields[:last-1], " ")
	if name == "" {
		return r, false
	}

	s := state.New(fields[last-1])
	if !versionRe.MatchString(fields[last]) {
		return NewRecord(name, s), true
	}
	v, err := strconv.Atoi(fields[last])
	if err != nil {
		// Too many digits to be a WSL version.
		return NewRecord(name, s), true
	}
	return NewRecordWithVersion(name, s, v), true
}

// ParseQuiet parses the output of `wsl.exe --list --all --quiet`: every non-blank
// line is the name of a distro. None of the records have a state or a version.
func ParseQuiet(raw []byte) (records []Record) {
	for _, line := range wsltext.Lines(wsltext.Normalize(raw)) {
		name := strings.TrimFunc(line, unicode.IsSpace)
		if name == "" {
			continue
		}
		records = append(records, NewRecord(name, StateUnknown))
	}
	return records
}
