package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/ubuntu/decorate"
	"golang.org/x/text/encoding/unicode"
)

// ListVerbose mocks `wsl.exe --list --all --verbose`.
func (b *Backend) ListVerbose(ctx context.Context) (out []byte, err error) {
	defer decorate.OnError(&err, "ListVerbose")

	b.mu.Lock()
	defer b.mu.Unlock()

	b.verboseCalls++
	if b.ListVerboseError {
		return nil, Error{}
	}
	if b.RawVerbose != nil {
		return b.RawVerbose, nil
	}

	return b.encode(renderVerbose(b.distros))
}

// ListQuiet mocks `wsl.exe --list --all --quiet`.
func (b *Backend) ListQuiet(ctx context.Context) (out []byte, err error) {
	defer decorate.OnError(&err, "ListQuiet")

	b.mu.Lock()
	defer b.mu.Unlock()

	b.quietCalls++
	if b.ListQuietError {
		return nil, Error{}
	}
	if b.RawQuiet != nil {
		return b.RawQuiet, nil
	}

	var sb strings.Builder
	for _, d := range b.distros {
		fmt.Fprintf(&sb, "%s\r\n", d.Name)
	}
	return b.encode(sb.String())
}

func (b *Backend) encode(text string) ([]byte, error) {
	if !b.UTF16 {
		return []byte(text), nil
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(text))
}

// renderVerbose lays the distros out the way wsl.exe does: a header row, then one
// row per distro with the default one marked by an asterisk, in columns padded with spaces.
//
//	  NAME      STATE           VERSION
//	* Ubuntu    Stopped         2
//	  Debian    Running         2
func renderVerbose(distros []Distro) string {
	if len(distros) == 0 {
		return "Windows Subsystem for Linux has no installed distributions.\r\n"
	}

	nameWidth := len("NAME")
	stateWidth := len("STATE")
	for _, d := range distros {
		nameWidth = max(nameWidth, len(d.Name))
		stateWidth = max(stateWidth, len(d.State))
	}
	nameWidth += 4
	stateWidth += 10

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-*s %-*s %s\r\n", nameWidth, "NAME", stateWidth, "STATE", "VERSION")
	for _, d := range distros {
		marker := " "
		if d.Default {
			marker = "*"
		}
		version := ""
		if d.Version != 0 {
			version = fmt.Sprint(d.Version)
		}
		fmt.Fprintf(&sb, "%s %-*s %-*s %s\r\n", marker, nameWidth, d.Name, stateWidth, d.State, version)
	}

	return sb.String()
}
