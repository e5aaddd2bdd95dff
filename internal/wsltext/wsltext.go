// Package wsltext turns the raw bytes printed by wsl.exe into plain text.
//
// Depending on the WSL release and on whether WSL_UTF8 is honoured, wsl.exe
// writes either UTF-8 or UTF-16LE (with or without a byte-order mark). When
// the output goes through a code-page conversion on the way, the UTF-16 high
// bytes survive as stray NUL characters.
package wsltext

import (
	"bufio"
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Normalize decodes raw wsl.exe output and removes every NUL character left in it.
//
// Text with a UTF-16LE byte-order mark is always decoded. Text that only looks like
// UTF-16LE is decoded when removing its NULs would not leave valid UTF-8: NULs mixed
// into otherwise valid text are dropped, never reinterpreted.
func Normalize(raw []byte) string {
	if hasUTF16BOM(raw) || (LooksUTF16LE(raw) && !utf8.Valid(stripNULBytes(raw))) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, _, err := transform.Bytes(dec, raw); err == nil {
			return StripNUL(string(out))
		}
	}

	text := raw
	// Drops a leading UTF-8 byte-order mark, if any.
	if out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw); err == nil {
		text = out
	}

	return StripNUL(string(text))
}

func hasUTF16BOM(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE
}

func stripNULBytes(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte{0}, nil)
}

// StripNUL removes all NUL characters from s.
func StripNUL(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// LooksUTF16LE reports whether b is most likely UTF-16LE text.
//
// That is the case when it starts with the UTF-16LE byte-order mark, or when it has an
// even length, no NUL at even offsets, and NULs in at least three quarters of its odd
// offsets (the high bytes of mostly-ASCII code units).
func LooksUTF16LE(b []byte) bool {
	if hasUTF16BOM(b) {
		return true
	}
	if len(b) < 2 || len(b)%2 != 0 {
		return false
	}

	var oddZeros int
	for i, c := range b {
		if c != 0 {
			continue
		}
		if i%2 == 0 {
			return false
		}
		oddZeros++
	}

	odd := len(b) / 2
	return oddZeros*4 >= odd*3
}

// Lines splits text into lines. It accepts "\n", "\r\n" and lone "\r" as line endings.
func Lines(text string) []string {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 4096), 1024*1024)
	sc.Split(scanLines)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

// scanLines is bufio.ScanLines with support for lone carriage returns.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// Carriage return: swallow a following line feed, but wait for more
		// data if the buffer ends right after it.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
