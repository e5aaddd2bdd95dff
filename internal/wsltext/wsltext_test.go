package wsltext_test

import (
	"testing"
	"unicode/utf16"

	"github.com/crispd/wsl-utils/internal/wsltext"
	"github.com/stretchr/testify/require"
)

// utf16le encodes s as UTF-16LE, optionally prefixed with a byte-order mark.
func utf16le(s string, bom bool) []byte {
	var out []byte
	if bom {
		out = append(out, 0xFF, 0xFE)
	}
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	const text = "  NAME      STATE    VERSION\r\n* Ubuntu    Running  2\r\n"

	testCases := map[string]struct {
		input []byte
		want  string
	}{
		"Plain UTF-8 is left untouched":    {input: []byte(text), want: text},
		"UTF-8 byte-order mark is dropped": {input: append([]byte{0xEF, 0xBB, 0xBF}, text...), want: text},
		"UTF-16LE with byte-order mark":    {input: utf16le(text, true), want: text},
		"UTF-16LE without byte-order mark": {input: utf16le(text, false), want: text},
		"UTF-16LE with non-ASCII name":     {input: utf16le("Débian  Arrêté  2\n", true), want: "Débian  Arrêté  2\n"},
		"Stray NULs are stripped":          {input: []byte("Ub\x00untu\x00  Stopped  2\n"), want: "Ubuntu  Stopped  2\n"},
		"UTF-16LE with Latin-1 letters":    {input: utf16le("Débian  Arrêté  2\n", false), want: "Débian  Arrêté  2\n"},
		"UTF-16LE with CJK letters":        {input: utf16le("中文  Stopped  2\n", false), want: "中文  Stopped  2\n"},
		"NULs after most characters":       {input: []byte("U\x00b\x00u\x00n\x00t\x00u\x00-\x002\x004\x00  St"), want: "Ubuntu-24  St"},
		"Only NULs yields empty text":      {input: []byte{0, 0, 0}, want: ""},
		"Empty input":                      {input: nil, want: ""},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := wsltext.Normalize(tc.input)
			require.Equal(t, tc.want, got, "Unexpected normalised text")
		})
	}
}

func TestLooksUTF16LE(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input []byte
		want  bool
	}{
		"Byte-order mark":             {input: []byte{0xFF, 0xFE, 'a'}, want: true},
		"ASCII code units":            {input: utf16le("Ubuntu", false), want: true},
		"Plain ASCII":                 {input: []byte("Ubuntu"), want: false},
		"Odd length":                  {input: []byte("U\x00b\x00u"), want: false},
		"NUL at an even offset":       {input: []byte("\x00UbU"), want: false},
		"Too few NULs at odd offsets": {input: []byte("U\x00buntu  "), want: false},
		"Empty":                       {input: nil, want: false},

		"Single byte-order byte is not a mark": {input: []byte{0xFF}, want: false},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, wsltext.LooksUTF16LE(tc.input))
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input string
		want  []string
	}{
		"Line feeds":              {input: "a\nb\n", want: []string{"a", "b"}},
		"Carriage return and LF":  {input: "a\r\nb\r\n", want: []string{"a", "b"}},
		"Lone carriage returns":   {input: "a\rb\r", want: []string{"a", "b"}},
		"Mixed endings":           {input: "a\r\nb\rc\nd", want: []string{"a", "b", "c", "d"}},
		"Blank lines are kept":    {input: "a\n\nb", want: []string{"a", "", "b"}},
		"No trailing line ending": {input: "a", want: []string{"a"}},
		"Empty":                   {input: "", want: nil},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, wsltext.Lines(tc.input))
		})
	}
}
