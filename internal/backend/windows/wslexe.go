package windows

// This file contains utilities to access functionality accessed via wsl.exe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ubuntu/decorate"
)

// ListVerbose returns the table of registered distros.
//
// It is analogous to
//
//	`wsl.exe --list --all --verbose`
func (b Backend) ListVerbose(ctx context.Context) (out []byte, err error) {
	return b.run(ctx, "--list", "--all", "--verbose")
}

// ListQuiet returns the names of the registered distros, one per line.
//
// It is analogous to
//
//	`wsl.exe --list --all --quiet`
func (b Backend) ListQuiet(ctx context.Context) (out []byte, err error) {
	return b.run(ctx, "--list", "--all", "--quiet")
}

// run executes wsl.exe and returns its standard output. The standard error is only
// used to build the error message.
func (b Backend) run(ctx context.Context, args ...string) (out []byte, err error) {
	exe := b.executable()
	defer decorate.OnError(&err, "could not run %s %s", exe, strings.Join(args, " "))

	cmd := command(ctx, exe, args...)
	// Newer releases of WSL honour this variable and write UTF-8 instead of UTF-16LE.
	cmd.Env = append(os.Environ(), "WSL_UTF8=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	return stdout.Bytes(), nil
}
