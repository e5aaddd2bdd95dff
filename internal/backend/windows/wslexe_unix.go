//go:build !windows

package windows

import (
	"context"
	"os/exec"
)

// command prepares wsl.exe. Outside of Windows, this only works via WSL interop.
func command(ctx context.Context, exe string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, exe, args...)
}
