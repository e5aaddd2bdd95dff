package windows

import (
	"context"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// command prepares wsl.exe so that it does not flash a console window when the
// caller is a GUI or a detached process.
func command(ctx context.Context, exe string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: windows.CREATE_NO_WINDOW}
	return cmd
}
