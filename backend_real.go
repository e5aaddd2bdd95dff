//go:build !wslutilsmock

package wslutils

import (
	"context"

	"github.com/crispd/wsl-utils/internal/backend"
	"github.com/crispd/wsl-utils/internal/backend/windows"
)

// MockAvailable indicates if the mock back-end has been compiled in.
func MockAvailable() bool {
	return false
}

func selectBackend(ctx context.Context) backend.Backend {
	return windows.Backend{}
}
