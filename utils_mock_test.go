//go:build wslutilsmock

// This file contains the implementation of testutils geared towards the mock back-end.

package wslutils_test

import (
	"context"
	"testing"

	wsl "github.com/crispd/wsl-utils"
	"github.com/crispd/wsl-utils/mock"
)

// setupBackend creates a mock back-end with the given distros registered, and a
// context that will instruct wsl-utils to use it.
//
//nolint:revive // No, I wont' put the context before the *testing.T.
func setupBackend(t *testing.T, ctx context.Context, distros ...mock.Distro) (context.Context, *mock.Backend) {
	t.Helper()

	m := mock.New(distros...)
	return wsl.WithMock(ctx, m), m
}
