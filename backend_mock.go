//go:build wslutilsmock

package wslutils

import (
	"context"

	"github.com/crispd/wsl-utils/internal/backend"
	"github.com/crispd/wsl-utils/internal/backend/windows"
	"github.com/crispd/wsl-utils/mock"
)

type backendQueryType int

const backendQuery backendQueryType = 0

// MockAvailable indicates if the mock back-end has been compiled in.
func MockAvailable() bool {
	return true
}

// WithMock adds the mock back-end to the context.
func WithMock(ctx context.Context, backend *mock.Backend) context.Context {
	return context.WithValue(ctx, backendQuery, backend)
}

func selectBackend(ctx context.Context) backend.Backend {
	v := ctx.Value(backendQuery)

	if v == nil {
		return windows.Backend{}
	}

	//nolint: forcetypeassert // The panic is expected and welcome
	return v.(*mock.Backend)
}
