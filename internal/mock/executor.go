package mock

import (
	"context"

	"github.com/brogergvhs/erosscans/internal/providers"
)

var _ providers.Executor = (*Executor)(nil)

// Executor is a mock implementation of providers.Executor.
type Executor struct {
	ExecuteFn func(ctx context.Context, req providers.Request) (*providers.Response, error)
}

func (e *Executor) Execute(ctx context.Context, req providers.Request) (*providers.Response, error) {
	return e.ExecuteFn(ctx, req)
}

// HTML returns an Executor that serves body for every request and records
// the requests it saw.
func HTML(body string, seen *[]providers.Request) *Executor {
	return &Executor{
		ExecuteFn: func(_ context.Context, req providers.Request) (*providers.Response, error) {
			if seen != nil {
				*seen = append(*seen, req)
			}
			return &providers.Response{Status: 200, Body: []byte(body)}, nil
		},
	}
}
