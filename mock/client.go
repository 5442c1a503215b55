package mock

import (
	"context"
	"net/url"

	"github.com/fwojciec/corpus"
)

var _ corpus.APIClient = (*APIClient)(nil)

// APIClient is a mock implementation of corpus.APIClient.
type APIClient struct {
	GetJSONFn func(ctx context.Context, path string, params url.Values, v any) error
}

func (c *APIClient) GetJSON(ctx context.Context, path string, params url.Values, v any) error {
	return c.GetJSONFn(ctx, path, params, v)
}
