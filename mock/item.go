package mock

import (
	"context"

	"github.com/fwojciec/corpus"
)

var _ corpus.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of corpus.ItemService.
type ItemService struct {
	FindItemsFn func(ctx context.Context, filter corpus.ItemFilter) ([]*corpus.Item, error)
}

func (s *ItemService) FindItems(ctx context.Context, filter corpus.ItemFilter) ([]*corpus.Item, error) {
	return s.FindItemsFn(ctx, filter)
}
