package sigsci

import (
	"context"
	"iter"
)

// CorpService provides operations on corps (organizational accounts).
type CorpService interface {
	// List returns an iterator over all corps visible to the
	// authenticated user. The vendor API returns the complete
	// collection in a single response; there is no pagination.
	List(ctx context.Context, opts ...RequestOption) iter.Seq2[*Corp, error]
}

// corpService implements CorpService.
type corpService struct {
	client *Client
}

func newCorpService(client *Client) *corpService {
	return &corpService{client: client}
}

// List returns an iterator over all corps.
func (s *corpService) List(ctx context.Context, opts ...RequestOption) iter.Seq2[*Corp, error] {
	return func(yield func(*Corp, error) bool) {
		body, err := s.client.Fetch(ctx, "/corps", opts...)
		if err != nil {
			yield(nil, err)
			return
		}

		corps, err := decodeList[Corp]("/corps", body)
		if err != nil {
			yield(nil, err)
			return
		}

		yieldItems(ctx, corps, yield)
	}
}

// yieldItems yields each element of items sequentially, stopping when
// the context is cancelled or the consumer breaks out.
func yieldItems[T any](ctx context.Context, items []T, yield func(*T, error) bool) {
	for i := range items {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}
		if !yield(&items[i], nil) {
			return
		}
	}
}
