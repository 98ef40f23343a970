package sigsci

import (
	"context"
	"fmt"
	"iter"
	"net/url"
)

// CloudWAFService provides operations on managed cloud WAF instances.
type CloudWAFService interface {
	// List returns an iterator over all cloud WAF instances of the
	// named corp. The corp name is required; an empty value fails
	// before any network call is made.
	List(ctx context.Context, corpName string, opts ...RequestOption) iter.Seq2[*CloudWAFInstance, error]
}

// cloudWAFService implements CloudWAFService.
type cloudWAFService struct {
	client *Client
}

func newCloudWAFService(client *Client) *cloudWAFService {
	return &cloudWAFService{client: client}
}

// List returns an iterator over all cloud WAF instances of the named corp.
func (s *cloudWAFService) List(ctx context.Context, corpName string, opts ...RequestOption) iter.Seq2[*CloudWAFInstance, error] {
	return func(yield func(*CloudWAFInstance, error) bool) {
		if err := validateCorpName(corpName); err != nil {
			yield(nil, err)
			return
		}

		endpoint := fmt.Sprintf("/corps/%s/cloudwafInstances", url.PathEscape(corpName))
		body, err := s.client.Fetch(ctx, endpoint, opts...)
		if err != nil {
			yield(nil, err)
			return
		}

		instances, err := decodeList[CloudWAFInstance](endpoint, body)
		if err != nil {
			yield(nil, err)
			return
		}

		yieldItems(ctx, instances, yield)
	}
}
