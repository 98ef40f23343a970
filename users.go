package sigsci

import (
	"context"
	"fmt"
	"iter"
	"net/url"
)

// UserService provides operations on corp users.
type UserService interface {
	// List returns an iterator over all users of the named corp.
	// The corp name is required; an empty value fails before any
	// network call is made.
	List(ctx context.Context, corpName string, opts ...RequestOption) iter.Seq2[*User, error]
}

// userService implements UserService.
type userService struct {
	client *Client
}

func newUserService(client *Client) *userService {
	return &userService{client: client}
}

// validateCorpName checks that a corp identifier is not empty.
func validateCorpName(corpName string) error {
	if corpName == "" {
		return &ValidationError{Message: "corp name cannot be empty"}
	}
	return nil
}

// List returns an iterator over all users of the named corp.
func (s *userService) List(ctx context.Context, corpName string, opts ...RequestOption) iter.Seq2[*User, error] {
	return func(yield func(*User, error) bool) {
		if err := validateCorpName(corpName); err != nil {
			yield(nil, err)
			return
		}

		endpoint := fmt.Sprintf("/corps/%s/users", url.PathEscape(corpName))
		body, err := s.client.Fetch(ctx, endpoint, opts...)
		if err != nil {
			yield(nil, err)
			return
		}

		users, err := decodeList[User](endpoint, body)
		if err != nil {
			yield(nil, err)
			return
		}

		yieldItems(ctx, users, yield)
	}
}
