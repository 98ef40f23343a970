package sigsci_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sigsci "github.com/tphakala/go-sigsci"
)

func makeSeq[T any](items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

func makeSeqWithError[T any](items []T, errAt int, err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i, item := range items {
			if i == errAt {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func TestCollect(t *testing.T) {
	t.Run("collects all items", func(t *testing.T) {
		seq := makeSeq([]int{1, 2, 3, 4, 5})

		result, err := sigsci.Collect(seq)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, result)
	})

	t.Run("stops on error", func(t *testing.T) {
		testErr := errors.New("test error")
		seq := makeSeqWithError([]int{1, 2, 3, 4, 5}, 3, testErr)

		result, err := sigsci.Collect(seq)
		require.ErrorIs(t, err, testErr)
		assert.Equal(t, []int{1, 2, 3}, result)
	})

	t.Run("handles empty sequence", func(t *testing.T) {
		seq := makeSeq([]int{})

		result, err := sigsci.Collect(seq)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestFirst(t *testing.T) {
	t.Run("returns first item", func(t *testing.T) {
		seq := makeSeq([]string{"a", "b", "c"})

		result, err := sigsci.First(seq)
		require.NoError(t, err)
		assert.Equal(t, "a", result)
	})

	t.Run("returns error for empty iterator", func(t *testing.T) {
		seq := makeSeq([]string{})

		_, err := sigsci.First(seq)
		require.Error(t, err)
		assert.ErrorIs(t, err, sigsci.ErrEmptyIterator)
	})

	t.Run("returns error if first item errors", func(t *testing.T) {
		testErr := errors.New("test error")
		seq := makeSeqWithError([]string{"a"}, 0, testErr)

		_, err := sigsci.First(seq)
		require.ErrorIs(t, err, testErr)
	})
}
