package skim_test

import (
	"testing"

	"github.com/fwojciec/skim"
	"github.com/stretchr/testify/assert"
)

func TestIntersectionScore(t *testing.T) {
	t.Parallel()

	t.Run("identical sentences score 100", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 100, skim.IntersectionScore("the quick brown fox", "the quick brown fox"))
	})

	t.Run("empty sentences score 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, skim.IntersectionScore("", ""))
	})

	t.Run("empty sentence against non-empty scores 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, skim.IntersectionScore("", "hello"))
		assert.Equal(t, 0, skim.IntersectionScore("hello", ""))
	})

	t.Run("disjoint sentences score 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, skim.IntersectionScore("alpha beta", "gamma delta"))
	})

	t.Run("is symmetric", func(t *testing.T) {
		t.Parallel()

		a := "the cat sat on the mat"
		b := "the dog sat on the rug"

		assert.Equal(t, skim.IntersectionScore(a, b), skim.IntersectionScore(b, a))
	})

	t.Run("normalizes by the average set size", func(t *testing.T) {
		t.Parallel()

		// Sets {The,cat,sat} and {The,cat,ran}: overlap 2, average 3.
		assert.Equal(t, 66, skim.IntersectionScore("The cat sat", "The cat ran"))
	})

	t.Run("truncates at both the multiply and divide steps", func(t *testing.T) {
		t.Parallel()

		// Sets sized 5 and 1: average (5+1)/2 = 3, overlap 1, 100/3 = 33.
		assert.Equal(t, 33, skim.IntersectionScore("a b c d e", "a"))
	})

	t.Run("truncates the average size", func(t *testing.T) {
		t.Parallel()

		// Sets sized 2 and 1: average (2+1)/2 truncates to 1, overlap 1.
		assert.Equal(t, 100, skim.IntersectionScore("a b", "a"))
	})

	t.Run("collapses duplicate tokens within a sentence", func(t *testing.T) {
		t.Parallel()

		// "a a a b" has the set {a,b}, same as "a b".
		assert.Equal(t, 100, skim.IntersectionScore("a a a b", "a b"))
	})

	t.Run("keeps empty tokens produced by consecutive spaces", func(t *testing.T) {
		t.Parallel()

		// Both sets contain the empty token from the double space:
		// {a,"",b} and {c,"",d}, overlap 1, average 3.
		assert.Equal(t, 33, skim.IntersectionScore("a  b", "c  d"))
	})
}
