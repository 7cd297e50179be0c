//go:build unit

package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	t.Run("starts from one when empty", func(t *testing.T) {
		// Execute
		next := Next(0)

		// Check
		assert.Equal(t, 1, next, "zero capacity grows to one")
	})

	t.Run("doubles below the threshold", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, 8, Next(4), "doubles small capacities")
		assert.Equal(t, Threshold, Next(Threshold/2), "doubles right up to the threshold")
	})

	t.Run("adds a fixed amount at and above the threshold", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, Threshold+FixedAmount, Next(Threshold), "fixed increment at the threshold")
		assert.Equal(t, 3*FixedAmount, Next(2*FixedAmount), "fixed increment above the threshold")
	})

	t.Run("one step always covers one more element", func(t *testing.T) {
		// Execute and Check
		for alloc := 0; alloc < 100; alloc = Next(alloc) {
			assert.Greater(t, Next(alloc), alloc, "growth is strictly increasing")
		}
	})
}
