//go:build unit

package nucleardata

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVector(t *testing.T) {
	t.Run("creates empty vector with requested capacity", func(t *testing.T) {
		// Execute
		vec, err := NewVector(4)

		// Check
		assert.NoError(t, err, "creates vector")
		assert.Equal(t, 0, vec.Size(), "empty")
		assert.Equal(t, 4, vec.Alloc(), "requested capacity")
	})

	t.Run("error when capacity is negative", func(t *testing.T) {
		// Execute
		_, err := NewVector(-1)

		// Check
		assert.True(t, errors.Is(err, AllocationFailure{}), "allocation failure error")
	})
}

func TestVectorPushBack(t *testing.T) {
	t.Run("doubles capacity once when full", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")

		// Execute
		for i := 0; i < 5; i++ {
			err = vec.PushBack(float32(i))
			assert.NoError(t, err, "pushes element")
			assert.LessOrEqual(t, vec.Size(), vec.Alloc(), "length within capacity after every push")
		}

		// Check
		assert.Equal(t, 5, vec.Size(), "five elements")
		assert.Equal(t, 8, vec.Alloc(), "single doubling from four to eight")
	})

	t.Run("push then pop restores contents and length", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")
		for _, v := range []float32{1.1, 2.2, 3.3} {
			err = vec.PushBack(v)
			assert.NoError(t, err, "pushes element")
		}

		// Execute
		err = vec.PushBack(4.4)
		assert.NoError(t, err, "pushes element")
		value, err := vec.PopBack()

		// Check
		assert.NoError(t, err, "pops element")
		assert.Equal(t, float32(4.4), value, "popped value matches pushed value")
		assert.Equal(t, 3, vec.Size(), "prior length restored")
		for i, want := range []float32{1.1, 2.2, 3.3} {
			got, err := vec.Get(i)
			assert.NoError(t, err, "gets element")
			assert.Equal(t, want, got, "prior contents restored")
		}
	})

	t.Run("grows from zero capacity", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(0)
		assert.NoError(t, err, "creates vector")

		// Execute
		err = vec.PushBack(1.0)

		// Check
		assert.NoError(t, err, "pushes element")
		assert.Equal(t, 1, vec.Size(), "one element")
		assert.Equal(t, 1, vec.Alloc(), "growth starts from one")
	})
}

func TestVectorPushFront(t *testing.T) {
	t.Run("inserts at the front shifting the rest", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")
		err = vec.PushBack(2.0)
		assert.NoError(t, err, "pushes element")
		err = vec.PushBack(3.0)
		assert.NoError(t, err, "pushes element")

		// Execute
		err = vec.PushFront(1.0)

		// Check
		assert.NoError(t, err, "pushes front")
		for i, want := range []float32{1.0, 2.0, 3.0} {
			got, err := vec.Get(i)
			assert.NoError(t, err, "gets element")
			assert.Equal(t, want, got, "correct order")
		}
	})
}

func TestVectorInsert(t *testing.T) {
	t.Run("boundary indices delegate to front and back pushes", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")
		err = vec.PushBack(2.0)
		assert.NoError(t, err, "pushes element")

		// Execute
		err = vec.Insert(1.0, 0)
		assert.NoError(t, err, "inserts at index zero")
		err = vec.Insert(4.0, vec.Size())
		assert.NoError(t, err, "inserts at index length")
		err = vec.Insert(3.0, 2)
		assert.NoError(t, err, "inserts at interior index")

		// Check
		for i, want := range []float32{1.0, 2.0, 3.0, 4.0} {
			got, err := vec.Get(i)
			assert.NoError(t, err, "gets element")
			assert.Equal(t, want, got, "correct order")
		}
	})

	t.Run("range error distinct from invalid argument", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")
		err = vec.PushBack(1.0)
		assert.NoError(t, err, "pushes element")

		// Execute
		errRange := vec.Insert(9.9, 5)
		var nilVec *Vector
		errInvalid := nilVec.PushBack(9.9)

		// Check
		assert.True(t, errors.Is(errRange, OutOfRange{}), "out of range on bad index")
		assert.False(t, errors.Is(errRange, InvalidArgument{}), "not an invalid argument error")
		assert.True(t, errors.Is(errInvalid, InvalidArgument{}), "invalid argument on nil vector")
		assert.Equal(t, 1, vec.Size(), "vector untouched on failure")
	})
}

func TestVectorPop(t *testing.T) {
	t.Run("pops front shifting the tail", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")
		for _, v := range []float32{1.0, 2.0, 3.0} {
			err = vec.PushBack(v)
			assert.NoError(t, err, "pushes element")
		}

		// Execute
		value, err := vec.PopFront()

		// Check
		assert.NoError(t, err, "pops front")
		assert.Equal(t, float32(1.0), value, "first value returned")
		assert.Equal(t, 2, vec.Size(), "length decremented")
		got, err := vec.Get(0)
		assert.NoError(t, err, "gets element")
		assert.Equal(t, float32(2.0), got, "tail shifted left")
	})

	t.Run("pops an interior index", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")
		for _, v := range []float32{1.0, 2.0, 3.0, 4.0} {
			err = vec.PushBack(v)
			assert.NoError(t, err, "pushes element")
		}

		// Execute
		value, err := vec.PopAny(1)

		// Check
		assert.NoError(t, err, "pops interior element")
		assert.Equal(t, float32(2.0), value, "correct value returned")
		for i, want := range []float32{1.0, 3.0, 4.0} {
			got, err := vec.Get(i)
			assert.NoError(t, err, "gets element")
			assert.Equal(t, want, got, "gap closed")
		}
	})

	t.Run("popping an empty vector is an invalid argument", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")

		// Execute
		value, err := vec.PopBack()

		// Check
		assert.True(t, errors.Is(err, InvalidArgument{}), "invalid argument error")
		assert.Equal(t, float32(FloatSentinel), value, "sentinel returned")
	})

	t.Run("pop index out of range", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")
		err = vec.PushBack(1.0)
		assert.NoError(t, err, "pushes element")

		// Execute
		value, err := vec.PopAny(3)

		// Check
		assert.True(t, errors.Is(err, OutOfRange{}), "out of range error")
		assert.Equal(t, float32(FloatSentinel), value, "sentinel returned")
		assert.Equal(t, 1, vec.Size(), "vector untouched on failure")
	})
}

func TestVectorGet(t *testing.T) {
	t.Run("sentinel is ambiguous with a stored maximum float", func(t *testing.T) {
		// A legitimately stored maximum float is numerically identical to the failure
		// sentinel, only the error return disambiguates. Known limitation.

		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")
		err = vec.PushBack(math.MaxFloat32)
		assert.NoError(t, err, "stores maximum float")

		// Execute
		stored, errStored := vec.Get(0)
		missing, errMissing := vec.Get(1)

		// Check
		assert.NoError(t, errStored, "stored maximum float reads back without error")
		assert.True(t, errors.Is(errMissing, OutOfRange{}), "missing index reports out of range")
		assert.Equal(t, stored, missing, "values alone can not be told apart")
	})
}

func TestVectorCopy(t *testing.T) {
	t.Run("copy preserves contents and capacity", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(8)
		assert.NoError(t, err, "creates vector")
		err = vec.PushBack(1.0)
		assert.NoError(t, err, "pushes element")

		// Execute
		cp, err := vec.Copy()

		// Check
		assert.NoError(t, err, "copies vector")
		assert.Equal(t, 1, cp.Size(), "contents copied")
		assert.Equal(t, 8, cp.Alloc(), "capacity preserved")

		err = cp.PushBack(2.0)
		assert.NoError(t, err, "pushes to copy")
		assert.Equal(t, 1, vec.Size(), "source untouched")
	})
}

func TestVectorFree(t *testing.T) {
	t.Run("operations on a freed vector fail", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")

		// Execute
		vec.Free()

		// Check
		err = vec.PushBack(1.0)
		assert.True(t, errors.Is(err, InvalidArgument{}), "push on freed vector fails")
		value, err := vec.Get(0)
		assert.True(t, errors.Is(err, InvalidArgument{}), "get on freed vector fails")
		assert.Equal(t, float32(FloatSentinel), value, "sentinel returned")
	})

	t.Run("double free is a harmless no-op", func(t *testing.T) {
		// Prepare
		vec, err := NewVector(4)
		assert.NoError(t, err, "creates vector")

		// Execute
		vec.Free()
		vec.Free()

		// Check
		assert.Equal(t, 0, vec.Alloc(), "still freed")
	})
}
