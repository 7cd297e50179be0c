package nucleardata

import (
	"math"

	"github.com/gostonefire/nucleardata/internal/growth"
)

// FloatSentinel - Reserved value returned by failing Vector and Dict accessors. It is the
// maximum representable float32 and therefore numerically indistinguishable from a
// legitimately stored maximum value; callers must check the error return to disambiguate.
const FloatSentinel = math.MaxFloat32

// Vector - A dynamically growing array of float32 values supporting insertion and removal
// at arbitrary positions. Pushing and popping at the back is O(1) amortized; front and
// interior operations shift the unaffected elements with a block move and are O(n).
type Vector struct {
	data  []float32
	len   int
	alloc int
}

// NewVector - Returns a new empty Vector with a caller chosen initial capacity.
//   - initialAlloc is the initial capacity in elements, it can not be negative
//
// It returns:
//   - vec is a pointer to a Vector
//   - err is an AllocationFailure error if initialAlloc is negative
func NewVector(initialAlloc int) (vec *Vector, err error) {
	if initialAlloc < 0 {
		err = AllocationFailure{msg: "negative capacity passed to NewVector"}
		logger.Error("allocation failure in NewVector", "requested", initialAlloc)
		return
	}

	vec = &Vector{
		data:  make([]float32, initialAlloc),
		len:   0,
		alloc: initialAlloc,
	}

	return
}

// freed - Reports whether the backing array has been released. A zero capacity Vector
// from NewVector still has a non nil (empty) backing slice, so nil data is unambiguous.
func (V *Vector) freed() bool {
	return V.data == nil
}

// grow - Reallocates the backing array to the next capacity from the growth policy.
// Called only when length has reached capacity, so one step always suffices.
func (V *Vector) grow() {
	newAlloc := growth.Next(V.alloc)
	data := make([]float32, newAlloc)
	copy(data, V.data[:V.len])
	V.data = data
	V.alloc = newAlloc
}

// PushBack - Appends a value at the end of the Vector, growing it when full.
//   - value is the float value to append
//
// It returns:
//   - err is an InvalidArgument error if the Vector is freed or nil
func (V *Vector) PushBack(value float32) (err error) {
	if V == nil || V.freed() {
		err = InvalidArgument{msg: "invalid vector passed to PushBack"}
		logger.Error("invalid argument in PushBack", "reason", "freed or nil vector")
		return
	}

	if V.len == V.alloc {
		V.grow()
	}

	V.data[V.len] = value
	V.len++

	return
}

// PushFront - Inserts a value at the beginning of the Vector, shifting all existing
// elements one position to the right.
//   - value is the float value to insert
//
// It returns:
//   - err is an InvalidArgument error if the Vector is freed or nil
func (V *Vector) PushFront(value float32) (err error) {
	if V == nil || V.freed() {
		err = InvalidArgument{msg: "invalid vector passed to PushFront"}
		logger.Error("invalid argument in PushFront", "reason", "freed or nil vector")
		return
	}

	if V.len == V.alloc {
		V.grow()
	}

	copy(V.data[1:V.len+1], V.data[:V.len])
	V.data[0] = value
	V.len++

	return
}

// Insert - Inserts a value at the given index, shifting the elements from index onwards
// one position to the right. Index 0 is equivalent to PushFront and index Size() to
// PushBack.
//   - value is the float value to insert
//   - index is the position to insert at, 0 <= index <= Size()
//
// It returns:
//   - err is an InvalidArgument error if the Vector is freed or nil, or an OutOfRange error if index > Size()
func (V *Vector) Insert(value float32, index int) (err error) {
	if V == nil || V.freed() {
		err = InvalidArgument{msg: "invalid vector passed to Insert"}
		logger.Error("invalid argument in Insert", "reason", "freed or nil vector")
		return
	}
	if index < 0 || index > V.len {
		err = OutOfRange{msg: "index out of range in Insert"}
		logger.Error("out of range in Insert", "index", index, "length", V.len)
		return
	}

	if index == 0 {
		return V.PushFront(value)
	}
	if index == V.len {
		return V.PushBack(value)
	}

	if V.len == V.alloc {
		V.grow()
	}

	copy(V.data[index+1:V.len+1], V.data[index:V.len])
	V.data[index] = value
	V.len++

	return
}

// PopBack - Removes the last element and returns its value.
//
// It returns:
//   - value is the removed float value, or FloatSentinel on error
//   - err is an InvalidArgument error if the Vector is freed, nil or empty
func (V *Vector) PopBack() (value float32, err error) {
	if V == nil || V.freed() || V.len == 0 {
		value = FloatSentinel
		err = InvalidArgument{msg: "invalid or empty vector passed to PopBack"}
		logger.Error("invalid argument in PopBack", "reason", "freed, nil or empty vector")
		return
	}

	V.len--
	value = V.data[V.len]

	return
}

// PopFront - Removes the first element and returns its value, shifting the remaining
// elements one position to the left.
//
// It returns:
//   - value is the removed float value, or FloatSentinel on error
//   - err is an InvalidArgument error if the Vector is freed, nil or empty
func (V *Vector) PopFront() (value float32, err error) {
	if V == nil || V.freed() || V.len == 0 {
		value = FloatSentinel
		err = InvalidArgument{msg: "invalid or empty vector passed to PopFront"}
		logger.Error("invalid argument in PopFront", "reason", "freed, nil or empty vector")
		return
	}

	value = V.data[0]
	copy(V.data[:V.len-1], V.data[1:V.len])
	V.len--

	return
}

// PopAny - Removes the element at the given index and returns its value, shifting the
// tail one position to the left. Boundary indices delegate to PopFront and PopBack.
//   - index is the position to remove from, 0 <= index < Size()
//
// It returns:
//   - value is the removed float value, or FloatSentinel on error
//   - err is an InvalidArgument error if the Vector is freed, nil or empty, or an OutOfRange error if index >= Size()
func (V *Vector) PopAny(index int) (value float32, err error) {
	if V == nil || V.freed() || V.len == 0 {
		value = FloatSentinel
		err = InvalidArgument{msg: "invalid or empty vector passed to PopAny"}
		logger.Error("invalid argument in PopAny", "reason", "freed, nil or empty vector")
		return
	}
	if index < 0 || index >= V.len {
		value = FloatSentinel
		err = OutOfRange{msg: "index out of range in PopAny"}
		logger.Error("out of range in PopAny", "index", index, "length", V.len)
		return
	}

	if index == 0 {
		return V.PopFront()
	}
	if index == V.len-1 {
		return V.PopBack()
	}

	value = V.data[index]
	copy(V.data[index:V.len-1], V.data[index+1:V.len])
	V.len--

	return
}

// Get - Returns the value at the given index without removing it.
//   - index is the position to read, 0 <= index < Size()
//
// It returns:
//   - value is the stored float value, or FloatSentinel on error
//   - err is an InvalidArgument error if the Vector is freed or nil, or an OutOfRange error if index >= Size()
func (V *Vector) Get(index int) (value float32, err error) {
	if V == nil || V.freed() {
		value = FloatSentinel
		err = InvalidArgument{msg: "invalid vector passed to Get"}
		logger.Error("invalid argument in Get", "reason", "freed or nil vector")
		return
	}
	if index < 0 || index >= V.len {
		value = FloatSentinel
		err = OutOfRange{msg: "index out of range in Get"}
		logger.Error("out of range in Get", "index", index, "length", V.len)
		return
	}

	value = V.data[index]

	return
}

// Copy - Returns a deep copy of the Vector preserving both contents and allocation.
//
// It returns:
//   - cp is a pointer to a new Vector with the same contents and allocation
//   - err is an InvalidArgument error if the Vector is freed or nil
func (V *Vector) Copy() (cp *Vector, err error) {
	if V == nil || V.freed() {
		err = InvalidArgument{msg: "invalid vector passed to Copy"}
		logger.Error("invalid argument in Copy", "reason", "freed or nil vector")
		return
	}

	data := make([]float32, V.alloc)
	copy(data, V.data[:V.len])

	cp = &Vector{
		data:  data,
		len:   V.len,
		alloc: V.alloc,
	}

	return
}

// Size - Returns the current number of elements
func (V *Vector) Size() int {
	if V == nil || V.freed() {
		logger.Error("invalid vector passed to Size")
		return 0
	}
	return V.len
}

// Alloc - Returns the currently allocated capacity in elements
func (V *Vector) Alloc() int {
	if V == nil || V.freed() {
		logger.Error("invalid vector passed to Alloc")
		return 0
	}
	return V.alloc
}

// Free - Releases the backing array. Any later operation on the Vector fails with an
// InvalidArgument error. A second Free is a well-defined no-op that logs a warning.
func (V *Vector) Free() {
	if V == nil || V.freed() {
		logger.Warn("vector already freed, possible double free")
		return
	}
	V.data = nil
	V.len = 0
	V.alloc = 0
}
