package nucleardata

// String - A dynamically growing byte string. The backing buffer always carries a NUL
// terminator after the last content byte, so Alloc is always at least Size+1. Unlike the
// float containers, concatenation sizes the buffer exactly to the new requirement plus
// terminator rather than over-allocating through the growth policy.
type String struct {
	data  []byte
	len   int
	alloc int
}

// NewString - Returns a new String initialized with a copy of the contents of str.
//   - str is the initial contents, it can not be empty
//
// It returns:
//   - s is a pointer to a String
//   - err is an InvalidArgument error if str is empty
func NewString(str string) (s *String, err error) {
	if str == "" {
		err = InvalidArgument{msg: "empty string passed to NewString"}
		logger.Error("invalid argument in NewString", "reason", "empty input")
		return
	}

	data := make([]byte, len(str)+1)
	copy(data, str)

	s = &String{
		data:  data,
		len:   len(str),
		alloc: len(str) + 1,
	}

	return
}

// valid - Reports whether the String is usable, i.e. non nil and not freed
func (S *String) valid() bool {
	return S != nil && S.data != nil
}

// Get - Returns the stored contents, or the empty string if the String is freed
func (S *String) Get() string {
	if !S.valid() {
		logger.Error("invalid string passed to Get")
		return ""
	}
	return string(S.data[:S.len])
}

// ConcatLiteral - Appends the contents of str to the String. The buffer is reallocated
// exactly to the new length plus terminator when it is too small.
//   - str is the string to append, it can not be empty
//
// It returns:
//   - err is an InvalidArgument error if the String is freed or str is empty
func (S *String) ConcatLiteral(str string) (err error) {
	if !S.valid() {
		err = InvalidArgument{msg: "invalid string passed to ConcatLiteral"}
		logger.Error("invalid argument in ConcatLiteral", "reason", "freed or nil string")
		return
	}
	if str == "" {
		err = InvalidArgument{msg: "empty string passed to ConcatLiteral"}
		logger.Error("invalid argument in ConcatLiteral", "reason", "empty input")
		return
	}

	needed := S.len + len(str) + 1
	if needed > S.alloc {
		data := make([]byte, needed)
		copy(data, S.data[:S.len])
		S.data = data
		S.alloc = needed
	}

	copy(S.data[S.len:], str)
	S.len += len(str)
	S.data[S.len] = 0

	return
}

// Concat - Appends the contents of another String to the String.
//   - other is the String to append
//
// It returns:
//   - err is an InvalidArgument error if either String is freed or nil
func (S *String) Concat(other *String) (err error) {
	if !other.valid() {
		err = InvalidArgument{msg: "invalid string passed to Concat"}
		logger.Error("invalid argument in Concat", "reason", "freed or nil source string")
		return
	}

	return S.ConcatLiteral(string(other.data[:other.len]))
}

// Reserve - Grows the backing buffer to newAlloc bytes (including terminator) to avoid
// repeated reallocation during a series of concatenations. Reserving less than or equal to
// the current allocation is rejected.
//   - newAlloc is the buffer length to allocate, it must exceed Alloc()
//
// It returns:
//   - err is an InvalidArgument error if the String is freed or newAlloc is not larger than the current allocation
func (S *String) Reserve(newAlloc int) (err error) {
	if !S.valid() {
		err = InvalidArgument{msg: "invalid string passed to Reserve"}
		logger.Error("invalid argument in Reserve", "reason", "freed or nil string")
		return
	}
	if newAlloc <= S.alloc {
		err = InvalidArgument{msg: "reserve request does not exceed current allocation"}
		logger.Error("invalid argument in Reserve", "current", S.alloc, "requested", newAlloc)
		return
	}

	data := make([]byte, newAlloc)
	copy(data, S.data[:S.len+1])
	S.data = data
	S.alloc = newAlloc

	return
}

// CompareLiteral - Compares the String with str byte-wise lexicographically. Where one is
// a prefix of the other the difference in length decides the ordering.
//   - str is the string to compare with
//
// It returns:
//   - order is negative, zero or positive as the String sorts before, equal to or after str
//   - err is an InvalidArgument error if the String is freed or nil
func (S *String) CompareLiteral(str string) (order int, err error) {
	if !S.valid() {
		err = InvalidArgument{msg: "invalid string passed to CompareLiteral"}
		logger.Error("invalid argument in CompareLiteral", "reason", "freed or nil string")
		return
	}

	n := S.len
	if len(str) < n {
		n = len(str)
	}
	for i := 0; i < n; i++ {
		if S.data[i] != str[i] {
			order = int(S.data[i]) - int(str[i])
			return
		}
	}

	order = S.len - len(str)
	return
}

// Compare - Compares the String with another String byte-wise lexicographically, with
// ties on a common prefix broken by the difference in length.
//   - other is the String to compare with
//
// It returns:
//   - order is negative, zero or positive as the String sorts before, equal to or after other
//   - err is an InvalidArgument error if either String is freed or nil
func (S *String) Compare(other *String) (order int, err error) {
	if !other.valid() {
		err = InvalidArgument{msg: "invalid string passed to Compare"}
		logger.Error("invalid argument in Compare", "reason", "freed or nil source string")
		return
	}

	return S.CompareLiteral(string(other.data[:other.len]))
}

// Copy - Returns a deep copy of the String. The copy preserves the source allocation, not
// just the source length.
//
// It returns:
//   - cp is a pointer to a new String with the same contents and allocation
//   - err is an InvalidArgument error if the String is freed or nil
func (S *String) Copy() (cp *String, err error) {
	if !S.valid() {
		err = InvalidArgument{msg: "invalid string passed to Copy"}
		logger.Error("invalid argument in Copy", "reason", "freed or nil string")
		return
	}

	data := make([]byte, S.alloc)
	copy(data, S.data[:S.len+1])

	cp = &String{
		data:  data,
		len:   S.len,
		alloc: S.alloc,
	}

	return
}

// Size - Returns the current length in bytes, excluding the terminator
func (S *String) Size() int {
	if !S.valid() {
		logger.Error("invalid string passed to Size")
		return 0
	}
	return S.len
}

// Alloc - Returns the allocated buffer length in bytes, including the terminator
func (S *String) Alloc() int {
	if !S.valid() {
		logger.Error("invalid string passed to Alloc")
		return 0
	}
	return S.alloc
}

// Free - Releases the backing buffer. Any later operation on the String fails with an
// InvalidArgument error. A second Free is a well-defined no-op that logs a warning.
func (S *String) Free() {
	if S == nil || S.data == nil {
		logger.Warn("string already freed, possible double free")
		return
	}
	S.data = nil
	S.len = 0
	S.alloc = 0
}
