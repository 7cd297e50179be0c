package nucleardata

// InvalidArgument - Custom error to inform that an operation was given an argument it can not
// act on, e.g. a freed container, an empty input string, a duplicate key on insert or an
// absent key on update/pop/get.
type InvalidArgument struct {
	msg string
}

// Error - Used to notify that an invalid argument was passed
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Lets errors.Is match on the error category regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// OutOfRange - Custom error to inform that an index was outside the current length of a
// container, or that an interpolation query fell outside the stored energy span.
type OutOfRange struct {
	msg string
}

// Error - Used to notify that an index or query was out of range
func (E OutOfRange) Error() string {
	if E.msg == "" {
		return "out of range"
	}
	return E.msg
}

// Is - Lets errors.Is match on the error category regardless of message
func (E OutOfRange) Is(target error) bool {
	_, ok := target.(OutOfRange)
	return ok
}

// AllocationFailure - Custom error to inform that a requested allocation size could not be
// honored. The Go runtime aborts rather than failing on memory exhaustion, so in practice
// this reports detectable size misuse such as a negative or overflowing capacity request.
type AllocationFailure struct {
	msg string
}

// Error - Used to notify that an allocation request failed
func (E AllocationFailure) Error() string {
	if E.msg == "" {
		return "allocation failure"
	}
	return E.msg
}

// Is - Lets errors.Is match on the error category regardless of message
func (E AllocationFailure) Is(target error) bool {
	_, ok := target.(AllocationFailure)
	return ok
}
