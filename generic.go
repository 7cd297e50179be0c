package nucleardata

// Container - Closed interface implemented by all four container types (String, Vector,
// Dict and Xsec). It gives callers one uniform entry point for size, capacity and release
// regardless of the concrete container at hand.
type Container interface {
	// Size - Returns the current number of stored elements. For Dict this is the number
	// of occupied buckets, use Pairs for the number of stored key/value pairs.
	Size() int

	// Alloc - Returns the currently allocated capacity. For String this includes the
	// terminator byte, for Dict it is the total bucket count.
	Alloc() int

	// Free - Releases the container's backing storage. A freed container rejects every
	// later operation with an InvalidArgument error. A second Free is a logged no-op.
	Free()
}

// Size - Returns the current number of stored elements of any container type
func Size(c Container) int {
	return c.Size()
}

// Alloc - Returns the currently allocated capacity of any container type
func Alloc(c Container) int {
	return c.Alloc()
}

// FreeData - Releases the backing storage of any container type
func FreeData(c Container) {
	c.Free()
}
