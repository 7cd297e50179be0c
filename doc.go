// Package nucleardata implements the dynamically growing in-memory containers backing a
// nuclear data access library: a growable byte string, a growable float vector, a
// string-keyed float dictionary and an energy/cross-section table with sorted lookup and
// linear interpolation.
//
// All four containers share the same hybrid growth policy (doubling below one MiB worth of
// elements, fixed one MiB increments above) and the same error taxonomy (InvalidArgument,
// OutOfRange, AllocationFailure). Numeric accessors additionally return a reserved sentinel
// on failure: math.MaxFloat32 for Vector and Dict, -1.0 for Xsec. Callers must check the
// error return before consuming a value.
//
// The containers perform no internal locking. Concurrent reads of one instance are safe,
// any mutation racing with another access to the same instance is not; callers needing
// shared access must supply their own synchronization.
package nucleardata
