package nucleardata

import (
	"github.com/gostonefire/nucleardata/internal/growth"
)

// XsecSentinel - Reserved value returned by failing Xsec accessors and by Interp on error.
// Cross sections are never negative, so the sentinel is outside the value domain.
const XsecSentinel float32 = -1.0

// XsecData - A single pair of cross-section and energy values read from an Xsec table
type XsecData struct {
	XS     float32
	Energy float32
}

// Xsec - A table of neutron cross sections over energy, stored as two parallel dynamically
// growing float32 arrays. The caller contract is that energies are pushed in ascending
// order; the table does not verify this and lookup results are undefined when it is
// violated. Both arrays grow together in one combined step, so no inconsistent
// intermediate state between them can be observed.
type Xsec struct {
	xs     []float32
	energy []float32
	len    int
	alloc  int
}

// NewXsec - Returns a new empty Xsec table with a caller chosen initial capacity.
//   - initialAlloc is the initial capacity in pairs, it can not be negative
//
// It returns:
//   - xsec is a pointer to an Xsec table
//   - err is an AllocationFailure error if initialAlloc is negative
func NewXsec(initialAlloc int) (xsec *Xsec, err error) {
	if initialAlloc < 0 {
		err = AllocationFailure{msg: "negative capacity passed to NewXsec"}
		logger.Error("allocation failure in NewXsec", "requested", initialAlloc)
		return
	}

	xsec = &Xsec{
		xs:     make([]float32, initialAlloc),
		energy: make([]float32, initialAlloc),
		len:    0,
		alloc:  initialAlloc,
	}

	return
}

// freed - Reports whether the backing arrays have been released
func (X *Xsec) freed() bool {
	return X.xs == nil || X.energy == nil
}

// Push - Appends a cross-section and its energy to the table, growing both parallel
// arrays together when full. The new capacity is computed once and the struct is updated
// only after both arrays are in place.
//   - xs is the cross-section value to append
//   - energy is the energy value to append, the caller keeps energies ascending
//
// It returns:
//   - err is an InvalidArgument error if the table is freed or nil
func (X *Xsec) Push(xs, energy float32) (err error) {
	if X == nil || X.freed() {
		err = InvalidArgument{msg: "invalid xsec table passed to Push"}
		logger.Error("invalid argument in Push", "reason", "freed or nil xsec table")
		return
	}

	if X.len == X.alloc {
		newAlloc := growth.Next(X.alloc)
		newXS := make([]float32, newAlloc)
		newEnergy := make([]float32, newAlloc)
		copy(newXS, X.xs[:X.len])
		copy(newEnergy, X.energy[:X.len])
		X.xs = newXS
		X.energy = newEnergy
		X.alloc = newAlloc
	}

	X.xs[X.len] = xs
	X.energy[X.len] = energy
	X.len++

	return
}

// validIndex - Checks the table and index, reporting the categorized error on failure
func (X *Xsec) validIndex(index int, op string) (err error) {
	if X == nil || X.freed() {
		err = InvalidArgument{msg: "invalid xsec table passed to " + op}
		logger.Error("invalid argument in "+op, "reason", "freed or nil xsec table")
		return
	}
	if index < 0 || index >= X.len {
		err = OutOfRange{msg: "index out of range in " + op}
		logger.Error("out of range in "+op, "index", index, "length", X.len)
		return
	}
	return
}

// Get - Returns the cross-section value at the given index.
//   - index is the position to read, 0 <= index < Size()
//
// It returns:
//   - xs is the stored cross-section value, or XsecSentinel on error
//   - err is an InvalidArgument error if the table is freed or nil, or an OutOfRange error if index >= Size()
func (X *Xsec) Get(index int) (xs float32, err error) {
	if err = X.validIndex(index, "Get"); err != nil {
		xs = XsecSentinel
		return
	}
	xs = X.xs[index]
	return
}

// GetEnergy - Returns the energy value at the given index.
//   - index is the position to read, 0 <= index < Size()
//
// It returns:
//   - energy is the stored energy value, or XsecSentinel on error
//   - err is an InvalidArgument error if the table is freed or nil, or an OutOfRange error if index >= Size()
func (X *Xsec) GetEnergy(index int) (energy float32, err error) {
	if err = X.validIndex(index, "GetEnergy"); err != nil {
		energy = XsecSentinel
		return
	}
	energy = X.energy[index]
	return
}

// GetData - Returns the cross-section and energy pair at the given index.
//   - index is the position to read, 0 <= index < Size()
//
// It returns:
//   - data is the stored pair, or a pair of XsecSentinel values on error
//   - err is an InvalidArgument error if the table is freed or nil, or an OutOfRange error if index >= Size()
func (X *Xsec) GetData(index int) (data XsecData, err error) {
	if err = X.validIndex(index, "GetData"); err != nil {
		data = XsecData{XS: XsecSentinel, Energy: XsecSentinel}
		return
	}
	data = XsecData{XS: X.xs[index], Energy: X.energy[index]}
	return
}

// Interp - Returns the cross section for the given energy. An energy matching a stored
// value exactly returns the stored cross section directly; an energy between two stored
// values returns the linear interpolation between their cross sections. No extrapolation
// is performed outside the stored energy span.
//   - energy is the energy to look up, min stored energy <= energy <= max stored energy
//
// It returns:
//   - xs is the exact or interpolated cross-section value, or XsecSentinel on error
//   - err is an InvalidArgument error if the table is freed, nil or empty, or an OutOfRange error if energy is outside the stored span
func (X *Xsec) Interp(energy float32) (xs float32, err error) {
	if X == nil || X.freed() {
		xs = XsecSentinel
		err = InvalidArgument{msg: "invalid xsec table passed to Interp"}
		logger.Error("invalid argument in Interp", "reason", "freed or nil xsec table")
		return
	}
	if X.len == 0 {
		xs = XsecSentinel
		err = InvalidArgument{msg: "empty xsec table passed to Interp"}
		logger.Error("invalid argument in Interp", "reason", "empty xsec table")
		return
	}
	if energy < X.energy[0] || energy > X.energy[X.len-1] {
		xs = XsecSentinel
		err = OutOfRange{msg: "energy outside stored span in Interp"}
		logger.Error("out of range in Interp", "energy", energy,
			"min", X.energy[0], "max", X.energy[X.len-1])
		return
	}

	low, high := 0, X.len-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case X.energy[mid] == energy:
			// Exact match, no interpolation arithmetic
			xs = X.xs[mid]
			return
		case X.energy[mid] < energy:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	// No exact match: the search left high and low as the adjacent indices bracketing
	// the query, high == low-1
	lower, upper := high, low
	fraction := (energy - X.energy[lower]) / (X.energy[upper] - X.energy[lower])
	xs = X.xs[lower] + (X.xs[upper]-X.xs[lower])*fraction

	return
}

// XS - Returns a read-only borrowed view of the cross-section array. The view is valid
// only while the table is alive and unmutated; callers must not retain it across a Push
// or Free and must not write through it.
func (X *Xsec) XS() []float32 {
	if X == nil || X.freed() {
		logger.Error("invalid xsec table passed to XS")
		return nil
	}
	return X.xs[:X.len]
}

// Energies - Returns a read-only borrowed view of the energy array, under the same
// validity conditions as XS.
func (X *Xsec) Energies() []float32 {
	if X == nil || X.freed() {
		logger.Error("invalid xsec table passed to Energies")
		return nil
	}
	return X.energy[:X.len]
}

// Size - Returns the current number of stored pairs
func (X *Xsec) Size() int {
	if X == nil || X.freed() {
		logger.Error("invalid xsec table passed to Size")
		return 0
	}
	return X.len
}

// Alloc - Returns the currently allocated capacity in pairs
func (X *Xsec) Alloc() int {
	if X == nil || X.freed() {
		logger.Error("invalid xsec table passed to Alloc")
		return 0
	}
	return X.alloc
}

// Free - Releases both backing arrays. Any later operation on the table fails with an
// InvalidArgument error. A second Free is a well-defined no-op that logs a warning.
func (X *Xsec) Free() {
	if X == nil || X.freed() {
		logger.Warn("xsec table already freed, possible double free")
		return
	}
	X.xs = nil
	X.energy = nil
	X.len = 0
	X.alloc = 0
}
