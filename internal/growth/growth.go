// Package growth holds the capacity policy shared by the dynamic containers.
package growth

// Threshold - Allocation size at which growth switches from doubling to fixed increments
const Threshold = 1 << 20

// FixedAmount - Number of elements added per growth step above the threshold
const FixedAmount = 1 << 20

// Next - Returns the capacity to reallocate to, given the current capacity. Below the
// threshold capacity doubles (starting from 1 when empty), above it a fixed amount is
// added. One call makes one growth step; containers only grow when length has reached
// capacity, so a single step always covers the element being inserted.
func Next(alloc int) int {
	if alloc == 0 {
		return 1
	}
	if alloc < Threshold {
		return alloc * 2
	}
	return alloc + FixedAmount
}
