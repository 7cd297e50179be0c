package nucleardata

import (
	"github.com/gostonefire/nucleardata/hashfunc"
	"github.com/gostonefire/nucleardata/internal/growth"
	"github.com/gostonefire/nucleardata/internal/hash"
)

// initialBuckets is the bucket count every new Dict starts with
const initialBuckets = 16

// loadFactor is the pairs to buckets ratio above which the bucket table is resized
const loadFactor = 0.7

// node - One entry in a bucket chain. Each bucket slot holds a permanent sentinel node
// carrying no data; real entries are linked after it.
type node struct {
	key   string
	value float32
	next  *node
}

// Dict - A hash table mapping string keys to float32 values. Collisions are resolved with
// separate chaining and the bucket table grows automatically when the load factor exceeds
// the threshold. Each entry owns its key: Go strings are immutable values, so a stored key
// can not be mutated through the caller's copy.
type Dict struct {
	buckets       []*node
	hashAlgorithm hashfunc.HashAlgorithm
	used          int
	pairs         int
}

// NewDict - Returns a new empty Dict with a small fixed initial bucket count.
//   - hashAlgorithm is an optional custom key hashing algorithm following the
//     hashfunc.HashAlgorithm interface, nil selects the internal DJB2 algorithm
func NewDict(hashAlgorithm hashfunc.HashAlgorithm) *Dict {
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewDJB2Algorithm()
	}

	return &Dict{
		buckets:       newBuckets(initialBuckets),
		hashAlgorithm: hashAlgorithm,
	}
}

// newBuckets - Allocates a bucket table of n chains, each headed by a data-less sentinel
func newBuckets(n int) []*node {
	buckets := make([]*node, n)
	for i := range buckets {
		buckets[i] = &node{}
	}
	return buckets
}

// freed - Reports whether the bucket table has been released
func (D *Dict) freed() bool {
	return D.buckets == nil
}

// bucketNo - Returns the bucket number for key given the current table size
func (D *Dict) bucketNo(key string) int {
	return int(D.hashAlgorithm.Hash([]byte(key)) % uint64(len(D.buckets)))
}

// resize - Grows the bucket table to the next capacity from the growth policy and relinks
// every existing node into its new chain. Keys and values are not copied, only node links
// change, so the cost is O(pairs) relinks plus the new table initialization.
func (D *Dict) resize() {
	buckets := newBuckets(growth.Next(len(D.buckets)))

	used := 0
	for _, sentinel := range D.buckets {
		n := sentinel.next
		for n != nil {
			next := n.next
			head := buckets[int(D.hashAlgorithm.Hash([]byte(n.key))%uint64(len(buckets)))]
			if head.next == nil {
				used++
			}
			n.next = head.next
			head.next = n
			n = next
		}
	}

	D.buckets = buckets
	D.used = used
}

// Insert - Adds a key/value pair to the Dict. An existing key is not overwritten, the
// insert is rejected instead. When the insert would push the load factor above the
// threshold the bucket table is resized first.
//   - key is the key to insert, it can not be empty
//   - value is the value to associate with the key
//
// It returns:
//   - err is an InvalidArgument error if the Dict is freed or nil, key is empty or key already exists
func (D *Dict) Insert(key string, value float32) (err error) {
	if D == nil || D.freed() {
		err = InvalidArgument{msg: "invalid dict passed to Insert"}
		logger.Error("invalid argument in Insert", "reason", "freed or nil dict")
		return
	}
	if key == "" {
		err = InvalidArgument{msg: "empty key passed to Insert"}
		logger.Error("invalid argument in Insert", "reason", "empty key")
		return
	}

	if float64(D.pairs+1) > float64(len(D.buckets))*loadFactor {
		D.resize()
	}

	head := D.buckets[D.bucketNo(key)]
	for n := head.next; n != nil; n = n.next {
		if n.key == key {
			err = InvalidArgument{msg: "duplicate key in Insert"}
			logger.Error("invalid argument in Insert", "reason", "duplicate key", "key", key)
			return
		}
	}

	if head.next == nil {
		D.used++
	}
	head.next = &node{key: key, value: value, next: head.next}
	D.pairs++

	return
}

// Update - Replaces the value associated with an existing key. An absent key is reported
// as an error and the Dict is left untouched.
//   - key is the key to update
//   - value is the new value to associate with the key
//
// It returns:
//   - err is an InvalidArgument error if the Dict is freed or nil, or key is not present
func (D *Dict) Update(key string, value float32) (err error) {
	if D == nil || D.freed() {
		err = InvalidArgument{msg: "invalid dict passed to Update"}
		logger.Error("invalid argument in Update", "reason", "freed or nil dict")
		return
	}

	head := D.buckets[D.bucketNo(key)]
	for n := head.next; n != nil; n = n.next {
		if n.key == key {
			n.value = value
			return
		}
	}

	err = InvalidArgument{msg: "key not found in Update"}
	logger.Error("invalid argument in Update", "reason", "key not found", "key", key)
	return
}

// Pop - Removes a key/value pair and returns the removed value.
//   - key is the key to remove
//
// It returns:
//   - value is the removed float value, or FloatSentinel on error
//   - err is an InvalidArgument error if the Dict is freed or nil, or key is not present
func (D *Dict) Pop(key string) (value float32, err error) {
	if D == nil || D.freed() {
		value = FloatSentinel
		err = InvalidArgument{msg: "invalid dict passed to Pop"}
		logger.Error("invalid argument in Pop", "reason", "freed or nil dict")
		return
	}

	head := D.buckets[D.bucketNo(key)]
	for prev, n := head, head.next; n != nil; prev, n = n, n.next {
		if n.key == key {
			prev.next = n.next
			if head.next == nil {
				D.used--
			}
			D.pairs--
			value = n.value
			return
		}
	}

	value = FloatSentinel
	err = InvalidArgument{msg: "key not found in Pop"}
	logger.Error("invalid argument in Pop", "reason", "key not found", "key", key)
	return
}

// Get - Returns the value associated with a key without removing it.
//   - key is the key to look up
//
// It returns:
//   - value is the stored float value, or FloatSentinel on error
//   - err is an InvalidArgument error if the Dict is freed or nil, or key is not present
func (D *Dict) Get(key string) (value float32, err error) {
	if D == nil || D.freed() {
		value = FloatSentinel
		err = InvalidArgument{msg: "invalid dict passed to Get"}
		logger.Error("invalid argument in Get", "reason", "freed or nil dict")
		return
	}

	head := D.buckets[D.bucketNo(key)]
	for n := head.next; n != nil; n = n.next {
		if n.key == key {
			value = n.value
			return
		}
	}

	value = FloatSentinel
	err = InvalidArgument{msg: "key not found in Get"}
	logger.Error("invalid argument in Get", "reason", "key not found", "key", key)
	return
}

// Size - Returns the number of occupied buckets, i.e. chains holding at least one pair.
// Use Pairs for the total number of stored key/value pairs.
func (D *Dict) Size() int {
	if D == nil || D.freed() {
		logger.Error("invalid dict passed to Size")
		return 0
	}
	return D.used
}

// Alloc - Returns the total number of buckets in the table
func (D *Dict) Alloc() int {
	if D == nil || D.freed() {
		logger.Error("invalid dict passed to Alloc")
		return 0
	}
	return len(D.buckets)
}

// Pairs - Returns the total number of stored key/value pairs
func (D *Dict) Pairs() int {
	if D == nil || D.freed() {
		logger.Error("invalid dict passed to Pairs")
		return 0
	}
	return D.pairs
}

// Free - Releases the bucket table and all chains. Any later operation on the Dict fails
// with an InvalidArgument error. A second Free is a well-defined no-op that logs a warning.
func (D *Dict) Free() {
	if D == nil || D.freed() {
		logger.Warn("dict already freed, possible double free")
		return
	}
	D.buckets = nil
	D.used = 0
	D.pairs = 0
}
