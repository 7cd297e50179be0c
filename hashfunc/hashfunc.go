package hashfunc

// HashAlgorithm - Interface that permits an implementation using the Dict to supply a
// custom key hashing algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// Hash - Given key it generates a hash value that the Dict reduces to a bucket
	// number with hash % bucketCount. The same key must always produce the same hash
	// value for the lifetime of the Dict, including across bucket resizes.
	Hash(key []byte) uint64
}
