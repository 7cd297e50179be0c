package hash

// DJB2Algorithm - The internally used key hashing algorithm is implemented using the DJB2
// variant hash = 5381; hash = hash*33 + byte per input byte. It is fast with an acceptable
// distribution on short textual keys such as element symbols; it is not cryptographic and
// not resistant to adversarial key selection.
type DJB2Algorithm struct{}

// NewDJB2Algorithm - Returns a pointer to a new DJB2Algorithm instance
func NewDJB2Algorithm() *DJB2Algorithm {
	return &DJB2Algorithm{}
}

// Hash - Given key it generates a 64 bit DJB2 hash value
func (D *DJB2Algorithm) Hash(key []byte) uint64 {
	h := uint64(5381)
	for _, b := range key {
		h = h*33 + uint64(b)
	}
	return h
}
