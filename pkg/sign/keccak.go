package sign

import "golang.org/x/crypto/sha3"

var _ Hasher = Keccak256Hasher{}

// Keccak256Hasher is the Hasher of legacy Ethereum transactions.
type Keccak256Hasher struct{}

// Hash returns the 32-byte Keccak-256 digest of data.
func (Keccak256Hasher) Hash(data []byte) []byte {
	return Keccak256(data)
}

// Keccak256 returns the legacy Keccak-256 digest of the concatenated inputs.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}
