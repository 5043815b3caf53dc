// Package digest provides the deterministic hashing support used to link
// blocks together and to validate proof of work.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ZeroHash is the previous-hash value carried by the genesis block, which
// has no parent to point back to.
const ZeroHash = "0"

// Hash returns a unique string for the value. Marshaling a struct produces
// its fields in declaration order, so the same content always yields the
// same byte sequence and therefore the same digest.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
