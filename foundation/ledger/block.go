package ledger

import (
	"context"
	"time"

	"github.com/AryaStark201/last-classroom/foundation/ledger/digest"
)

// Block represents a group of records chained together. The block carries no
// hash field of its own; the hash is always recomputed from the content, so
// the digest input can never include the digest itself.
type Block struct {
	Number    uint64   `json:"number"`     // Position of the block in the chain, genesis is 0.
	TimeStamp uint64   `json:"timestamp"`  // Unix seconds captured at construction.
	Nonce     uint64   `json:"nonce"`      // Value discovered by the proof of work search.
	PrevHash  string   `json:"prev_hash"`  // Hash of the previous block in the chain.
	Records   []Record `json:"records"`    // Ordered set of records, owned by the block.
}

// newBlock constructs a block for the specified position in the chain. The
// records slice is owned by the block from this point on.
func newBlock(number uint64, prevHash string, records []Record) Block {
	return Block{
		Number:    number,
		TimeStamp: uint64(time.Now().UTC().Unix()),
		PrevHash:  prevHash,
		Records:   records,
	}
}

// Hash returns the unique hash for the block.
func (b Block) Hash() string {
	return digest.Hash(b)
}

// performPOW does the work of mining to find a nonce that produces a hash
// with the required number of leading zeros. Pointer semantics are being
// used since a nonce is being discovered.
func (b *Block) performPOW(ctx context.Context, difficulty uint, ev func(v string, args ...any)) error {
	ev("ledger: performPOW: mining: started: block[%d] records[%d]", b.Number, len(b.Records))
	defer ev("ledger: performPOW: mining: completed: block[%d]", b.Number)

	for _, rec := range b.Records {
		ev("ledger: performPOW: mining: rec[%s]", rec)
	}

	// Loop until a solution is found or the caller gives up. The nonce picks
	// up from its current value, so difficulty zero never mutates it.
	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("ledger: performPOW: mining: attempts[%d]", attempts)
		}

		// The search is unbounded, so honor cancellation.
		if ctx.Err() != nil {
			ev("ledger: performPOW: mining: CANCELLED: block[%d]", b.Number)
			return ctx.Err()
		}

		hash := b.Hash()
		if !isHashSolved(difficulty, hash) {
			b.Nonce++
			continue
		}

		ev("ledger: performPOW: mining: SOLVED: block[%d] hash[%s] attempts[%d]", b.Number, hash, attempts)

		return nil
	}
}

// isHashSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	const match = "00000000000000000"

	if len(hash) != 64 {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}
