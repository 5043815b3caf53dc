package digest_test

import (
	"testing"

	"github.com/AryaStark201/last-classroom/foundation/ledger/digest"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestHash(t *testing.T) {
	type content struct {
		Number   uint64 `json:"number"`
		PrevHash string `json:"prev_hash"`
	}

	t.Log("Given the need to validate deterministic hashing.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same content twice.")
		{
			a := digest.Hash(content{Number: 1, PrevHash: digest.ZeroHash})
			b := digest.Hash(content{Number: 1, PrevHash: digest.ZeroHash})

			if a != b {
				t.Fatalf("\t%s\tTest 0:\tShould produce the same digest: got %s and %s", failed, a, b)
			}
			t.Logf("\t%s\tTest 0:\tShould produce the same digest.", success)

			if len(a) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould produce a 64 character hex digest: got %d", failed, len(a))
			}
			t.Logf("\t%s\tTest 0:\tShould produce a 64 character hex digest.", success)
		}

		t.Logf("\tTest 1:\tWhen hashing different content.")
		{
			a := digest.Hash(content{Number: 1, PrevHash: digest.ZeroHash})
			b := digest.Hash(content{Number: 2, PrevHash: digest.ZeroHash})

			if a == b {
				t.Fatalf("\t%s\tTest 1:\tShould produce different digests: got %s twice", failed, a)
			}
			t.Logf("\t%s\tTest 1:\tShould produce different digests.", success)
		}
	}
}
