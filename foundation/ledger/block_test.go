package ledger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/AryaStark201/last-classroom/foundation/ledger"
)

func TestDifficultyZero(t *testing.T) {
	t.Log("Given the need to validate difficulty zero accepts the first hash.")
	{
		l := ledger.New(ledger.Config{Difficulty: 0})

		l.AddCertificate("Alice", "Art")
		block, err := l.Mine(context.Background())
		if err != nil {
			t.Fatalf("\t%s\tShould be able to mine at difficulty zero: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to mine at difficulty zero.", success)

		if block.Nonce != 0 {
			t.Fatalf("\t%s\tShould never mutate the nonce: got %d", failed, block.Nonce)
		}
		t.Logf("\t%s\tShould never mutate the nonce.", success)
	}
}

func TestHashRoundTrip(t *testing.T) {
	t.Log("Given the need to validate a stored block reproduces its hash.")
	{
		l := newTestLedger(t, "Alice")

		if _, err := l.Award(context.Background(), "Alice", "essay"); err != nil {
			t.Fatalf("\t%s\tShould be able to award Alice: %s", failed, err)
		}

		chain := l.Blocks()
		mined := chain[len(chain)-1]

		// Recomputing over the stored fields must reproduce the solved hash.
		if !strings.HasPrefix(mined.Hash(), strings.Repeat("0", testDifficulty)) {
			t.Fatalf("\t%s\tShould recompute a solved hash from the stored fields: got %s", failed, mined.Hash())
		}
		t.Logf("\t%s\tShould recompute a solved hash from the stored fields.", success)

		if mined.Hash() != mined.Hash() {
			t.Fatalf("\t%s\tShould be idempotent.", failed)
		}
		t.Logf("\t%s\tShould be idempotent.", success)
	}
}
