package ledger_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AryaStark201/last-classroom/foundation/ledger"
	"github.com/AryaStark201/last-classroom/foundation/ledger/digest"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// Mining at this difficulty takes a handful of attempts, enough to prove the
// search without slowing the tests down.
const testDifficulty = 1

func newTestLedger(t *testing.T, students ...string) *ledger.Ledger {
	t.Helper()

	l := ledger.New(ledger.Config{
		Difficulty: testDifficulty,
		EvHandler:  func(v string, args ...any) { t.Logf(v, args...) },
	})

	for _, student := range students {
		l.RegisterStudent(student)
	}

	return l
}

func TestGenesis(t *testing.T) {
	t.Log("Given the need to validate a new ledger starts with a genesis block.")
	{
		l := newTestLedger(t)

		chain := l.Blocks()
		if len(chain) != 1 {
			t.Fatalf("\t%s\tShould have exactly one block: got %d", failed, len(chain))
		}
		t.Logf("\t%s\tShould have exactly one block.", success)

		if chain[0].PrevHash != digest.ZeroHash {
			t.Fatalf("\t%s\tShould carry the zero hash as previous hash: got %s", failed, chain[0].PrevHash)
		}
		t.Logf("\t%s\tShould carry the zero hash as previous hash.", success)

		if chain[0].Number != 0 {
			t.Fatalf("\t%s\tShould be block number 0: got %d", failed, chain[0].Number)
		}
		t.Logf("\t%s\tShould be block number 0.", success)

		if len(l.Balances()) != 0 {
			t.Fatalf("\t%s\tShould have no balances on a genesis only chain.", failed)
		}
		t.Logf("\t%s\tShould have no balances on a genesis only chain.", success)
	}
}

func TestMinePending(t *testing.T) {
	t.Log("Given the need to validate staged certificates mine into one block.")
	{
		l := newTestLedger(t)
		ctx := context.Background()

		l.AddCertificate("Bob", "Math")
		l.AddCertificate("Alice", "Science")

		if l.PendingCount() != 2 {
			t.Fatalf("\t%s\tShould have two staged records: got %d", failed, l.PendingCount())
		}
		t.Logf("\t%s\tShould have two staged records.", success)

		block, err := l.Mine(ctx)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to mine the pending records: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to mine the pending records.", success)

		if len(block.Records) != 2 {
			t.Fatalf("\t%s\tShould have both records in the new block: got %d", failed, len(block.Records))
		}
		t.Logf("\t%s\tShould have both records in the new block.", success)

		if block.Records[0].Certificate.Student != "Bob" || block.Records[1].Certificate.Student != "Alice" {
			t.Fatalf("\t%s\tShould keep the records in insertion order.", failed)
		}
		t.Logf("\t%s\tShould keep the records in insertion order.", success)

		if l.PendingCount() != 0 {
			t.Fatalf("\t%s\tShould have an empty buffer after mining: got %d", failed, l.PendingCount())
		}
		t.Logf("\t%s\tShould have an empty buffer after mining.", success)

		if _, err := l.Mine(ctx); !errors.Is(err, ledger.ErrEmptyPending) {
			t.Fatalf("\t%s\tShould refuse to mine an empty buffer: got %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse to mine an empty buffer.", success)

		if len(l.Blocks()) != 2 {
			t.Fatalf("\t%s\tShould not grow the chain on a refused mine: got %d blocks", failed, len(l.Blocks()))
		}
		t.Logf("\t%s\tShould not grow the chain on a refused mine.", success)
	}
}

func TestChainLinkage(t *testing.T) {
	t.Log("Given the need to validate every block links back to its parent.")
	{
		l := newTestLedger(t, "Alice", "Bob")
		ctx := context.Background()

		if _, err := l.Award(ctx, "Alice", "homework"); err != nil {
			t.Fatalf("\t%s\tShould be able to award Alice: %s", failed, err)
		}
		if _, err := l.Award(ctx, "Bob", "attendance"); err != nil {
			t.Fatalf("\t%s\tShould be able to award Bob: %s", failed, err)
		}
		l.AddCertificate("Alice", "History")
		if _, err := l.Mine(ctx); err != nil {
			t.Fatalf("\t%s\tShould be able to mine certificates: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to build a chain of four blocks.", success)

		chain := l.Blocks()
		for i := 1; i < len(chain); i++ {
			if chain[i].PrevHash != chain[i-1].Hash() {
				t.Fatalf("\t%s\tShould link block %d to its parent: prev[%s] parent[%s]", failed, i, chain[i].PrevHash, chain[i-1].Hash())
			}
			if chain[i].Number != uint64(i) {
				t.Fatalf("\t%s\tShould number block %d by position: got %d", failed, i, chain[i].Number)
			}
		}
		t.Logf("\t%s\tShould link every block to its parent.", success)

		for _, block := range chain[1:] {
			if !strings.HasPrefix(block.Hash(), strings.Repeat("0", testDifficulty)) {
				t.Fatalf("\t%s\tShould solve the proof of work for block %d: hash[%s]", failed, block.Number, block.Hash())
			}
		}
		t.Logf("\t%s\tShould solve the proof of work for every mined block.", success)
	}
}

func TestAwards(t *testing.T) {
	t.Log("Given the need to validate awards move coins from the teacher.")
	{
		l := newTestLedger(t, "Alice")
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if _, err := l.Award(ctx, "Alice", "participation"); err != nil {
				t.Fatalf("\t%s\tShould be able to award Alice: %s", failed, err)
			}
		}
		t.Logf("\t%s\tShould be able to award Alice three times.", success)

		if bal := l.Balance("Alice"); bal != 3 {
			t.Fatalf("\t%s\tShould leave Alice with 3 coins: got %d", failed, bal)
		}
		t.Logf("\t%s\tShould leave Alice with 3 coins.", success)

		if bal := l.Balance(ledger.TeacherAccount); bal != -3 {
			t.Fatalf("\t%s\tShould leave the teacher with -3 coins: got %d", failed, bal)
		}
		t.Logf("\t%s\tShould leave the teacher with -3 coins.", success)

		if _, err := l.Award(ctx, "Mallory", "none"); !errors.Is(err, ledger.ErrUnknownStudent) {
			t.Fatalf("\t%s\tShould refuse to award an unknown student: got %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse to award an unknown student.", success)
	}
}

func TestSendCoins(t *testing.T) {
	t.Log("Given the need to validate transfers between students.")
	{
		l := newTestLedger(t, "Alice", "Bob")
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if _, err := l.Award(ctx, "Alice", "quiz"); err != nil {
				t.Fatalf("\t%s\tShould be able to award Alice: %s", failed, err)
			}
		}

		chainLen := len(l.Blocks())

		if _, err := l.SendCoins(ctx, "Alice", "Bob", 5, "loan"); !errors.Is(err, ledger.ErrInsufficientFunds) {
			t.Fatalf("\t%s\tShould refuse a transfer above the balance: got %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse a transfer above the balance.", success)

		if len(l.Blocks()) != chainLen {
			t.Fatalf("\t%s\tShould leave the chain unchanged on a refused transfer.", failed)
		}
		t.Logf("\t%s\tShould leave the chain unchanged on a refused transfer.", success)

		if _, err := l.SendCoins(ctx, "Alice", "Bob", 0, "nothing"); !errors.Is(err, ledger.ErrInvalidAmount) {
			t.Fatalf("\t%s\tShould refuse a zero amount: got %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse a zero amount.", success)

		if _, err := l.SendCoins(ctx, "Alice", "Mallory", 1, "gift"); !errors.Is(err, ledger.ErrUnknownStudent) {
			t.Fatalf("\t%s\tShould refuse an unknown recipient: got %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse an unknown recipient.", success)

		if _, err := l.SendCoins(ctx, "Alice", "Bob", 2, "helping with homework"); err != nil {
			t.Fatalf("\t%s\tShould be able to transfer within the balance: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to transfer within the balance.", success)

		if bal := l.Balance("Alice"); bal != 1 {
			t.Fatalf("\t%s\tShould leave Alice with 1 coin: got %d", failed, bal)
		}
		if bal := l.Balance("Bob"); bal != 2 {
			t.Fatalf("\t%s\tShould leave Bob with 2 coins: got %d", failed, bal)
		}
		t.Logf("\t%s\tShould settle both balances.", success)

		// Transfers are zero sum, so circulation nets out against the teacher.
		var total int
		for _, bal := range l.Balances() {
			total += bal
		}
		if total != 0 {
			t.Fatalf("\t%s\tShould conserve the total supply: got %d", failed, total)
		}
		t.Logf("\t%s\tShould conserve the total supply.", success)
	}
}

func TestMineCancellation(t *testing.T) {
	t.Log("Given the need to validate mining honors cancellation.")
	{
		// A difficulty this high cannot be solved in any reasonable time, so
		// only cancellation can end the search.
		l := ledger.New(ledger.Config{Difficulty: 16})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		l.AddCertificate("Alice", "Patience")

		if _, err := l.Mine(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("\t%s\tShould stop mining when the context expires: got %v", failed, err)
		}
		t.Logf("\t%s\tShould stop mining when the context expires.", success)

		if l.PendingCount() != 1 {
			t.Fatalf("\t%s\tShould keep the staged records after a cancelled mine: got %d", failed, l.PendingCount())
		}
		t.Logf("\t%s\tShould keep the staged records after a cancelled mine.", success)

		if len(l.Blocks()) != 1 {
			t.Fatalf("\t%s\tShould leave the chain unchanged after a cancelled mine.", failed)
		}
		t.Logf("\t%s\tShould leave the chain unchanged after a cancelled mine.", success)
	}
}
