package ledger

import (
	"sort"
	"strings"
)

// Standing represents one participant's position on the leaderboard.
type Standing struct {
	Account string `json:"account"`
	Balance int    `json:"balance"`
}

// Proof ties a certificate to the block that recorded it.
type Proof struct {
	BlockNumber uint64      `json:"block_number"`
	Certificate Certificate `json:"certificate"`
}

// Balance scans the chain and returns the current balance for the specified
// participant. The teacher account goes negative as awards are issued.
func (l *Ledger) Balance(account string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balanceOf(account)
}

// Balances scans the chain once and returns the balance for every
// participant that appears in any transfer, registered or not.
func (l *Ledger) Balances() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balances, _ := l.applyTransfers()
	return balances
}

// Leaderboard returns every participant ordered by balance, highest first.
// Participants with equal balances keep the order in which the chain first
// saw them.
func (l *Ledger) Leaderboard() []Standing {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balances, order := l.applyTransfers()

	standings := make([]Standing, 0, len(order))
	for _, account := range order {
		standings = append(standings, Standing{Account: account, Balance: balances[account]})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Balance > standings[j].Balance
	})

	return standings
}

// VerifyCertificate returns every certificate issued to the specified
// student in chain order. The match on the student name is case-insensitive.
// No match is not an error, just an empty result.
func (l *Ledger) VerifyCertificate(student string) []Proof {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var proofs []Proof
	for _, block := range l.chain {
		for _, rec := range block.Records {
			if rec.Kind != KindCertificate {
				continue
			}

			if strings.EqualFold(rec.Certificate.Student, student) {
				proofs = append(proofs, Proof{
					BlockNumber: block.Number,
					Certificate: *rec.Certificate,
				})
			}
		}
	}

	return proofs
}

// Blocks returns a copy of the chain for read access.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	chain := make([]Block, len(l.chain))
	copy(chain, l.chain)

	return chain
}

// LatestBlock returns a copy of the current last block in the chain.
func (l *Ledger) LatestBlock() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.chain[len(l.chain)-1]
}

// PendingCount returns the number of records staged for the next mine.
func (l *Ledger) PendingCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.pending)
}

// Registered returns a sorted list of the registered students.
func (l *Ledger) Registered() []string {
	return l.registry.Copy()
}

// =============================================================================

// balanceOf computes the balance for one participant. The caller must hold
// at least the read lock.
func (l *Ledger) balanceOf(account string) int {
	var balance int
	for _, block := range l.chain {
		for _, rec := range block.Records {
			if rec.Kind != KindTransfer {
				continue
			}

			if rec.Transfer.From == account {
				balance -= int(rec.Transfer.Amount)
			}
			if rec.Transfer.To == account {
				balance += int(rec.Transfer.Amount)
			}
		}
	}

	return balance
}

// applyTransfers walks the chain once, accumulating every participant's
// balance and the order in which participants were first seen. The caller
// must hold at least the read lock.
func (l *Ledger) applyTransfers() (map[string]int, []string) {
	balances := make(map[string]int)
	var order []string

	seen := func(account string) {
		if _, exists := balances[account]; !exists {
			balances[account] = 0
			order = append(order, account)
		}
	}

	for _, block := range l.chain {
		for _, rec := range block.Records {
			if rec.Kind != KindTransfer {
				continue
			}

			seen(rec.Transfer.From)
			seen(rec.Transfer.To)

			balances[rec.Transfer.From] -= int(rec.Transfer.Amount)
			balances[rec.Transfer.To] += int(rec.Transfer.Amount)
		}
	}

	return balances, order
}
