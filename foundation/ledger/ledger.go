// Package ledger is the core API for the classroom ledger and implements
// all the business rules and processing.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/AryaStark201/last-classroom/foundation/ledger/digest"
)

// TeacherAccount is the participant that issues award coins. Awards draw
// against this account, so its balance goes negative as coins enter
// circulation.
const TeacherAccount = "TEACHER"

// awardAmount is the number of coins a single award issues.
const awardAmount = 1

// EventHandler defines a function that is called when events occur in the
// processing of blocks.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to create a ledger.
type Config struct {
	Difficulty uint
	EvHandler  EventHandler
}

// Ledger manages the chain of blocks, the staging buffer for certificates,
// and the set of registered students. All mutation of the chain happens
// under one mutex so a ledger can be shared across sessions; the read of
// the last hash, the mining, and the append are one atomic unit.
type Ledger struct {
	difficulty uint
	evHandler  EventHandler
	registry   *Registry

	mu      sync.RWMutex
	chain   []Block
	pending []Record
}

// New constructs a ledger seeded with its genesis block.
func New(cfg Config) *Ledger {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	// The genesis block roots the chain. It carries no records and is not
	// subject to proof of work.
	genesis := newBlock(0, digest.ZeroHash, nil)

	l := Ledger{
		difficulty: cfg.Difficulty,
		evHandler:  ev,
		registry:   NewRegistry(),
		chain:      []Block{genesis},
	}

	ev("ledger: new: genesis: hash[%s]", genesis.Hash())

	return &l
}

// RegisterStudent adds a student to the classroom registry. It reports
// whether the student was newly registered.
func (l *Ledger) RegisterStudent(student string) bool {
	added := l.registry.Add(student)
	if added {
		l.evHandler("ledger: registerstudent: student[%s]", student)
	}

	return added
}

// AddCertificate stages a certificate record for the next mined block.
func (l *Ledger) AddCertificate(student string, course string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, NewCertificate(student, course))

	l.evHandler("ledger: addcertificate: student[%s] course[%s] pending[%d]", student, course, len(l.pending))
}

// Mine moves the staged certificates into a new block, performs the proof
// of work, and appends the block to the chain. The previous hash is derived
// from the ledger's own last block, never accepted from the caller. Mining
// with nothing staged returns ErrEmptyPending and leaves the chain unchanged.
func (l *Ledger) Mine(ctx context.Context) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.pending) == 0 {
		return Block{}, ErrEmptyPending
	}

	// The block takes ownership of the staged records. The buffer is only
	// cleared once the block made it into the chain, so a cancelled mine
	// loses nothing.
	records := make([]Record, len(l.pending))
	copy(records, l.pending)

	block, err := l.appendBlock(ctx, records)
	if err != nil {
		return Block{}, err
	}

	l.pending = nil

	return block, nil
}

// Award issues one coin from the teacher account to the specified student in
// a block of its own.
func (l *Ledger) Award(ctx context.Context, student string, reason string) (Block, error) {
	if !l.registry.Exists(student) {
		return Block{}, fmt.Errorf("award to %q: %w", student, ErrUnknownStudent)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.appendBlock(ctx, []Record{NewTransfer(TeacherAccount, student, awardAmount, reason)})
}

// SendCoins moves coins between two registered students in a block of its
// own. The transfer is rejected without touching the chain when either party
// is unknown, the amount is zero, or the sender cannot cover the amount.
func (l *Ledger) SendCoins(ctx context.Context, from string, to string, amount uint, note string) (Block, error) {
	if amount == 0 {
		return Block{}, fmt.Errorf("send %s -> %s: %w", from, to, ErrInvalidAmount)
	}

	if !l.registry.Exists(from) {
		return Block{}, fmt.Errorf("sender %q: %w", from, ErrUnknownStudent)
	}

	if !l.registry.Exists(to) {
		return Block{}, fmt.Errorf("recipient %q: %w", to, ErrUnknownStudent)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if bal := l.balanceOf(from); bal < int(amount) {
		return Block{}, fmt.Errorf("send %s -> %s: balance %d, amount %d: %w", from, to, bal, amount, ErrInsufficientFunds)
	}

	return l.appendBlock(ctx, []Record{NewTransfer(from, to, amount, note)})
}

// =============================================================================

// appendBlock constructs the next block, mines it, and appends it to the
// chain. The caller must hold the write lock.
func (l *Ledger) appendBlock(ctx context.Context, records []Record) (Block, error) {
	lastBlock := l.chain[len(l.chain)-1]

	block := newBlock(uint64(len(l.chain)), lastBlock.Hash(), records)

	if err := block.performPOW(ctx, l.difficulty, l.evHandler); err != nil {
		return Block{}, err
	}

	l.chain = append(l.chain, block)

	l.evHandler("ledger: appendblock: block[%d] prev[%s] hash[%s]", block.Number, block.PrevHash, block.Hash())

	return block, nil
}
