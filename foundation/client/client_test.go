package client_test

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/AryaStark201/last-classroom/app/services/classroom/handlers"
	"github.com/AryaStark201/last-classroom/foundation/client"
	"github.com/AryaStark201/last-classroom/foundation/events"
	"github.com/AryaStark201/last-classroom/foundation/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestService starts the full API mux against a fresh ledger and returns
// a client pointed at it.
func newTestService(t *testing.T) *client.Client {
	t.Helper()

	log := zap.NewNop().Sugar()

	ldgr := ledger.New(ledger.Config{Difficulty: 1})

	mux := handlers.APIMux(handlers.MuxConfig{
		Shutdown: make(chan os.Signal, 1),
		Log:      log,
		Ledger:   ldgr,
		Evts:     events.New(),
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return client.New(srv.URL)
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestService(t)

	// Register the classroom.
	added, err := c.RegisterStudent(ctx, "Alice")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = c.RegisterStudent(ctx, "Bob")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = c.RegisterStudent(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, added, "re-registering should not be new")

	students, err := c.Students(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, students)

	// Awards and a transfer.
	for i := 0; i < 3; i++ {
		_, err := c.Award(ctx, "Alice", "quiz")
		require.NoError(t, err)
	}

	blk, err := c.SendCoins(ctx, "Alice", "Bob", 2, "notes")
	require.NoError(t, err)
	require.Len(t, blk.Records, 1)
	assert.Equal(t, "transfer", blk.Records[0].Kind)

	bal, err := c.Balance(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, 1, bal.Balance)

	// Rejections surface the service's message.
	_, err = c.SendCoins(ctx, "Alice", "Bob", 50, "too much")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient funds")

	_, err = c.Award(ctx, "Mallory", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")

	// Certificates through the pending buffer.
	pending, err := c.AddCertificate(ctx, "Alice", "Science")
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	blk, mined, err := c.Mine(ctx)
	require.NoError(t, err)
	require.True(t, mined)
	require.Len(t, blk.Records, 1)
	assert.Equal(t, "certificate", blk.Records[0].Kind)

	// Mining again is a no-op.
	_, mined, err = c.Mine(ctx)
	require.NoError(t, err)
	assert.False(t, mined)

	proofs, err := c.VerifyCertificate(ctx, "ALICE")
	require.NoError(t, err)
	require.Len(t, proofs, 1)
	assert.Equal(t, "Science", proofs[0].Certificate.Course)

	// Leaderboard and chain integrity.
	standings, err := c.Leaderboard(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, standings)
	assert.Equal(t, "Bob", standings[0].Account)

	chain, err := c.Chain(ctx)
	require.NoError(t, err)
	require.Len(t, chain, 6) // genesis + 3 awards + 1 transfer + 1 mined

	for i := 1; i < len(chain); i++ {
		assert.Equal(t, chain[i-1].Hash, chain[i].PrevHash, "block %d must link to its parent", i)
		assert.Equal(t, uint64(i), chain[i].Number)
	}
}

func TestClientValidation(t *testing.T) {
	ctx := context.Background()
	c := newTestService(t)

	_, err := c.RegisterStudent(ctx, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
