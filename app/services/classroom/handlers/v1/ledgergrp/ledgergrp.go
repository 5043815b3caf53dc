// Package ledgergrp maintains the group of handlers for classroom ledger
// access.
package ledgergrp

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/AryaStark201/last-classroom/business/sys/metrics"
	"github.com/AryaStark201/last-classroom/business/web/errs"
	"github.com/AryaStark201/last-classroom/foundation/events"
	"github.com/AryaStark201/last-classroom/foundation/ledger"
	"github.com/AryaStark201/last-classroom/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of classroom ledger endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	Evts   *events.Events
	WS     websocket.Upgrader
}

// RegisterStudent adds a student to the classroom registry.
func (h Handlers) RegisterStudent(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var ns newStudent
	if err := web.Decode(r, &ns); err != nil {
		return err
	}

	added := h.Ledger.RegisterStudent(ns.Name)

	h.Log.Infow("register student", "traceid", web.GetTraceID(ctx), "student", ns.Name, "added", added)

	resp := struct {
		Name       string `json:"name"`
		Registered bool   `json:"registered"`
	}{
		Name:       ns.Name,
		Registered: added,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Students returns the set of registered students.
func (h Handlers) Students(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Ledger.Registered(), http.StatusOK)
}

// AddCertificate stages a certificate for the next mined block.
func (h Handlers) AddCertificate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var nc newCertificate
	if err := web.Decode(r, &nc); err != nil {
		return err
	}

	h.Ledger.AddCertificate(nc.Student, nc.Course)

	h.Log.Infow("add certificate", "traceid", web.GetTraceID(ctx), "student", nc.Student, "course", nc.Course)

	resp := struct {
		Status  string `json:"status"`
		Pending int    `json:"pending"`
	}{
		Status:  "certificate staged",
		Pending: h.Ledger.PendingCount(),
	}

	return web.Respond(ctx, w, resp, http.StatusAccepted)
}

// Mine moves the staged certificates into a new block on the chain. Mining
// with nothing staged is a no-op, not a failure.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blk, err := h.Ledger.Mine(ctx)
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyPending) {
			resp := struct {
				Status string `json:"status"`
			}{
				Status: "no pending records to mine",
			}
			return web.Respond(ctx, w, resp, http.StatusOK)
		}
		return err
	}

	metrics.AddBlockMined(len(blk.Records))

	return web.Respond(ctx, w, toBlock(blk), http.StatusCreated)
}

// Award issues one coin from the teacher account to a student.
func (h Handlers) Award(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var na newAward
	if err := web.Decode(r, &na); err != nil {
		return err
	}

	blk, err := h.Ledger.Award(ctx, na.Student, na.Reason)
	if err != nil {
		return toTrusted(err)
	}

	metrics.AddBlockMined(len(blk.Records))

	return web.Respond(ctx, w, toBlock(blk), http.StatusCreated)
}

// SendCoins moves coins between two registered students.
func (h Handlers) SendCoins(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var nt newTransfer
	if err := web.Decode(r, &nt); err != nil {
		return err
	}

	blk, err := h.Ledger.SendCoins(ctx, nt.From, nt.To, nt.Amount, nt.Note)
	if err != nil {
		return toTrusted(err)
	}

	metrics.AddBlockMined(len(blk.Records))

	return web.Respond(ctx, w, toBlock(blk), http.StatusCreated)
}

// Chain returns every block in the chain.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.Ledger.Blocks()

	blocks := make([]block, len(chain))
	for i, blk := range chain {
		blocks[i] = toBlock(blk)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// Balances returns the balances for all participants, or for the one
// specified in the route.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if account := web.Param(r, "account"); account != "" {
		bal := balance{Account: account, Balance: h.Ledger.Balance(account)}
		return web.Respond(ctx, w, bal, http.StatusOK)
	}

	balances := make([]balance, 0)
	for account, bal := range h.Ledger.Balances() {
		balances = append(balances, balance{Account: account, Balance: bal})
	}

	// Map iteration order is random, so fix the order for clients.
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Account < balances[j].Account
	})

	return web.Respond(ctx, w, balances, http.StatusOK)
}

// Leaderboard returns every participant ordered by balance.
func (h Handlers) Leaderboard(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Ledger.Leaderboard(), http.StatusOK)
}

// VerifyCertificate returns every certificate issued to a student. An
// unknown student yields an empty list, not an error.
func (h Handlers) VerifyCertificate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	proofs := h.Ledger.VerifyCertificate(web.Param(r, "student"))
	if proofs == nil {
		proofs = []ledger.Proof{}
	}

	return web.Respond(ctx, w, proofs, http.StatusOK)
}

// Events handles a web socket to provide ledger events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Subscribe(v.TraceID)
	defer h.Evts.Unsubscribe(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// =============================================================================

// toTrusted converts the ledger's recoverable conditions into trusted errors
// so the client sees the real message with a 400.
func toTrusted(err error) error {
	switch {
	case errors.Is(err, ledger.ErrUnknownStudent),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInvalidAmount):
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	return err
}
