// Package v1 contains the full set of handler functions and routes supported
// by the v1 web api.
package v1

import (
	"net/http"

	"github.com/AryaStark201/last-classroom/app/services/classroom/handlers/v1/ledgergrp"
	"github.com/AryaStark201/last-classroom/foundation/events"
	"github.com/AryaStark201/last-classroom/foundation/ledger"
	"github.com/AryaStark201/last-classroom/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	Evts   *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	lgh := ledgergrp.Handlers{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
		Evts:   cfg.Evts,
	}

	app.Handle(http.MethodPost, version, "/students", lgh.RegisterStudent)
	app.Handle(http.MethodGet, version, "/students", lgh.Students)
	app.Handle(http.MethodPost, version, "/certificates", lgh.AddCertificate)
	app.Handle(http.MethodGet, version, "/certificates/verify/:student", lgh.VerifyCertificate)
	app.Handle(http.MethodPost, version, "/mine", lgh.Mine)
	app.Handle(http.MethodPost, version, "/awards", lgh.Award)
	app.Handle(http.MethodPost, version, "/transfers", lgh.SendCoins)
	app.Handle(http.MethodGet, version, "/chain", lgh.Chain)
	app.Handle(http.MethodGet, version, "/balances", lgh.Balances)
	app.Handle(http.MethodGet, version, "/balances/:account", lgh.Balances)
	app.Handle(http.MethodGet, version, "/leaderboard", lgh.Leaderboard)
	app.Handle(http.MethodGet, version, "/events", lgh.Events)
}
