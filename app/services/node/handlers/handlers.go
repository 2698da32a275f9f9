// Package handlers manages the set of APIs exposed by the node.
package handlers

import (
	"context"
	"expvar"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/minichain/minichain/app/services/node/handlers/debug/checkgrp"
	"github.com/minichain/minichain/app/services/node/handlers/nodegrp"
	"github.com/minichain/minichain/business/web/mid"
	"github.com/minichain/minichain/foundation/blockchain/state"
	"github.com/minichain/minichain/foundation/events"
	"github.com/minichain/minichain/foundation/web"
	"go.uber.org/zap"
)

// MuxConfig contains all the mandatory systems required by handlers.
type MuxConfig struct {
	Shutdown chan os.Signal
	Log      *zap.SugaredLogger
	State    *state.State
	Evts     *events.Feed
}

// PublicMux constructs a http.Handler with all application routes defined.
// The routes are unversioned: the chain endpoint is the wire contract
// other nodes fetch during conflict resolution.
func PublicMux(cfg MuxConfig) http.Handler {

	// Construct the web.App which holds all routes as well as common
	// Middleware.
	app := web.NewApp(
		cfg.Shutdown,
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Cors("*"),
		mid.Panics(),
	)

	// Accept CORS 'OPTIONS' preflight requests.
	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return nil
	}
	app.Handle(http.MethodOptions, "", "/*any", h, mid.Cors("*"))

	ngh := nodegrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodPost, "", "/transactions/new", ngh.SubmitTransaction)
	app.Handle(http.MethodGet, "", "/transactions/pending", ngh.PendingTransactions)
	app.Handle(http.MethodGet, "", "/mine", ngh.Mine)
	app.Handle(http.MethodGet, "", "/chain", ngh.Chain)
	app.Handle(http.MethodPost, "", "/nodes/register", ngh.RegisterNodes)
	app.Handle(http.MethodGet, "", "/nodes/resolve", ngh.ResolveConflicts)
	app.Handle(http.MethodGet, "", "/events", ngh.Events)

	return app
}

// DebugStandardLibraryMux registers all the debug routes from the standard
// library into a new mux bypassing the use of the DefaultServerMux. Using the
// DefaultServerMux would be a security risk since a dependency could inject a
// handler into our service without us knowing it.
func DebugStandardLibraryMux() *http.ServeMux {
	mux := http.NewServeMux()

	// Register all the standard library debug endpoints.
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/vars", expvar.Handler())

	return mux
}

// DebugMux registers all the debug standard library routes and then custom
// debug application routes for the service.
func DebugMux(build string, log *zap.SugaredLogger) http.Handler {
	mux := DebugStandardLibraryMux()

	// Register debug check endpoints.
	cgh := checkgrp.Handlers{
		Build: build,
		Log:   log,
	}
	mux.HandleFunc("/debug/readiness", cgh.Readiness)
	mux.HandleFunc("/debug/liveness", cgh.Liveness)

	return mux
}
