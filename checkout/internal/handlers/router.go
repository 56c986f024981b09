package handlers

import (
	"net/http"

	"smart_checkout/checkout/internal/auth"
	"smart_checkout/checkout/internal/handlers/terminal"
	"smart_checkout/checkout/internal/mq"
	"smart_checkout/checkout/internal/store"
)

func NewRouter(
	terminalStore *store.TerminalStore,
	evalStore *store.EvaluationStore,
	metrics *mq.MetricsPublisher,
) *http.ServeMux {

	mux := http.NewServeMux()

	// --- PUBLIC ROUTES (No Auth Needed) ---
	terminalAuth := terminal.NewAuthHandler(terminalStore)
	mux.HandleFunc("POST /api/terminal/register", terminalAuth.Register)
	mux.HandleFunc("POST /api/terminal/login", terminalAuth.Login)
	mux.HandleFunc("POST /api/terminal/refresh", terminalAuth.Refresh)

	// --- PROTECTED ROUTES (Require Terminal Login) ---
	evaluate := &terminal.EvaluateHandler{EvalStore: evalStore, Metrics: metrics}
	history := &terminal.HistoryHandler{EvalStore: evalStore}
	last := &terminal.LastEvaluationHandler{EvalStore: evalStore}

	protected := func(handlerFunc http.HandlerFunc) http.HandlerFunc {
		return auth.Middleware(http.HandlerFunc(handlerFunc)).ServeHTTP
	}

	mux.HandleFunc("POST /api/checkout/evaluate", protected(evaluate.ServeHTTP))
	mux.HandleFunc("GET /api/checkout/evaluations", protected(history.ServeHTTP))
	mux.HandleFunc("GET /api/checkout/evaluations/last", protected(last.ServeHTTP))

	return mux
}
