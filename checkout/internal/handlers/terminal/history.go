package terminal

import (
	"encoding/json"
	"net/http"

	"smart_checkout/checkout/internal/auth"
	"smart_checkout/checkout/internal/store"
)

type HistoryHandler struct {
	EvalStore *store.EvaluationStore
}

// ServeHTTP returns historical evaluations for the authenticated terminal.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	terminalID, ok := r.Context().Value(auth.TerminalKey).(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	history, _ := h.EvalStore.GetEvaluationsByTerminal(r.Context(), terminalID)
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "data": history})
}

type LastEvaluationHandler struct {
	EvalStore *store.EvaluationStore
}

// ServeHTTP returns the most recent evaluation for the authenticated terminal.
func (h *LastEvaluationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	terminalID, ok := r.Context().Value(auth.TerminalKey).(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	last, err := h.EvalStore.GetLastEvaluationByTerminal(r.Context(), terminalID)
	if err != nil {
		http.Error(w, "Failed to load evaluation", http.StatusInternalServerError)
		return
	}
	if last == nil {
		http.Error(w, "No evaluations yet", http.StatusNotFound)
		return
	}

	// The stored summary: at most the top two discounts, value descending.
	applied, err := h.EvalStore.GetAppliedDiscounts(r.Context(), last.EvaluationID)
	if err != nil {
		http.Error(w, "Failed to load applied discounts", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":            "success",
		"data":              last,
		"applied_discounts": applied,
	})
}
