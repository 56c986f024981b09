package terminal

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"smart_checkout/checkout/internal/auth"
	"smart_checkout/checkout/internal/discount"
	"smart_checkout/checkout/internal/ingest"
	"smart_checkout/checkout/internal/mq"
	"smart_checkout/checkout/internal/store"

	"github.com/google/uuid"
)

type EvaluateHandler struct {
	EvalStore *store.EvaluationStore
	Metrics   *mq.MetricsPublisher // nil when metrics are disabled
}

// ServeHTTP evaluates the discount rules for one transaction, persists the
// outcome and returns it.
func (h *EvaluateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	terminalID, ok := r.Context().Value(auth.TerminalKey).(int)
	if !ok {
		log.Printf("[evaluate] unauthorized request")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		OccurredOn    string  `json:"occurred_on"`
		ProductName   string  `json:"product_name"`
		ExpiresOn     string  `json:"expires_on"`
		Quantity      int     `json:"quantity"`
		UnitPrice     float64 `json:"unit_price"`
		Channel       string  `json:"channel"`
		PaymentMethod string  `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[evaluate] invalid json terminal=%d: %v", terminalID, err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	occurredOn, err := time.Parse(ingest.DateLayout, req.OccurredOn)
	if err != nil {
		http.Error(w, "Invalid occurred_on date", http.StatusBadRequest)
		return
	}
	expiresOn, err := time.Parse(ingest.DateLayout, req.ExpiresOn)
	if err != nil {
		http.Error(w, "Invalid expires_on date", http.StatusBadRequest)
		return
	}
	if req.Quantity < 0 || req.UnitPrice < 0 || req.ProductName == "" {
		http.Error(w, "Invalid transaction fields", http.StatusBadRequest)
		return
	}

	tx := discount.TransactionRecord{
		OccurredOn:    occurredOn,
		ProductName:   req.ProductName,
		ExpiresOn:     expiresOn,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Channel:       req.Channel,
		PaymentMethod: req.PaymentMethod,
	}

	start := time.Now()
	result := discount.Evaluate(tx)
	evalID := uuid.New().String()

	applied := make([]store.AppliedDiscount, len(result.AppliedDiscounts))
	for i, c := range result.AppliedDiscounts {
		applied[i] = store.AppliedDiscount{RuleName: c.RuleName, Value: c.Value}
	}

	err = h.EvalStore.CreateEvaluation(r.Context(), store.Evaluation{
		EvaluationID:  evalID,
		TerminalID:    terminalID,
		OccurredOn:    tx.OccurredOn,
		ProductName:   tx.ProductName,
		Quantity:      tx.Quantity,
		UnitPrice:     tx.UnitPrice,
		Channel:       tx.Channel,
		PaymentMethod: tx.PaymentMethod,
		FinalDiscount: result.FinalDiscount,
		FinalPrice:    result.FinalPrice,
	}, applied)
	if err != nil {
		log.Printf("[evaluate] failed to persist eval=%s terminal=%d err=%v", evalID, terminalID, err)
		http.Error(w, "Failed to save evaluation", http.StatusInternalServerError)
		return
	}

	if h.Metrics != nil {
		names := make([]string, len(result.AppliedDiscounts))
		for i, c := range result.AppliedDiscounts {
			names[i] = c.RuleName
		}
		if err := h.Metrics.Publish(evalID, tx.ProductName, result.FinalDiscount, names, time.Since(start).Seconds()); err != nil {
			log.Printf("[evaluate] metrics publish failed eval=%s err=%v", evalID, err)
		}
	}

	log.Printf("[evaluate] eval=%s terminal=%d product=%q discount=%.1f%%",
		evalID, terminalID, tx.ProductName, result.FinalDiscount*100)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"evaluation_id":     evalID,
		"applied_discounts": result.AppliedDiscounts,
		"final_discount":    result.FinalDiscount,
		"discount_percent":  result.FinalDiscount * 100,
		"final_price":       result.FinalPrice,
	})
}
