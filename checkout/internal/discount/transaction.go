package discount

import "time"

// TransactionRecord is one validated retail sale line. The ingestion side
// owns parsing and validation; by the time a record reaches the evaluator
// its dates are real calendar dates and its numeric fields are non-negative.
type TransactionRecord struct {
	OccurredOn    time.Time
	ProductName   string
	ExpiresOn     time.Time
	Quantity      int
	UnitPrice     float64
	Channel       string
	PaymentMethod string
}

// Candidate is a single rule outcome: the rule that matched and the fraction
// it wants to take off the unit price. A rule that does not match produces no
// Candidate at all, never a zero-valued one.
type Candidate struct {
	RuleName string  `json:"rule_name"`
	Value    float64 `json:"value"`
}

// Result is the evaluator output for one transaction. AppliedDiscounts keeps
// the survivors in rule evaluation order.
type Result struct {
	AppliedDiscounts []Candidate `json:"applied_discounts"`
	FinalDiscount    float64     `json:"final_discount"`
	FinalPrice       float64     `json:"final_price"`
}
