package discount

import "sort"

// Evaluate runs the fixed rule catalog against one transaction and derives
// the final discounted unit price. It is a total function: a transaction
// matching no rule yields a zero discount and the unchanged unit price. No
// state is shared between calls, so Evaluate is safe to invoke from any
// number of goroutines.
func Evaluate(tx TransactionRecord) Result {
	var applied []Candidate

	if c, ok := expiryDateDiscount(tx); ok {
		applied = append(applied, c)
	}
	if c, ok := productDiscount(tx); ok {
		applied = append(applied, c)
	}
	if c, ok := specialDayDiscount(tx); ok {
		applied = append(applied, c)
	}

	// QuantityDiscount and AppDiscount are overlapping promotions; at most
	// one of them may survive.
	qty, qtyOK := quantityDiscount(tx)
	app, appOK := appDiscount(tx)
	if c, ok := resolveExclusive(qty, qtyOK, app, appOK); ok {
		applied = append(applied, c)
	}

	if c, ok := visaDiscount(tx); ok {
		applied = append(applied, c)
	}

	final := combine(applied)
	return Result{
		AppliedDiscounts: applied,
		FinalDiscount:    final,
		FinalPrice:       projectPrice(tx.UnitPrice, final),
	}
}

// resolveExclusive keeps the strictly greater of two mutually exclusive
// candidates. On an exact tie the first one wins.
func resolveExclusive(first Candidate, firstOK bool, second Candidate, secondOK bool) (Candidate, bool) {
	switch {
	case firstOK && secondOK:
		if second.Value > first.Value {
			return second, true
		}
		return first, true
	case firstOK:
		return first, true
	case secondOK:
		return second, true
	}
	return Candidate{}, false
}

// combine reduces the surviving candidates to a single fraction: none gives
// 0, one gives its value, two or more give the mean of the two largest
// values. The stable sort keeps the earliest-evaluated candidate first among
// equal values. The result is not clamped; the current catalog cannot push
// it past 1.0.
func combine(candidates []Candidate) float64 {
	switch len(candidates) {
	case 0:
		return 0.0
	case 1:
		return candidates[0].Value
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	return (ranked[0].Value + ranked[1].Value) / 2
}

// projectPrice applies the combined discount to the unit price. No floor at
// zero; the catalog's maxima keep the result non-negative.
func projectPrice(unitPrice, finalDiscount float64) float64 {
	return unitPrice * (1 - finalDiscount)
}
