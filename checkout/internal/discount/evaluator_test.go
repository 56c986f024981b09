package discount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleNames(candidates []Candidate) []string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.RuleName
	}
	return names
}

func TestEvaluateScenarios(t *testing.T) {
	t.Run("no rule matches", func(t *testing.T) {
		tx := TransactionRecord{
			OccurredOn:    date(2026, time.June, 10),
			ProductName:   "Milk",
			ExpiresOn:     date(2026, time.December, 1),
			Quantity:      5,
			UnitPrice:     3.50,
			Channel:       "Store",
			PaymentMethod: "Cash",
		}
		res := Evaluate(tx)
		assert.Empty(t, res.AppliedDiscounts)
		assert.Equal(t, 0.0, res.FinalDiscount)
		assert.Equal(t, tx.UnitPrice, res.FinalPrice)
	})

	t.Run("cheese close to expiry", func(t *testing.T) {
		occurred := date(2026, time.June, 10)
		tx := TransactionRecord{
			OccurredOn:    occurred,
			ProductName:   "Aged Cheddar Cheese",
			ExpiresOn:     occurred.AddDate(0, 0, 10),
			Quantity:      1,
			UnitPrice:     8.00,
			Channel:       "Store",
			PaymentMethod: "Cash",
		}
		res := Evaluate(tx)
		require.Equal(t, []string{RuleExpiryDate, RuleCheese}, ruleNames(res.AppliedDiscounts))
		assert.InDelta(t, 0.15, res.FinalDiscount, 1e-9)
		assert.InDelta(t, 8.00*0.85, res.FinalPrice, 1e-9)
	})

	t.Run("app order paid with visa", func(t *testing.T) {
		tx := TransactionRecord{
			OccurredOn:    date(2026, time.June, 10),
			ProductName:   "Shirt",
			ExpiresOn:     date(2027, time.June, 10),
			Quantity:      12,
			UnitPrice:     20.00,
			Channel:       ChannelApp,
			PaymentMethod: PaymentVisa,
		}
		res := Evaluate(tx)
		// AppDiscount (0.15) beats QuantityDiscount (0.07).
		require.Equal(t, []string{RuleApp, RuleVisa}, ruleNames(res.AppliedDiscounts))
		assert.InDelta(t, 0.10, res.FinalDiscount, 1e-9)
		assert.InDelta(t, 20.00*0.90, res.FinalPrice, 1e-9)
	})

	t.Run("wine on the special day", func(t *testing.T) {
		tx := TransactionRecord{
			OccurredOn:    date(2026, time.March, 23),
			ProductName:   "Red Wine",
			ExpiresOn:     date(2027, time.March, 23),
			Quantity:      2,
			UnitPrice:     15.00,
			Channel:       "Store",
			PaymentMethod: "Cash",
		}
		res := Evaluate(tx)
		require.Equal(t, []string{RuleWine, RuleSpecialDay}, ruleNames(res.AppliedDiscounts))
		assert.InDelta(t, 0.275, res.FinalDiscount, 1e-9)
		assert.InDelta(t, 15.00*(1-0.275), res.FinalPrice, 1e-9)
	})
}

func TestEvaluateSingleMatchKeepsExactValue(t *testing.T) {
	tx := TransactionRecord{
		OccurredOn:    date(2026, time.June, 10),
		ProductName:   "Shirt",
		ExpiresOn:     date(2027, time.June, 10),
		Quantity:      2,
		UnitPrice:     20.00,
		Channel:       "Store",
		PaymentMethod: PaymentVisa,
	}
	res := Evaluate(tx)
	require.Len(t, res.AppliedDiscounts, 1)
	assert.Equal(t, 0.05, res.FinalDiscount)
	assert.InDelta(t, 19.00, res.FinalPrice, 1e-9)
}

func TestEvaluateQuantityAndAppNeverCoexist(t *testing.T) {
	for qty := 0; qty <= 20; qty++ {
		tx := TransactionRecord{
			OccurredOn:    date(2026, time.June, 10),
			ProductName:   "Shirt",
			ExpiresOn:     date(2027, time.June, 10),
			Quantity:      qty,
			UnitPrice:     10.00,
			Channel:       ChannelApp,
			PaymentMethod: "Cash",
		}
		res := Evaluate(tx)

		names := ruleNames(res.AppliedDiscounts)
		assert.False(t, contains(names, RuleQuantity) && contains(names, RuleApp),
			"quantity=%d produced both exclusive rules", qty)

		// The survivor must be at least as good as the loser would have been.
		q, qOK := quantityDiscount(tx)
		a, aOK := appDiscount(tx)
		if qOK && aOK {
			winner, ok := resolveExclusive(q, qOK, a, aOK)
			require.True(t, ok)
			assert.GreaterOrEqual(t, winner.Value, q.Value)
			assert.GreaterOrEqual(t, winner.Value, a.Value)
		}
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	tx := TransactionRecord{
		OccurredOn:    date(2026, time.March, 23),
		ProductName:   "Wine and Cheese Basket",
		ExpiresOn:     date(2026, time.April, 2),
		Quantity:      12,
		UnitPrice:     42.00,
		Channel:       ChannelApp,
		PaymentMethod: PaymentVisa,
	}
	first := Evaluate(tx)
	second := Evaluate(tx)
	assert.Equal(t, first, second)
}

func TestResolveExclusive(t *testing.T) {
	qty := Candidate{RuleName: RuleQuantity, Value: 0.07}
	app := Candidate{RuleName: RuleApp, Value: 0.15}

	t.Run("greater value wins", func(t *testing.T) {
		c, ok := resolveExclusive(qty, true, app, true)
		require.True(t, ok)
		assert.Equal(t, app, c)
	})

	t.Run("tie keeps the first", func(t *testing.T) {
		tied := Candidate{RuleName: RuleApp, Value: 0.07}
		c, ok := resolveExclusive(qty, true, tied, true)
		require.True(t, ok)
		assert.Equal(t, qty, c)
	})

	t.Run("only first eligible", func(t *testing.T) {
		c, ok := resolveExclusive(qty, true, Candidate{}, false)
		require.True(t, ok)
		assert.Equal(t, qty, c)
	})

	t.Run("only second eligible", func(t *testing.T) {
		c, ok := resolveExclusive(Candidate{}, false, app, true)
		require.True(t, ok)
		assert.Equal(t, app, c)
	})

	t.Run("neither eligible", func(t *testing.T) {
		_, ok := resolveExclusive(Candidate{}, false, Candidate{}, false)
		assert.False(t, ok)
	})
}

func TestCombine(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, 0.0, combine(nil))
	})

	t.Run("single candidate", func(t *testing.T) {
		assert.Equal(t, 0.20, combine([]Candidate{{RuleName: RuleApp, Value: 0.20}}))
	})

	t.Run("mean of the top two", func(t *testing.T) {
		got := combine([]Candidate{
			{RuleName: RuleWine, Value: 0.05},
			{RuleName: RuleSpecialDay, Value: 0.50},
			{RuleName: RuleVisa, Value: 0.05},
			{RuleName: RuleExpiryDate, Value: 0.20},
		})
		assert.InDelta(t, 0.35, got, 1e-9)
	})

	t.Run("independent of candidate order", func(t *testing.T) {
		candidates := []Candidate{
			{RuleName: RuleExpiryDate, Value: 0.20},
			{RuleName: RuleCheese, Value: 0.10},
			{RuleName: RuleVisa, Value: 0.05},
		}
		perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
		for _, p := range perms {
			shuffled := []Candidate{candidates[p[0]], candidates[p[1]], candidates[p[2]]}
			assert.InDelta(t, 0.15, combine(shuffled), 1e-9)
		}
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		candidates := []Candidate{
			{RuleName: RuleVisa, Value: 0.05},
			{RuleName: RuleSpecialDay, Value: 0.50},
		}
		combine(candidates)
		assert.Equal(t, RuleVisa, candidates[0].RuleName)
	})
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
