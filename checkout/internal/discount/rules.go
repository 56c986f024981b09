package discount

import (
	"strings"
	"time"
)

// Rule names reported in Result.AppliedDiscounts.
const (
	RuleExpiryDate = "ExpiryDateDiscount"
	RuleCheese     = "CheeseDiscount"
	RuleWine       = "WineDiscount"
	RuleSpecialDay = "SpecialDayDiscount"
	RuleQuantity   = "QuantityDiscount"
	RuleApp        = "AppDiscount"
	RuleVisa       = "VisaDiscount"
)

const (
	// ChannelApp is the sales channel value for mobile-app transactions.
	ChannelApp = "App"
	// PaymentVisa is the payment method value for Visa card payments.
	PaymentVisa = "Visa"
)

// Products inside this lookahead window get progressively cheaper the closer
// they are to their expiry date.
const expiryWindowDays = 30

func expiryDateDiscount(tx TransactionRecord) (Candidate, bool) {
	days := daysBetween(tx.OccurredOn, tx.ExpiresOn)
	if days < 0 || days >= expiryWindowDays {
		return Candidate{}, false
	}
	return Candidate{RuleName: RuleExpiryDate, Value: float64(expiryWindowDays-days) / 100}, true
}

// productDiscount covers cheese and wine with a single check so that a name
// matching both substrings still yields exactly one candidate. Cheese is
// checked first and wins.
func productDiscount(tx TransactionRecord) (Candidate, bool) {
	name := strings.ToLower(tx.ProductName)
	switch {
	case strings.Contains(name, "cheese"):
		return Candidate{RuleName: RuleCheese, Value: 0.10}, true
	case strings.Contains(name, "wine"):
		return Candidate{RuleName: RuleWine, Value: 0.05}, true
	}
	return Candidate{}, false
}

// specialDayDiscount applies on March 23rd of any year.
func specialDayDiscount(tx TransactionRecord) (Candidate, bool) {
	if tx.OccurredOn.Month() != time.March || tx.OccurredOn.Day() != 23 {
		return Candidate{}, false
	}
	return Candidate{RuleName: RuleSpecialDay, Value: 0.50}, true
}

func quantityDiscount(tx TransactionRecord) (Candidate, bool) {
	switch {
	case tx.Quantity >= 15:
		return Candidate{RuleName: RuleQuantity, Value: 0.10}, true
	case tx.Quantity >= 10:
		return Candidate{RuleName: RuleQuantity, Value: 0.07}, true
	case tx.Quantity >= 6:
		return Candidate{RuleName: RuleQuantity, Value: 0.05}, true
	}
	return Candidate{}, false
}

func appDiscount(tx TransactionRecord) (Candidate, bool) {
	if tx.Channel != ChannelApp || tx.Quantity < 1 {
		return Candidate{}, false
	}
	switch {
	case tx.Quantity >= 16:
		return Candidate{RuleName: RuleApp, Value: 0.20}, true
	case tx.Quantity >= 11:
		return Candidate{RuleName: RuleApp, Value: 0.15}, true
	case tx.Quantity >= 6:
		return Candidate{RuleName: RuleApp, Value: 0.10}, true
	}
	return Candidate{RuleName: RuleApp, Value: 0.05}, true
}

func visaDiscount(tx TransactionRecord) (Candidate, bool) {
	if tx.PaymentMethod != PaymentVisa {
		return Candidate{}, false
	}
	return Candidate{RuleName: RuleVisa, Value: 0.05}, true
}

// daysBetween returns whole calendar days from a to b, negative when b is
// before a. Time-of-day components are ignored.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
