package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"smart_checkout/checkout/internal/discount"
)

// DateLayout is the calendar-date format used by transaction feeds.
const DateLayout = "2006-01-02"

// Column order of a transaction feed row.
const (
	colOccurredOn = iota
	colProductName
	colExpiresOn
	colQuantity
	colUnitPrice
	colChannel
	colPaymentMethod
	columnCount
)

// LineError reports one rejected feed row.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ParseRecord validates one feed row and builds the transaction the
// evaluator will consume. The evaluator never revalidates, so everything it
// assumes about its input is enforced here.
func ParseRecord(fields []string) (discount.TransactionRecord, error) {
	var tx discount.TransactionRecord

	if len(fields) != columnCount {
		return tx, fmt.Errorf("expected %d columns, got %d", columnCount, len(fields))
	}

	occurredOn, err := time.Parse(DateLayout, strings.TrimSpace(fields[colOccurredOn]))
	if err != nil {
		return tx, fmt.Errorf("bad occurred_on: %w", err)
	}
	expiresOn, err := time.Parse(DateLayout, strings.TrimSpace(fields[colExpiresOn]))
	if err != nil {
		return tx, fmt.Errorf("bad expires_on: %w", err)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(fields[colQuantity]))
	if err != nil {
		return tx, fmt.Errorf("bad quantity: %w", err)
	}
	if quantity < 0 {
		return tx, fmt.Errorf("quantity must not be negative, got %d", quantity)
	}

	unitPrice, err := strconv.ParseFloat(strings.TrimSpace(fields[colUnitPrice]), 64)
	if err != nil {
		return tx, fmt.Errorf("bad unit_price: %w", err)
	}
	if unitPrice < 0 {
		return tx, fmt.Errorf("unit_price must not be negative, got %g", unitPrice)
	}

	productName := strings.TrimSpace(fields[colProductName])
	channel := strings.TrimSpace(fields[colChannel])
	paymentMethod := strings.TrimSpace(fields[colPaymentMethod])
	if productName == "" || channel == "" || paymentMethod == "" {
		return tx, fmt.Errorf("product_name, channel and payment_method must not be empty")
	}

	tx = discount.TransactionRecord{
		OccurredOn:    occurredOn,
		ProductName:   productName,
		ExpiresOn:     expiresOn,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Channel:       channel,
		PaymentMethod: paymentMethod,
	}
	return tx, nil
}

// ReadAll parses a whole transaction feed. An optional header row is
// skipped. Rows failing validation are collected as LineErrors and skipped;
// the feed is only fatal when the CSV itself cannot be read.
func ReadAll(r io.Reader) ([]discount.TransactionRecord, []LineError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Let ParseRecord report per-row column mismatches instead of aborting.
	reader.FieldsPerRecord = -1

	var (
		records []discount.TransactionRecord
		skipped []LineError
	)
	line := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read feed: %w", err)
		}
		line++
		if line == 1 && isHeader(fields) {
			continue
		}
		tx, err := ParseRecord(fields)
		if err != nil {
			skipped = append(skipped, LineError{Line: line, Err: err})
			continue
		}
		records = append(records, tx)
	}
	return records, skipped, nil
}

func isHeader(fields []string) bool {
	return len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "occurred_on")
}
