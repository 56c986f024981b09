package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// Evaluation is one persisted discount evaluation: the transaction snapshot
// together with the computed outcome.
type Evaluation struct {
	ID            int
	EvaluationID  string // public uuid
	TerminalID    int    // 0 for batch runs with no terminal session
	OccurredOn    time.Time
	ProductName   string
	Quantity      int
	UnitPrice     float64
	Channel       string
	PaymentMethod string
	FinalDiscount float64
	FinalPrice    float64
	CreatedAt     time.Time
}

// AppliedDiscount is one surviving rule outcome attached to an evaluation.
type AppliedDiscount struct {
	ID           int
	EvaluationID int
	RuleName     string
	Value        float64
}

type EvaluationStore struct {
	db *sql.DB
}

func NewEvaluationStore(db *sql.DB) *EvaluationStore {
	return &EvaluationStore{db: db}
}

// CreateEvaluation inserts the evaluation header plus its applied-discount
// rows in one transaction. Downstream summaries only ever need the two
// largest discounts, so at most the top two are stored, value descending.
func (s *EvaluationStore) CreateEvaluation(ctx context.Context, eval Evaluation, applied []AppliedDiscount) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	queryHeader := `
		INSERT INTO evaluations
			(evaluation_id, terminal_id, occurred_on, product_name, quantity,
			 unit_price, channel, payment_method, final_discount, final_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, queryHeader,
		eval.EvaluationID,
		nullableTerminal(eval.TerminalID),
		eval.OccurredOn,
		eval.ProductName,
		eval.Quantity,
		eval.UnitPrice,
		eval.Channel,
		eval.PaymentMethod,
		eval.FinalDiscount,
		eval.FinalPrice,
	).Scan(&eval.ID)
	if err != nil {
		return fmt.Errorf("failed to save evaluation header: %w", err)
	}

	queryApplied := `
		INSERT INTO applied_discounts (evaluation_id, rule_name, value)
		VALUES ($1, $2, $3)
	`
	stmt, err := tx.PrepareContext(ctx, queryApplied)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range topTwoByValue(applied) {
		if _, err := stmt.ExecContext(ctx, eval.ID, d.RuleName, d.Value); err != nil {
			return fmt.Errorf("failed to save applied discount %s: %w", d.RuleName, err)
		}
	}

	return tx.Commit()
}

func (s *EvaluationStore) GetEvaluationsByTerminal(ctx context.Context, terminalID int) ([]Evaluation, error) {
	query := `
		SELECT id, evaluation_id, occurred_on, product_name, quantity,
		       unit_price, channel, payment_method, final_discount, final_price, created_at
		FROM evaluations
		WHERE terminal_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, terminalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []Evaluation
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(
			&e.ID, &e.EvaluationID, &e.OccurredOn, &e.ProductName, &e.Quantity,
			&e.UnitPrice, &e.Channel, &e.PaymentMethod, &e.FinalDiscount, &e.FinalPrice, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.TerminalID = terminalID
		history = append(history, e)
	}

	return history, rows.Err()
}

func (s *EvaluationStore) GetLastEvaluationByTerminal(ctx context.Context, terminalID int) (*Evaluation, error) {
	query := `
		SELECT id, evaluation_id, occurred_on, product_name, quantity,
		       unit_price, channel, payment_method, final_discount, final_price, created_at
		FROM evaluations
		WHERE terminal_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var e Evaluation
	err := s.db.QueryRowContext(ctx, query, terminalID).Scan(
		&e.ID, &e.EvaluationID, &e.OccurredOn, &e.ProductName, &e.Quantity,
		&e.UnitPrice, &e.Channel, &e.PaymentMethod, &e.FinalDiscount, &e.FinalPrice, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get last evaluation: %w", err)
	}

	e.TerminalID = terminalID
	return &e, nil
}

func (s *EvaluationStore) GetAppliedDiscounts(ctx context.Context, evaluationID string) ([]AppliedDiscount, error) {
	var dbID int
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM evaluations WHERE evaluation_id = $1", evaluationID).Scan(&dbID)
	if err != nil {
		return nil, fmt.Errorf("evaluation not found: %w", err)
	}

	query := `
		SELECT rule_name, value
		FROM applied_discounts
		WHERE evaluation_id = $1
		ORDER BY value DESC
	`
	rows, err := s.db.QueryContext(ctx, query, dbID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applied []AppliedDiscount
	for rows.Next() {
		var d AppliedDiscount
		if err := rows.Scan(&d.RuleName, &d.Value); err != nil {
			return nil, err
		}
		d.EvaluationID = dbID
		applied = append(applied, d)
	}
	return applied, rows.Err()
}

// topTwoByValue returns at most the two largest discounts, value descending.
// The stable sort keeps insertion order among equal values.
func topTwoByValue(applied []AppliedDiscount) []AppliedDiscount {
	ranked := make([]AppliedDiscount, len(applied))
	copy(ranked, applied)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if len(ranked) > 2 {
		ranked = ranked[:2]
	}
	return ranked
}

func nullableTerminal(terminalID int) sql.NullInt64 {
	if terminalID == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(terminalID), Valid: true}
}
