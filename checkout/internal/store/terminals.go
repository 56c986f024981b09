package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Terminal matches the 'terminals' table: one row per registered POS
// terminal account.
type Terminal struct {
	ID           int
	TerminalID   string // unique ID printed on the device (e.g. "POS-04")
	StoreName    string
	PasswordHash string
	RefreshToken string
	TokenExpiry  time.Time
}

type TerminalStore struct {
	db *sql.DB
}

func NewTerminalStore(db *sql.DB) *TerminalStore {
	return &TerminalStore{db: db}
}

func (s *TerminalStore) CreateTerminal(ctx context.Context, t Terminal) error {
	query := `
		INSERT INTO terminals (terminal_id, store_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, t.TerminalID, t.StoreName, t.PasswordHash).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to register terminal: %w", err)
	}
	return nil
}

func (s *TerminalStore) GetTerminal(ctx context.Context, terminalID string) (*Terminal, error) {
	query := `
		SELECT id, terminal_id, store_name, password_hash, refresh_token, token_expiry
		FROM terminals
		WHERE terminal_id = $1
	`
	var t Terminal

	// refresh_token and token_expiry are NULL until the first login.
	var token sql.NullString
	var expiry sql.NullTime

	err := s.db.QueryRowContext(ctx, query, terminalID).Scan(
		&t.ID, &t.TerminalID, &t.StoreName, &t.PasswordHash, &token, &expiry,
	)
	if err != nil {
		return nil, fmt.Errorf("terminal not found: %w", err)
	}

	if token.Valid {
		t.RefreshToken = token.String
	}
	if expiry.Valid {
		t.TokenExpiry = expiry.Time
	}

	return &t, nil
}

func (s *TerminalStore) SetRefreshToken(ctx context.Context, terminalID string, token string, expiry time.Time) error {
	query := `
		UPDATE terminals
		SET refresh_token = $1, token_expiry = $2
		WHERE terminal_id = $3
	`
	_, err := s.db.ExecContext(ctx, query, token, expiry, terminalID)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}
