package terminal

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"smart_checkout/checkout/internal/auth"
	"smart_checkout/checkout/internal/store"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	store *store.TerminalStore
}

func NewAuthHandler(s *store.TerminalStore) *AuthHandler {
	return &AuthHandler{store: s}
}

// Register creates a new POS terminal account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TerminalID string `json:"terminal_id"`
		StoreName  string `json:"store_name"`
		Password   string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	hashedPwd, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	t := store.Terminal{
		TerminalID:   req.TerminalID,
		StoreName:    req.StoreName,
		PasswordHash: string(hashedPwd),
	}

	if err := h.store.CreateTerminal(r.Context(), t); err != nil {
		http.Error(w, "Registration failed. ID might exist.", http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// Login checks terminal credentials and issues an access/refresh token pair.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TerminalID string `json:"terminal_id"`
		Password   string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	t, err := h.store.GetTerminal(r.Context(), req.TerminalID)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, _ := auth.GenerateAccessToken(t.ID, "TERMINAL")
	refreshToken, _ := auth.GenerateRefreshToken(t.ID, "TERMINAL")

	// The session lives as long as the refresh token (7 days, same as jwt.go).
	expiry := time.Now().Add(7 * 24 * time.Hour)
	if err := h.store.SetRefreshToken(r.Context(), req.TerminalID, refreshToken, expiry); err != nil {
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Refresh validates a refresh token and issues a new access token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		http.Error(w, "Missing Token", http.StatusUnauthorized)
		return
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		http.Error(w, "Invalid Header Format", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		http.Error(w, "Invalid Token", http.StatusUnauthorized)
		return
	}

	if claims.TokenType != "REFRESH" {
		http.Error(w, "Invalid Token Type", http.StatusUnauthorized)
		return
	}

	newAccessToken, _ := auth.GenerateAccessToken(claims.TerminalID, claims.Role)

	json.NewEncoder(w).Encode(map[string]string{
		"access_token": newAccessToken,
	})
}
