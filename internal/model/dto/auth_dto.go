package dto

// ExchangeSessionRequest carries the opaque handle issued by the identity provider.
type ExchangeSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// SessionData is returned after a successful session exchange.
type SessionData struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture,omitempty"`
	SessionToken string `json:"session_token"`
}
