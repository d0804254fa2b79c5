package dto

import "time"

// AuditEntryResponse salida de una entrada de bitácora.
type AuditEntryResponse struct {
	ID         string    `json:"id"`
	ActionType string    `json:"action_type"`
	Details    string    `json:"details"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
