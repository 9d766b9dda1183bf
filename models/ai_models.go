package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AIAssistantRequest defines the structure for requests to the AI assistant.
type AIAssistantRequest struct {
	Prompt string `json:"prompt"`
}

// AIUsage records the cost of one assistant call, used to enforce
// the monthly assistant budget.
type AIUsage struct {
	ID     int             `json:"id"`
	UserID int             `json:"user_id"`
	Cost   decimal.Decimal `json:"cost"`
	UsedAt time.Time       `json:"used_at"`
}
