package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest is a customer's ask for a quantity of one paper type.
//
// Immutable once received; it exists only for the duration of one decision.
// MaxBudget is optional: nil means the customer stated no ceiling and the
// budget rule is skipped.
type QuoteRequest struct {
	RequestID    string           `json:"request_id"`
	CustomerName string           `json:"customer_name"`
	PaperType    string           `json:"paper_type"`
	Quantity     int              `json:"quantity"`
	MaxBudget    *decimal.Decimal `json:"max_budget,omitempty"`
	NeededBy     time.Time        `json:"needed_by"`
}
