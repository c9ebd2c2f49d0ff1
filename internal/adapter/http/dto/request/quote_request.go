package request

import (
	"errors"
	"strings"
	"time"

	"beavers_choice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidPaperType    = errors.New("invalid paper type")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidMaxBudget    = errors.New("invalid max budget")
	ErrInvalidNeededBy     = errors.New("invalid needed_by date")
)

// QuoteCreateRequest is the intake payload for POST /v1/quotes.
//
// max_budget is optional; omitting it skips the budget rule entirely.
// needed_by accepts RFC 3339 or a plain YYYY-MM-DD date and defaults to the
// current date when omitted.
type QuoteCreateRequest struct {
	CustomerName string   `json:"customer_name" binding:"required"`
	PaperType    string   `json:"paper_type" binding:"required"`
	Quantity     int      `json:"quantity" binding:"required"`
	MaxBudget    *float64 `json:"max_budget"`
	NeededBy     string   `json:"needed_by"`
}

// ToQuoteRequest validates the payload and builds the domain request under
// the given request id.
func (r QuoteCreateRequest) ToQuoteRequest(requestID string, now time.Time) (entities.QuoteRequest, error) {
	customerName := strings.TrimSpace(r.CustomerName)
	if customerName == "" {
		return entities.QuoteRequest{}, ErrInvalidCustomerName
	}
	paperType := strings.TrimSpace(r.PaperType)
	if paperType == "" {
		return entities.QuoteRequest{}, ErrInvalidPaperType
	}
	if r.Quantity <= 0 {
		return entities.QuoteRequest{}, ErrInvalidQuantity
	}

	var maxBudget *decimal.Decimal
	if r.MaxBudget != nil {
		if *r.MaxBudget < 0 {
			return entities.QuoteRequest{}, ErrInvalidMaxBudget
		}
		budget := decimal.NewFromFloat(*r.MaxBudget)
		maxBudget = &budget
	}

	neededBy := now.UTC().Truncate(24 * time.Hour)
	if raw := strings.TrimSpace(r.NeededBy); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return entities.QuoteRequest{}, ErrInvalidNeededBy
		}
		neededBy = parsed
	}

	return entities.QuoteRequest{
		RequestID:    requestID,
		CustomerName: customerName,
		PaperType:    paperType,
		Quantity:     r.Quantity,
		MaxBudget:    maxBudget,
		NeededBy:     neededBy,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, raw)
}
