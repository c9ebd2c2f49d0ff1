package response

import (
	"time"

	"beavers_choice/internal/domain/entities"
)

type DiscountLineResponse struct {
	Name    string `json:"name"`
	Percent string `json:"percent"`
	Amount  string `json:"amount"`
}

// QuoteResponse is the customer-facing body for an evaluated quote request.
// It is built from the customer view only, so cash and cost figures cannot
// appear here.
type QuoteResponse struct {
	RequestID    string                 `json:"request_id"`
	CustomerName string                 `json:"customer_name"`
	PaperType    string                 `json:"paper_type"`
	Quantity     int                    `json:"quantity"`
	Status       string                 `json:"status"`
	Fulfilled    bool                   `json:"fulfilled"`
	Rationale    string                 `json:"rationale"`
	UnitPrice    string                 `json:"unit_price"`
	QuoteTotal   string                 `json:"quote_total"`
	Discounts    []DiscountLineResponse `json:"discounts,omitempty"`
	ETA          string                 `json:"eta,omitempty"`
}

func FromCustomerView(v entities.CustomerView) QuoteResponse {
	resp := QuoteResponse{
		RequestID:    v.RequestID,
		CustomerName: v.CustomerName,
		PaperType:    v.PaperType,
		Quantity:     v.Quantity,
		Status:       v.Status,
		Fulfilled:    v.Fulfilled,
		Rationale:    v.Rationale,
		UnitPrice:    v.UnitPrice.StringFixed(2),
		QuoteTotal:   v.QuoteTotal.StringFixed(2),
	}
	for _, d := range v.Discounts {
		resp.Discounts = append(resp.Discounts, DiscountLineResponse{
			Name:    d.Name,
			Percent: d.Percent.String(),
			Amount:  d.Amount.StringFixed(2),
		})
	}
	if v.ETA != nil {
		resp.ETA = v.ETA.Format(time.DateOnly)
	}
	return resp
}
