package response

import (
	"time"

	"beavers_choice/internal/domain/entities"
)

// TransactionResponse is an operator-facing ledger row.
type TransactionResponse struct {
	Sequence     int64                  `json:"sequence"`
	CreatedAt    time.Time              `json:"created_at"`
	CustomerName string                 `json:"customer_name"`
	PaperType    string                 `json:"paper_type"`
	Quantity     int                    `json:"quantity"`
	UnitPrice    string                 `json:"unit_price"`
	Total        string                 `json:"total"`
	Discounts    []DiscountLineResponse `json:"discounts,omitempty"`
	Status       string                 `json:"status"`
	Rationale    string                 `json:"rationale"`
	CashDelta    string                 `json:"cash_delta"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	resp := TransactionResponse{
		Sequence:     tx.Sequence,
		CreatedAt:    tx.CreatedAt,
		CustomerName: tx.CustomerName,
		PaperType:    tx.PaperType,
		Quantity:     tx.Quantity,
		UnitPrice:    tx.UnitPrice.StringFixed(2),
		Total:        tx.Total.StringFixed(2),
		Status:       string(tx.Status),
		Rationale:    tx.Rationale,
		CashDelta:    tx.CashDelta.StringFixed(2),
	}
	for _, d := range tx.Discounts {
		resp.Discounts = append(resp.Discounts, DiscountLineResponse{
			Name:    d.Name,
			Percent: d.Percent.String(),
			Amount:  d.Amount.StringFixed(2),
		})
	}
	return resp
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}
