package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the terminal outcome recorded for a decision.
type TransactionStatus string

const (
	TransactionStatusFulfilled   TransactionStatus = "fulfilled"
	TransactionStatusDeclined    TransactionStatus = "declined"
	TransactionStatusUnfulfilled TransactionStatus = "unfulfilled"
)

// Transaction is the atomic, immutable record of one quote decision.
//
// The ledger is append-only: a transaction is never updated or deleted once
// written. Sequence ids are assigned by the ledger, monotonically and without
// gaps per ledger instance. CashDelta is the quote total on fulfillment and
// zero otherwise, so the cash balance is always the fold of deltas in
// sequence order.
type Transaction struct {
	Sequence     int64             `json:"sequence"`
	CreatedAt    time.Time         `json:"created_at"`
	CustomerName string            `json:"customer_name"`
	PaperType    string            `json:"paper_type"`
	Quantity     int               `json:"quantity"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	Total        decimal.Decimal   `json:"total"`
	Discounts    []DiscountLine    `json:"discounts,omitempty"`
	Status       TransactionStatus `json:"status"`
	Rationale    string            `json:"rationale"`
	CashDelta    decimal.Decimal   `json:"cash_delta"`
}
