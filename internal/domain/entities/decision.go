package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision is the full internal record of one evaluated quote request.
//
// It is never rendered directly. Callers derive one of two explicit views:
// CustomerView (safe to show the requester) or OperatorView (adds cash and
// cost figures). Keeping the views as separate types, rather than one struct
// with conditionally hidden fields, prevents internal figures from leaking
// through a new output path.
type Decision struct {
	RequestID    string
	CustomerName string
	PaperType    string
	Quantity     int
	Status       TransactionStatus
	Rationale    string
	Quote        Quote
	ETA          *time.Time

	Sequence         int64
	StockBefore      int
	StockAfter       int
	CashDelta        decimal.Decimal
	CashBalanceAfter decimal.Decimal
	UnitCost         decimal.Decimal
	DecidedAt        time.Time
}

// CustomerView is the subset of a decision safe to return to the requester.
// It carries no cash-balance or cost-basis data.
type CustomerView struct {
	RequestID    string          `json:"request_id"`
	CustomerName string          `json:"customer_name"`
	PaperType    string          `json:"paper_type"`
	Quantity     int             `json:"quantity"`
	Status       string          `json:"status"`
	Fulfilled    bool            `json:"fulfilled"`
	Rationale    string          `json:"rationale"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	QuoteTotal   decimal.Decimal `json:"quote_total"`
	Discounts    []DiscountLine  `json:"discounts,omitempty"`
	ETA          *time.Time      `json:"eta,omitempty"`
}

// OperatorView is the customer view plus the internal figures an operator
// needs: ledger position, stock movement, cash delta and post-transaction
// balance, and the cost basis of the quoted item.
type OperatorView struct {
	CustomerView
	Sequence         int64           `json:"sequence"`
	StockBefore      int             `json:"stock_before"`
	StockAfter       int             `json:"stock_after"`
	CashDelta        decimal.Decimal `json:"cash_delta"`
	CashBalanceAfter decimal.Decimal `json:"cash_balance_after"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	UnitMargin       decimal.Decimal `json:"unit_margin"`
	DecidedAt        time.Time       `json:"decided_at"`
}

func (d Decision) ToCustomerView() CustomerView {
	return CustomerView{
		RequestID:    d.RequestID,
		CustomerName: d.CustomerName,
		PaperType:    d.PaperType,
		Quantity:     d.Quantity,
		Status:       string(d.Status),
		Fulfilled:    d.Status == TransactionStatusFulfilled,
		Rationale:    d.Rationale,
		UnitPrice:    d.Quote.UnitPrice,
		QuoteTotal:   d.Quote.Total,
		Discounts:    d.Quote.Discounts,
		ETA:          d.ETA,
	}
}

func (d Decision) ToOperatorView() OperatorView {
	return OperatorView{
		CustomerView:     d.ToCustomerView(),
		Sequence:         d.Sequence,
		StockBefore:      d.StockBefore,
		StockAfter:       d.StockAfter,
		CashDelta:        d.CashDelta,
		CashBalanceAfter: d.CashBalanceAfter,
		UnitCost:         d.UnitCost,
		UnitMargin:       d.Quote.UnitPrice.Sub(d.UnitCost),
		DecidedAt:        d.DecidedAt,
	}
}

// FinancialSummary is the reporting aggregate folded from the ledger.
// InventoryCarryingCost is an operator-only figure (stock on hand valued at
// unit cost); it does not participate in the cash balance.
type FinancialSummary struct {
	CashBalance           decimal.Decimal `json:"cash_balance"`
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
	FulfilledCount        int             `json:"fulfilled_count"`
	DeclinedCount         int             `json:"declined_count"`
	UnfulfilledCount      int             `json:"unfulfilled_count"`
	InventoryCarryingCost decimal.Decimal `json:"inventory_carrying_cost"`
	GeneratedAt           time.Time       `json:"generated_at"`
}
