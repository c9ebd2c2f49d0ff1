package response

import (
	"time"

	"beavers_choice/internal/domain/entities"
)

type CashBalanceResponse struct {
	CashBalance string `json:"cash_balance"`
}

type FinancialReportResponse struct {
	CashBalance           string    `json:"cash_balance"`
	TotalRevenue          string    `json:"total_revenue"`
	FulfilledCount        int       `json:"fulfilled_count"`
	DeclinedCount         int       `json:"declined_count"`
	UnfulfilledCount      int       `json:"unfulfilled_count"`
	InventoryCarryingCost string    `json:"inventory_carrying_cost"`
	GeneratedAt           time.Time `json:"generated_at"`
}

func FromFinancialSummary(s entities.FinancialSummary) FinancialReportResponse {
	return FinancialReportResponse{
		CashBalance:           s.CashBalance.StringFixed(2),
		TotalRevenue:          s.TotalRevenue.StringFixed(2),
		FulfilledCount:        s.FulfilledCount,
		DeclinedCount:         s.DeclinedCount,
		UnfulfilledCount:      s.UnfulfilledCount,
		InventoryCarryingCost: s.InventoryCarryingCost.StringFixed(2),
		GeneratedAt:           s.GeneratedAt,
	}
}
