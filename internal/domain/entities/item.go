package entities

import "github.com/shopspring/decimal"

// Item describes one paper SKU sold by the company.
//
// Items are created at catalog-seed time and never deleted; running out of a
// paper type only zeroes its stock level. UnitCost is internal (operator-only)
// data and must never surface in customer-facing output.
type Item struct {
	PaperType        string          `json:"paper_type"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	ListPrice        decimal.Decimal `json:"list_price"`
	ReorderThreshold int             `json:"reorder_threshold"`
	SupplierLeadDays int             `json:"supplier_lead_days"`
}

// Catalog maps paper type to its spec. Supplied once at startup; the core
// treats ids outside the catalog as unknown items.
type Catalog map[string]Item

// StockLevel is one inventory row: a paper type and its on-hand quantity.
type StockLevel struct {
	PaperType string `json:"paper_type"`
	Quantity  int    `json:"quantity"`
}

// InventoryStatus is a stock level enriched with reorder metadata for
// operator tooling.
type InventoryStatus struct {
	PaperType        string `json:"paper_type"`
	Quantity         int    `json:"quantity"`
	ReorderThreshold int    `json:"reorder_threshold"`
	NeedsReorder     bool   `json:"needs_reorder"`
}

// DefaultCatalog returns the stock paper catalog the company sells.
func DefaultCatalog() Catalog {
	return Catalog{
		"matte_a4": {
			PaperType:        "matte_a4",
			UnitCost:         decimal.RequireFromString("1.40"),
			ListPrice:        decimal.RequireFromString("2.40"),
			ReorderThreshold: 120,
			SupplierLeadDays: 5,
		},
		"glossy_a4": {
			PaperType:        "glossy_a4",
			UnitCost:         decimal.RequireFromString("1.85"),
			ListPrice:        decimal.RequireFromString("3.10"),
			ReorderThreshold: 100,
			SupplierLeadDays: 7,
		},
		"cardstock_a3": {
			PaperType:        "cardstock_a3",
			UnitCost:         decimal.RequireFromString("2.75"),
			ListPrice:        decimal.RequireFromString("4.35"),
			ReorderThreshold: 80,
			SupplierLeadDays: 9,
		},
		"recycled_a4": {
			PaperType:        "recycled_a4",
			UnitCost:         decimal.RequireFromString("1.55"),
			ListPrice:        decimal.RequireFromString("2.65"),
			ReorderThreshold: 110,
			SupplierLeadDays: 6,
		},
	}
}
