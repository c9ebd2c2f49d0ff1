package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DiscountLine is one named discount applied to a quote.
type DiscountLine struct {
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// QuoteBasis records the policy inputs a quote was computed from.
type QuoteBasis struct {
	BulkTierQuantity int `json:"bulk_tier_quantity"`
	PriorFulfilled   int `json:"prior_fulfilled"`
}

// Quote is the computed price for one request. Derived, never persisted on
// its own: its figures travel embedded in the transaction that records the
// decision.
type Quote struct {
	PaperType     string          `json:"paper_type"`
	Quantity      int             `json:"quantity"`
	ListUnitPrice decimal.Decimal `json:"list_unit_price"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
	Discounts     []DiscountLine  `json:"discounts,omitempty"`
	Basis         QuoteBasis      `json:"basis"`
}

// TotalDiscountPercent sums the applied discount lines.
func (q Quote) TotalDiscountPercent() decimal.Decimal {
	total := decimal.Zero
	for _, d := range q.Discounts {
		total = total.Add(d.Percent)
	}
	return total
}

// BulkTier grants Percent off when the requested quantity reaches MinQuantity.
type BulkTier struct {
	MinQuantity int
	Percent     decimal.Decimal
}

// LoyaltyTier grants Percent off when the customer has at least MinFulfilled
// prior fulfilled transactions.
type LoyaltyTier struct {
	MinFulfilled int
	Percent      decimal.Decimal
}

// PricingPolicy is the deterministic discount rule set. Tiers are ordered
// ascending by threshold and the highest applicable tier wins; the combined
// bulk+loyalty percentage is clamped to MaxTotalDiscount.
type PricingPolicy struct {
	BulkTiers        []BulkTier
	LoyaltyTiers     []LoyaltyTier
	MaxTotalDiscount decimal.Decimal
}

// DefaultPricingPolicy returns the standing discount schedule.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		BulkTiers: []BulkTier{
			{MinQuantity: 100, Percent: decimal.RequireFromString("0.06")},
			{MinQuantity: 200, Percent: decimal.RequireFromString("0.10")},
			{MinQuantity: 300, Percent: decimal.RequireFromString("0.14")},
		},
		LoyaltyTiers: []LoyaltyTier{
			{MinFulfilled: 1, Percent: decimal.RequireFromString("0.02")},
			{MinFulfilled: 3, Percent: decimal.RequireFromString("0.05")},
			{MinFulfilled: 5, Percent: decimal.RequireFromString("0.08")},
		},
		MaxTotalDiscount: decimal.RequireFromString("0.20"),
	}
}

// Validate checks the policy tables at load time: thresholds strictly
// ascending, percentages non-decreasing with tier, every percentage within
// [0, MaxTotalDiscount] and the cap itself within [0, 1).
func (p PricingPolicy) Validate() error {
	one := decimal.NewFromInt(1)
	if p.MaxTotalDiscount.IsNegative() || p.MaxTotalDiscount.GreaterThanOrEqual(one) {
		return fmt.Errorf("max total discount %s outside [0, 1)", p.MaxTotalDiscount)
	}
	for i, tier := range p.BulkTiers {
		if tier.MinQuantity <= 0 {
			return errors.New("bulk tier threshold must be positive")
		}
		if tier.Percent.IsNegative() || tier.Percent.GreaterThanOrEqual(one) {
			return fmt.Errorf("bulk tier percent %s outside [0, 1)", tier.Percent)
		}
		if i > 0 {
			prev := p.BulkTiers[i-1]
			if tier.MinQuantity <= prev.MinQuantity {
				return errors.New("bulk tier thresholds must be strictly ascending")
			}
			if tier.Percent.LessThan(prev.Percent) {
				return errors.New("bulk tier percents must be non-decreasing")
			}
		}
	}
	for i, tier := range p.LoyaltyTiers {
		if tier.MinFulfilled <= 0 {
			return errors.New("loyalty tier threshold must be positive")
		}
		if tier.Percent.IsNegative() || tier.Percent.GreaterThanOrEqual(one) {
			return fmt.Errorf("loyalty tier percent %s outside [0, 1)", tier.Percent)
		}
		if i > 0 {
			prev := p.LoyaltyTiers[i-1]
			if tier.MinFulfilled <= prev.MinFulfilled {
				return errors.New("loyalty tier thresholds must be strictly ascending")
			}
			if tier.Percent.LessThan(prev.Percent) {
				return errors.New("loyalty tier percents must be non-decreasing")
			}
		}
	}
	return nil
}

// BulkDiscount resolves the highest bulk tier applicable to quantity.
func (p PricingPolicy) BulkDiscount(quantity int) (percent decimal.Decimal, tierQuantity int) {
	percent = decimal.Zero
	for _, tier := range p.BulkTiers {
		if quantity >= tier.MinQuantity {
			percent = tier.Percent
			tierQuantity = tier.MinQuantity
		}
	}
	return percent, tierQuantity
}

// LoyaltyDiscount resolves the highest loyalty tier applicable to the
// customer's count of prior fulfilled transactions.
func (p PricingPolicy) LoyaltyDiscount(priorFulfilled int) decimal.Decimal {
	percent := decimal.Zero
	for _, tier := range p.LoyaltyTiers {
		if priorFulfilled >= tier.MinFulfilled {
			percent = tier.Percent
		}
	}
	return percent
}
