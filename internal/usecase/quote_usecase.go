package usecase

import (
	"context"
	"errors"

	"beavers_choice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownPaperType = errors.New("unknown paper type")
	ErrInvalidQuantity  = errors.New("invalid quantity")
)

// IQuoteUseCase computes a quote for one request.
//
// Pricing is policy-neutral: the quote is returned even when it exceeds the
// request's budget ceiling. The budget comparison belongs to the fulfillment
// engine, not the pricer.

type IQuoteUseCase interface {
	PriceQuote(ctx context.Context, req entities.QuoteRequest, history []entities.Transaction) (entities.Quote, error)
}

type QuoteUseCase struct {
	catalog entities.Catalog
	policy  entities.PricingPolicy
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase validates the discount tables up front so a malformed
// policy is rejected at startup rather than mispricing quotes at runtime.
func NewQuoteUseCase(catalog entities.Catalog, policy entities.PricingPolicy) (*QuoteUseCase, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &QuoteUseCase{catalog: catalog, policy: policy}, nil
}

// PriceQuote prices a request against the catalog and discount policy.
//
// Bulk and loyalty discounts are additive, with the combined percentage
// clamped to the policy cap; within the cap, the bulk line is attributed
// first and loyalty takes whatever headroom remains. The unit price and the
// total are each rounded to the cent with round-half-to-even.
func (u *QuoteUseCase) PriceQuote(_ context.Context, req entities.QuoteRequest, history []entities.Transaction) (entities.Quote, error) {
	if req.Quantity <= 0 {
		return entities.Quote{}, ErrInvalidQuantity
	}
	item, ok := u.catalog[req.PaperType]
	if !ok {
		return entities.Quote{}, ErrUnknownPaperType
	}

	bulkPercent, bulkTierQty := u.policy.BulkDiscount(req.Quantity)
	priorFulfilled := countFulfilled(history)
	loyaltyPercent := u.policy.LoyaltyDiscount(priorFulfilled)

	combined := bulkPercent.Add(loyaltyPercent)
	if combined.GreaterThan(u.policy.MaxTotalDiscount) {
		combined = u.policy.MaxTotalDiscount
	}
	if combined.IsNegative() || combined.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return entities.Quote{}, ErrPolicyViolation
	}

	appliedBulk := decimal.Min(bulkPercent, combined)
	appliedLoyalty := combined.Sub(appliedBulk)

	qty := decimal.NewFromInt(int64(req.Quantity))
	unitPrice := item.ListPrice.Mul(decimal.NewFromInt(1).Sub(combined)).RoundBank(2)
	total := unitPrice.Mul(qty).RoundBank(2)

	var discounts []entities.DiscountLine
	if appliedBulk.IsPositive() {
		discounts = append(discounts, entities.DiscountLine{
			Name:    "bulk",
			Percent: appliedBulk,
			Amount:  item.ListPrice.Mul(appliedBulk).Mul(qty).RoundBank(2),
		})
	}
	if appliedLoyalty.IsPositive() {
		discounts = append(discounts, entities.DiscountLine{
			Name:    "loyalty",
			Percent: appliedLoyalty,
			Amount:  item.ListPrice.Mul(appliedLoyalty).Mul(qty).RoundBank(2),
		})
	}

	return entities.Quote{
		PaperType:     req.PaperType,
		Quantity:      req.Quantity,
		ListUnitPrice: item.ListPrice,
		UnitPrice:     unitPrice,
		Total:         total,
		Discounts:     discounts,
		Basis: entities.QuoteBasis{
			BulkTierQuantity: bulkTierQty,
			PriorFulfilled:   priorFulfilled,
		},
	}, nil
}

func countFulfilled(history []entities.Transaction) int {
	n := 0
	for _, tx := range history {
		if tx.Status == entities.TransactionStatusFulfilled {
			n++
		}
	}
	return n
}
