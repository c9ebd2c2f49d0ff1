package usecase

import (
	"context"
	"errors"
	"testing"

	"beavers_choice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func testCatalog() entities.Catalog {
	return entities.DefaultCatalog()
}

func quoteReq(paperType string, quantity int) entities.QuoteRequest {
	return entities.QuoteRequest{
		RequestID:    "req-1",
		CustomerName: "acme",
		PaperType:    paperType,
		Quantity:     quantity,
	}
}

func fulfilledHistory(n int) []entities.Transaction {
	history := make([]entities.Transaction, 0, n)
	for i := 0; i < n; i++ {
		history = append(history, entities.Transaction{Status: entities.TransactionStatusFulfilled})
	}
	return history
}

func TestQuoteUseCase_PriceQuote(t *testing.T) {
	uc, err := NewQuoteUseCase(testCatalog(), entities.DefaultPricingPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("invalid quantity", func(t *testing.T) {
		_, err := uc.PriceQuote(ctx, quoteReq("matte_a4", 0), nil)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("unknown paper type", func(t *testing.T) {
		_, err := uc.PriceQuote(ctx, quoteReq("papyrus", 10), nil)
		if !errors.Is(err, ErrUnknownPaperType) {
			t.Fatalf("expected ErrUnknownPaperType, got %v", err)
		}
	})

	t.Run("list price below first bulk tier", func(t *testing.T) {
		quote, err := uc.PriceQuote(ctx, quoteReq("matte_a4", 10), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := quote.UnitPrice.StringFixed(2); got != "2.40" {
			t.Fatalf("expected unit price 2.40, got %s", got)
		}
		if got := quote.Total.StringFixed(2); got != "24.00" {
			t.Fatalf("expected total 24.00, got %s", got)
		}
		if len(quote.Discounts) != 0 {
			t.Fatalf("expected no discount lines, got %+v", quote.Discounts)
		}
	})

	t.Run("bulk tiers", func(t *testing.T) {
		cases := []struct {
			quantity  int
			unitPrice string
		}{
			{99, "2.40"},
			{100, "2.26"},
			{200, "2.16"},
			{300, "2.06"},
		}
		for _, tc := range cases {
			quote, err := uc.PriceQuote(ctx, quoteReq("matte_a4", tc.quantity), nil)
			if err != nil {
				t.Fatalf("qty %d: unexpected error: %v", tc.quantity, err)
			}
			if got := quote.UnitPrice.StringFixed(2); got != tc.unitPrice {
				t.Fatalf("qty %d: expected unit price %s, got %s", tc.quantity, tc.unitPrice, got)
			}
		}
	})

	t.Run("loyalty from prior fulfilled count", func(t *testing.T) {
		history := append(fulfilledHistory(1), entities.Transaction{Status: entities.TransactionStatusDeclined})
		quote, err := uc.PriceQuote(ctx, quoteReq("matte_a4", 10), history)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 2.40 * 0.98 = 2.352 -> 2.35
		if got := quote.UnitPrice.StringFixed(2); got != "2.35" {
			t.Fatalf("expected unit price 2.35, got %s", got)
		}
		if quote.Basis.PriorFulfilled != 1 {
			t.Fatalf("expected 1 prior fulfilled, got %d", quote.Basis.PriorFulfilled)
		}
	})

	t.Run("combined discount clamped to cap", func(t *testing.T) {
		// 5 prior fulfilled (8%) + qty 300 (14%) would be 22%; cap is 20%.
		quote, err := uc.PriceQuote(ctx, quoteReq("matte_a4", 300), fulfilledHistory(5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := quote.TotalDiscountPercent().String(); got != "0.2" {
			t.Fatalf("expected combined discount 0.2, got %s", got)
		}
		// 2.40 * 0.80 = 1.92; 300 * 1.92 = 576.00
		if got := quote.UnitPrice.StringFixed(2); got != "1.92" {
			t.Fatalf("expected unit price 1.92, got %s", got)
		}
		if got := quote.Total.StringFixed(2); got != "576.00" {
			t.Fatalf("expected total 576.00, got %s", got)
		}
	})

	t.Run("unit price never increases with quantity", func(t *testing.T) {
		prev := decimal.Decimal{}
		for qty := 1; qty <= 400; qty++ {
			quote, err := uc.PriceQuote(ctx, quoteReq("glossy_a4", qty), nil)
			if err != nil {
				t.Fatalf("qty %d: unexpected error: %v", qty, err)
			}
			if qty > 1 && quote.UnitPrice.GreaterThan(prev) {
				t.Fatalf("unit price increased from %s to %s at qty %d", prev, quote.UnitPrice, qty)
			}
			prev = quote.UnitPrice
		}
	})

	t.Run("pre-discount total monotone in quantity", func(t *testing.T) {
		prev := decimal.Decimal{}
		for qty := 1; qty <= 400; qty++ {
			quote, err := uc.PriceQuote(ctx, quoteReq("cardstock_a3", qty), nil)
			if err != nil {
				t.Fatalf("qty %d: unexpected error: %v", qty, err)
			}
			listTotal := quote.ListUnitPrice.Mul(decimal.NewFromInt(int64(qty)))
			if qty > 1 && listTotal.LessThan(prev) {
				t.Fatalf("pre-discount total decreased at qty %d", qty)
			}
			prev = listTotal
		}
	})
}

func TestQuoteUseCase_RoundHalfToEven(t *testing.T) {
	catalog := entities.Catalog{
		"tie_case": {
			PaperType: "tie_case",
			UnitCost:  decimal.RequireFromString("1.00"),
			ListPrice: decimal.RequireFromString("2.70"),
		},
	}
	policy := entities.PricingPolicy{
		LoyaltyTiers:     []entities.LoyaltyTier{{MinFulfilled: 1, Percent: decimal.RequireFromString("0.05")}},
		MaxTotalDiscount: decimal.RequireFromString("0.20"),
	}
	uc, err := NewQuoteUseCase(catalog, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2.70 * 0.95 = 2.565: half rounds to the even cent, 2.56.
	quote, err := uc.PriceQuote(context.Background(), quoteReq("tie_case", 1), fulfilledHistory(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := quote.UnitPrice.StringFixed(2); got != "2.56" {
		t.Fatalf("expected unit price 2.56, got %s", got)
	}
}

func TestQuoteUseCase_RejectsInvalidPolicy(t *testing.T) {
	policy := entities.DefaultPricingPolicy()
	policy.BulkTiers[1].Percent = decimal.RequireFromString("0.01") // below tier 1

	if _, err := NewQuoteUseCase(testCatalog(), policy); err == nil {
		t.Fatalf("expected policy validation error")
	}
}
