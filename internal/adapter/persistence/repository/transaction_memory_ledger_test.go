package repository

import (
	"context"
	"sort"
	"sync"
	"testing"

	"beavers_choice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestTransactionMemoryLedger_AppendAndRead(t *testing.T) {
	ctx := context.Background()
	ledger := NewTransactionMemoryLedger()

	seq1, err := ledger.Append(ctx, entities.Transaction{CustomerName: "acme", CashDelta: decimal.RequireFromString("10.00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq2, err := ledger.Append(ctx, entities.Transaction{CustomerName: "bob", CashDelta: decimal.Zero})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq1 != 1 || seq2 != 2 {
		t.Fatalf("expected sequences 1 and 2, got %d and %d", seq1, seq2)
	}

	txs, err := ledger.ReadAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 2 || txs[0].Sequence != 1 || txs[1].Sequence != 2 {
		t.Fatalf("expected insertion order, got %+v", txs)
	}
}

func TestTransactionMemoryLedger_ReadForCustomer(t *testing.T) {
	ctx := context.Background()
	ledger := NewTransactionMemoryLedger()

	for _, customer := range []string{"acme", "bob", "acme", "acme", "bob"} {
		if _, err := ledger.Append(ctx, entities.Transaction{CustomerName: customer}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		txs, err := ledger.ReadForCustomer(ctx, "acme", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 3 || txs[0].Sequence != 4 || txs[1].Sequence != 3 || txs[2].Sequence != 1 {
			t.Fatalf("unexpected rows: %+v", txs)
		}
	})

	t.Run("limit applies", func(t *testing.T) {
		txs, err := ledger.ReadForCustomer(ctx, "acme", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 2 || txs[0].Sequence != 4 || txs[1].Sequence != 3 {
			t.Fatalf("unexpected rows: %+v", txs)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		txs, err := ledger.ReadForCustomer(ctx, "nobody", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 0 {
			t.Fatalf("expected no rows, got %+v", txs)
		}
	})
}

func TestTransactionMemoryLedger_ConcurrentAppendsGapFree(t *testing.T) {
	ctx := context.Background()
	ledger := NewTransactionMemoryLedger()

	const (
		writers          = 16
		appendsPerWriter = 50
	)
	sequences := make([][]int64, writers)
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < appendsPerWriter; i++ {
				seq, err := ledger.Append(ctx, entities.Transaction{CustomerName: "acme"})
				if err != nil {
					t.Errorf("writer %d: unexpected error: %v", w, err)
					return
				}
				sequences[w] = append(sequences[w], seq)
			}
		}(w)
	}
	wg.Wait()

	var all []int64
	for _, seqs := range sequences {
		all = append(all, seqs...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	if len(all) != writers*appendsPerWriter {
		t.Fatalf("expected %d sequences, got %d", writers*appendsPerWriter, len(all))
	}
	for i, seq := range all {
		if seq != int64(i+1) {
			t.Fatalf("expected gap-free sequence %d, got %d", i+1, seq)
		}
	}
}

func TestTransactionMemoryLedger_CancelledContext(t *testing.T) {
	ledger := NewTransactionMemoryLedger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ledger.Append(ctx, entities.Transaction{}); err == nil {
		t.Fatalf("expected context error")
	}
	txs, err := ledger.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("expected nothing written, got %+v", txs)
	}
}
