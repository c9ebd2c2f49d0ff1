package repository

import (
	"context"
	"sync"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase/interfaces"
)

// TransactionMemoryLedger is the in-process append-only transaction store.
//
// Sequence ids are assigned under the ledger's own lock, so they are strictly
// increasing and gap-free even under concurrent appends.
type TransactionMemoryLedger struct {
	mu      sync.RWMutex
	txs     []entities.Transaction
	nextSeq int64
}

var _ interfaces.ITransactionLedger = (*TransactionMemoryLedger)(nil)

func NewTransactionMemoryLedger() *TransactionMemoryLedger {
	return &TransactionMemoryLedger{nextSeq: 1}
}

func (l *TransactionMemoryLedger) Append(ctx context.Context, tx entities.Transaction) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	tx.Sequence = l.nextSeq
	l.nextSeq++
	l.txs = append(l.txs, tx)
	return tx.Sequence, nil
}

func (l *TransactionMemoryLedger) ReadAll(ctx context.Context) ([]entities.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entities.Transaction, len(l.txs))
	copy(out, l.txs)
	return out, nil
}

func (l *TransactionMemoryLedger) ReadForCustomer(ctx context.Context, customerName string, limit int) ([]entities.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []entities.Transaction
	for i := len(l.txs) - 1; i >= 0; i-- {
		if l.txs[i].CustomerName != customerName {
			continue
		}
		out = append(out, l.txs[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
