package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrPolicyViolation     = errors.New("pricing policy violation")
)

// historyWindow bounds how far back the engine looks when counting a
// customer's prior fulfilled transactions for the loyalty discount.
const historyWindow = 20

// IFulfillmentUseCase evaluates one quote request end to end.
//
// Every terminal outcome (fulfilled, declined, unfulfilled) appends exactly
// one transaction to the ledger before the decision is returned: no decision
// without a durable record. Recovered input errors (unknown paper type,
// non-positive quantity) never reach the ledger.

type IFulfillmentUseCase interface {
	EvaluateQuote(ctx context.Context, req entities.QuoteRequest) (entities.Decision, error)
}

type FulfillmentUseCase struct {
	inventory interfaces.IInventoryRepository
	ledger    interfaces.ITransactionLedger
	estimator interfaces.ISupplierEstimator
	pricer    IQuoteUseCase
	catalog   entities.Catalog
	now       func() time.Time

	// mu guards itemLocks; each per-item lock serializes
	// check stock -> decide -> append for that paper type.
	mu        sync.Mutex
	itemLocks map[string]*sync.Mutex
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(
	inventory interfaces.IInventoryRepository,
	ledger interfaces.ITransactionLedger,
	estimator interfaces.ISupplierEstimator,
	pricer IQuoteUseCase,
	catalog entities.Catalog,
) *FulfillmentUseCase {
	return &FulfillmentUseCase{
		inventory: inventory,
		ledger:    ledger,
		estimator: estimator,
		pricer:    pricer,
		catalog:   catalog,
		now:       time.Now,
		itemLocks: make(map[string]*sync.Mutex),
	}
}

// WithClock overrides the time source; tests pin it for deterministic output.
func (u *FulfillmentUseCase) WithClock(now func() time.Time) *FulfillmentUseCase {
	u.now = now
	return u
}

// EvaluateQuote runs the decision state machine for one request.
//
// Rules apply in fixed order: budget ceiling first, then stock, then the
// supplier ETA fallback. First match wins. Re-entrant calls for the same
// logical request are independent; idempotent retries are the caller's
// concern.
func (u *FulfillmentUseCase) EvaluateQuote(ctx context.Context, req entities.QuoteRequest) (entities.Decision, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.PaperType = strings.TrimSpace(req.PaperType)

	if req.CustomerName == "" {
		return entities.Decision{}, ErrInvalidCustomerName
	}
	if req.Quantity <= 0 {
		return entities.Decision{}, ErrInvalidQuantity
	}
	item, ok := u.catalog[req.PaperType]
	if !ok {
		return entities.Decision{}, ErrUnknownPaperType
	}

	history, err := u.ledger.ReadForCustomer(ctx, req.CustomerName, historyWindow)
	if err != nil {
		log.Printf("[fulfillment][usecase] history read failed customer=%s err=%v", req.CustomerName, err)
		return entities.Decision{}, ErrStorageUnavailable
	}

	quote, err := u.pricer.PriceQuote(ctx, req, history)
	policyBreach := errors.Is(err, ErrPolicyViolation)
	if err != nil && !policyBreach {
		return entities.Decision{}, err
	}
	if policyBreach {
		// Defect in the discount tables: decline conservatively rather
		// than ship a mispriced quote, but still record the decision.
		log.Printf("[fulfillment][usecase] pricing policy violation request_id=%s paper_type=%s qty=%d", req.RequestID, req.PaperType, req.Quantity)
		quote = entities.Quote{PaperType: req.PaperType, Quantity: req.Quantity, ListUnitPrice: item.ListPrice}
	}

	lock := u.itemLock(req.PaperType)
	lock.Lock()
	defer lock.Unlock()

	balanceBefore, err := u.ledgerBalance(ctx)
	if err != nil {
		log.Printf("[fulfillment][usecase] balance snapshot failed request_id=%s err=%v", req.RequestID, err)
		return entities.Decision{}, ErrStorageUnavailable
	}
	stock, err := u.inventory.GetStock(ctx, req.PaperType)
	if err != nil {
		log.Printf("[fulfillment][usecase] stock read failed paper_type=%s err=%v", req.PaperType, err)
		return entities.Decision{}, ErrStorageUnavailable
	}

	decision := entities.Decision{
		RequestID:    req.RequestID,
		CustomerName: req.CustomerName,
		PaperType:    req.PaperType,
		Quantity:     req.Quantity,
		Quote:        quote,
		StockBefore:  stock,
		StockAfter:   stock,
		CashDelta:    decimal.Zero,
		UnitCost:     item.UnitCost,
		DecidedAt:    u.now().UTC(),
	}

	switch {
	case policyBreach:
		decision.Status = entities.TransactionStatusDeclined
		decision.Rationale = "declined due to an internal pricing error"

	case req.MaxBudget != nil && quote.Total.GreaterThan(*req.MaxBudget):
		decision.Status = entities.TransactionStatusDeclined
		decision.Rationale = fmt.Sprintf("quote exceeds stated budget ($%s)", req.MaxBudget.StringFixed(2))

	case stock >= req.Quantity:
		if err := u.inventory.SetStock(ctx, req.PaperType, stock-req.Quantity); err != nil {
			log.Printf("[fulfillment][usecase] stock decrement failed paper_type=%s err=%v", req.PaperType, err)
			return entities.Decision{}, ErrStorageUnavailable
		}
		decision.Status = entities.TransactionStatusFulfilled
		decision.Rationale = "fulfilled from on-hand inventory"
		decision.StockAfter = stock - req.Quantity
		decision.CashDelta = quote.Total

	default:
		eta, err := u.estimator.EstimateDelivery(ctx, req.PaperType, req.Quantity)
		if err != nil {
			log.Printf("[fulfillment][usecase] supplier estimate failed paper_type=%s err=%v", req.PaperType, err)
			return entities.Decision{}, err
		}
		decision.Status = entities.TransactionStatusUnfulfilled
		decision.Rationale = fmt.Sprintf("insufficient stock; earliest supplier ETA %s, quote total $%s stands for reorder", eta.Format(time.DateOnly), quote.Total.StringFixed(2))
		decision.ETA = &eta
	}

	seq, err := u.ledger.Append(ctx, entities.Transaction{
		CreatedAt:    decision.DecidedAt,
		CustomerName: req.CustomerName,
		PaperType:    req.PaperType,
		Quantity:     req.Quantity,
		UnitPrice:    quote.UnitPrice,
		Total:        quote.Total,
		Discounts:    quote.Discounts,
		Status:       decision.Status,
		Rationale:    decision.Rationale,
		CashDelta:    decision.CashDelta,
	})
	if err != nil {
		log.Printf("[fulfillment][usecase] ledger append failed request_id=%s err=%v", req.RequestID, err)
		if decision.Status == entities.TransactionStatusFulfilled {
			// Undo the decrement so the failed decision leaves no
			// partial state behind.
			if rbErr := u.inventory.SetStock(ctx, req.PaperType, stock); rbErr != nil {
				log.Printf("[fulfillment][usecase] stock compensation failed paper_type=%s err=%v", req.PaperType, rbErr)
			}
		}
		return entities.Decision{}, ErrStorageUnavailable
	}

	decision.Sequence = seq
	decision.CashBalanceAfter = balanceBefore.Add(decision.CashDelta)
	return decision, nil
}

func (u *FulfillmentUseCase) itemLock(paperType string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	lock, ok := u.itemLocks[paperType]
	if !ok {
		lock = &sync.Mutex{}
		u.itemLocks[paperType] = lock
	}
	return lock
}

func (u *FulfillmentUseCase) ledgerBalance(ctx context.Context) (decimal.Decimal, error) {
	txs, err := u.ledger.ReadAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	balance := decimal.Zero
	for _, tx := range txs {
		balance = balance.Add(tx.CashDelta)
	}
	return balance, nil
}
