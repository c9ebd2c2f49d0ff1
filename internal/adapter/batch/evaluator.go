package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"beavers_choice/internal/domain/entities"
	"beavers_choice/internal/usecase"

	"github.com/shopspring/decimal"
)

// statusRejected marks rows whose request never reached a decision: the
// input was invalid, so nothing was written to the ledger. It is distinct
// from the three ledger outcomes on purpose.
const statusRejected = "rejected"

var inputColumns = []string{"request_id", "customer_name", "paper_type", "quantity", "max_budget", "needed_by"}

var outputColumns = []string{
	"request_id",
	"customer_name",
	"paper_type",
	"quantity",
	"quote_total",
	"status",
	"fulfilled",
	"rationale",
	"operator_cash_balance_after",
}

// Result is one evaluated row of a batch run.
type Result struct {
	RequestID        string
	CustomerName     string
	PaperType        string
	Quantity         int
	QuoteTotal       decimal.Decimal
	Status           string
	Fulfilled        bool
	Rationale        string
	CashBalanceAfter decimal.Decimal
}

// Evaluator runs a CSV of quote requests through the fulfillment pipeline
// sequentially and writes a results CSV. Rows are processed in file order so
// a run is reproducible against the same starting state.
type Evaluator struct {
	fulfillment usecase.IFulfillmentUseCase
	reporting   usecase.IReportingUseCase
}

func NewEvaluator(fulfillment usecase.IFulfillmentUseCase, reporting usecase.IReportingUseCase) *Evaluator {
	return &Evaluator{fulfillment: fulfillment, reporting: reporting}
}

// Run reads requests from in, evaluates them, writes the results CSV to out
// and returns the results. Invalid rows become "rejected" results; storage
// failures abort the run.
func (e *Evaluator) Run(ctx context.Context, in io.Reader, out io.Writer) ([]Result, error) {
	requests, err := readRequests(in)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(requests))
	for _, req := range requests {
		result, err := e.evaluate(ctx, req)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := writeResults(out, results); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Evaluator) evaluate(ctx context.Context, req entities.QuoteRequest) (Result, error) {
	decision, err := e.fulfillment.EvaluateQuote(ctx, req)
	if err == nil {
		view := decision.ToOperatorView()
		return Result{
			RequestID:        req.RequestID,
			CustomerName:     req.CustomerName,
			PaperType:        req.PaperType,
			Quantity:         req.Quantity,
			QuoteTotal:       decision.Quote.Total,
			Status:           string(decision.Status),
			Fulfilled:        decision.Status == entities.TransactionStatusFulfilled,
			Rationale:        decision.Rationale,
			CashBalanceAfter: view.CashBalanceAfter,
		}, nil
	}

	rationale, recovered := rejectionRationale(err)
	if !recovered {
		return Result{}, fmt.Errorf("request %s: %w", req.RequestID, err)
	}

	// No ledger write happened, so the balance is simply the current one.
	balance, balErr := e.reporting.CashBalance(ctx)
	if balErr != nil {
		return Result{}, fmt.Errorf("request %s: %w", req.RequestID, balErr)
	}
	return Result{
		RequestID:        req.RequestID,
		CustomerName:     req.CustomerName,
		PaperType:        req.PaperType,
		Quantity:         req.Quantity,
		QuoteTotal:       decimal.Zero,
		Status:           statusRejected,
		Rationale:        rationale,
		CashBalanceAfter: balance,
	}, nil
}

func rejectionRationale(err error) (string, bool) {
	switch {
	case errors.Is(err, usecase.ErrUnknownPaperType):
		return "requested paper type is not available", true
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return "requested quantity is invalid", true
	case errors.Is(err, usecase.ErrInvalidCustomerName):
		return "customer name is required", true
	default:
		return "", false
	}
}

func readRequests(in io.Reader) ([]entities.QuoteRequest, error) {
	reader := csv.NewReader(in)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range inputColumns {
		if col == "needed_by" {
			// Optional in the input contract.
			continue
		}
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing csv column %q", col)
		}
	}

	var requests []entities.QuoteRequest
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		quantity, err := strconv.Atoi(field("quantity"))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: bad quantity %q", line, field("quantity"))
		}

		var maxBudget *decimal.Decimal
		if raw := field("max_budget"); raw != "" {
			budget, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: bad max_budget %q", line, raw)
			}
			maxBudget = &budget
		}

		neededBy := time.Now().UTC().Truncate(24 * time.Hour)
		if raw := field("needed_by"); raw != "" {
			parsed, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: bad needed_by %q", line, raw)
			}
			neededBy = parsed
		}

		requests = append(requests, entities.QuoteRequest{
			RequestID:    field("request_id"),
			CustomerName: field("customer_name"),
			PaperType:    field("paper_type"),
			Quantity:     quantity,
			MaxBudget:    maxBudget,
			NeededBy:     neededBy,
		})
	}
	return requests, nil
}

func writeResults(out io.Writer, results []Result) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(outputColumns); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.RequestID,
			r.CustomerName,
			r.PaperType,
			strconv.Itoa(r.Quantity),
			r.QuoteTotal.StringFixed(2),
			r.Status,
			strconv.FormatBool(r.Fulfilled),
			r.Rationale,
			r.CashBalanceAfter.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
