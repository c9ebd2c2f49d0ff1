package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "beavers_choice/internal/adapter/http/dto/response"
	"beavers_choice/internal/usecase"
	"beavers_choice/pkg"

	"github.com/gin-gonic/gin"
)

const defaultTransactionPageSize = 50

// ReportingHandler serves the operator reporting surface: cash balance,
// financial summary and ledger browsing.

type ReportingHandler struct {
	usecase usecase.IReportingUseCase
}

func NewReportingHandler(uc usecase.IReportingUseCase) *ReportingHandler {
	return &ReportingHandler{usecase: uc}
}

func (h *ReportingHandler) GetCashBalance(c *gin.Context) {
	balance, err := h.usecase.CashBalance(c.Request.Context())
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CashBalanceResponse{CashBalance: balance.StringFixed(2)})
}

func (h *ReportingHandler) GetFinancialReport(c *gin.Context) {
	summary, err := h.usecase.FinancialSummary(c.Request.Context())
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialSummary(summary))
}

// ListTransactions returns ledger rows, optionally filtered by
// ?customer_name= and capped by ?limit=.
func (h *ReportingHandler) ListTransactions(c *gin.Context) {
	limit := defaultTransactionPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = parsed
	}

	txs, err := h.usecase.ListTransactions(c.Request.Context(), c.Query("customer_name"), limit)
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

func mapReportingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Ledger is unavailable, please retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
