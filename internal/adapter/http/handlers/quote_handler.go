package handlers

import (
	"errors"
	"net/http"
	"time"

	request "beavers_choice/internal/adapter/http/dto/request"
	response "beavers_choice/internal/adapter/http/dto/response"
	"beavers_choice/internal/usecase"
	"beavers_choice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP intake of purchase-quote requests.
//
// The response body is always the customer view: operator figures never
// leave through this endpoint.

type QuoteHandler struct {
	usecase usecase.IFulfillmentUseCase
}

func NewQuoteHandler(uc usecase.IFulfillmentUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote evaluates one quote request and returns the decision.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	req, err := payload.ToQuoteRequest(uuid.NewString(), time.Now())
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	decision, err := h.usecase.EvaluateQuote(c.Request.Context(), req)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomerView(decision.ToCustomerView()))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownPaperType):
		return pkg.NewDomainErrorSimple("PAPER_TYPE_NOT_AVAILABLE", "Requested paper type is not available", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidCustomerName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Decision could not be recorded, please retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
