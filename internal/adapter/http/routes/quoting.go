package routes

import (
	"beavers_choice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathOperator = "/operator"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	reportingHandler *handlers.ReportingHandler,
	inventoryHandler *handlers.InventoryHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		// Customer-facing: responses carry the customer view only.
		quotes.POST("", quoteHandler.CreateQuote)
	}

	operator := rg.Group(PathOperator)
	{
		operator.GET("/reports/cash", reportingHandler.GetCashBalance)
		operator.GET("/reports/financial", reportingHandler.GetFinancialReport)
		operator.GET("/transactions", reportingHandler.ListTransactions)

		operator.GET("/inventory", inventoryHandler.ListStock)
		operator.GET("/inventory/:paper_type", inventoryHandler.GetStock)
		operator.PUT("/inventory/:paper_type", inventoryHandler.SetStock)
	}
}
