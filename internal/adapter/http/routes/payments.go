package routes

import (
	"splitpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders       = "/orders"
	PathTransactions = "/transactions"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.SplitPaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/payments", h.CreatePayment)
		orders.POST("/:order_id/refunds", h.CreateRefund)
		orders.GET("/:order_id/transactions", h.ListTransactions)
		orders.GET("/:order_id/transactions/export", h.ExportTransactions)
	}

	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("/:id", h.GetTransaction)
	}
}
