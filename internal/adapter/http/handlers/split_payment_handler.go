package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	request "splitpay/internal/adapter/http/dto/request"
	response "splitpay/internal/adapter/http/dto/response"
	"splitpay/internal/adapter/report"
	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase"
	"splitpay/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// SplitPaymentHandler exposes split payments, refunds and the ledger.
type SplitPaymentHandler struct {
	usecase usecase.ISplitPaymentUseCase
}

func NewSplitPaymentHandler(uc usecase.ISplitPaymentUseCase) *SplitPaymentHandler {
	return &SplitPaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Pay an order with several instruments
// @Description  Authorizes every method, then charges every method. Any failure rolls back the instruments that succeeded.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                        true  "Order ID"
// @Param        body      body      request.SplitPaymentRequest   true  "Payment methods"
// @Success      200       {object}  response.SplitPaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      402       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/payments [post]
func (h *SplitPaymentHandler) CreatePayment(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] payment start order_id=%s", orderID)

	var payload request.SplitPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Payment(
		c.Request.Context(),
		payload.ToOrderContext(orderID),
		payload.ToEntries(),
		payload.PaymentInfo.ToPaymentInfo(),
		payload.BillingInfo.ToBillingInfo(),
	)
	if err != nil {
		log.Printf("[payment][handler] payment failed order_id=%s err=%v", orderID, err)
		appErr := mapSplitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] payment success order_id=%s records=%d", orderID, len(result.Records))

	c.JSON(http.StatusOK, response.FromPaymentResult(orderID, result.Success, result.Entries, result.Records))
}

// CreateRefund godoc
// @Summary      Refund part of an order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                 true  "Order ID"
// @Param        body      body      request.RefundRequest  true  "Refund"
// @Success      200       {object}  response.TransactionResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      402       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/refunds [post]
func (h *SplitPaymentHandler) CreateRefund(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] refund start order_id=%s", orderID)

	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid refund payload order_id=%s err=%v", orderID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Refund(c.Request.Context(), payload.ToOrderContext(orderID), usecase.RefundInput{
		PaymentMethod:        entities.ParseInstrumentType(payload.PaymentMethod),
		RefundMethod:         entities.ParseInstrumentType(payload.RefundMethod),
		Amount:               payload.Amount,
		GatewayTransactionID: payload.GatewayTransactionID,
		Reference:            payload.Reference,
	})
	if err != nil {
		log.Printf("[payment][handler] refund failed order_id=%s err=%v", orderID, err)
		appErr := mapSplitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund success order_id=%s transaction_id=%s", orderID, rec.ID)

	c.JSON(http.StatusOK, response.FromTransaction(rec))
}

// ListTransactions godoc
// @Summary  Ledger records of an order, oldest first
// @Tags     transactions
// @Produce  json
// @Param    order_id  path      string  true  "Order ID"
// @Success  200       {array}   response.TransactionResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /orders/{order_id}/transactions [get]
func (h *SplitPaymentHandler) ListTransactions(c *gin.Context) {
	orderID := c.Param("order_id")
	records, err := h.usecase.ListTransactions(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapSplitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(records))
}

// ExportTransactions godoc
// @Summary  Ledger records of an order as a spreadsheet
// @Tags     transactions
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    order_id  path  string  true  "Order ID"
// @Success  200
// @Failure  400  {object}  pkg.HTTPError
// @Router   /orders/{order_id}/transactions/export [get]
func (h *SplitPaymentHandler) ExportTransactions(c *gin.Context) {
	orderID := c.Param("order_id")
	records, err := h.usecase.ListTransactions(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] export failed order_id=%s err=%v", orderID, err)
		appErr := mapSplitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := report.WriteTransactionsXLSX(&buf, records); err != nil {
		log.Printf("[payment][handler] export render failed order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] export success order_id=%s records=%d bytes=%d", orderID, len(records), buf.Len())

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions-%s.xlsx"`, orderID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetTransaction godoc
// @Summary  One ledger record
// @Tags     transactions
// @Produce  json
// @Param    id   path      string  true  "Transaction ID"
// @Success  200  {object}  response.TransactionResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /transactions/{id} [get]
func (h *SplitPaymentHandler) GetTransaction(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.usecase.GetTransaction(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed transaction_id=%s err=%v", id, err)
		appErr := mapSplitPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(rec))
}

// mapSplitPaymentError checks gateway failures first: their cause may wrap
// other sentinels (e.g. a rollback on a missing gateway).
func mapSplitPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPersistenceFailed):
		return pkg.NewDomainError("LEDGER_PERSISTENCE_FAILED", "Payment captured but not recorded; operators were alerted", err, http.StatusInternalServerError).
			WithDetails(failureDetails(err))
	case errors.Is(err, usecase.ErrAuthorizationFailed):
		return pkg.NewDomainError("AUTHORIZATION_FAILED", "Payment authorization failed", err, http.StatusPaymentRequired).
			WithDetails(failureDetails(err))
	case errors.Is(err, usecase.ErrChargeFailed):
		return pkg.NewDomainError("CHARGE_FAILED", "Payment charge failed", err, http.StatusPaymentRequired).
			WithDetails(failureDetails(err))
	case errors.Is(err, usecase.ErrRefundFailed):
		return pkg.NewDomainError("REFUND_FAILED", "Refund failed", err, http.StatusPaymentRequired).
			WithDetails(failureDetails(err))
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_METHOD_UNAVAILABLE", "Payment method not available", err, http.StatusBadRequest).
			WithDetails(gin.H{"reason": err.Error()})
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).
			WithDetails(gin.H{"reason": err.Error()})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func failureDetails(err error) any {
	var failure *usecase.PaymentFailureError
	if !errors.As(err, &failure) {
		return nil
	}
	details := gin.H{
		"type":     string(failure.Type),
		"response": failure.Response,
	}
	if failure.Index >= 0 {
		details["index"] = failure.Index
	}
	return details
}
