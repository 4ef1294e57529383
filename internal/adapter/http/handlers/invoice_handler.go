package handlers

import (
	"errors"
	"net/http"

	"lesson_billing/internal/adapter/http/dto/request"
	"lesson_billing/internal/adapter/http/dto/response"
	"lesson_billing/internal/usecase"
	"lesson_billing/pkg"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceLifecycleUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceLifecycleUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ListInvoiceBuckets godoc
// @Summary      Invoices grouped into in-progress, due-today and sent
// @Tags         invoices
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Success      200            {object}  response.BucketsResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoiceBuckets(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	buckets, err := h.usecase.ListBuckets(c.Request.Context(), pid)
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBuckets(buckets))
}

// ListContractInvoices godoc
// @Summary      Invoices of one contract ordered by invoice number
// @Tags         invoices
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Param        id             path      string  true  "Contract id"
// @Success      200            {array}   response.InvoiceResponse
// @Router       /contracts/{id}/invoices [get]
func (h *InvoiceHandler) ListContractInvoices(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	invoices, err := h.usecase.ListByContract(c.Request.Context(), pid, c.Param("id"))
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Param        id             path      string  true  "Invoice id"
// @Success      200            {object}  response.InvoiceResponse
// @Failure      404            {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	inv, err := h.usecase.Get(c.Request.Context(), pid, c.Param("id"))
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// SendInvoices godoc
// @Summary      Deliver invoices over sms, link or kakao
// @Description  Each invoice gets a history entry; failed deliveries stay not_sent.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                       true  "Provider id"
// @Param        body           body      request.SendInvoicesRequest  true  "Invoices and channel"
// @Success      200            {array}   response.SendResultResponse
// @Failure      400            {object}  pkg.HTTPError
// @Router       /invoices/send [post]
func (h *InvoiceHandler) SendInvoices(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.SendInvoicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	results, err := h.usecase.Send(c.Request.Context(), pid, payload.InvoiceIDs, payload.ResolveChannel())
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSendResults(results))
}

// ForceToToday godoc
// @Summary      Pin an unsent invoice to the due-today bucket
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                       true  "Provider id"
// @Param        id             path      string                       true  "Invoice id"
// @Param        body           body      request.ForceToTodayRequest  true  "Flag"
// @Success      200            {object}  response.InvoiceResponse
// @Router       /invoices/{id}/force-today [patch]
func (h *InvoiceHandler) ForceToToday(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.ForceToTodayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	inv, err := h.usecase.ForceToToday(c.Request.Context(), pid, c.Param("id"), *payload.Force)
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// SetManualAdjustment godoc
// @Summary      Set the manual adjustment of an invoice
// @Description  Recomputations keep the manual adjustment; final = base + auto + manual.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                           true  "Provider id"
// @Param        id             path      string                           true  "Invoice id"
// @Param        body           body      request.ManualAdjustmentRequest  true  "Amount and reason"
// @Success      200            {object}  response.InvoiceResponse
// @Failure      409            {object}  pkg.HTTPError
// @Router       /invoices/{id}/manual-adjustment [patch]
func (h *InvoiceHandler) SetManualAdjustment(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.ManualAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	inv, err := h.usecase.SetManualAdjustment(c.Request.Context(), pid, c.Param("id"), payload.Amount, payload.Reason)
	if err != nil {
		abortWith(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSendChannel):
		return invalidInput("INVALID_SEND_CHANNEL", err)
	case errors.Is(err, usecase.ErrInvalidInvoiceInput):
		return invalidInput("INVALID_INVOICE_INPUT", err)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceConflict):
		return pkg.NewDomainError("INVOICE_CONFLICT", "Invoice changed concurrently, retry", err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
