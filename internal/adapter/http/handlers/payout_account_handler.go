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

type PayoutAccountHandler struct {
	usecase usecase.IPayoutAccountUseCase
}

func NewPayoutAccountHandler(uc usecase.IPayoutAccountUseCase) *PayoutAccountHandler {
	return &PayoutAccountHandler{usecase: uc}
}

// GetPayoutAccount godoc
// @Summary      Get the provider's payout account
// @Tags         payout-account
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Success      200            {object}  response.PayoutAccountResponse
// @Failure      404            {object}  pkg.HTTPError
// @Router       /payout-account [get]
func (h *PayoutAccountHandler) GetPayoutAccount(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	acc, err := h.usecase.Get(c.Request.Context(), pid)
	if err != nil {
		abortWith(c, mapPayoutAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayoutAccount(acc))
}

// PutPayoutAccount godoc
// @Summary      Register or replace the provider's payout account
// @Description  Existing invoices keep the account they were created with.
// @Tags         payout-account
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                           true  "Provider id"
// @Param        body           body      request.PutPayoutAccountRequest  true  "Account"
// @Success      200            {object}  response.PayoutAccountResponse
// @Failure      400            {object}  pkg.HTTPError
// @Router       /payout-account [put]
func (h *PayoutAccountHandler) PutPayoutAccount(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.PutPayoutAccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	acc, err := h.usecase.Put(c.Request.Context(), pid, usecase.PutPayoutAccountInput{
		BankName:      payload.BankName,
		AccountNumber: payload.AccountNumber,
		AccountHolder: payload.AccountHolder,
	})
	if err != nil {
		abortWith(c, mapPayoutAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayoutAccount(acc))
}

func mapPayoutAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayoutAccountInput):
		return invalidInput("INVALID_PAYOUT_ACCOUNT_INPUT", err)
	case errors.Is(err, usecase.ErrPayoutAccountNotFound):
		return pkg.NewDomainErrorSimple("PAYOUT_ACCOUNT_NOT_FOUND", "Payout account not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
