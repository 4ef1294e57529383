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

// ContractHandler serves the contract lifecycle: create, sign, send, extend.
type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract godoc
// @Summary      Create a draft contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                         true  "Provider id"
// @Param        body           body      request.CreateContractRequest  true  "Contract terms"
// @Success      201            {object}  response.ContractResponse
// @Failure      400            {object}  pkg.HTTPError
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.CreateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(pid)
	if err != nil {
		abortWith(c, invalidInput("INVALID_CONTRACT_INPUT", err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(created))
}

// ListContracts godoc
// @Summary      List the provider's contracts
// @Tags         contracts
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Success      200            {array}   response.ContractResponse
// @Router       /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	contracts, err := h.usecase.List(c.Request.Context(), pid)
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

// GetContract godoc
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Param        id             path      string  true  "Contract id"
// @Success      200            {object}  response.ContractResponse
// @Failure      404            {object}  pkg.HTTPError
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	contract, err := h.usecase.Get(c.Request.Context(), pid, c.Param("id"))
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// SignContract godoc
// @Summary      Record a provider or client signature
// @Description  The second signature confirms the contract and freezes its policy snapshot.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                       true  "Provider id"
// @Param        id             path      string                       true  "Contract id"
// @Param        body           body      request.SignContractRequest  true  "Signing party"
// @Success      200            {object}  response.ContractResponse
// @Failure      409            {object}  pkg.HTTPError
// @Router       /contracts/{id}/sign [post]
func (h *ContractHandler) SignContract(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.SignContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	signed, err := h.usecase.Sign(c.Request.Context(), pid, c.Param("id"), usecase.SignatureParty(payload.Party))
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContract(signed))
}

// SendContract godoc
// @Summary      Mark a confirmed contract as sent
// @Description  Sending creates invoice #1.
// @Tags         contracts
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Param        id             path      string  true  "Contract id"
// @Success      200            {object}  response.ContractResponse
// @Failure      409            {object}  pkg.HTTPError
// @Router       /contracts/{id}/send [post]
func (h *ContractHandler) SendContract(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	sent, err := h.usecase.MarkSent(c.Request.Context(), pid, c.Param("id"))
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContract(sent))
}

// ExtendContract godoc
// @Summary      Append an extension to a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                         true  "Provider id"
// @Param        id             path      string                         true  "Contract id"
// @Param        body           body      request.ExtendContractRequest  true  "Extension"
// @Success      200            {object}  response.ContractResponse
// @Failure      400            {object}  pkg.HTTPError
// @Failure      409            {object}  pkg.HTTPError
// @Router       /contracts/{id}/extensions [post]
func (h *ContractHandler) ExtendContract(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.ExtendContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	extended, err := h.usecase.Extend(c.Request.Context(), pid, c.Param("id"), payload.ToInput(pid))
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContract(extended))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractInput):
		return invalidInput("INVALID_CONTRACT_INPUT", err)
	case errors.Is(err, usecase.ErrInvalidExtensionInput):
		return invalidInput("INVALID_EXTENSION_INPUT", err)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnsupportedExtension):
		return pkg.NewDomainError("UNSUPPORTED_EXTENSION", "Extension kind not supported by this contract", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidContractState):
		return pkg.NewDomainError("INVALID_CONTRACT_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrExtensionConflict):
		return pkg.NewDomainError("EXTENSION_CONFLICT", "Contract was extended concurrently, retry", err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
