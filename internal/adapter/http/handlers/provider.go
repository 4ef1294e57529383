package handlers

import (
	"errors"
	"net/http"
	"strings"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase"
	"lesson_billing/pkg"

	"github.com/gin-gonic/gin"
)

// ProviderIDHeader identifies the calling provider. Authentication happens
// upstream; this service only scopes data by it.
const ProviderIDHeader = "X-Provider-ID"

var (
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingProviderID = pkg.NewDomainErrorSimple("MISSING_PROVIDER_ID", "X-Provider-ID header is required", http.StatusUnauthorized)
)

// providerID reads the provider header and answers 401 when it is missing.
func providerID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(ProviderIDHeader))
	if id == "" {
		abortWith(c, errMissingProviderID)
		return "", false
	}
	return id, true
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError classifies errors by their taxonomy root once the
// handler-specific sentinels have been checked.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderID):
		return errMissingProviderID
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current state", err, http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Resource changed concurrently, retry", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// invalidInput keeps the validation message, which names the offending field.
func invalidInput(code string, err error) *pkg.AppError {
	return pkg.NewDomainError(code, err.Error(), err, http.StatusBadRequest)
}
