package usecase

import (
	"errors"
	"fmt"

	"lesson_billing/internal/domain/entities"
)

var (
	ErrContractNotFound      = fmt.Errorf("contract %w", entities.ErrNotFound)
	ErrAttendanceNotFound    = fmt.Errorf("attendance record %w", entities.ErrNotFound)
	ErrInvoiceNotFound       = fmt.Errorf("invoice %w", entities.ErrNotFound)
	ErrPayoutAccountNotFound = fmt.Errorf("payout account %w", entities.ErrNotFound)

	ErrInvalidContractState = fmt.Errorf("contract %w", entities.ErrInvalidState)
	ErrAttendanceVoided     = fmt.Errorf("attendance record is voided: %w", entities.ErrInvalidState)
	ErrUnsupportedExtension = fmt.Errorf("extension kind not supported by this contract: %w", entities.ErrInvalidState)
	ErrInvalidInvoiceNumber = fmt.Errorf("invoice number outside the extension chain: %w", entities.ErrInvalidState)

	ErrInvoiceConflict   = fmt.Errorf("invoice changed concurrently: %w", entities.ErrConflict)
	ErrExtensionConflict = fmt.Errorf("contract extended concurrently: %w", entities.ErrConflict)

	ErrInvalidProviderID      = errors.New("invalid provider id")
	ErrInvalidContractInput   = errors.New("invalid contract input")
	ErrInvalidExtensionInput  = errors.New("invalid extension input")
	ErrInvalidAttendanceInput = errors.New("invalid attendance input")
	ErrInvalidSendChannel     = errors.New("invalid send channel")
	ErrInvalidInvoiceInput    = errors.New("invalid invoice input")

	ErrInvalidPayoutAccountInput = errors.New("invalid payout account input")
)
