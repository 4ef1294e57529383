package usecase

import (
	"context"
	"strings"
	"time"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/metrics"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const saveAttempts = 3

// bestEffort runs a side effect whose failure must never fail the caller.
func bestEffort(log zerolog.Logger, m *metrics.Metrics, operation string, fn func() error) {
	if err := fn(); err != nil {
		m.BestEffortFailed(operation)
		log.Warn().Err(err).Str("operation", operation).Msg("best effort side effect failed")
	}
}

// loadOwnedContract resolves a contract and hides it from other providers.
func loadOwnedContract(ctx context.Context, repo interfaces.IContractRepository, providerID, id string) (entities.Contract, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Contract{}, ErrInvalidProviderID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrContractNotFound
	}

	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" || c.ProviderID != providerID {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

// localizeRecords moves record instants into loc so month and weekday
// arithmetic happens in the billing calendar.
func localizeRecords(records []entities.AttendanceRecord, loc *time.Location) []entities.AttendanceRecord {
	return lo.Map(records, func(r entities.AttendanceRecord, _ int) entities.AttendanceRecord {
		r.OccurredAt = r.OccurredAt.In(loc)
		if r.SubstituteAt != nil {
			r.SubstituteAt = lo.ToPtr(r.SubstituteAt.In(loc))
		}
		return r
	})
}

func localizeContract(c entities.Contract, loc *time.Location) entities.Contract {
	if c.StartDate != nil {
		c.StartDate = lo.ToPtr(c.StartDate.In(loc))
	}
	if c.EndDate != nil {
		c.EndDate = lo.ToPtr(c.EndDate.In(loc))
	}
	return c
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
