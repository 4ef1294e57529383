package usecase

import (
	"context"
	"errors"
	"time"

	"lesson_billing/internal/domain/billing"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/logger"
	"lesson_billing/internal/metrics"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// IInvoiceAssembler creates or refreshes the invoice of one contract and
// invoice number from the full attendance history.
type IInvoiceAssembler interface {
	UpsertInvoice(ctx context.Context, contract entities.Contract, year int, month time.Month, invoiceNumber int, records []entities.AttendanceRecord) (entities.Invoice, error)
}

type InvoiceAssembler struct {
	invoices interfaces.IInvoiceRepository
	accounts interfaces.IPayoutAccountRepository
	metrics  *metrics.Metrics
	log      zerolog.Logger
	loc      *time.Location
	now      func() time.Time
}

var _ IInvoiceAssembler = (*InvoiceAssembler)(nil)

func NewInvoiceAssembler(invoices interfaces.IInvoiceRepository, accounts interfaces.IPayoutAccountRepository, m *metrics.Metrics, loc *time.Location) *InvoiceAssembler {
	return &InvoiceAssembler{
		invoices: invoices,
		accounts: accounts,
		metrics:  m,
		log:      logger.WithComponent("usecase.invoice_assembler"),
		loc:      orUTC(loc),
		now:      time.Now,
	}
}

// UpsertInvoice computes base, automatic adjustment and final amount for
// invoice invoiceNumber and stores it.
//
// year/month tag a new invoice only; an existing invoice keeps the due month
// it was created with. The manual adjustment, send state and account
// snapshot of an existing invoice are preserved. Conflicting concurrent
// writes are retried from a fresh read.
func (a *InvoiceAssembler) UpsertInvoice(ctx context.Context, contract entities.Contract, year int, month time.Month, invoiceNumber int, records []entities.AttendanceRecord) (entities.Invoice, error) {
	if contract.Policy == nil {
		return entities.Invoice{}, ErrInvalidContractState
	}
	if invoiceNumber < 1 {
		return entities.Invoice{}, ErrInvalidInvoiceNumber
	}
	contract = localizeContract(contract, a.loc)
	records = localizeRecords(records, a.loc)

	var err error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		var inv entities.Invoice
		inv, err = a.upsertOnce(ctx, contract, year, month, invoiceNumber, records)
		if err == nil {
			return inv, nil
		}
		if !errors.Is(err, entities.ErrConflict) {
			return entities.Invoice{}, err
		}
		a.log.Debug().
			Str("contract_id", contract.ID).
			Int("invoice_number", invoiceNumber).
			Int("attempt", attempt).
			Msg("invoice write conflict, retrying")
	}
	return entities.Invoice{}, errors.Join(ErrInvoiceConflict, err)
}

func (a *InvoiceAssembler) upsertOnce(ctx context.Context, contract entities.Contract, year int, month time.Month, n int, records []entities.AttendanceRecord) (entities.Invoice, error) {
	existing, err := a.invoices.FindByContractAndNumber(ctx, contract.ID, n)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID != "" {
		year, month = existing.Year, existing.Month
	}

	amounts, err := computeAmounts(contract, year, month, n, records)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := a.now().UTC()
	inv := existing
	result := "updated"
	if inv.ID == "" {
		result = "inserted"
		inv = entities.Invoice{
			ID:            uuid.NewString(),
			ProviderID:    contract.ProviderID,
			ClientID:      contract.ClientID,
			ContractID:    contract.ID,
			Year:          year,
			Month:         month,
			InvoiceNumber: n,
			SendStatus:    entities.SendStatusNotSent,
			SendHistory:   []entities.SendHistoryEntry{},
			CreatedAt:     now,
		}
		inv.AccountSnapshot = a.accountSnapshot(ctx, contract.ProviderID)
	} else if amounts.unchanged(existing) {
		return existing, nil
	}

	inv.BaseAmount = amounts.base
	inv.AutoAdjustment = amounts.auto
	inv.PeriodStart, inv.PeriodEnd = amounts.periodBounds()
	inv.FinalAmount = inv.Total()
	inv.UpdatedAt = now

	saved, err := a.invoices.Save(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	a.metrics.InvoiceUpserted(amounts.kind, result)
	a.log.Info().
		Str("contract_id", contract.ID).
		Str("invoice_id", saved.ID).
		Int("invoice_number", n).
		Str("due_month", dueMonthLabel(saved.Year, saved.Month)).
		Str("base_amount", saved.BaseAmount.String()).
		Str("auto_adjustment", saved.AutoAdjustment.String()).
		Str("final_amount", saved.FinalAmount.String()).
		Str("result", result).
		Msg("invoice assembled")
	return saved, nil
}

func (a *InvoiceAssembler) accountSnapshot(ctx context.Context, providerID string) *entities.PayoutAccount {
	var snapshot *entities.PayoutAccount
	bestEffort(a.log, a.metrics, "account_snapshot", func() error {
		acc, err := a.accounts.GetByProviderID(ctx, providerID)
		if err != nil {
			return err
		}
		if acc.ProviderID != "" {
			snapshot = &acc
		}
		return nil
	})
	return snapshot
}

type invoiceAmounts struct {
	kind   string
	base   decimal.Decimal
	auto   decimal.Decimal
	period *billing.Period
}

func (m invoiceAmounts) periodBounds() (*time.Time, *time.Time) {
	if m.period == nil {
		return nil, nil
	}
	return lo.ToPtr(m.period.Start), lo.ToPtr(m.period.End)
}

func (m invoiceAmounts) unchanged(inv entities.Invoice) bool {
	start, end := m.periodBounds()
	return inv.BaseAmount.Equal(m.base) &&
		inv.AutoAdjustment.Equal(m.auto) &&
		inv.FinalAmount.Equal(inv.Total()) &&
		sameInstant(inv.PeriodStart, start) &&
		sameInstant(inv.PeriodEnd, end)
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// computeAmounts derives base and automatic adjustment from scratch.
//
// Count-based invoices bill the records of their extension slice and carry
// the absences of slice n-1; calendar invoices bill the records of period n
// and carry the previous calendar month. Carry-over deductions are added to
// the automatic adjustment.
func computeAmounts(contract entities.Contract, year int, month time.Month, n int, records []entities.AttendanceRecord) (invoiceAmounts, error) {
	policy := *contract.Policy

	if policy.Pricing.CountBased() {
		chain := policy.ChainExtensions()
		if n > len(chain)+1 {
			return invoiceAmounts{}, ErrInvalidInvoiceNumber
		}
		slice := billing.ResolveInvoiceSlice(chain, n)
		out := invoiceAmounts{kind: "initial", base: policy.Price}
		if n > 1 {
			out.kind = "extension"
			out.base = billing.ExtensionBase(policy, chain[n-2], year, month)
		}
		out.auto = billing.AutoAdjustment(policy, records, year, month, &slice)
		if n > 1 {
			prior := billing.ResolveInvoiceSlice(chain, n-1)
			out.auto = out.auto.Add(billing.CarriedSliceAdjustment(policy, records, prior, year, month))
		}
		return out, nil
	}

	out := invoiceAmounts{kind: "period", base: policy.Price}
	carry := billing.CarryOverAdjustment(policy, records, year, month)
	if contract.StartDate == nil {
		out.auto = billing.AutoAdjustment(policy, records, year, month, nil).Add(carry)
		return out, nil
	}
	p := billing.DefaultPeriodBoundaries(*contract.StartDate, contract.EndDate, contract.BillingDay, n, nil)
	w := p.Window()
	out.period = &p
	out.auto = billing.AutoAdjustment(policy, records, year, month, &w).Add(carry)
	return out, nil
}

func dueMonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
