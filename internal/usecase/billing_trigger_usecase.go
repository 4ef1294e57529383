package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"lesson_billing/internal/domain/billing"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/logger"
	"lesson_billing/internal/metrics"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// IBillingTriggerUseCase decides when invoices are created or recomputed.
//
//   - contract sent => invoice #1
//   - attendance created/corrected/voided => owning invoice recomputed,
//     exhaustion checked
//   - extension appended => open slice recomputed, exhaustion checked
//   - Sweep => every sent contract re-evaluated on a timer
type IBillingTriggerUseCase interface {
	OnContractSent(ctx context.Context, contract entities.Contract) (entities.Invoice, error)
	OnAttendanceChanged(ctx context.Context, contract entities.Contract, instants ...time.Time) error
	OnExtensionAppended(ctx context.Context, contract entities.Contract, ext entities.Extension) error
	RecalculateInvoiceForDate(ctx context.Context, contract entities.Contract, at time.Time) (entities.Invoice, error)
	Sweep(ctx context.Context) (SweepReport, error)
}

type SweepReport struct {
	Contracts int `json:"contracts"`
	Failed    int `json:"failed"`
}

type BillingTriggerUseCase struct {
	contracts   interfaces.IContractRepository
	attendance  interfaces.IAttendanceRepository
	invoices    interfaces.IInvoiceRepository
	assembler   IInvoiceAssembler
	notifier    interfaces.INotifier
	metrics     *metrics.Metrics
	log         zerolog.Logger
	loc         *time.Location
	concurrency int
	now         func() time.Time
}

var _ IBillingTriggerUseCase = (*BillingTriggerUseCase)(nil)

func NewBillingTriggerUseCase(
	contracts interfaces.IContractRepository,
	attendance interfaces.IAttendanceRepository,
	invoices interfaces.IInvoiceRepository,
	assembler IInvoiceAssembler,
	notifier interfaces.INotifier,
	m *metrics.Metrics,
	loc *time.Location,
	concurrency int,
) *BillingTriggerUseCase {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BillingTriggerUseCase{
		contracts:   contracts,
		attendance:  attendance,
		invoices:    invoices,
		assembler:   assembler,
		notifier:    notifier,
		metrics:     m,
		log:         logger.WithComponent("usecase.billing_trigger"),
		loc:         orUTC(loc),
		concurrency: concurrency,
		now:         time.Now,
	}
}

// OnContractSent ensures invoice #1. Prepaid contracts are due now (calendar:
// at period start); postpaid contracts are due at the end of the period.
func (t *BillingTriggerUseCase) OnContractSent(ctx context.Context, contract entities.Contract) (entities.Invoice, error) {
	if contract.Status != entities.ContractStatusSent || contract.Policy == nil {
		return entities.Invoice{}, ErrInvalidContractState
	}
	t.metrics.TriggerFired("contract_sent")

	records, err := t.attendance.ListByContract(ctx, contract.ID)
	if err != nil {
		return entities.Invoice{}, err
	}

	year, month := t.initialDueMonth(contract)
	inv, err := t.assemble(ctx, contract, year, month, 1, records)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := t.checkExhaustion(ctx, contract, records); err != nil {
		return inv, err
	}
	return inv, nil
}

// OnAttendanceChanged recomputes the invoices owning each instant (the old
// and new effective times of a corrected record) and then checks whether
// the change exhausted an allotment.
func (t *BillingTriggerUseCase) OnAttendanceChanged(ctx context.Context, contract entities.Contract, instants ...time.Time) error {
	if contract.Status != entities.ContractStatusSent || contract.Policy == nil {
		return nil
	}
	t.metrics.TriggerFired("attendance_changed")

	records, err := t.attendance.ListByContract(ctx, contract.ID)
	if err != nil {
		return err
	}

	var errs []error
	for _, at := range lo.UniqBy(instants, func(at time.Time) int64 { return at.UnixNano() }) {
		if _, err := t.recalculate(ctx, contract, records, at); err != nil {
			errs = append(errs, err)
		}
	}
	if err := t.checkExhaustion(ctx, contract, records); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// OnExtensionAppended refreshes invoices whose window the extension changed.
// The next chained invoice is not created here unless the prior allotment is
// already used up.
func (t *BillingTriggerUseCase) OnExtensionAppended(ctx context.Context, contract entities.Contract, ext entities.Extension) error {
	if contract.Status != entities.ContractStatusSent || contract.Policy == nil {
		return nil
	}
	t.metrics.TriggerFired("extension_appended")

	records, err := t.attendance.ListByContract(ctx, contract.ID)
	if err != nil {
		return err
	}

	t.notify(ctx, "contract.extended", contract, map[string]any{
		"extension_seq":  ext.Seq,
		"extension_kind": string(ext.Kind),
	})

	if !ext.Chained() {
		_, err := t.recalculate(ctx, contract, records, t.now())
		return err
	}

	// The slice that was open until now is closed at ext.ExtendedAt.
	closed := len(contract.Policy.ChainExtensions())
	prev, err := t.invoices.FindByContractAndNumber(ctx, contract.ID, closed)
	if err != nil {
		return err
	}
	if prev.ID != "" {
		if _, err := t.assembler.UpsertInvoice(ctx, contract, prev.Year, prev.Month, closed, records); err != nil {
			return err
		}
	}
	return t.checkExhaustion(ctx, contract, records)
}

// RecalculateInvoiceForDate recomputes the invoice whose window holds at.
// It returns a zero Invoice when no invoice owns that instant yet.
func (t *BillingTriggerUseCase) RecalculateInvoiceForDate(ctx context.Context, contract entities.Contract, at time.Time) (entities.Invoice, error) {
	if contract.Status != entities.ContractStatusSent || contract.Policy == nil {
		return entities.Invoice{}, nil
	}
	records, err := t.attendance.ListByContract(ctx, contract.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return t.recalculate(ctx, contract, records, at)
}

// Sweep re-evaluates every sent contract. A failing contract is logged and
// counted; it does not stop the others.
func (t *BillingTriggerUseCase) Sweep(ctx context.Context) (SweepReport, error) {
	started := t.now()
	contracts, err := t.contracts.ListByStatus(ctx, entities.ContractStatusSent)
	if err != nil {
		return SweepReport{}, err
	}

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)
	for _, c := range contracts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := t.sweepContract(gctx, c); err != nil {
				failed.Add(1)
				t.metrics.BestEffortFailed("sweep_contract")
				t.log.Warn().Err(err).Str("contract_id", c.ID).Msg("sweep failed for contract")
			}
			return nil
		})
	}
	err = g.Wait()

	report := SweepReport{Contracts: len(contracts), Failed: int(failed.Load())}
	t.metrics.ObserveSweep(t.now().Sub(started))
	t.log.Info().Int("contracts", report.Contracts).Int("failed", report.Failed).Msg("sweep finished")
	return report, err
}

func (t *BillingTriggerUseCase) sweepContract(ctx context.Context, contract entities.Contract) error {
	if contract.Policy == nil {
		return nil
	}
	t.metrics.TriggerFired("sweep")

	records, err := t.attendance.ListByContract(ctx, contract.ID)
	if err != nil {
		return err
	}
	if _, err := t.recalculate(ctx, contract, records, t.now()); err != nil {
		return err
	}
	return t.checkExhaustion(ctx, contract, records)
}

func (t *BillingTriggerUseCase) recalculate(ctx context.Context, contract entities.Contract, records []entities.AttendanceRecord, at time.Time) (entities.Invoice, error) {
	policy := *contract.Policy
	at = at.In(t.loc)

	var inv entities.Invoice
	if policy.Pricing.CountBased() {
		n := billing.SliceOf(policy.ChainExtensions(), at)
		existing, err := t.invoices.FindByContractAndNumber(ctx, contract.ID, n)
		if err != nil {
			return entities.Invoice{}, err
		}
		switch {
		case existing.ID != "":
			inv, err = t.assembler.UpsertInvoice(ctx, contract, existing.Year, existing.Month, n, records)
		case n == 1:
			year, month := t.initialDueMonth(contract)
			inv, err = t.assemble(ctx, contract, year, month, 1, records)
		default:
			// Invoice n appears once slice n-1 is exhausted.
		}
		if err != nil {
			return entities.Invoice{}, err
		}
	} else {
		lc := localizeContract(contract, t.loc)
		if lc.StartDate == nil {
			return entities.Invoice{}, nil
		}
		seq, period, ok := billing.PeriodContaining(*lc.StartDate, lc.EndDate, lc.BillingDay, at)
		if !ok {
			return entities.Invoice{}, nil
		}
		year, month := periodDueMonth(policy, period)
		var err error
		inv, err = t.assemble(ctx, contract, year, month, seq, records)
		if err != nil {
			return entities.Invoice{}, err
		}
	}

	if policy.AbsencePolicy == entities.AbsencePolicyCarryOver {
		if err := t.refreshCarryTargets(ctx, contract, records, at, inv.ID); err != nil {
			return inv, err
		}
	}
	return inv, nil
}

// refreshCarryTargets recomputes the invoices that deduct at's absences
// under carry_over: invoice n+1 for the slice n holding at on passes, the
// invoices due in the following month on calendar contracts.
func (t *BillingTriggerUseCase) refreshCarryTargets(ctx context.Context, contract entities.Contract, records []entities.AttendanceRecord, at time.Time, skipID string) error {
	invoices, err := t.invoices.ListByContract(ctx, contract.ID)
	if err != nil {
		return err
	}

	target := func(inv entities.Invoice) bool {
		next := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, t.loc).AddDate(0, 1, 0)
		return inv.Year == next.Year() && inv.Month == next.Month()
	}
	if policy := *contract.Policy; policy.Pricing.CountBased() {
		n := billing.SliceOf(policy.ChainExtensions(), at)
		target = func(inv entities.Invoice) bool { return inv.InvoiceNumber == n+1 }
	}

	for _, inv := range invoices {
		if inv.ID == skipID || !target(inv) {
			continue
		}
		if _, err := t.assembler.UpsertInvoice(ctx, contract, inv.Year, inv.Month, inv.InvoiceNumber, records); err != nil {
			return err
		}
	}
	return nil
}

// checkExhaustion creates chained invoice n+1 once cumulative consumption
// reaches the allotment of invoices 1..n. The new invoice is due in the
// month of the crossing attendance, or of the extension when the allotment
// ran out before the extension existed.
func (t *BillingTriggerUseCase) checkExhaustion(ctx context.Context, contract entities.Contract, records []entities.AttendanceRecord) error {
	policy := *contract.Policy
	if !policy.Pricing.CountBased() {
		return nil
	}

	chain := policy.ChainExtensions()
	for n := 1; n <= len(chain); n++ {
		existing, err := t.invoices.FindByContractAndNumber(ctx, contract.ID, n+1)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}

		allotment := billing.Allotment{Kind: policy.Pricing.Kind, Total: policy.AllotmentThrough(n)}
		if !billing.IsPriorSliceExhausted(records, billing.Window{}, allotment) {
			return nil
		}
		crossedAt, ok := billing.ExhaustionPoint(records, allotment)
		if !ok {
			return nil
		}
		due := crossedAt
		if ext := chain[n-1].ExtendedAt; ext.After(due) {
			due = ext
		}
		due = due.In(t.loc)

		t.metrics.TriggerFired("allotment_exhausted")
		t.log.Info().
			Str("contract_id", contract.ID).
			Int("invoice_number", n+1).
			Time("crossed_at", crossedAt).
			Msg("allotment exhausted, creating next invoice")

		if _, err := t.assemble(ctx, contract, due.Year(), due.Month(), n+1, records); err != nil {
			return err
		}
	}
	return nil
}

// assemble upserts and announces invoices that did not exist before.
func (t *BillingTriggerUseCase) assemble(ctx context.Context, contract entities.Contract, year int, month time.Month, n int, records []entities.AttendanceRecord) (entities.Invoice, error) {
	existing, err := t.invoices.FindByContractAndNumber(ctx, contract.ID, n)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv, err := t.assembler.UpsertInvoice(ctx, contract, year, month, n, records)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID == "" {
		t.notify(ctx, "invoice.created", contract, map[string]any{
			"invoice_id":     inv.ID,
			"invoice_number": inv.InvoiceNumber,
			"due_month":      dueMonthLabel(inv.Year, inv.Month),
			"final_amount":   inv.FinalAmount.String(),
		})
	}
	return inv, nil
}

func (t *BillingTriggerUseCase) notify(ctx context.Context, event string, contract entities.Contract, fields map[string]any) {
	if t.notifier == nil {
		return
	}
	payload := map[string]any{
		"provider_id": contract.ProviderID,
		"contract_id": contract.ID,
		"client_id":   contract.ClientID,
	}
	for k, v := range fields {
		payload[k] = v
	}
	bestEffort(t.log, t.metrics, "notify", func() error {
		return t.notifier.Notify(ctx, event, payload)
	})
}

// initialDueMonth tags invoice #1.
func (t *BillingTriggerUseCase) initialDueMonth(contract entities.Contract) (int, time.Month) {
	now := t.now().In(t.loc)
	lc := localizeContract(contract, t.loc)
	policy := *contract.Policy

	if policy.Pricing.Kind == entities.PricingKindCalendar && lc.StartDate != nil {
		p := billing.DefaultPeriodBoundaries(*lc.StartDate, lc.EndDate, lc.BillingDay, 1, nil)
		return periodDueMonth(policy, p)
	}
	if policy.BillingMode == entities.BillingModePostpaid && lc.EndDate != nil {
		return lc.EndDate.Year(), lc.EndDate.Month()
	}
	return now.Year(), now.Month()
}

func periodDueMonth(policy entities.PolicySnapshot, p billing.Period) (int, time.Month) {
	if policy.BillingMode == entities.BillingModePostpaid {
		return p.End.Year(), p.End.Month()
	}
	return p.Start.Year(), p.Start.Month()
}
