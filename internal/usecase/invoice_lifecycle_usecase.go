package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lesson_billing/internal/domain/billing"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/logger"
	"lesson_billing/internal/metrics"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// SendResult reports the delivery outcome of one invoice.
type SendResult struct {
	InvoiceID string               `json:"invoice_id"`
	Channel   entities.SendChannel `json:"channel"`
	Success   bool                 `json:"success"`
	Link      string               `json:"link,omitempty"`
	Detail    string               `json:"detail,omitempty"`
	Invoice   entities.Invoice     `json:"invoice"`
}

type IInvoiceLifecycleUseCase interface {
	ListBuckets(ctx context.Context, providerID string) (billing.Buckets, error)
	ListByContract(ctx context.Context, providerID, contractID string) ([]entities.Invoice, error)
	Get(ctx context.Context, providerID, id string) (entities.Invoice, error)
	Send(ctx context.Context, providerID string, invoiceIDs []string, channel entities.SendChannel) ([]SendResult, error)
	ForceToToday(ctx context.Context, providerID, id string, force bool) (entities.Invoice, error)
	SetManualAdjustment(ctx context.Context, providerID, id string, amount decimal.Decimal, reason string) (entities.Invoice, error)
}

type InvoiceLifecycleUseCase struct {
	contracts interfaces.IContractRepository
	invoices  interfaces.IInvoiceRepository
	notifier  interfaces.INotifier
	sms       interfaces.ISmsSender
	links     interfaces.IPaymentLinkProvider
	viewURL   string
	metrics   *metrics.Metrics
	log       zerolog.Logger
	loc       *time.Location
	now       func() time.Time
}

var _ IInvoiceLifecycleUseCase = (*InvoiceLifecycleUseCase)(nil)

var errNotifierNotConfigured = errors.New("notifier not configured")

func NewInvoiceLifecycleUseCase(
	contracts interfaces.IContractRepository,
	invoices interfaces.IInvoiceRepository,
	notifier interfaces.INotifier,
	sms interfaces.ISmsSender,
	links interfaces.IPaymentLinkProvider,
	viewURL string,
	m *metrics.Metrics,
	loc *time.Location,
) *InvoiceLifecycleUseCase {
	return &InvoiceLifecycleUseCase{
		contracts: contracts,
		invoices:  invoices,
		notifier:  notifier,
		sms:       sms,
		links:     links,
		viewURL:   strings.TrimRight(viewURL, "/"),
		metrics:   m,
		log:       logger.WithComponent("usecase.invoice_lifecycle"),
		loc:       orUTC(loc),
		now:       time.Now,
	}
}

// ListBuckets groups every invoice of the provider for display today.
func (u *InvoiceLifecycleUseCase) ListBuckets(ctx context.Context, providerID string) (billing.Buckets, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return billing.Buckets{}, ErrInvalidProviderID
	}
	invoices, err := u.invoices.ListByProvider(ctx, providerID)
	if err != nil {
		return billing.Buckets{}, err
	}
	contracts, err := u.contracts.ListByProvider(ctx, providerID)
	if err != nil {
		return billing.Buckets{}, err
	}
	byID := lo.SliceToMap(contracts, func(c entities.Contract) (string, entities.Contract) {
		return c.ID, localizeContract(c, u.loc)
	})
	return billing.Bucketize(invoices, byID, u.now().In(u.loc)), nil
}

func (u *InvoiceLifecycleUseCase) ListByContract(ctx context.Context, providerID, contractID string) ([]entities.Invoice, error) {
	c, err := loadOwnedContract(ctx, u.contracts, providerID, contractID)
	if err != nil {
		return nil, err
	}
	return u.invoices.ListByContract(ctx, c.ID)
}

func (u *InvoiceLifecycleUseCase) Get(ctx context.Context, providerID, id string) (entities.Invoice, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Invoice{}, ErrInvalidProviderID
	}
	return u.loadOwned(ctx, providerID, id)
}

// Send delivers each invoice over channel and records the attempt. All ids
// are checked first; one unknown id fails the whole call before anything is
// sent. Per-invoice delivery failures are reported in the results.
func (u *InvoiceLifecycleUseCase) Send(ctx context.Context, providerID string, invoiceIDs []string, channel entities.SendChannel) ([]SendResult, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, ErrInvalidProviderID
	}
	if !channel.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSendChannel, channel)
	}
	ids := lo.Uniq(lo.Map(invoiceIDs, func(id string, _ int) string { return strings.TrimSpace(id) }))
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: invoice_ids is required", ErrInvalidInvoiceInput)
	}

	targets := make([]entities.Invoice, 0, len(ids))
	for _, id := range ids {
		inv, err := u.loadOwned(ctx, providerID, id)
		if err != nil {
			return nil, err
		}
		targets = append(targets, inv)
	}

	results := make([]SendResult, 0, len(targets))
	for _, inv := range targets {
		res, err := u.sendOne(ctx, inv, channel)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (u *InvoiceLifecycleUseCase) sendOne(ctx context.Context, inv entities.Invoice, channel entities.SendChannel) (SendResult, error) {
	contract, err := u.contracts.GetByID(ctx, inv.ContractID)
	if err != nil {
		return SendResult{}, err
	}
	contract = localizeContract(contract, u.loc)
	display := billing.DisplayPeriod(contract, inv)

	res := SendResult{InvoiceID: inv.ID, Channel: channel}
	deliveryErr := u.deliver(ctx, contract, inv, channel, display, &res)
	res.Success = deliveryErr == nil
	if deliveryErr != nil {
		res.Detail = deliveryErr.Error()
	}
	u.metrics.InvoiceSent(string(channel), res.Success)

	sentAt := u.now().UTC()
	saved, err := u.mutate(ctx, inv.ID, func(cur *entities.Invoice) error {
		cur.SendHistory = append(cur.SendHistory, entities.SendHistoryEntry{
			Channel:       channel,
			SentAt:        sentAt,
			DisplayPeriod: display,
			Success:       res.Success,
			Detail:        res.Detail,
		})
		if res.Success {
			cur.SendStatus = entities.SendStatusSent
		}
		return nil
	})
	if err != nil {
		return SendResult{}, err
	}
	res.Invoice = saved

	ev := u.log.Info()
	if !res.Success {
		ev = u.log.Warn().Str("detail", res.Detail)
	}
	ev.Str("invoice_id", inv.ID).Str("channel", string(channel)).Bool("success", res.Success).Msg("invoice send attempted")
	return res, nil
}

func (u *InvoiceLifecycleUseCase) deliver(ctx context.Context, contract entities.Contract, inv entities.Invoice, channel entities.SendChannel, display string, res *SendResult) error {
	switch channel {
	case entities.SendChannelSMS:
		if u.sms == nil {
			return errors.New("sms sender not configured")
		}
		if strings.TrimSpace(contract.ClientPhone) == "" {
			return errors.New("client has no phone number")
		}
		link := u.viewLink(inv.ID)
		res.Link = link
		return u.sms.SendSms(ctx, contract.ClientPhone, smsMessage(contract, inv, display, link))
	case entities.SendChannelLink:
		res.Link = u.paymentLink(ctx, contract, inv, display)
		return nil
	case entities.SendChannelKakao:
		link := u.viewLink(inv.ID)
		res.Link = link
		// Recorded as sent either way; notifier failures only land in Detail.
		bestEffort(u.log, u.metrics, "kakao_notify", func() error {
			var err error
			if u.notifier == nil {
				err = errNotifierNotConfigured
			} else {
				err = u.notifier.Notify(ctx, "invoice.kakao", map[string]any{
					"provider_id":    inv.ProviderID,
					"contract_id":    inv.ContractID,
					"client_id":      inv.ClientID,
					"invoice_id":     inv.ID,
					"display_period": display,
					"final_amount":   inv.FinalAmount.String(),
					"link":           link,
				})
			}
			if err != nil {
				res.Detail = err.Error()
			}
			return err
		})
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidSendChannel, channel)
}

// paymentLink asks the payment provider for a checkout URL and falls back to
// the plain invoice view.
func (u *InvoiceLifecycleUseCase) paymentLink(ctx context.Context, contract entities.Contract, inv entities.Invoice, display string) string {
	link := u.viewLink(inv.ID)
	if u.links == nil || !inv.FinalAmount.IsPositive() {
		return link
	}
	bestEffort(u.log, u.metrics, "payment_link", func() error {
		url, err := u.links.CreatePaymentLink(ctx, interfaces.PaymentLinkRequest{
			InvoiceID: inv.ID,
			Title:     fmt.Sprintf("Invoice %s (%s)", dueMonthLabel(inv.Year, inv.Month), display),
			Amount:    inv.FinalAmount,
			PayerName: contract.ClientName,
		})
		if err != nil {
			return err
		}
		if url != "" {
			link = url
		}
		return nil
	})
	return link
}

func (u *InvoiceLifecycleUseCase) viewLink(id string) string {
	return u.viewURL + "/" + id
}

func smsMessage(contract entities.Contract, inv entities.Invoice, display, link string) string {
	name := contract.ClientName
	if name == "" {
		name = contract.ClientID
	}
	return fmt.Sprintf("[%s] %s: %s KRW (%s) %s", dueMonthLabel(inv.Year, inv.Month), name, inv.FinalAmount.StringFixed(0), display, link)
}

// ForceToToday pins an unsent invoice to the due-today bucket, or releases it.
func (u *InvoiceLifecycleUseCase) ForceToToday(ctx context.Context, providerID, id string, force bool) (entities.Invoice, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Invoice{}, ErrInvalidProviderID
	}
	if _, err := u.loadOwned(ctx, providerID, id); err != nil {
		return entities.Invoice{}, err
	}
	return u.mutate(ctx, id, func(cur *entities.Invoice) error {
		cur.ForceToTodayBilling = force
		return nil
	})
}

// SetManualAdjustment replaces the manual correction. Base and automatic
// adjustment are untouched; a concurrent recompute forces a re-read.
func (u *InvoiceLifecycleUseCase) SetManualAdjustment(ctx context.Context, providerID, id string, amount decimal.Decimal, reason string) (entities.Invoice, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Invoice{}, ErrInvalidProviderID
	}
	reason = strings.TrimSpace(reason)
	if !amount.IsZero() && reason == "" {
		return entities.Invoice{}, fmt.Errorf("%w: manual_reason is required", ErrInvalidInvoiceInput)
	}
	if _, err := u.loadOwned(ctx, providerID, id); err != nil {
		return entities.Invoice{}, err
	}

	inv, err := u.mutate(ctx, id, func(cur *entities.Invoice) error {
		cur.ManualAdjustment = amount
		cur.ManualReason = reason
		cur.FinalAmount = cur.Total()
		return nil
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	u.log.Info().
		Str("invoice_id", inv.ID).
		Str("manual_adjustment", amount.String()).
		Str("final_amount", inv.FinalAmount.String()).
		Msg("manual adjustment set")
	return inv, nil
}

func (u *InvoiceLifecycleUseCase) loadOwned(ctx context.Context, providerID, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" || inv.ProviderID != providerID {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// mutate applies change to a fresh copy of the invoice and saves it under
// the version guard, re-reading on conflict.
func (u *InvoiceLifecycleUseCase) mutate(ctx context.Context, id string, change func(cur *entities.Invoice) error) (entities.Invoice, error) {
	var err error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		var cur entities.Invoice
		cur, err = u.invoices.GetByID(ctx, id)
		if err != nil {
			return entities.Invoice{}, err
		}
		if cur.ID == "" {
			return entities.Invoice{}, ErrInvoiceNotFound
		}
		if err = change(&cur); err != nil {
			return entities.Invoice{}, err
		}
		cur.UpdatedAt = u.now().UTC()

		var saved entities.Invoice
		saved, err = u.invoices.Save(ctx, cur)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, entities.ErrConflict) {
			return entities.Invoice{}, err
		}
		u.log.Debug().Str("invoice_id", id).Int("attempt", attempt).Msg("invoice write conflict, retrying")
	}
	return entities.Invoice{}, errors.Join(ErrInvoiceConflict, err)
}
