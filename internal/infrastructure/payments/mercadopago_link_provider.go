package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lesson_billing/internal/logger"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rs/zerolog"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoNotConfigured = errors.New("mercado pago link provider not configured")

// preferenceCreator is the part of preference.Client the provider needs.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoLinkProvider creates a checkout preference per invoice and
// returns its init point.
type MercadoPagoLinkProvider struct {
	client   preferenceCreator
	mockMode bool
	mockBase string
	log      zerolog.Logger
}

var _ interfaces.IPaymentLinkProvider = (*MercadoPagoLinkProvider)(nil)

// NewMercadoPagoLinkProvider builds a live provider, or a mock one that
// returns links under mockBase when mock is set.
func NewMercadoPagoLinkProvider(accessToken string, mock bool, mockBase string) (*MercadoPagoLinkProvider, error) {
	log := logger.WithComponent("payments.mercadopago")
	if mock {
		log.Info().Msg("mock mode enabled")
		return &MercadoPagoLinkProvider{mockMode: true, mockBase: strings.TrimRight(mockBase, "/"), log: log}, nil
	}

	if accessToken == "" {
		log.Error().Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("Mercado Pago client initialized")

	return &MercadoPagoLinkProvider{client: preference.NewClient(cfg), log: log}, nil
}

func (p *MercadoPagoLinkProvider) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (string, error) {
	if p != nil && p.mockMode {
		link := fmt.Sprintf("%s/%s", p.mockBase, req.InvoiceID)
		p.log.Debug().Str("invoice_id", req.InvoiceID).Str("link", link).Msg("mock link created")
		return link, nil
	}
	if p == nil || p.client == nil {
		return "", ErrMercadoPagoNotConfigured
	}

	price, _ := req.Amount.Float64()
	resp, err := p.client.Create(ctx, preference.Request{
		ExternalReference: req.InvoiceID,
		Items: []preference.ItemRequest{{
			ID:        req.InvoiceID,
			Title:     req.Title,
			Quantity:  1,
			UnitPrice: price,
		}},
		Payer: &preference.PayerRequest{Name: req.PayerName},
	})
	if err != nil {
		p.log.Error().Err(err).Str("invoice_id", req.InvoiceID).Msg("sdk preference create failed")
		return "", err
	}
	p.log.Info().Str("invoice_id", req.InvoiceID).Str("preference_id", resp.ID).Msg("preference created")
	return resp.InitPoint, nil
}
