package payments

import (
	"context"
	"errors"
	"testing"

	"lesson_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreferences struct {
	got  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoLinkProvider(t *testing.T) {
	t.Run("live mode needs a token", func(t *testing.T) {
		_, err := NewMercadoPagoLinkProvider("", false, "")
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("mock mode needs nothing", func(t *testing.T) {
		p, err := NewMercadoPagoLinkProvider("", true, "https://pay.local")
		require.NoError(t, err)

		link, err := p.CreatePaymentLink(context.Background(), interfaces.PaymentLinkRequest{InvoiceID: "inv-1"})
		require.NoError(t, err)
		assert.Equal(t, "https://pay.local/inv-1", link)
	})
}

func TestMercadoPagoLinkProvider_CreatePaymentLink(t *testing.T) {
	req := interfaces.PaymentLinkRequest{
		InvoiceID: "inv-1",
		Title:     "Invoice 2024-01",
		Amount:    decimal.NewFromInt(100000),
		PayerName: "Kim",
	}

	t.Run("returns the init point", func(t *testing.T) {
		fake := &fakePreferences{resp: &preference.Response{ID: "pref-1", InitPoint: "https://mp/checkout/pref-1"}}
		p := &MercadoPagoLinkProvider{client: fake, log: zerolog.Nop()}

		link, err := p.CreatePaymentLink(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "https://mp/checkout/pref-1", link)

		assert.Equal(t, "inv-1", fake.got.ExternalReference)
		require.Len(t, fake.got.Items, 1)
		assert.Equal(t, 100000.0, fake.got.Items[0].UnitPrice)
		assert.Equal(t, 1, fake.got.Items[0].Quantity)
		require.NotNil(t, fake.got.Payer)
		assert.Equal(t, "Kim", fake.got.Payer.Name)
	})

	t.Run("sdk error", func(t *testing.T) {
		p := &MercadoPagoLinkProvider{client: &fakePreferences{err: errors.New("boom")}, log: zerolog.Nop()}

		_, err := p.CreatePaymentLink(context.Background(), req)
		assert.EqualError(t, err, "boom")
	})

	t.Run("unconfigured", func(t *testing.T) {
		var p *MercadoPagoLinkProvider
		_, err := p.CreatePaymentLink(context.Background(), req)
		assert.ErrorIs(t, err, ErrMercadoPagoNotConfigured)
	})
}
