package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"lesson_billing/internal/adapter/http/handlers/mocks"
	"lesson_billing/internal/domain/billing"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func invoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/invoices", h.ListInvoiceBuckets)
	r.POST("/v1/invoices/send", h.SendInvoices)
	r.GET("/v1/invoices/:id", h.GetInvoice)
	r.PATCH("/v1/invoices/:id/force-today", h.ForceToToday)
	r.PATCH("/v1/invoices/:id/manual-adjustment", h.SetManualAdjustment)
	r.GET("/v1/contracts/:id/invoices", h.ListContractInvoices)
	return r
}

func TestInvoiceHandler_Read(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("buckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)
		uc.EXPECT().ListBuckets(gomock.Any(), "p-1").Return(billing.Buckets{
			DueToday: []entities.Invoice{{ID: "inv-1"}},
			Sent:     []billing.SentGroup{{Year: 2024, Month: time.January, Invoices: []billing.SentInvoice{{Invoice: entities.Invoice{ID: "inv-2"}, DisplayPeriod: "2024-01-01~2024-01-31"}}}},
		}, nil)

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodGet, "/v1/invoices", "", "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			InProgress []map[string]any `json:"in_progress"`
			DueToday   []map[string]any `json:"due_today"`
			Sent       []struct {
				Month    int `json:"month"`
				Invoices []struct {
					DisplayPeriod string `json:"display_period"`
				} `json:"invoices"`
			} `json:"sent"`
		}
		decodeBody(t, w, &got)
		if got.InProgress == nil || len(got.InProgress) != 0 || len(got.DueToday) != 1 {
			t.Fatalf("unexpected buckets: %s", w.Body.String())
		}
		if len(got.Sent) != 1 || got.Sent[0].Month != 1 || got.Sent[0].Invoices[0].DisplayPeriod != "2024-01-01~2024-01-31" {
			t.Fatalf("unexpected sent group: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "p-1", "inv-9").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodGet, "/v1/invoices/inv-9", "", "p-1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVOICE_NOT_FOUND" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("by contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)
		uc.EXPECT().ListByContract(gomock.Any(), "p-1", "c-1").Return([]entities.Invoice{{ID: "inv-1", InvoiceNumber: 1}, {ID: "inv-2", InvoiceNumber: 2}}, nil)

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodGet, "/v1/contracts/c-1/invoices", "", "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		decodeBody(t, w, &got)
		if len(got) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(got))
		}
	})
}

func TestInvoiceHandler_SendInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty id list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodPost, "/v1/invoices/send", `{"invoice_ids":[],"channel":"sms"}`, "p-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)
		uc.EXPECT().Send(gomock.Any(), "p-1", []string{"inv-1"}, entities.SendChannel("fax")).
			Return(nil, fmt.Errorf("%w: %q", usecase.ErrInvalidSendChannel, "fax"))

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodPost, "/v1/invoices/send", `{"invoice_ids":["inv-1"],"channel":"fax"}`, "p-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_SEND_CHANNEL" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("per invoice results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)
		uc.EXPECT().Send(gomock.Any(), "p-1", []string{"inv-1", "inv-2"}, entities.SendChannelSMS).Return([]usecase.SendResult{
			{InvoiceID: "inv-1", Channel: entities.SendChannelSMS, Success: true, Invoice: entities.Invoice{ID: "inv-1", SendStatus: entities.SendStatusSent}},
			{InvoiceID: "inv-2", Channel: entities.SendChannelSMS, Success: false, Detail: "sms delivery disabled", Invoice: entities.Invoice{ID: "inv-2", SendStatus: entities.SendStatusNotSent}},
		}, nil)

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodPost, "/v1/invoices/send", `{"invoice_ids":["inv-1","inv-2"],"channel":"SMS"}`, "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []struct {
			Success bool   `json:"success"`
			Detail  string `json:"detail"`
		}
		decodeBody(t, w, &got)
		if len(got) != 2 || !got[0].Success || got[1].Success || got[1].Detail == "" {
			t.Fatalf("unexpected results: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_Mutations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("force flag is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodPatch, "/v1/invoices/inv-1/force-today", `{}`, "p-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("release force", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)
		uc.EXPECT().ForceToToday(gomock.Any(), "p-1", "inv-1", false).Return(entities.Invoice{ID: "inv-1"}, nil)

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodPatch, "/v1/invoices/inv-1/force-today", `{"force":false}`, "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("manual adjustment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)
		uc.EXPECT().SetManualAdjustment(gomock.Any(), "p-1", "inv-1", gomock.Any(), "holiday").DoAndReturn(
			func(_ any, _, _ string, amount decimal.Decimal, _ string) (entities.Invoice, error) {
				if !amount.Equal(decimal.NewFromInt(-5000)) {
					t.Fatalf("unexpected amount %s", amount)
				}
				return entities.Invoice{ID: "inv-1", ManualAdjustment: amount}, nil
			})

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodPatch, "/v1/invoices/inv-1/manual-adjustment", `{"amount":"-5000","reason":"holiday"}`, "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("manual adjustment conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceLifecycleUseCase(ctrl)
		uc.EXPECT().SetManualAdjustment(gomock.Any(), "p-1", "inv-1", gomock.Any(), "x").Return(entities.Invoice{}, usecase.ErrInvoiceConflict)

		w := serve(invoiceRouter(NewInvoiceHandler(uc)), http.MethodPatch, "/v1/invoices/inv-1/manual-adjustment", `{"amount":"1000","reason":"x"}`, "p-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVOICE_CONFLICT" {
			t.Fatalf("unexpected code %s", code)
		}
	})
}
