package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lesson_billing/internal/domain/entities"
	mock_interfaces "lesson_billing/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// stubTrigger records trigger calls made by the contract and attendance use
// cases.
type stubTrigger struct {
	sent      []string
	changed   [][]time.Time
	extended  []entities.Extension
	err       error
	sweepDone SweepReport
}

func (s *stubTrigger) OnContractSent(_ context.Context, c entities.Contract) (entities.Invoice, error) {
	s.sent = append(s.sent, c.ID)
	return entities.Invoice{}, s.err
}

func (s *stubTrigger) OnAttendanceChanged(_ context.Context, _ entities.Contract, instants ...time.Time) error {
	s.changed = append(s.changed, instants)
	return s.err
}

func (s *stubTrigger) OnExtensionAppended(_ context.Context, _ entities.Contract, ext entities.Extension) error {
	s.extended = append(s.extended, ext)
	return s.err
}

func (s *stubTrigger) RecalculateInvoiceForDate(context.Context, entities.Contract, time.Time) (entities.Invoice, error) {
	return entities.Invoice{}, s.err
}

func (s *stubTrigger) Sweep(context.Context) (SweepReport, error) {
	return s.sweepDone, s.err
}

func confirmedContract(pricing entities.PricingMode) entities.Contract {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	c := entities.Contract{
		ID:            "c-1",
		ProviderID:    "p-1",
		ClientID:      "cl-1",
		BillingMode:   entities.BillingModePrepaid,
		AbsencePolicy: entities.AbsencePolicyDeductNext,
		Pricing:       pricing,
		BasePrice:     decimal.NewFromInt(100000),
		TotalSessions: pricing.TotalSessions,
		StartDate:     &now,
		EndDate:       &end,
		Status:        entities.ContractStatusConfirmed,
	}
	snapshot := c.CaptureSnapshot(now)
	c.Policy = &snapshot
	return c
}

func TestContractUseCase_Create(t *testing.T) {
	t.Run("invalid provider id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateContractInput{ProviderID: "  "})
		if !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})

	invalid := map[string]CreateContractInput{
		"missing client":         {ProviderID: "p-1", BillingMode: entities.BillingModePrepaid, AbsencePolicy: entities.AbsencePolicyVanish, Pricing: entities.SessionsPricing(10)},
		"bad billing mode":       {ProviderID: "p-1", ClientID: "cl-1", BillingMode: "monthly", AbsencePolicy: entities.AbsencePolicyVanish, Pricing: entities.SessionsPricing(10)},
		"zero sessions":          {ProviderID: "p-1", ClientID: "cl-1", BillingMode: entities.BillingModePrepaid, AbsencePolicy: entities.AbsencePolicyVanish, Pricing: entities.SessionsPricing(0)},
		"calendar without start": {ProviderID: "p-1", ClientID: "cl-1", BillingMode: entities.BillingModePrepaid, AbsencePolicy: entities.AbsencePolicyVanish, Pricing: entities.CalendarPricing(time.Monday)},
		"negative price":         {ProviderID: "p-1", ClientID: "cl-1", BillingMode: entities.BillingModePrepaid, AbsencePolicy: entities.AbsencePolicyVanish, Pricing: entities.AmountPricing(), BasePrice: decimal.NewFromInt(-1)},
	}
	for name, in := range invalid {
		t.Run(name, func(t *testing.T) {
			uc := NewContractUseCase(nil, nil, nil, nil)
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, ErrInvalidContractInput) {
				t.Fatalf("expected ErrInvalidContractInput, got %v", err)
			}
		})
	}

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.ID == "" || c.ProviderID != "p-1" || c.Status != entities.ContractStatusDraft || c.TotalSessions != 10 {
					t.Fatalf("unexpected contract: %+v", c)
				}
				if c.Policy != nil {
					t.Fatalf("draft contracts carry no snapshot")
				}
				return c, nil
			},
		)

		_, err := uc.Create(context.Background(), CreateContractInput{
			ProviderID: " p-1 ", ClientID: "cl-1",
			BillingMode: entities.BillingModePrepaid, AbsencePolicy: entities.AbsencePolicyVanish,
			Pricing: entities.SessionsPricing(10), BasePrice: decimal.NewFromInt(100000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractUseCase_Sign(t *testing.T) {
	draft := confirmedContract(entities.SessionsPricing(10))
	draft.Status = entities.ContractStatusDraft
	draft.Policy = nil

	t.Run("other provider sees not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(draft, nil)

		_, err := uc.Sign(context.Background(), "p-2", "c-1", SignatureProvider)
		if !errors.Is(err, ErrContractNotFound) || !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("second signature confirms and snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil, nil)

		signed := draft
		ts := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		signed.ProviderSignedAt = &ts
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(signed, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) { return c, nil },
		)

		res, err := uc.Sign(context.Background(), "p-1", "c-1", SignatureClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ContractStatusConfirmed || res.Policy == nil {
			t.Fatalf("expected confirmed contract with snapshot, got %+v", res)
		}
		if !res.Policy.Price.Equal(decimal.NewFromInt(100000)) || res.Policy.Pricing.TotalSessions != 10 {
			t.Fatalf("unexpected snapshot: %+v", res.Policy)
		}
	})

	t.Run("signing a confirmed contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(confirmedContract(entities.SessionsPricing(10)), nil)

		_, err := uc.Sign(context.Background(), "p-1", "c-1", SignatureClient)
		if !errors.Is(err, entities.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})
}

func TestContractUseCase_MarkSent(t *testing.T) {
	t.Run("draft cannot be sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, &stubTrigger{}, nil, nil)

		c := confirmedContract(entities.SessionsPricing(10))
		c.Status = entities.ContractStatusDraft
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)

		_, err := uc.MarkSent(context.Background(), "p-1", "c-1")
		if !errors.Is(err, ErrInvalidContractState) {
			t.Fatalf("expected ErrInvalidContractState, got %v", err)
		}
	})

	t.Run("trigger failure does not fail the send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		trigger := &stubTrigger{err: errors.New("store down")}
		uc := NewContractUseCase(repo, trigger, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(confirmedContract(entities.SessionsPricing(10)), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) { return c, nil },
		)

		res, err := uc.MarkSent(context.Background(), "p-1", "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ContractStatusSent || res.SentAt == nil {
			t.Fatalf("expected sent contract, got %+v", res)
		}
		if len(trigger.sent) != 1 {
			t.Fatalf("expected one trigger call, got %d", len(trigger.sent))
		}
	})
}

func TestContractUseCase_Extend(t *testing.T) {
	newEnd := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	earlyEnd := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	rejected := []struct {
		name    string
		pricing entities.PricingMode
		in      ExtendContractInput
		want    error
	}{
		{"sessions on amount pass", entities.AmountPricing(), ExtendContractInput{Kind: entities.ExtensionKindSessions, AddedSessions: 5}, ErrUnsupportedExtension},
		{"amount on session pass", entities.SessionsPricing(10), ExtendContractInput{Kind: entities.ExtensionKindAmount, AddedAmount: decimal.NewFromInt(1000)}, ErrUnsupportedExtension},
		{"period on session pass", entities.SessionsPricing(10), ExtendContractInput{Kind: entities.ExtensionKindPeriod, NewEndDate: &newEnd}, ErrUnsupportedExtension},
		{"zero sessions", entities.SessionsPricing(10), ExtendContractInput{Kind: entities.ExtensionKindSessions}, ErrInvalidExtensionInput},
		{"end date not later", entities.CalendarPricing(time.Monday), ExtendContractInput{Kind: entities.ExtensionKindPeriod, NewEndDate: &earlyEnd}, ErrInvalidExtensionInput},
		{"unknown kind", entities.SessionsPricing(10), ExtendContractInput{Kind: "bonus"}, ErrInvalidExtensionInput},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIContractRepository(ctrl)
			uc := NewContractUseCase(repo, &stubTrigger{}, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(confirmedContract(tc.pricing), nil)

			_, err := uc.Extend(context.Background(), "p-1", "c-1", tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("concurrent extension loses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, &stubTrigger{}, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(confirmedContract(entities.SessionsPricing(10)), nil)
		repo.EXPECT().AppendExtension(gomock.Any(), gomock.Any(), 0).Return(entities.Contract{}, nil)

		_, err := uc.Extend(context.Background(), "p-1", "c-1", ExtendContractInput{Kind: entities.ExtensionKindSessions, AddedSessions: 5})
		if !errors.Is(err, ErrExtensionConflict) || !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrExtensionConflict, got %v", err)
		}
	})

	t.Run("period extension on sent calendar contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		trigger := &stubTrigger{}
		uc := NewContractUseCase(repo, trigger, nil, nil)

		c := confirmedContract(entities.CalendarPricing(time.Monday))
		c.Status = entities.ContractStatusSent
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)
		repo.EXPECT().AppendExtension(gomock.Any(), gomock.Any(), 0).DoAndReturn(
			func(_ context.Context, c entities.Contract, _ int) (entities.Contract, error) { return c, nil },
		)

		res, err := uc.Extend(context.Background(), "p-1", "c-1", ExtendContractInput{Kind: entities.ExtensionKindPeriod, NewEndDate: &newEnd})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EndDate == nil || !res.EndDate.Equal(newEnd) {
			t.Fatalf("expected end date moved, got %v", res.EndDate)
		}
		ext := res.Policy.Extensions[0]
		if ext.Seq != 1 || ext.Chained() || !ext.NewTotal.IsZero() || ext.ExtendedBy != "p-1" {
			t.Fatalf("unexpected extension: %+v", ext)
		}
		if len(trigger.extended) != 1 {
			t.Fatalf("expected extension trigger, got %d calls", len(trigger.extended))
		}
	})
}
