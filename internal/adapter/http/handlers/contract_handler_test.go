package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"lesson_billing/internal/adapter/http/handlers/mocks"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func contractRouter(h *ContractHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/contracts", h.CreateContract)
	r.GET("/v1/contracts", h.ListContracts)
	r.GET("/v1/contracts/:id", h.GetContract)
	r.POST("/v1/contracts/:id/sign", h.SignContract)
	r.POST("/v1/contracts/:id/send", h.SendContract)
	r.POST("/v1/contracts/:id/extensions", h.ExtendContract)
	return r
}

func TestContractHandler_CreateContract(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const body = `{"client_id":"cl-1","client_name":"Kim","billing_mode":"prepaid","absence_policy":"deduct_next",` +
		`"pricing":{"kind":"sessions","total_sessions":10},"base_price":"100000"}`

	t.Run("missing provider header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts", body, "")

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "MISSING_PROVIDER_ID" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts", "{", "p-1")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid weekday", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts",
			`{"client_id":"cl-1","billing_mode":"prepaid","absence_policy":"vanish","pricing":{"kind":"calendar","weekdays":["someday"]}}`, "p-1")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Contract{}, fmt.Errorf("%w: base_price must not be negative", usecase.ErrInvalidContractInput))

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts", body, "p-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_CONTRACT_INPUT" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateContractInput) (entities.Contract, error) {
				if in.ProviderID != "p-1" || in.ClientID != "cl-1" || in.Pricing.TotalSessions != 10 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.BasePrice.Equal(decimal.NewFromInt(100000)) {
					t.Fatalf("unexpected base price %s", in.BasePrice)
				}
				return entities.Contract{ID: "c-1", ProviderID: in.ProviderID, Status: entities.ContractStatusDraft}, nil
			})

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts", body, "p-1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		decodeBody(t, w, &got)
		if got["id"] != "c-1" || got["status"] != "draft" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestContractHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "p-1", "c-9").Return(entities.Contract{}, usecase.ErrContractNotFound)

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodGet, "/v1/contracts/c-9", "", "p-1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), "p-1").Return([]entities.Contract{{ID: "c-1"}, {ID: "c-2"}}, nil)

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodGet, "/v1/contracts", "", "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		decodeBody(t, w, &got)
		if len(got) != 2 {
			t.Fatalf("expected 2 contracts, got %d", len(got))
		}
	})

	t.Run("internal error is hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), "p-1").Return(nil, errors.New("dynamodb: throttled"))

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodGet, "/v1/contracts", "", "p-1")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var got map[string]any
		decodeBody(t, w, &got)
		if got["message"] != "An internal error occurred" {
			t.Fatalf("internal error leaked: %v", got)
		}
	})
}

func TestContractHandler_SignSendExtend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sign rejects unknown party before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts/c-1/sign", `{"party":"notary"}`, "p-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		now := time.Now().UTC()
		uc.EXPECT().Sign(gomock.Any(), "p-1", "c-1", usecase.SignatureClient).
			Return(entities.Contract{ID: "c-1", Status: entities.ContractStatusConfirmed, ClientSignedAt: &now}, nil)

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts/c-1/sign", `{"party":"client"}`, "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("send in wrong state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().MarkSent(gomock.Any(), "p-1", "c-1").
			Return(entities.Contract{}, fmt.Errorf("%w: cannot send a draft contract", usecase.ErrInvalidContractState))

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts/c-1/send", "", "p-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_CONTRACT_STATE" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("extend passes the provider as author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().Extend(gomock.Any(), "p-1", "c-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, in usecase.ExtendContractInput) (entities.Contract, error) {
				if in.Kind != entities.ExtensionKindSessions || in.AddedSessions != 5 || in.ExtendedBy != "p-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Contract{ID: "c-1"}, nil
			})

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts/c-1/extensions", `{"kind":"sessions","added_sessions":5}`, "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("extend conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().Extend(gomock.Any(), "p-1", "c-1", gomock.Any()).Return(entities.Contract{}, usecase.ErrExtensionConflict)

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts/c-1/extensions", `{"kind":"amount","added_amount":"50000"}`, "p-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "EXTENSION_CONFLICT" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().Extend(gomock.Any(), "p-1", "c-1", gomock.Any()).Return(entities.Contract{}, usecase.ErrUnsupportedExtension)

		w := serve(contractRouter(NewContractHandler(uc)), http.MethodPost, "/v1/contracts/c-1/extensions", `{"kind":"sessions","added_sessions":1}`, "p-1")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
