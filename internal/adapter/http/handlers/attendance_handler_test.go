package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"lesson_billing/internal/adapter/http/handlers/mocks"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func attendanceRouter(h *AttendanceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/contracts/:id/attendance", h.RecordAttendance)
	r.GET("/v1/contracts/:id/attendance", h.ListAttendance)
	r.PATCH("/v1/contracts/:id/attendance/:attendance_id", h.CorrectAttendance)
	r.DELETE("/v1/contracts/:id/attendance/:attendance_id", h.VoidAttendance)
	return r
}

func TestAttendanceHandler_RecordAttendance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("occurred_at is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttendanceUseCase(ctrl)

		w := serve(attendanceRouter(NewAttendanceHandler(uc)), http.MethodPost, "/v1/contracts/c-1/attendance", `{"status":"present"}`, "p-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("contract not confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		uc.EXPECT().Record(gomock.Any(), "p-1", "c-1", gomock.Any()).
			Return(entities.AttendanceRecord{}, fmt.Errorf("%w: attendance needs a confirmed contract", usecase.ErrInvalidContractState))

		w := serve(attendanceRouter(NewAttendanceHandler(uc)), http.MethodPost, "/v1/contracts/c-1/attendance",
			`{"occurred_at":"2024-01-09T10:00:00+09:00","status":"present"}`, "p-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		uc.EXPECT().Record(gomock.Any(), "p-1", "c-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, in usecase.RecordAttendanceInput) (entities.AttendanceRecord, error) {
				want := time.Date(2024, time.January, 9, 1, 0, 0, 0, time.UTC)
				if !in.OccurredAt.Equal(want) || in.Status != entities.AttendanceSubstitute || in.SubstituteAt == nil {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.AttendanceRecord{ID: "a-1", ContractID: "c-1", Status: in.Status}, nil
			})

		w := serve(attendanceRouter(NewAttendanceHandler(uc)), http.MethodPost, "/v1/contracts/c-1/attendance",
			`{"occurred_at":"2024-01-09T10:00:00+09:00","status":"Substitute","substitute_at":"2024-01-20T10:00:00+09:00"}`, "p-1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAttendanceHandler_CorrectAndVoid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("correct a voided record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		uc.EXPECT().Correct(gomock.Any(), "p-1", "c-1", "a-1", gomock.Any()).Return(entities.AttendanceRecord{}, usecase.ErrAttendanceVoided)

		w := serve(attendanceRouter(NewAttendanceHandler(uc)), http.MethodPatch, "/v1/contracts/c-1/attendance/a-1", `{"status":"absent"}`, "p-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "ATTENDANCE_VOIDED" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("void unknown record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		uc.EXPECT().Void(gomock.Any(), "p-1", "c-1", "a-9").Return(entities.AttendanceRecord{}, usecase.ErrAttendanceNotFound)

		w := serve(attendanceRouter(NewAttendanceHandler(uc)), http.MethodDelete, "/v1/contracts/c-1/attendance/a-9", "", "p-1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("void", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		uc.EXPECT().Void(gomock.Any(), "p-1", "c-1", "a-1").Return(entities.AttendanceRecord{ID: "a-1", Voided: true}, nil)

		w := serve(attendanceRouter(NewAttendanceHandler(uc)), http.MethodDelete, "/v1/contracts/c-1/attendance/a-1", "", "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		decodeBody(t, w, &got)
		if got["voided"] != true {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttendanceUseCase(ctrl)
		uc.EXPECT().ListByContract(gomock.Any(), "p-1", "c-1").Return([]entities.AttendanceRecord{{ID: "a-1"}}, nil)

		w := serve(attendanceRouter(NewAttendanceHandler(uc)), http.MethodGet, "/v1/contracts/c-1/attendance", "", "p-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
