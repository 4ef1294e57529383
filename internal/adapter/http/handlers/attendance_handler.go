package handlers

import (
	"errors"
	"net/http"

	"lesson_billing/internal/adapter/http/dto/request"
	"lesson_billing/internal/adapter/http/dto/response"
	"lesson_billing/internal/usecase"
	"lesson_billing/pkg"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler records attendance against a contract. Every mutation
// recomputes the owning invoice before the response is written.
type AttendanceHandler struct {
	usecase usecase.IAttendanceUseCase
}

func NewAttendanceHandler(uc usecase.IAttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{usecase: uc}
}

// RecordAttendance godoc
// @Summary      Record an attendance event
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                           true  "Provider id"
// @Param        id             path      string                           true  "Contract id"
// @Param        body           body      request.RecordAttendanceRequest  true  "Attendance"
// @Success      201            {object}  response.AttendanceResponse
// @Failure      400            {object}  pkg.HTTPError
// @Router       /contracts/{id}/attendance [post]
func (h *AttendanceHandler) RecordAttendance(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	rec, err := h.usecase.Record(c.Request.Context(), pid, c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapAttendanceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAttendance(rec))
}

// ListAttendance godoc
// @Summary      List attendance of a contract, voided records included
// @Tags         attendance
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Param        id             path      string  true  "Contract id"
// @Success      200            {array}   response.AttendanceResponse
// @Router       /contracts/{id}/attendance [get]
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	recs, err := h.usecase.ListByContract(c.Request.Context(), pid, c.Param("id"))
	if err != nil {
		abortWith(c, mapAttendanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAttendanceRecords(recs))
}

// CorrectAttendance godoc
// @Summary      Correct an attendance record
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        X-Provider-ID  header    string                            true  "Provider id"
// @Param        id             path      string                            true  "Contract id"
// @Param        attendance_id  path      string                            true  "Attendance id"
// @Param        body           body      request.CorrectAttendanceRequest  true  "Fields to change"
// @Success      200            {object}  response.AttendanceResponse
// @Failure      409            {object}  pkg.HTTPError
// @Router       /contracts/{id}/attendance/{attendance_id} [patch]
func (h *AttendanceHandler) CorrectAttendance(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	var payload request.CorrectAttendanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	rec, err := h.usecase.Correct(c.Request.Context(), pid, c.Param("id"), c.Param("attendance_id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapAttendanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAttendance(rec))
}

// VoidAttendance godoc
// @Summary      Void an attendance record
// @Tags         attendance
// @Produce      json
// @Param        X-Provider-ID  header    string  true  "Provider id"
// @Param        id             path      string  true  "Contract id"
// @Param        attendance_id  path      string  true  "Attendance id"
// @Success      200            {object}  response.AttendanceResponse
// @Router       /contracts/{id}/attendance/{attendance_id} [delete]
func (h *AttendanceHandler) VoidAttendance(c *gin.Context) {
	pid, ok := providerID(c)
	if !ok {
		return
	}
	rec, err := h.usecase.Void(c.Request.Context(), pid, c.Param("id"), c.Param("attendance_id"))
	if err != nil {
		abortWith(c, mapAttendanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAttendance(rec))
}

func mapAttendanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAttendanceInput):
		return invalidInput("INVALID_ATTENDANCE_INPUT", err)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttendanceNotFound):
		return pkg.NewDomainErrorSimple("ATTENDANCE_NOT_FOUND", "Attendance record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttendanceVoided):
		return pkg.NewDomainError("ATTENDANCE_VOIDED", "Attendance record is voided", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidContractState):
		return pkg.NewDomainError("INVALID_CONTRACT_STATE", err.Error(), err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
