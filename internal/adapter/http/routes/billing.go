package routes

import (
	"lesson_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts     = "/contracts"
	PathInvoices      = "/invoices"
	PathPayoutAccount = "/payout-account"
)

type billingHandlers struct {
	contracts     *handlers.ContractHandler
	attendance    *handlers.AttendanceHandler
	invoices      *handlers.InvoiceHandler
	payoutAccount *handlers.PayoutAccountHandler
}

// Every billing route is scoped by the X-Provider-ID header.
func addBillingRoutes(rg *gin.RouterGroup, h billingHandlers) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", h.contracts.CreateContract)
		contracts.GET("", h.contracts.ListContracts)
		contracts.GET("/:id", h.contracts.GetContract)
		contracts.POST("/:id/sign", h.contracts.SignContract)
		contracts.POST("/:id/send", h.contracts.SendContract)
		contracts.POST("/:id/extensions", h.contracts.ExtendContract)

		contracts.GET("/:id/attendance", h.attendance.ListAttendance)
		contracts.POST("/:id/attendance", h.attendance.RecordAttendance)
		contracts.PATCH("/:id/attendance/:attendance_id", h.attendance.CorrectAttendance)
		contracts.DELETE("/:id/attendance/:attendance_id", h.attendance.VoidAttendance)

		contracts.GET("/:id/invoices", h.invoices.ListContractInvoices)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", h.invoices.ListInvoiceBuckets)
		invoices.POST("/send", h.invoices.SendInvoices)
		invoices.GET("/:id", h.invoices.GetInvoice)
		invoices.PATCH("/:id/force-today", h.invoices.ForceToToday)
		invoices.PATCH("/:id/manual-adjustment", h.invoices.SetManualAdjustment)
	}

	account := rg.Group(PathPayoutAccount)
	{
		account.GET("", h.payoutAccount.GetPayoutAccount)
		account.PUT("", h.payoutAccount.PutPayoutAccount)
	}
}
