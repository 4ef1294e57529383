package memory

import (
	"time"

	"lesson_billing/internal/domain/entities"

	"github.com/samber/lo"
)

// Stored values are cloned on the way in and out so callers never share
// slices or pointers with the store.

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneContract(c entities.Contract) entities.Contract {
	if c.BillingDay != nil {
		c.BillingDay = lo.ToPtr(*c.BillingDay)
	}
	c.StartDate = cloneTime(c.StartDate)
	c.EndDate = cloneTime(c.EndDate)
	c.ProviderSignedAt = cloneTime(c.ProviderSignedAt)
	c.ClientSignedAt = cloneTime(c.ClientSignedAt)
	c.SentAt = cloneTime(c.SentAt)
	c.Pricing.Weekdays = append([]time.Weekday(nil), c.Pricing.Weekdays...)
	if c.Policy != nil {
		p := *c.Policy
		p.Pricing.Weekdays = append([]time.Weekday(nil), p.Pricing.Weekdays...)
		p.Extensions = lo.Map(p.Extensions, func(e entities.Extension, _ int) entities.Extension {
			e.NewEndDate = cloneTime(e.NewEndDate)
			if e.ExtensionPrice != nil {
				e.ExtensionPrice = lo.ToPtr(*e.ExtensionPrice)
			}
			return e
		})
		c.Policy = &p
	}
	return c
}

func cloneAttendance(r entities.AttendanceRecord) entities.AttendanceRecord {
	r.SubstituteAt = cloneTime(r.SubstituteAt)
	r.VoidedAt = cloneTime(r.VoidedAt)
	if r.Amount != nil {
		r.Amount = lo.ToPtr(*r.Amount)
	}
	return r
}

func cloneInvoice(inv entities.Invoice) entities.Invoice {
	inv.PeriodStart = cloneTime(inv.PeriodStart)
	inv.PeriodEnd = cloneTime(inv.PeriodEnd)
	inv.SendHistory = append([]entities.SendHistoryEntry(nil), inv.SendHistory...)
	if inv.AccountSnapshot != nil {
		inv.AccountSnapshot = lo.ToPtr(*inv.AccountSnapshot)
	}
	return inv
}
