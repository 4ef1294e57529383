package billing

import (
	"fmt"
	"sort"
	"time"

	"lesson_billing/internal/domain/entities"

	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

// SentInvoice pairs a sent invoice with the display period frozen at send time.
type SentInvoice struct {
	Invoice       entities.Invoice `json:"invoice"`
	DisplayPeriod string           `json:"display_period"`
}

type SentGroup struct {
	Year     int           `json:"year"`
	Month    time.Month    `json:"month"`
	Invoices []SentInvoice `json:"invoices"`
}

// Buckets is the read-side grouping of a provider's invoices.
type Buckets struct {
	InProgress []entities.Invoice `json:"in_progress"`
	DueToday   []entities.Invoice `json:"due_today"`
	Sent       []SentGroup        `json:"sent"`
}

// Bucketize groups invoices for display on day today.
//
// Sent invoices go to Sent grouped by (year, month), newest first. Unsent
// invoices are due today when forced, when their contract is count based, or
// when their calendar due date has arrived; other calendar invoices are in
// progress.
func Bucketize(invoices []entities.Invoice, contracts map[string]entities.Contract, today time.Time) Buckets {
	out := Buckets{
		InProgress: []entities.Invoice{},
		DueToday:   []entities.Invoice{},
		Sent:       []SentGroup{},
	}
	todayDate := DateOf(today)

	var sent []entities.Invoice
	for _, inv := range invoices {
		if inv.SendStatus == entities.SendStatusSent {
			sent = append(sent, inv)
			continue
		}
		if inv.ForceToTodayBilling {
			out.DueToday = append(out.DueToday, inv)
			continue
		}
		contract, ok := contracts[inv.ContractID]
		if !ok || contract.Pricing.CountBased() {
			out.DueToday = append(out.DueToday, inv)
			continue
		}
		due, ok := CalendarDueDate(contract, inv)
		if !ok || !DateOf(due.In(today.Location())).After(todayDate) {
			out.DueToday = append(out.DueToday, inv)
			continue
		}
		out.InProgress = append(out.InProgress, inv)
	}

	grouped := lo.GroupBy(sent, func(inv entities.Invoice) string {
		return fmt.Sprintf("%04d-%02d", inv.Year, int(inv.Month))
	})
	keys := lo.Keys(grouped)
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	for _, k := range keys {
		group := grouped[k]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].InvoiceNumber < group[j].InvoiceNumber
		})
		g := SentGroup{Year: group[0].Year, Month: group[0].Month}
		for _, inv := range group {
			display := ""
			if entry, ok := inv.LastSuccessfulSend(); ok {
				display = entry.DisplayPeriod
			}
			g.Invoices = append(g.Invoices, SentInvoice{Invoice: inv, DisplayPeriod: display})
		}
		out.Sent = append(out.Sent, g)
	}

	sortByDue(out.DueToday)
	sortByDue(out.InProgress)
	return out
}

func sortByDue(invoices []entities.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		a, b := invoices[i], invoices[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.InvoiceNumber < b.InvoiceNumber
	})
}

// CalendarDueDate is the period start for prepaid contracts and the period
// end for postpaid ones.
func CalendarDueDate(contract entities.Contract, inv entities.Invoice) (time.Time, bool) {
	mode := contract.BillingMode
	if contract.Policy != nil {
		mode = contract.Policy.BillingMode
	}
	if mode == entities.BillingModePostpaid {
		if inv.PeriodEnd == nil {
			return time.Time{}, false
		}
		return *inv.PeriodEnd, true
	}
	if inv.PeriodStart == nil {
		return time.Time{}, false
	}
	return *inv.PeriodStart, true
}

// DisplayPeriod is the human-readable service period shown in a send:
// "N회" for session passes, the contract validity for amount passes and the
// billed period for calendar contracts.
func DisplayPeriod(contract entities.Contract, inv entities.Invoice) string {
	switch contract.Pricing.Kind {
	case entities.PricingKindSessions:
		return fmt.Sprintf("%d회", sessionsBilled(contract, inv.InvoiceNumber))
	case entities.PricingKindAmount:
		return dateRange(contract.StartDate, contract.EndDate)
	}
	return dateRange(inv.PeriodStart, inv.PeriodEnd)
}

func sessionsBilled(contract entities.Contract, invoiceNumber int) int {
	if contract.Policy == nil {
		return contract.TotalSessions
	}
	if invoiceNumber <= 1 {
		return contract.Policy.Pricing.TotalSessions
	}
	chain := contract.Policy.ChainExtensions()
	if invoiceNumber-2 < len(chain) {
		return chain[invoiceNumber-2].AddedSessions
	}
	return 0
}

func dateRange(start, end *time.Time) string {
	switch {
	case start != nil && end != nil:
		return start.Format(dateLayout) + " ~ " + end.Format(dateLayout)
	case start != nil:
		return start.Format(dateLayout) + " ~"
	case end != nil:
		return "~ " + end.Format(dateLayout)
	}
	return ""
}
