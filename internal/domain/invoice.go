package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrWorkLogOutsideSpan = errors.New("worklog date outside invoice span")

// Invoice covers one weekly billing period. The engine always builds
// it over a Saturday start and the following Friday invoice date, both
// inclusive.
type Invoice struct {
	ID          uuid.UUID
	StartDate   time.Time
	InvoiceDate time.Time
	Rate        decimal.Decimal
	BillingMode BillMode
	UnitPolicy  MonthlyUnitPolicy

	// Items holds exactly one entry per calendar day in
	// [StartDate, InvoiceDate], keyed by ISO date.
	Items map[string]*InvoiceItem
}

// NewInvoice allocates an invoice with an empty item for every day of
// the span, before any work log is known.
func NewInvoice(startDate, invoiceDate time.Time, rate decimal.Decimal, mode BillMode, policy MonthlyUnitPolicy) *Invoice {
	invoice := &Invoice{
		ID:          uuid.New(),
		StartDate:   startDate,
		InvoiceDate: invoiceDate,
		Rate:        rate,
		BillingMode: mode,
		UnitPolicy:  policy,
		Items:       map[string]*InvoiceItem{},
	}

	for date := startDate; !date.After(invoiceDate); date = date.AddDate(0, 0, 1) {
		invoice.Items[date.Format(time.DateOnly)] = NewInvoiceItem(date, mode, policy)
	}

	return invoice
}

// AppendWorkLog adds a work log to the item of its day. A date outside
// the invoice span means the upstream source returned data it was not
// asked for, which the caller treats as fatal.
func (inv *Invoice) AppendWorkLog(wl WorkLog) error {
	item, ok := inv.Items[wl.Date.Format(time.DateOnly)]
	if !ok {
		return fmt.Errorf("%w: worklog %d dated %s not in [%s, %s]",
			ErrWorkLogOutsideSpan, wl.WorklogID, wl.Date.Format(time.DateOnly),
			inv.StartDate.Format(time.DateOnly), inv.InvoiceDate.Format(time.DateOnly))
	}
	item.WorkLogs = append(item.WorkLogs, wl)
	return nil
}

// TotalWorkUnit sums the work unit of every day in the span.
func (inv *Invoice) TotalWorkUnit() decimal.Decimal {
	items := make([]*InvoiceItem, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, item)
	}
	return SumWorkUnits(items)
}

// TotalWorkDays counts the days of the span that qualify as workdays.
func (inv *Invoice) TotalWorkDays() int {
	count := 0
	for _, item := range inv.Items {
		if item.IsWorkday() {
			count++
		}
	}
	return count
}

// NetRate is the effective per-unit rate of the period, rounded to
// four places. Hourly billing uses the quoted rate as-is. Monthly
// billing prorates the monthly rate per calendar day; when the week
// crosses into a month with a different day count, the daily rates of
// the two months are blended weighted by the days spent in each.
func (inv *Invoice) NetRate() decimal.Decimal {
	if inv.BillingMode == BillModeHourly {
		return inv.Rate.Round(4)
	}

	daysInStartMonth := daysInMonth(inv.StartDate)
	daysInEndMonth := daysInMonth(inv.InvoiceDate)

	if daysInStartMonth == daysInEndMonth {
		return inv.Rate.Div(decimal.NewFromInt(int64(daysInStartMonth))).Round(4)
	}

	workDaysInStartMonth := int64(daysInStartMonth - inv.StartDate.Day() + 1)
	workDaysInEndMonth := int64(inv.InvoiceDate.Day())
	rateInStartMonth := inv.Rate.Div(decimal.NewFromInt(int64(daysInStartMonth)))
	rateInEndMonth := inv.Rate.Div(decimal.NewFromInt(int64(daysInEndMonth)))

	blended := rateInStartMonth.Mul(decimal.NewFromInt(workDaysInStartMonth)).
		Add(rateInEndMonth.Mul(decimal.NewFromInt(workDaysInEndMonth))).
		Div(decimal.NewFromInt(workDaysInStartMonth + workDaysInEndMonth))
	return blended.Round(4)
}

// InvoiceAmount is the period's total, rounded to four places.
func (inv *Invoice) InvoiceAmount() decimal.Decimal {
	return inv.NetRate().Mul(inv.TotalWorkUnit()).Round(4)
}

// DueDate is 30 days after the invoice date (NET-30), never adjusted
// for weekends or holidays.
func (inv *Invoice) DueDate() time.Time {
	return inv.InvoiceDate.AddDate(0, 0, 30)
}

func daysInMonth(date time.Time) int {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
