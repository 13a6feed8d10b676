package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// workdayHoursThreshold is the billable-hours bar above which a
// weekend day still counts as a workday.
var workdayHoursThreshold = decimal.NewFromInt(3)

// InvoiceItem aggregates the work logs of a single calendar day.
// Items are created empty for every day of an invoice's span and
// have work logs appended as they are fetched.
type InvoiceItem struct {
	Date        time.Time
	BillingMode BillMode
	UnitPolicy  MonthlyUnitPolicy
	WorkLogs    []WorkLog
}

func NewInvoiceItem(date time.Time, mode BillMode, policy MonthlyUnitPolicy) *InvoiceItem {
	return &InvoiceItem{
		Date:        date,
		BillingMode: mode,
		UnitPolicy:  policy,
	}
}

// TotalWorkHours sums the billable hours of the day's work logs.
func (it *InvoiceItem) TotalWorkHours() decimal.Decimal {
	return SumHours(it.WorkLogs)
}

// IsWorkday reports whether the day counts toward billing: every
// Monday-Friday does, a weekend day only when more than three billable
// hours were logged on it.
func (it *InvoiceItem) IsWorkday() bool {
	if it.TotalWorkHours().GreaterThan(workdayHoursThreshold) {
		return true
	}
	weekday := it.Date.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}

// WorkUnit is the day's billable quantity: logged hours under hourly
// billing, a day count under monthly billing.
func (it *InvoiceItem) WorkUnit() decimal.Decimal {
	if it.BillingMode == BillModeHourly {
		return it.TotalWorkHours()
	}
	if it.UnitPolicy == UnitPerWorkday {
		if it.IsWorkday() && it.TotalWorkHours().GreaterThan(workdayHoursThreshold) {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	}
	return decimal.NewFromInt(1)
}

// SumWorkUnits folds a sequence of items into a total work unit.
func SumWorkUnits(items []*InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.WorkUnit())
	}
	return total
}
