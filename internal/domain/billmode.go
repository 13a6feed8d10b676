package domain

import "fmt"

// BillMode selects how a consultant's work is billed.
type BillMode string

const (
	// BillModeMonthly bills a fixed monthly rate prorated per day.
	BillModeMonthly BillMode = "M"
	// BillModeHourly bills per logged billable hour.
	BillModeHourly BillMode = "H"
)

// Name returns the long-form name used in JSON output.
func (m BillMode) Name() string {
	switch m {
	case BillModeMonthly:
		return "MONTHLY"
	case BillModeHourly:
		return "HOURLY"
	default:
		return string(m)
	}
}

func ParseBillMode(s string) (BillMode, error) {
	switch BillMode(s) {
	case BillModeMonthly:
		return BillModeMonthly, nil
	case BillModeHourly:
		return BillModeHourly, nil
	default:
		return "", fmt.Errorf("invalid billing mode %q (want %q or %q)",
			s, BillModeMonthly, BillModeHourly)
	}
}

// MonthlyUnitPolicy selects how a day's work unit is counted under
// monthly billing. Two variants are in circulation: counting every
// calendar day of the period as one unit, and counting only days that
// qualify as workdays with more than three billable hours.
type MonthlyUnitPolicy string

const (
	UnitPerCalendarDay MonthlyUnitPolicy = "calendar-day"
	UnitPerWorkday     MonthlyUnitPolicy = "workday"
)

func ParseMonthlyUnitPolicy(s string) (MonthlyUnitPolicy, error) {
	switch MonthlyUnitPolicy(s) {
	case UnitPerCalendarDay:
		return UnitPerCalendarDay, nil
	case UnitPerWorkday:
		return UnitPerWorkday, nil
	default:
		return "", fmt.Errorf("invalid monthly unit policy %q (want %q or %q)",
			s, UnitPerCalendarDay, UnitPerWorkday)
	}
}
