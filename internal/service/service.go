// Package service holds the invoicing engine: it cuts any date range
// into Saturday-to-Friday billing weeks, pulls the raw work logs for
// each week from the time-tracking source and builds one invoice per
// week.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prajwalw/tempobill/internal/domain"
	"github.com/prajwalw/tempobill/pkg/tempo"
)

// WorklogSource supplies raw work-log records for an inclusive date
// range. *tempo.Client satisfies it.
type WorklogSource interface {
	GetWorklogs(ctx context.Context, from, to time.Time) ([]tempo.Worklog, error)
}

// Consultant is the invoicing engine for one consultant. It is pure
// configuration: nothing on it mutates during computation.
type Consultant struct {
	billingMode domain.BillMode
	rate        decimal.Decimal
	unitPolicy  domain.MonthlyUnitPolicy
	source      WorklogSource

	name   string
	userID string
}

func NewConsultant(mode domain.BillMode, rate decimal.Decimal, source WorklogSource) *Consultant {
	return &Consultant{
		billingMode: mode,
		rate:        rate,
		unitPolicy:  domain.UnitPerCalendarDay,
		source:      source,
	}
}

func (c *Consultant) WithUnitPolicy(policy domain.MonthlyUnitPolicy) *Consultant {
	c.unitPolicy = policy
	return c
}

func (c *Consultant) WithName(name string) *Consultant {
	c.name = name
	return c
}

func (c *Consultant) WithUserID(userID string) *Consultant {
	c.userID = userID
	return c
}

// BillingDateBounds returns the Saturday start and Friday end of the
// billing week containing date.
func BillingDateBounds(date time.Time) (startDate, endDate time.Time) {
	date = dateOnly(date)
	// Days elapsed since the week's Saturday: Sat=0, Sun=1, ... Fri=6.
	elapsed := (int(date.Weekday()) + 1) % 7
	startDate = date.AddDate(0, 0, -elapsed)
	endDate = startDate.AddDate(0, 0, 6)
	return startDate, endDate
}

// InvoiceForWorkDate computes the invoice of the billing week that
// contains workDate. Any malformed upstream record aborts the whole
// computation; no partial invoice is returned.
func (c *Consultant) InvoiceForWorkDate(ctx context.Context, workDate time.Time) (*domain.Invoice, error) {
	startDate, endDate := BillingDateBounds(workDate)
	invoice := domain.NewInvoice(startDate, endDate, c.rate, c.billingMode, c.unitPolicy)

	rawWorklogs, err := c.source.GetWorklogs(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	for _, raw := range rawWorklogs {
		worklog, err := domain.WorkLogFromTempo(raw)
		if err != nil {
			return nil, err
		}
		if err := invoice.AppendWorkLog(worklog); err != nil {
			return nil, err
		}
	}

	return invoice, nil
}

// InvoicesInRange computes every weekly invoice whose billing week
// touches [startDate, endDate], keyed by ISO invoice date. A zero
// endDate defaults to today. Weeks are walked in fixed 7-day strides,
// so invoice dates are unique and strictly increasing.
func (c *Consultant) InvoicesInRange(ctx context.Context, startDate, endDate time.Time) (map[string]*domain.Invoice, error) {
	if endDate.IsZero() {
		endDate = time.Now().UTC()
	}
	startDate = dateOnly(startDate)
	endDate = dateOnly(endDate)

	invoices := map[string]*domain.Invoice{}
	for nextDate := startDate; !nextDate.After(endDate); nextDate = nextDate.AddDate(0, 0, 7) {
		invoice, err := c.InvoiceForWorkDate(ctx, nextDate)
		if err != nil {
			return nil, err
		}
		invoices[invoice.InvoiceDate.Format(time.DateOnly)] = invoice
	}

	return invoices, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
