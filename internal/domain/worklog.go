package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prajwalw/tempobill/pkg/tempo"
)

// accountAttributeKey is the Tempo worklog attribute that carries the
// billing account. Every worklog is expected to have it.
const accountAttributeKey = "_Account_"

// timestampLayout is the format Tempo uses for createdAt/updatedAt.
const timestampLayout = "2006-01-02T15:04:05Z"

var ErrMissingAccountAttribute = errors.New("worklog has no account attribute")

// WorkLog is one logged time entry, translated from a raw Tempo record.
// Immutable once constructed.
type WorkLog struct {
	WorklogID        int64
	JiraID           int64
	TimeSpentSeconds int64
	BillableSeconds  int64
	Date             time.Time
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Author           Author
	Issue            Issue
	Account          string
}

type Author struct {
	AccountID string
	Name      string
}

type Issue struct {
	Key    string
	JiraID int64
}

var secondsPerHour = decimal.NewFromInt(60 * 60)

// Hours is the billable time of this entry in hours, as an exact
// decimal division.
func (wl WorkLog) Hours() decimal.Decimal {
	return decimal.NewFromInt(wl.BillableSeconds).Div(secondsPerHour)
}

// SumHours folds a sequence of work logs into total billable hours.
func SumHours(worklogs []WorkLog) decimal.Decimal {
	total := decimal.Zero
	for _, wl := range worklogs {
		total = total.Add(wl.Hours())
	}
	return total
}

// WorkLogFromTempo translates a raw Tempo worklog record. A missing
// account attribute or a malformed date/timestamp fails the whole
// translation; callers treat that as fatal for the requested range.
func WorkLogFromTempo(raw tempo.Worklog) (WorkLog, error) {
	account, err := accountAttribute(raw.Attributes.Values)
	if err != nil {
		return WorkLog{}, fmt.Errorf("worklog %d: %w", raw.TempoWorklogID, err)
	}

	date, err := time.ParseInLocation(time.DateOnly, raw.StartDate, time.UTC)
	if err != nil {
		return WorkLog{}, fmt.Errorf("worklog %d: parsing start date: %w", raw.TempoWorklogID, err)
	}

	createdAt, err := time.ParseInLocation(timestampLayout, raw.CreatedAt, time.UTC)
	if err != nil {
		return WorkLog{}, fmt.Errorf("worklog %d: parsing created timestamp: %w", raw.TempoWorklogID, err)
	}

	updatedAt, err := time.ParseInLocation(timestampLayout, raw.UpdatedAt, time.UTC)
	if err != nil {
		return WorkLog{}, fmt.Errorf("worklog %d: parsing updated timestamp: %w", raw.TempoWorklogID, err)
	}

	return WorkLog{
		WorklogID:        raw.TempoWorklogID,
		JiraID:           raw.JiraWorklogID,
		TimeSpentSeconds: raw.TimeSpentSeconds,
		BillableSeconds:  raw.BillableSeconds,
		Date:             date,
		Description:      raw.Description,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		Author: Author{
			AccountID: raw.Author.AccountID,
			Name:      raw.Author.DisplayName,
		},
		Issue: Issue{
			Key:    raw.Issue.Key,
			JiraID: raw.Issue.ID,
		},
		Account: account,
	}, nil
}

func accountAttribute(attributes []tempo.Attribute) (string, error) {
	for _, attribute := range attributes {
		if attribute.Key == accountAttributeKey {
			return attribute.Value, nil
		}
	}
	return "", ErrMissingAccountAttribute
}
