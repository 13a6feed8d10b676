package domain

import "time"

// JSON representations are built explicitly per type. Decimal values
// are serialized as strings so callers never lose precision, dates as
// ISO-8601.

type BillModeJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type AuthorJSON struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

type IssueJSON struct {
	Key    string `json:"key"`
	JiraID int64  `json:"jira_id"`
}

type WorkLogJSON struct {
	Hours            string     `json:"hours"`
	WorklogID        int64      `json:"worklog_id"`
	JiraID           int64      `json:"jira_id"`
	TimeSpentSeconds int64      `json:"time_spent_seconds"`
	BillableSeconds  int64      `json:"billable_seconds"`
	Date             string     `json:"date"`
	Description      string     `json:"description"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Author           AuthorJSON `json:"author"`
	Issue            IssueJSON  `json:"issue"`
	Account          string     `json:"account"`
}

type InvoiceItemJSON struct {
	TotalWorkHours string        `json:"total_work_hours"`
	IsWorkday      bool          `json:"is_workday"`
	WorkUnit       string        `json:"work_unit"`
	Date           string        `json:"date"`
	BillingMode    BillModeJSON  `json:"billing_mode"`
	WorkLogs       []WorkLogJSON `json:"work_logs"`
}

type InvoiceJSON struct {
	TotalWorkDays int                        `json:"total_work_days"`
	TotalWorkUnit string                     `json:"total_work_unit"`
	NetRate       string                     `json:"net_rate"`
	InvoiceAmount string                     `json:"invoice_amount"`
	DueDate       string                     `json:"due_date"`
	ID            string                     `json:"id"`
	StartDate     string                     `json:"start_date"`
	InvoiceDate   string                     `json:"invoice_date"`
	Rate          string                     `json:"rate"`
	BillingMode   BillModeJSON               `json:"billing_mode"`
	Items         map[string]InvoiceItemJSON `json:"items"`
}

func (m BillMode) Representation() BillModeJSON {
	return BillModeJSON{Name: m.Name(), Value: string(m)}
}

func (wl WorkLog) Representation() WorkLogJSON {
	return WorkLogJSON{
		Hours:            wl.Hours().String(),
		WorklogID:        wl.WorklogID,
		JiraID:           wl.JiraID,
		TimeSpentSeconds: wl.TimeSpentSeconds,
		BillableSeconds:  wl.BillableSeconds,
		Date:             wl.Date.Format(time.DateOnly),
		Description:      wl.Description,
		CreatedAt:        wl.CreatedAt,
		UpdatedAt:        wl.UpdatedAt,
		Author:           AuthorJSON{AccountID: wl.Author.AccountID, Name: wl.Author.Name},
		Issue:            IssueJSON{Key: wl.Issue.Key, JiraID: wl.Issue.JiraID},
		Account:          wl.Account,
	}
}

func (it *InvoiceItem) Representation() InvoiceItemJSON {
	worklogs := make([]WorkLogJSON, 0, len(it.WorkLogs))
	for _, wl := range it.WorkLogs {
		worklogs = append(worklogs, wl.Representation())
	}

	return InvoiceItemJSON{
		TotalWorkHours: it.TotalWorkHours().String(),
		IsWorkday:      it.IsWorkday(),
		WorkUnit:       it.WorkUnit().String(),
		Date:           it.Date.Format(time.DateOnly),
		BillingMode:    it.BillingMode.Representation(),
		WorkLogs:       worklogs,
	}
}

func (inv *Invoice) Representation() InvoiceJSON {
	items := make(map[string]InvoiceItemJSON, len(inv.Items))
	for date, item := range inv.Items {
		items[date] = item.Representation()
	}

	return InvoiceJSON{
		TotalWorkDays: inv.TotalWorkDays(),
		TotalWorkUnit: inv.TotalWorkUnit().String(),
		NetRate:       inv.NetRate().String(),
		InvoiceAmount: inv.InvoiceAmount().String(),
		DueDate:       inv.DueDate().Format(time.DateOnly),
		ID:            inv.ID.String(),
		StartDate:     inv.StartDate.Format(time.DateOnly),
		InvoiceDate:   inv.InvoiceDate.Format(time.DateOnly),
		Rate:          inv.Rate.String(),
		BillingMode:   inv.BillingMode.Representation(),
		Items:         items,
	}
}
