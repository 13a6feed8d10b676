package invoice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwalw/tempobill/internal/domain"
	"github.com/prajwalw/tempobill/internal/service"
	"github.com/prajwalw/tempobill/pkg/tempo"
)

type stubSource struct {
	worklogs []tempo.Worklog
	err      error
}

func (s *stubSource) GetWorklogs(context.Context, time.Time, time.Time) ([]tempo.Worklog, error) {
	return s.worklogs, s.err
}

func newTestServer(t *testing.T, source service.WorklogSource) *httptest.Server {
	t.Helper()

	consultant := service.NewConsultant(domain.BillModeMonthly, decimal.RequireFromString("9680"), source)
	router := chi.NewRouter()
	NewHandlerGroup(consultant, "hunter2").Mount(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("token", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestGetInvoices(t *testing.T) {
	source := &stubSource{worklogs: []tempo.Worklog{{
		TempoWorklogID:   1,
		JiraWorklogID:    2,
		TimeSpentSeconds: 27000,
		BillableSeconds:  27000,
		StartDate:        "2021-06-07",
		Description:      "logged work",
		CreatedAt:        "2021-06-07T17:00:00Z",
		UpdatedAt:        "2021-06-07T17:00:00Z",
		Author:           tempo.Author{AccountID: "acc-1", DisplayName: "Jane Smith"},
		Issue:            tempo.Issue{Key: "PROJ-1", ID: 10001},
		Attributes: tempo.Attributes{
			Values: []tempo.Attribute{{Key: "_Account_", Value: "ACME-CONSULTING"}},
		},
	}}}
	server := newTestServer(t, source)

	resp := get(t, server.URL+"/invoices/?start_date=2021-06-07&end_date=2021-06-07", "hunter2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body map[string]domain.InvoiceJSON
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body, 1)
	invoice, ok := body["2021-06-11"]
	require.True(t, ok, "expected invoice keyed by its Friday invoice date")

	assert.Equal(t, "2021-06-05", invoice.StartDate)
	assert.Equal(t, "2021-06-11", invoice.InvoiceDate)
	assert.Equal(t, "2021-07-11", invoice.DueDate)
	assert.Equal(t, 5, invoice.TotalWorkDays)
	assert.Equal(t, "7", invoice.TotalWorkUnit)
	assert.Equal(t, "322.6667", invoice.NetRate)
	assert.Equal(t, "2258.6669", invoice.InvoiceAmount)
	assert.Equal(t, domain.BillModeJSON{Name: "MONTHLY", Value: "M"}, invoice.BillingMode)

	require.Len(t, invoice.Items, 7)
	item := invoice.Items["2021-06-07"]
	require.Len(t, item.WorkLogs, 1)
	assert.Equal(t, "7.5", item.WorkLogs[0].Hours)
	assert.Equal(t, "ACME-CONSULTING", item.WorkLogs[0].Account)
}

func TestGetInvoicesRejectsBadRequests(t *testing.T) {
	testCases := []struct {
		name  string
		query string
	}{
		{name: "missing start_date", query: ""},
		{name: "malformed start_date", query: "?start_date=07-06-2021"},
		{name: "malformed end_date", query: "?start_date=2021-06-07&end_date=soon"},
		{name: "end before start", query: "?start_date=2021-06-07&end_date=2021-06-01"},
	}

	server := newTestServer(t, &stubSource{})

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, server.URL+"/invoices/"+tc.query, "hunter2")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetInvoicesUnauthorized(t *testing.T) {
	source := &stubSource{}
	server := newTestServer(t, source)

	resp := get(t, server.URL+"/invoices/?start_date=2021-06-07", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetInvoicesUpstreamTransportFailure(t *testing.T) {
	server := newTestServer(t, &stubSource{err: tempo.ErrUnauthorized})

	resp := get(t, server.URL+"/invoices/?start_date=2021-06-07&end_date=2021-06-07", "hunter2")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestGetInvoicesUpstreamDataFailure(t *testing.T) {
	bad := tempo.Worklog{
		TempoWorklogID: 9,
		StartDate:      "2021-06-07",
		CreatedAt:      "2021-06-07T17:00:00Z",
		UpdatedAt:      "2021-06-07T17:00:00Z",
	}
	server := newTestServer(t, &stubSource{worklogs: []tempo.Worklog{bad}})

	resp := get(t, server.URL+"/invoices/?start_date=2021-06-07&end_date=2021-06-07", "hunter2")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "account attribute")
}
