package invoice

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/prajwalw/tempobill/app/auth"
	"github.com/prajwalw/tempobill/internal/domain"
	"github.com/prajwalw/tempobill/internal/service"
)

type HandlerGroup struct {
	consultant *service.Consultant
	apiToken   string
}

func NewHandlerGroup(consultant *service.Consultant, apiToken string) *HandlerGroup {
	return &HandlerGroup{
		consultant: consultant,
		apiToken:   apiToken,
	}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Get("/invoices/", auth.RequireToken(hg.apiToken, hg.handleGetInvoices))
}

func (hg *HandlerGroup) handleGetInvoices(w http.ResponseWriter, r *http.Request) {
	req, err := newGetInvoicesRequest(r)
	if err != nil {
		showError(w, r, http.StatusBadRequest, err)
		return
	}

	invoices, err := hg.consultant.InvoicesInRange(r.Context(), req.startDate, req.endDate)
	if err != nil {
		if isUpstreamDataError(err) {
			showError(w, r, http.StatusInternalServerError, err)
		} else {
			showError(w, r, http.StatusBadGateway, err)
		}
		return
	}

	response := make(map[string]domain.InvoiceJSON, len(invoices))
	for invoiceDate, invoice := range invoices {
		response[invoiceDate] = invoice.Representation()
	}

	render.JSON(w, r, response)
}

type getInvoicesRequest struct {
	startDate time.Time
	endDate   time.Time
}

func newGetInvoicesRequest(r *http.Request) (*getInvoicesRequest, error) {
	startDateString := r.URL.Query().Get("start_date")
	endDateString := r.URL.Query().Get("end_date")

	if startDateString == "" {
		return nil, errors.New("Missing required query parameter: start_date")
	}

	startDate, err := time.ParseInLocation(time.DateOnly, startDateString, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("Parsing start date failed: %w", err)
	}

	req := &getInvoicesRequest{startDate: startDate}

	if endDateString != "" {
		endDate, err := time.ParseInLocation(time.DateOnly, endDateString, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("Parsing end date failed: %w", err)
		}
		if endDate.Before(startDate) {
			return nil, errors.New("End date must not be earlier than start date.")
		}
		req.endDate = endDate
	}

	return req, nil
}

// isUpstreamDataError distinguishes a malformed record from a
// transport failure: the former is our data-integrity problem, the
// latter belongs to the upstream service.
func isUpstreamDataError(err error) bool {
	var parseError *time.ParseError
	return errors.Is(err, domain.ErrMissingAccountAttribute) ||
		errors.Is(err, domain.ErrWorkLogOutsideSpan) ||
		errors.As(err, &parseError)
}

func showError(w http.ResponseWriter, r *http.Request, code int, err error) {
	render.Status(r, code)
	render.JSON(w, r, map[string]string{"error": err.Error()})
}
