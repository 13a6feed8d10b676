// Package tempo provides a thin Tempo JSON API client
// that only fetches the work logs needed to compute invoices.
package tempo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
}

var ErrUnauthorized = errors.New("The provided Tempo API token is invalid.")

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode > 299 {
		defer resp.Body.Close()
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, ErrUnauthorized
		default:
			return nil, fmt.Errorf("Tempo request failed (%d): %s", resp.StatusCode, string(bodyBytes))
		}
	}

	return resp, nil
}

type Worklog struct {
	TempoWorklogID   int64      `json:"tempoWorklogId"`
	JiraWorklogID    int64      `json:"jiraWorklogId"`
	TimeSpentSeconds int64      `json:"timeSpentSeconds"`
	BillableSeconds  int64      `json:"billableSeconds"`
	StartDate        string     `json:"startDate"`
	Description      string     `json:"description"`
	CreatedAt        string     `json:"createdAt"`
	UpdatedAt        string     `json:"updatedAt"`
	Author           Author     `json:"author"`
	Issue            Issue      `json:"issue"`
	Attributes       Attributes `json:"attributes"`
}

type Author struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}

type Issue struct {
	Key string `json:"key"`
	ID  int64  `json:"id"`
}

type Attributes struct {
	Values []Attribute `json:"values"`
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type getWorklogsResponse struct {
	Results  []Worklog `json:"results"`
	Metadata struct {
		Next string `json:"next"`
	} `json:"metadata"`
}

// Calls GET {base}/worklogs?from={from}&to={to}, following
// the metadata.next link until all pages are drained.
func (c *Client) GetWorklogs(ctx context.Context, from, to time.Time) ([]Worklog, error) {
	url := fmt.Sprintf("%s/worklogs?from=%s&to=%s",
		c.baseURL, from.Format(time.DateOnly), to.Format(time.DateOnly))

	var worklogs []Worklog
	for url != "" {
		resp, err := c.get(ctx, url)
		if err != nil {
			return nil, err
		}

		var page getWorklogsResponse
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		worklogs = append(worklogs, page.Results...)
		url = page.Metadata.Next
	}

	return worklogs, nil
}
