// Package client is a typed HTTP wrapper over the transaction API. Each call
// is a single attempt: failures are returned to the caller, never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the bearer credential for outgoing requests. A nil
// TokenSource, or one returning "", sends the request unauthenticated.
type TokenSource func() string

type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
}

func New(baseURL string, tokenSource TokenSource) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: defaultTimeout},
		tokenSource: tokenSource,
	}
}

// APIError is a non-success response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

type Transaction struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	UserID      string  `json:"user_id"`
}

type CreateTransactionDTO struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	UserID      string  `json:"user_id,omitempty"`
}

// UpdateTransactionDTO is a partial update; nil fields are omitted from the
// request body.
type UpdateTransactionDTO struct {
	ID          string   `json:"-"`
	Type        *string  `json:"type,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type CategoryShare struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ReportSummary struct {
	Period               ReportPeriod       `json:"period"`
	Income               float64            `json:"income"`
	Expenses             float64            `json:"expenses"`
	Balance              float64            `json:"balance"`
	TransactionCount     int                `json:"transaction_count"`
	AverageDailySpending float64            `json:"average_daily_spending"`
	DaysWithSpending     int                `json:"days_with_spending"`
	SavingsRate          *float64           `json:"savings_rate,omitempty"`
	CategorySpending     map[string]float64 `json:"category_spending"`
	IncomeByCategory     map[string]float64 `json:"income_by_category"`
	DailySpending        map[string]float64 `json:"daily_spending"`
	TopExpenseCategories []CategoryShare    `json:"top_expense_categories"`
	TopIncomeCategories  []CategoryShare    `json:"top_income_categories"`
}

func (c *Client) List(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (*Transaction, error) {
	var out Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Create(ctx context.Context, data CreateTransactionDTO) (*Transaction, error) {
	var out Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions/", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, data UpdateTransactionDTO) (*Transaction, error) {
	var out Transaction
	if err := c.do(ctx, http.MethodPut, "/transactions/"+url.PathEscape(data.ID), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), nil, nil)
}

// ReportSummary fetches aggregate metrics for the date range. Empty bounds
// use the server's defaults (first day of the current month through today).
func (c *Client) ReportSummary(ctx context.Context, startDate, endDate string) (*ReportSummary, error) {
	path := "/reports/summary"
	params := url.Values{}
	if startDate != "" {
		params.Set("start_date", startDate)
	}
	if endDate != "" {
		params.Set("end_date", endDate)
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out ReportSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(data)),
	}

	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
	}

	return apiErr
}
