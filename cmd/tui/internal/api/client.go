// Package api is the HTTP client the dashboard TUI uses to talk to the
// backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Sanketkadam3921/financial-dashboard/internal/analytics"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Authenticated reports whether a login token is held.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type signupResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login exchanges credentials for a bearer token, which the client holds for
// subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	if err := c.post(ctx, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token

	return &resp.User, nil
}

// Signup registers a new account. It does not log in.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp signupResponse
	if err := c.post(ctx, "/api/auth/signup", body, &resp); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

// ListTransactions fetches one page of transactions.
func (c *Client) ListTransactions(ctx context.Context, query transaction.ListQuery) (*transaction.Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("sortBy", query.SortBy)
	params.Set("sortOrder", query.SortOrder)

	if query.Search != "" {
		params.Set("search", query.Search)
	}

	if query.Category != "" {
		params.Set("category", string(query.Category))
	}

	if query.Status != "" {
		params.Set("status", string(query.Status))
	}

	var page transaction.Page
	if err := c.get(ctx, "/api/transactions?"+params.Encode(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Summary fetches the full-collection analytics summary.
func (c *Client) Summary(ctx context.Context) (*analytics.Summary, error) {
	var summary analytics.Summary
	if err := c.get(ctx, "/api/transactions/summary", &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

type forecastResponse struct {
	Forecast []analytics.ForecastPoint `json:"forecast"`
}

// Forecast fetches the projected revenue periods.
func (c *Client) Forecast(ctx context.Context) ([]analytics.ForecastPoint, error) {
	var resp forecastResponse
	if err := c.get(ctx, "/api/transactions/forecast", &resp); err != nil {
		return nil, err
	}

	return resp.Forecast, nil
}

// Export downloads the transaction collection as CSV with the chosen columns.
func (c *Client) Export(ctx context.Context, columns []string) ([]byte, error) {
	payload, err := json.Marshal(map[string][]string{"columns": columns})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/transactions/export", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	c.authorize(req)

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// apiError turns a non-2xx response into an error carrying the server's
// message envelope when one is present.
func apiError(resp *http.Response) error {
	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil && msg.Message != "" {
		return fmt.Errorf("%s", msg.Message)
	}

	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
