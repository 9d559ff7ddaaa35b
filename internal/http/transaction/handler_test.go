package transaction_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sanketkadam3921/financial-dashboard/internal/analytics"
	txhttp "github.com/Sanketkadam3921/financial-dashboard/internal/http/transaction"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

func newServer(t *testing.T, txRepo *transaction.MockRepository, anRepo *analytics.MockRepository) *httptest.Server {
	t.Helper()

	handler := txhttp.NewHandler(transaction.NewService(txRepo), analytics.NewService(anRepo))

	r := chi.NewRouter()
	r.Route("/api/transactions", handler.Routes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func fixtureTransactions() []*transaction.Transaction {
	return []*transaction.Transaction{
		{
			Date:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Amount:   1500,
			Category: transaction.CategoryRevenue,
			Status:   transaction.StatusPaid,
			UserID:   "user_001",
		},
		{
			Date:     time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			Amount:   400,
			Category: transaction.CategoryExpense,
			Status:   transaction.StatusPending,
			UserID:   "user_002",
		},
	}
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	txRepo := transaction.NewMockRepository(ctrl)
	anRepo := analytics.NewMockRepository(ctrl)

	wantQuery := transaction.ListQuery{
		Page:      2,
		Limit:     5,
		Search:    "rent",
		SortBy:    "amount",
		SortOrder: "asc",
	}

	txRepo.EXPECT().ListTransactions(gomock.Any(), wantQuery).Return(fixtureTransactions(), nil)
	txRepo.EXPECT().CountTransactions(gomock.Any(), wantQuery).Return(12, nil)

	srv := newServer(t, txRepo, anRepo)

	resp, err := http.Get(srv.URL + "/api/transactions?page=2&limit=5&search=rent&sortBy=amount&sortOrder=asc")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page transaction.Page

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Transactions, 2)
	assert.Equal(t, transaction.Pagination{
		CurrentPage:  2,
		TotalPages:   3,
		TotalItems:   12,
		ItemsPerPage: 5,
	}, page.Pagination)
}

func TestHandler_List_BadQuery(t *testing.T) {
	type testCase struct {
		name        string
		query       string
		wantMessage string
	}

	tests := []testCase{
		{
			name:        "NonNumericPage",
			query:       "?page=abc",
			wantMessage: "invalid page parameter: not a number",
		},
		{
			name:        "ZeroLimit",
			query:       "?limit=0",
			wantMessage: "invalid limit parameter: must be at least 1",
		},
		{
			name:        "UnknownSortField",
			query:       "?sortBy=user_profile",
			wantMessage: `invalid sortBy parameter: unknown field "user_profile"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv := newServer(t, transaction.NewMockRepository(ctrl), analytics.NewMockRepository(ctrl))

			resp, err := http.Get(srv.URL + "/api/transactions" + tt.query)
			require.NoError(t, err)

			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string

			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	txRepo := transaction.NewMockRepository(ctrl)
	anRepo := analytics.NewMockRepository(ctrl)

	anRepo.EXPECT().ListAllTransactions(gomock.Any()).Return(fixtureTransactions(), nil)

	srv := newServer(t, txRepo, anRepo)

	resp, err := http.Get(srv.URL + "/api/transactions/summary")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary analytics.Summary

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 1500.0, summary.TotalRevenue)
	assert.Equal(t, 400.0, summary.TotalExpense)
	assert.Equal(t, 1100.0, summary.Balance)
	assert.Len(t, summary.MonthlyData, 12)
}

func TestHandler_Forecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	anRepo := analytics.NewMockRepository(ctrl)

	anRepo.EXPECT().ListAllTransactions(gomock.Any()).Return(fixtureTransactions(), nil)

	srv := newServer(t, transaction.NewMockRepository(ctrl), anRepo)

	resp, err := http.Get(srv.URL + "/api/transactions/forecast")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Forecast []analytics.ForecastPoint `json:"forecast"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Forecast, analytics.ForecastPeriods)
	assert.Equal(t, "Month 13", body.Forecast[0].Month)
	assert.True(t, body.Forecast[0].Forecast)
}

func TestHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	txRepo := transaction.NewMockRepository(ctrl)

	txRepo.EXPECT().ListAllTransactions(gomock.Any()).Return(fixtureTransactions(), nil)

	srv := newServer(t, txRepo, analytics.NewMockRepository(ctrl))

	resp, err := http.Post(srv.URL+"/api/transactions/export", "application/json",
		strings.NewReader(`{"columns":["date","amount","status"]}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	wantFilename := "transactions_" + time.Now().Format("2006-01-02") + ".csv"
	assert.Equal(t, "attachment; filename="+wantFilename, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Amount,Status", lines[0])
	assert.Equal(t, "2024-01-15,1500.00,Paid", lines[1])
	assert.Equal(t, int64(len(body)), resp.ContentLength)
}

func TestHandler_Export_BadRequests(t *testing.T) {
	type testCase struct {
		name        string
		body        string
		wantMessage string
	}

	tests := []testCase{
		{
			name:        "InvalidJSON",
			body:        "{not json",
			wantMessage: "Invalid request body",
		},
		{
			name:        "EmptyColumns",
			body:        `{"columns":[]}`,
			wantMessage: "Invalid columns provided",
		},
		{
			name:        "UnknownColumnsNamed",
			body:        `{"columns":["date","foo","bar"]}`,
			wantMessage: "Invalid columns: foo, bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv := newServer(t, transaction.NewMockRepository(ctrl), analytics.NewMockRepository(ctrl))

			resp, err := http.Post(srv.URL+"/api/transactions/export", "application/json",
				strings.NewReader(tt.body))
			require.NoError(t, err)

			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string

			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}
