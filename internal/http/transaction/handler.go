package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sanketkadam3921/financial-dashboard/internal/analytics"
	"github.com/Sanketkadam3921/financial-dashboard/internal/export"
	"github.com/Sanketkadam3921/financial-dashboard/internal/http/respond"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

type Handler struct {
	txs       *transaction.Service
	analytics *analytics.Service
}

func NewHandler(txs *transaction.Service, analyticsSvc *analytics.Service) *Handler {
	return &Handler{txs: txs, analytics: analyticsSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Get("/forecast", h.forecast)
	r.Post("/export", h.export)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	query, err := transaction.ParseListQuery(r.URL.Query())
	if err != nil {
		var qerr *transaction.QueryError
		if errors.As(err, &qerr) {
			respond.Error(w, http.StatusBadRequest, qerr.Error())
			return
		}

		respond.Error(w, http.StatusBadRequest, "invalid query")

		return
	}

	page, err := h.txs.List(r.Context(), query)
	if err != nil {
		slog.Error("failed to list transactions", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch transactions")

		return
	}

	respond.JSON(w, http.StatusOK, page)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.Summary(r.Context())
	if err != nil {
		slog.Error("failed to compute summary", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to load summary")

		return
	}

	respond.JSON(w, http.StatusOK, summary)
}

type forecastResponse struct {
	Forecast []analytics.ForecastPoint `json:"forecast"`
}

func (h *Handler) forecast(w http.ResponseWriter, r *http.Request) {
	points, err := h.analytics.Forecast(r.Context())
	if err != nil {
		slog.Error("failed to compute forecast", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to load forecast")

		return
	}

	respond.JSON(w, http.StatusOK, forecastResponse{Forecast: points})
}

type exportRequest struct {
	Columns []string `json:"columns"`
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validate before touching the store so bad column lists fail cheaply.
	if err := export.ValidateColumns(req.Columns); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	txs, err := h.txs.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list transactions for export", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Export failed")

		return
	}

	csvBytes, err := export.Render(txs, req.Columns)
	if err != nil {
		slog.Error("failed to render csv", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Export failed")

		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(csvBytes)))

	if _, err := w.Write(csvBytes); err != nil {
		slog.Error("failed to write csv response", "error", err)
	}
}
