package reportshandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"evalx/internal/domain/reports"
	"evalx/internal/transport/http/api"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/", h.handleOverview)
		r.Get("/kpis", h.handleKPIs)
		r.Get("/leaderboard", h.handleLeaderboard)
		r.Post("/export", h.handleExport)
	})
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.Overview(r.Context())
	if err != nil {
		slog.Error("report overview query failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching report")
		return
	}
	api.Success(w, overview)
}

func (h *Handler) handleKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.Service.KPIs(r.Context())
	if err != nil {
		slog.Error("kpi query failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching KPIs")
		return
	}
	api.Success(w, kpis)
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.Leaderboard(r.Context())
	if err != nil {
		slog.Error("leaderboard query failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching leaderboard")
		return
	}
	api.Success(w, entries)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.Overview(r.Context())
	if err != nil {
		slog.Error("report export query failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error exporting report")
		return
	}

	generatedAt := time.Now()
	doc, err := reports.ExportPDF(overview, generatedAt)
	if err != nil {
		slog.Error("report pdf render failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error exporting report")
		return
	}

	filename := fmt.Sprintf("performance-report-%s.pdf", generatedAt.UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		slog.Warn("report pdf write failed", "err", err)
	}
}
