package managershandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"evalx/internal/domain/manager"
	"evalx/internal/transport/http/api"
)

type Handler struct {
	Service *manager.Service
}

func NewHandler(service *manager.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/managers/{managerID}", func(r chi.Router) {
		r.Get("/charts", h.handleCharts)
		r.Get("/team-scores", h.handleTeamScores)
		r.Get("/skill-distribution", h.handleSkillDistribution)
		r.Get("/radar-metrics", h.handleRadarMetrics)
		r.Get("/top-employees", h.handleTopEmployees)
		r.Get("/evaluations", h.handleListEvaluations)
		r.Post("/evaluations", h.handleCreateEvaluation)
	})
}

func (h *Handler) handleCharts(w http.ResponseWriter, r *http.Request) {
	managerID, ok := managerID(w, r)
	if !ok {
		return
	}

	charts, err := h.Service.Charts(r.Context(), managerID)
	if err != nil {
		slog.Error("chart query failed", "managerId", managerID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching charts")
		return
	}
	api.Success(w, charts)
}

func (h *Handler) handleTeamScores(w http.ResponseWriter, r *http.Request) {
	managerID, ok := managerID(w, r)
	if !ok {
		return
	}

	scores, err := h.Service.TeamScores(r.Context(), managerID)
	if err != nil {
		slog.Error("team score query failed", "managerId", managerID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching team scores")
		return
	}
	api.Success(w, scores)
}

func (h *Handler) handleSkillDistribution(w http.ResponseWriter, r *http.Request) {
	managerID, ok := managerID(w, r)
	if !ok {
		return
	}

	points, err := h.Service.SkillDistribution(r.Context(), managerID)
	if err != nil {
		slog.Error("skill distribution query failed", "managerId", managerID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching skill distribution")
		return
	}
	api.Success(w, points)
}

func (h *Handler) handleRadarMetrics(w http.ResponseWriter, r *http.Request) {
	managerID, ok := managerID(w, r)
	if !ok {
		return
	}

	points, err := h.Service.RadarMetrics(r.Context(), managerID)
	if err != nil {
		slog.Error("radar metric query failed", "managerId", managerID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching radar metrics")
		return
	}
	api.Success(w, points)
}

func (h *Handler) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	managerID, ok := managerID(w, r)
	if !ok {
		return
	}

	members, err := h.Service.ListTeam(r.Context(), managerID)
	if err != nil {
		slog.Error("evaluation list query failed", "managerId", managerID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching evaluations")
		return
	}
	api.Success(w, members)
}

func (h *Handler) handleTopEmployees(w http.ResponseWriter, r *http.Request) {
	managerID, ok := managerID(w, r)
	if !ok {
		return
	}

	top, err := h.Service.TopEmployees(r.Context(), managerID)
	if err != nil {
		slog.Error("top employee query failed", "managerId", managerID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching top employees")
		return
	}
	api.Success(w, top)
}

type evaluationRequest struct {
	EmployeeID   int    `json:"employeeId"`
	Category     string `json:"category"`
	Productivity *int   `json:"productivity"`
	Teamwork     *int   `json:"teamwork"`
	Creativity   *int   `json:"creativity"`
	Accuracy     *int   `json:"accuracy"`
	Notes        string `json:"notes"`
}

func (h *Handler) handleCreateEvaluation(w http.ResponseWriter, r *http.Request) {
	managerID, ok := managerID(w, r)
	if !ok {
		return
	}

	var payload evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.EmployeeID == 0 {
		api.Fail(w, http.StatusBadRequest, "Employee selection is required")
		return
	}
	if strings.TrimSpace(payload.Category) == "" {
		api.Fail(w, http.StatusBadRequest, "Evaluation category is required")
		return
	}
	for _, score := range []*int{payload.Productivity, payload.Teamwork, payload.Creativity, payload.Accuracy} {
		if score != nil && (*score < 0 || *score > 100) {
			api.Fail(w, http.StatusBadRequest, "Scores must be between 0 and 100")
			return
		}
	}

	id, err := h.Service.CreateEvaluation(r.Context(), managerID, manager.NewEvaluation{
		EmployeeID:   payload.EmployeeID,
		Category:     payload.Category,
		Productivity: payload.Productivity,
		Teamwork:     payload.Teamwork,
		Creativity:   payload.Creativity,
		Accuracy:     payload.Accuracy,
		Notes:        payload.Notes,
	})
	if err != nil {
		slog.Error("evaluation create failed", "managerId", managerID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error saving evaluation")
		return
	}
	api.SuccessMessage(w, http.StatusCreated, "Evaluation saved", map[string]any{"id": id})
}

func managerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "managerID"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid manager id")
		return 0, false
	}
	return id, true
}
