package employeeshandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"evalx/internal/domain/employee"
	"evalx/internal/transport/http/api"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{employeeID}", h.handleBundle)
		r.Get("/{employeeID}/overview", h.handleOverview)
		r.Post("/{employeeID}/tasks", h.handleCreateTask)
		r.Patch("/{employeeID}/tasks/{taskID}", h.handleUpdateTask)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.List(r.Context())
	if err != nil {
		slog.Error("employee list query failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching employees")
		return
	}
	api.Success(w, entries)
}

func (h *Handler) handleBundle(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID", "Invalid employee id")
	if !ok {
		return
	}

	// A missing profile is not an error here: the bundle ships with a null
	// profile and empty sections, and the client decides how to render it.
	bundle, err := h.Service.Bundle(r.Context(), employeeID)
	if err != nil {
		slog.Error("employee bundle query failed", "employeeId", employeeID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching employee details")
		return
	}
	api.Success(w, bundle)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID", "Invalid employee id")
	if !ok {
		return
	}

	overview, err := h.Service.Overview(r.Context(), employeeID)
	if err != nil {
		slog.Error("employee overview query failed", "employeeId", employeeID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching overview")
		return
	}
	if overview.Profile == nil {
		api.Fail(w, http.StatusNotFound, "Employee not found")
		return
	}
	api.Success(w, overview)
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID", "Invalid employee id")
	if !ok {
		return
	}

	var payload struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	description := strings.TrimSpace(payload.Description)
	if description == "" {
		api.Fail(w, http.StatusBadRequest, "Task description required")
		return
	}

	task, err := h.Service.CreateTask(r.Context(), employeeID, description)
	if err != nil {
		slog.Error("task create failed", "employeeId", employeeID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error creating task")
		return
	}
	api.SuccessMessage(w, http.StatusCreated, "", task)
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r, "employeeID", "Invalid employee id"); !ok {
		return
	}
	taskID, ok := pathID(w, r, "taskID", "Invalid task id")
	if !ok {
		return
	}

	var payload struct {
		Completed *bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Completed == nil {
		api.Fail(w, http.StatusBadRequest, "Invalid task request")
		return
	}

	// Unconditional write: an unknown task id updates zero rows and still
	// reports success.
	if err := h.Service.UpdateTaskStatus(r.Context(), taskID, *payload.Completed); err != nil {
		slog.Error("task update failed", "taskId", taskID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error updating task")
		return
	}
	api.SuccessMessage(w, http.StatusOK, "Task updated", map[string]any{
		"id":        taskID,
		"completed": *payload.Completed,
	})
}

func pathID(w http.ResponseWriter, r *http.Request, param, message string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}
