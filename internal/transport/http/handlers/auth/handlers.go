package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"

	"evalx/internal/domain/auth"
	"evalx/internal/transport/http/api"
	"evalx/internal/transport/http/middleware"
)

const defaultAvatar = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"

var errPasswordPolicy = errors.New("Password must be at least 8 characters long and include at least one number and one special character")

type Handler struct {
	Store    auth.StoreAPI
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(store auth.StoreAPI, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Get("/managers", h.handleListManagers)
		r.Get("/verify", h.handleVerify)
		r.Post("/login", h.handleLogin)
		r.Post("/register", h.handleRegister)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type registerRequest struct {
	Role       string `json:"role"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Title      string `json:"title"`
	Avatar     string `json:"avatar"`
	Department string `json:"department"`
	ManagerID  int    `json:"managerId"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Role == "" {
		api.Fail(w, http.StatusBadRequest, "Role is required")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "Please provide username, password, and role")
		return
	}

	// Both the unknown-email and wrong-password paths answer with the same
	// message so login failures cannot be used to enumerate accounts.
	switch payload.Role {
	case auth.RoleManager:
		manager, err := h.Store.FindManagerByEmail(r.Context(), payload.Username)
		if err != nil {
			slog.Error("manager lookup failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "Server error during login")
			return
		}
		if manager == nil || !auth.VerifyPassword(payload.Password, manager.PasswordHash) {
			api.Fail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.issueToken(w, manager.ID, auth.RoleManager, manager)
	case auth.RoleEmployee:
		employee, err := h.Store.FindEmployeeByEmail(r.Context(), payload.Username)
		if err != nil {
			slog.Error("employee lookup failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "Server error during login")
			return
		}
		if employee == nil || !auth.VerifyPassword(payload.Password, employee.PasswordHash) {
			api.Fail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.issueToken(w, employee.ID, auth.RoleEmployee, employee)
	default:
		api.Fail(w, http.StatusBadRequest, "Invalid role specified")
	}
}

func (h *Handler) issueToken(w http.ResponseWriter, userID int, role string, user any) {
	token, err := auth.GenerateToken(h.Secret, userID, role, h.TokenTTL)
	if err != nil {
		slog.Error("token generation failed", "userId", userID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	api.SuccessMessage(w, http.StatusOK, "Login successful", map[string]any{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.Name == "" || payload.Email == "" || payload.Password == "" || payload.Role == "" || payload.Title == "" {
		api.Fail(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	if err := validatePassword(payload.Password); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	switch payload.Role {
	case auth.RoleManager:
		if payload.Department == "" {
			api.Fail(w, http.StatusBadRequest, "Department is required for managers")
			return
		}
	case auth.RoleEmployee:
		if payload.ManagerID == 0 {
			api.Fail(w, http.StatusBadRequest, "Manager selection is required for employees")
			return
		}
	default:
		api.Fail(w, http.StatusBadRequest, "Invalid role specified")
		return
	}

	inUse, err := h.Store.EmailInUse(r.Context(), payload.Email)
	if err != nil {
		slog.Error("email uniqueness check failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error during registration")
		return
	}
	if inUse {
		api.Fail(w, http.StatusConflict, "User with this email already exists in the system")
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		slog.Error("password hash failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	avatar := payload.Avatar
	if avatar == "" {
		avatar = defaultAvatar
	}

	var ok bool
	if payload.Role == auth.RoleManager {
		ok, err = h.Store.InsertManager(r.Context(), auth.NewManager{
			Name:         payload.Name,
			Email:        payload.Email,
			PasswordHash: hash,
			Title:        payload.Title,
			Avatar:       avatar,
			Department:   payload.Department,
		})
	} else {
		ok, err = h.Store.InsertEmployee(r.Context(), auth.NewEmployee{
			ManagerID:    payload.ManagerID,
			Name:         payload.Name,
			Email:        payload.Email,
			PasswordHash: hash,
			Title:        payload.Title,
			Avatar:       avatar,
			Department:   payload.Department,
		})
	}
	// A duplicate-email race slips past the pre-check and fails the insert's
	// unique constraint; it surfaces as the same generic failure.
	if err != nil || !ok {
		if err != nil {
			slog.Warn("registration insert failed", "email", payload.Email, "err", err)
		}
		api.Fail(w, http.StatusBadRequest, "Registration failed")
		return
	}

	api.SuccessMessage(w, http.StatusCreated, "Account created successfully! Please login.", nil)
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	switch user.Role {
	case auth.RoleManager:
		manager, err := h.Store.FindManagerByID(r.Context(), user.UserID)
		if err != nil {
			slog.Error("verify manager lookup failed", "userId", user.UserID, "err", err)
			api.Fail(w, http.StatusInternalServerError, "Server error during verification")
			return
		}
		if manager == nil {
			api.Fail(w, http.StatusUnauthorized, "User not found")
			return
		}
		api.Success(w, map[string]any{"user": manager})
	case auth.RoleEmployee:
		employee, err := h.Store.FindEmployeeByID(r.Context(), user.UserID)
		if err != nil {
			slog.Error("verify employee lookup failed", "userId", user.UserID, "err", err)
			api.Fail(w, http.StatusInternalServerError, "Server error during verification")
			return
		}
		if employee == nil {
			api.Fail(w, http.StatusUnauthorized, "User not found")
			return
		}
		api.Success(w, map[string]any{"user": employee})
	default:
		api.Fail(w, http.StatusUnauthorized, "Invalid role in token")
	}
}

func (h *Handler) handleListManagers(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Store.ListManagerSummaries(r.Context())
	if err != nil {
		slog.Error("manager directory query failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Server error fetching managers")
		return
	}
	if summaries == nil {
		summaries = []auth.ManagerSummary{}
	}
	api.Success(w, summaries)
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errPasswordPolicy
	}
	var hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune("!@#$%^&*", c):
			hasSpecial = true
		}
	}
	if !hasDigit || !hasSpecial {
		return errPasswordPolicy
	}
	return nil
}
