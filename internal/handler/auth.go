package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aweber/chirp/internal/domain"
	"github.com/aweber/chirp/internal/service"
)

// AuthHandler handles login and registration HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleLogin processes a JSON login request.
// POST /api/login
// Request:  {"email":"...","password":"..."}
// Response: {"user": {...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusForbidden, "Invalid credentials.")
			return
		}
		slog.Error("login user", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleRegister processes a JSON registration request.
// POST /api/users
// Request:  {"email":"...","password":"...","username":"...","name":"..."}
// Response: {"user": {...}}
//
// A taken email answers 403 and a taken username 409; the distinction is
// part of the documented interface.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Email == "" || req.Password == "" || req.Username == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Email, password, username, and name are required.")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Username, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusForbidden, "Email address already exists.")
		case errors.Is(err, domain.ErrDuplicateUsername):
			writeError(w, http.StatusConflict, "User name already exists.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("register user", "error", err, "request_id", RequestIDFromContext(r.Context()))
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}
