package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Sanketkadam3921/financial-dashboard/internal/auth"
	"github.com/Sanketkadam3921/financial-dashboard/internal/http/respond"
	"github.com/Sanketkadam3921/financial-dashboard/internal/user"
)

type Handler struct {
	users  *user.Service
	tokens *auth.TokenManager
}

func NewHandler(users *user.Service, tokens *auth.TokenManager) *Handler {
	return &Handler{users: users, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.users.Signup(r.Context(), user.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr *user.ValidationError
		if errors.As(err, &verr) {
			respond.Error(w, http.StatusBadRequest, verr.Message)
			return
		}

		if errors.Is(err, user.ErrEmailTaken) {
			respond.Error(w, http.StatusBadRequest, "User already exists")
			return
		}

		slog.Error("signup failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Signup failed")

		return
	}

	respond.JSON(w, http.StatusCreated, signupResponse{
		Message: "User registered successfully",
		User:    userResponse{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var verr *user.ValidationError
		if errors.As(err, &verr) {
			respond.Error(w, http.StatusBadRequest, verr.Message)
			return
		}

		if errors.Is(err, user.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		slog.Error("login failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Login failed")

		return
	}

	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Login failed")

		return
	}

	respond.JSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  userResponse{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}
