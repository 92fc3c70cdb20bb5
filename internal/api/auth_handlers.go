package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/example/shopfront/internal/auth"
	"github.com/example/shopfront/internal/domain/user"
)

// AuthHandlers handles registration and login
type AuthHandlers struct {
	users   user.Store
	tokens  *auth.TokenService
	secrets auth.SecretScheme
}

func NewAuthHandlers(users user.Store, tokens *auth.TokenService, secrets auth.SecretScheme) *AuthHandlers {
	return &AuthHandlers{
		users:   users,
		tokens:  tokens,
		secrets: secrets,
	}
}

// SignupRequest is the registration request body
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the success body for signup and login
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Signup registers a new user with a zeroed cart and issues a token
func (h *AuthHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, "invalid request body")
		return
	}
	if req.Email == "" {
		respondFailure(w, "email is required")
		return
	}

	stored, err := h.secrets.Encode(req.Password)
	if err != nil {
		respondInternalError(w)
		return
	}

	newUser := user.New(req.Email, req.Username, stored)
	if err := h.users.CreateUser(r.Context(), newUser); err != nil {
		if errors.Is(err, user.ErrDuplicateIdentity) {
			respondFailure(w, "existing user found")
			return
		}
		log.Printf("[API] Signup failed for %s: %v", req.Email, err)
		respondInternalError(w)
		return
	}

	token, err := h.tokens.Issue(newUser.Identity)
	if err != nil {
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusOK, TokenResponse{Success: true, Token: token})
}

// Login verifies credentials and issues a token
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, "invalid request body")
		return
	}

	stored, err := h.users.GetUser(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownIdentity) {
			respondFailure(w, "wrong email")
			return
		}
		log.Printf("[API] Login failed for %s: %v", req.Email, err)
		respondInternalError(w)
		return
	}

	if !h.secrets.Check(req.Password, stored.Secret) {
		respondFailure(w, "wrong password")
		return
	}

	token, err := h.tokens.Issue(stored.Identity)
	if err != nil {
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusOK, TokenResponse{Success: true, Token: token})
}
