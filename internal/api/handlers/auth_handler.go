package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiyatma/coin-tracker-be/internal/auth"
	"github.com/adiyatma/coin-tracker-be/internal/models"
	"github.com/adiyatma/coin-tracker-be/internal/services"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// AuthPayload defines the structure for register and login requests.
type AuthPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration and signs the user in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := h.users.Register(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respondError(w, err)
		return
	}

	h.respondWithToken(w, user, http.StatusCreated)
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := h.users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		respondError(w, err)
		return
	}

	h.respondWithToken(w, user, http.StatusOK)
}

// Logout confirms the session is over and clears the cookie. Tokens are
// stateless, so the server keeps no session to destroy; the token stays
// valid until its natural expiry and discarding it is the client's job.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not retrieve user from token"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Path:     "/",
	})

	respondJSON(w, http.StatusOK, map[string]string{
		"username": claims.Username,
		"message":  "logout successful",
	})
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user models.User, status int) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		return
	}

	// Set Secure flag based on environment.
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(h.tokens.TTL()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})

	respondJSON(w, status, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
