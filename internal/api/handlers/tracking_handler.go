package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/adiyatma/coin-tracker-be/internal/auth"
	"github.com/adiyatma/coin-tracker-be/internal/services"
)

// TrackingHandler handles HTTP requests for the user's watchlist. Every
// operation takes the acting user from the verified token claims, never from
// the request body.
type TrackingHandler struct {
	tracking services.TrackingServiceProvider
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(tracking services.TrackingServiceProvider) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// TrackPayload defines the structure for add-tracking requests.
type TrackPayload struct {
	CoinID int64 `json:"coinId"`
}

// Add subscribes the authenticated user to a coin.
func (h *TrackingHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var payload TrackPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.CoinID <= 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "coinId is required"})
		return
	}

	if err := h.tracking.AddTracking(claims.UserID, payload.CoinID); err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Int64("coin_id", payload.CoinID).Msg("Failed to add tracking")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"coinId":  payload.CoinID,
		"message": "coin added to tracker",
	})
}

// Remove unsubscribes the authenticated user from a coin.
func (h *TrackingHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	coinID, err := strconv.ParseInt(chi.URLParam(r, "coinID"), 10, 64)
	if err != nil || coinID <= 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid coin id"})
		return
	}

	if err := h.tracking.RemoveTracking(claims.UserID, coinID); err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Int64("coin_id", coinID).Msg("Failed to remove tracking")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"coinId":  coinID,
		"message": "coin removed from tracker",
	})
}

// GetAll lists the authenticated user's tracked coins. A user tracking
// nothing gets an empty list, not an error.
func (h *TrackingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	tracked, err := h.tracking.GetTrackedCoins(claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to list tracked coins")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": tracked})
}
